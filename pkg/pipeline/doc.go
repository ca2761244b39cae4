// Package pipeline provides asynchronous pipelines of steps with a success path and an
// error recovery path.
//
// A pipeline is defined once, as an immutable list of steps, and materialised into a function
// that can be called many times, concurrently. Each call threads its argument through the steps
// in order and waits for the result of a step before running the next one. A step may return a
// plain value or an Awaitable, such as a Future or another materialised pipeline call.
//
// Steps are tagged. Then steps run while the call is on its normal path. When one of them fails,
// the call switches to its error path: the following then steps are skipped until a catch step
// is found. A catch step receives the error exactly as it was returned and brings the call back
// to its normal path when it succeeds. A call still on its error path after the last step settles
// with that error, unwrapped.
//
//	double := pipeline.Then(
//		pipeline.Begin(func(ctx context.Context, x int) (int, error) { return x + 1, nil }),
//		func(ctx context.Context, x int) (int, error) { return x * 2, nil },
//	).End()
//
//	v, err := double(ctx, 3).Await(ctx) // 8, nil
//
// Pipelines can also be composed positionally with Pipe and PipeCatch, where a single error
// handler covers the whole chain.
//
// Calls run on a Scheduler. The default one starts a goroutine per call. Options implementing
// model.PipelineOption observe the steps, see the measure and drawer packages.
package pipeline
