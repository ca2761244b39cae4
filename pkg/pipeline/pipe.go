package pipeline

import (
	"context"
)

// PipeDefinition builds a definition from positional steps. The first step receives the
// call argument. onError, when set, handles a failure of any step and its result settles
// the call. Without steps the definition is empty and onError is never called.
func PipeDefinition(steps []Handler, onError ErrorHandler) Definition {
	var def Definition
	if len(steps) == 0 {
		return def
	}

	for i, step := range steps {
		if i == 0 {
			def = NewDefinition(step)

			continue
		}
		def = def.Then(step)
	}

	if onError != nil {
		def = def.Catch(onError, StepName("on-error"))
	}

	return def
}

// Pipe composes steps positionally. A failure settles the call unrecovered.
func Pipe[A, R any](steps ...Handler) Func[A, R] {
	return end[A, R](PipeDefinition(steps, nil))
}

// PipeCatch composes steps positionally with a single error handler bound to the whole chain.
func PipeCatch[A, R any](onError func(ctx context.Context, err error) (R, error), steps ...Handler) Func[A, R] {
	var handler ErrorHandler
	if onError != nil {
		handler = func(ctx context.Context, err error) (any, error) {
			return onError(ctx, err)
		}
	}

	return end[A, R](PipeDefinition(steps, handler))
}
