package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

// Func is a materialised pipeline. Every call settles the returned future exactly once.
type Func[A, R any] func(ctx context.Context, in A) *Future[R]

// Flow is a materialised pipeline definition. It can be called concurrently.
type Flow[A, R any] struct {
	engine    *engine
	scheduler Scheduler
}

func materialize[A, R any](def Definition, opts ...Option) (*Flow[A, R], error) {
	cfg := newConfig(opts...)
	steps := def.steps.slice()

	names := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		if _, ok := names[step.Info.Name]; ok {
			return nil, errors.Wrapf(ErrDuplicateStepName, "step %q", step.Info.Name)
		}
		names[step.Info.Name] = struct{}{}
	}

	infos := make([]*model.StepInfo, len(steps))
	for i, step := range steps {
		infos[i] = step.Info
	}

	for _, opt := range cfg.hooks {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}

		for i, info := range infos {
			err = opt.PrepareStep(parentSteps(infos, i), info)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to prepare step %s", info.Name)
			}
		}

		err = opt.PrepareStep(endParentSteps(infos), model.EndStep)
		if err != nil {
			return nil, errors.Wrap(err, "unable to prepare end step")
		}
	}

	return &Flow[A, R]{
		engine: &engine{
			steps:  steps,
			hooks:  cfg.hooks,
			logger: cfg.logger,
		},
		scheduler: cfg.scheduler,
	}, nil
}

// Invoke starts a call.
func (f *Flow[A, R]) Invoke(ctx context.Context, in A) *Future[R] {
	res := f.scheduler.Run(ctx, func(ctx context.Context, suspend Suspend) (any, error) {
		return f.engine.run(ctx, suspend, in)
	})

	return mapFuture(res, func(v any, err error) (R, error) {
		if err != nil {
			var zero R

			return zero, err
		}

		return cast[R](v)
	})
}

// Call starts a call and waits for it to settle.
func (f *Flow[A, R]) Call(ctx context.Context, in A) (R, error) {
	return f.Invoke(ctx, in).Await(ctx)
}

// Func returns the flow as a plain function.
func (f *Flow[A, R]) Func() Func[A, R] {
	return f.Invoke
}

// Steps returns the description of the steps in registration order.
func (f *Flow[A, R]) Steps() []model.StepInfo {
	return stepInfos(f.engine.steps)
}

// Close runs the Finish hook of every pipeline option.
func (f *Flow[A, R]) Close() error {
	for _, opt := range f.engine.hooks {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}

// rejecting returns a function rejecting every call with err.
func rejecting[A, R any](err error) Func[A, R] {
	return func(context.Context, A) *Future[R] {
		return Reject[R](err)
	}
}

func stepInfos(steps []Step) []model.StepInfo {
	infos := make([]model.StepInfo, len(steps))
	for i, step := range steps {
		infos[i] = *step.Info
	}

	return infos
}

// parentSteps returns the steps whose outcome can hand control to steps[idx].
func parentSteps(steps []*model.StepInfo, idx int) []*model.StepInfo {
	if steps[idx].IsCatch() {
		return errorParentSteps(steps, idx)
	}

	return normalParentSteps(steps, idx)
}

// normalParentSteps returns the last init or then step before idx and every catch
// step following it, since any of them can settle the value consumed at idx.
func normalParentSteps(steps []*model.StepInfo, idx int) []*model.StepInfo {
	last := -1
	for i := idx - 1; i >= 0; i-- {
		if !steps[i].IsCatch() {
			last = i

			break
		}
	}

	parents := []*model.StepInfo{model.StartStep}
	if last >= 0 {
		parents = []*model.StepInfo{steps[last]}
	}

	return append(parents, steps[last+1:idx]...)
}

// errorParentSteps returns the steps whose failure reaches idx: the previous catch
// step and everything after it.
func errorParentSteps(steps []*model.StepInfo, idx int) []*model.StepInfo {
	from := 0
	for i := idx - 1; i >= 0; i-- {
		if steps[i].IsCatch() {
			from = i

			break
		}
	}

	return append([]*model.StepInfo{}, steps[from:idx]...)
}

func endParentSteps(steps []*model.StepInfo) []*model.StepInfo {
	idx := len(steps)
	if idx == 0 {
		return []*model.StepInfo{model.StartStep}
	}

	parents := normalParentSteps(steps, idx)
	seen := make(map[*model.StepInfo]struct{}, len(parents))
	for _, p := range parents {
		seen[p] = struct{}{}
	}

	for _, p := range errorParentSteps(steps, idx) {
		if _, ok := seen[p]; !ok {
			parents = append(parents, p)
		}
	}

	return parents
}
