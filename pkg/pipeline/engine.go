package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

// execution is the state of a single call.
type execution struct {
	call          *model.CallInfo
	value         any
	err           error
	handlingError bool
	index         int
	lastStep      *model.StepInfo
}

// engine walks a step list for every call. It is read only once created.
type engine struct {
	steps  []Step
	hooks  []model.PipelineOption
	logger *zap.Logger
}

// run threads args through the steps. It switches to the error path when a step fails
// and back to the normal path when a catch step recovers.
func (e *engine) run(ctx context.Context, suspend Suspend, args any) (any, error) {
	ex := &execution{
		call:     model.NewCallInfo(),
		lastStep: model.StartStep,
	}
	if len(e.steps) > 0 {
		ex.value = args
	}

	for i := range e.steps {
		ex.index = i
		step := e.steps[i]

		if ex.handlingError != step.Info.IsCatch() {
			e.skipped(ex, step)

			continue
		}

		var in any = ex.value
		if ex.handlingError {
			in = ex.err
		}

		out, err := e.runStep(ctx, suspend, ex, step, in)
		ex.lastStep = step.Info

		if err != nil {
			e.logger.Debug("step failed",
				zap.Stringer("call_id", ex.call.ID),
				zap.String("step", step.Info.Name),
				zap.String("kind", string(step.Info.Kind)),
				zap.Error(err),
			)
			ex.value, ex.err, ex.handlingError = nil, err, true

			continue
		}

		if ex.handlingError {
			e.logger.Debug("step recovered",
				zap.Stringer("call_id", ex.call.ID),
				zap.String("step", step.Info.Name),
			)
		}
		ex.value, ex.err, ex.handlingError = out, nil, false
	}

	e.settled(ex)

	if ex.handlingError {
		return nil, ex.err
	}

	return ex.value, nil
}

func (e *engine) runStep(ctx context.Context, suspend Suspend, ex *execution, step Step, in any) (any, error) {
	start := time.Now()

	res, err := invoke(ctx, step.handle, in)
	computation := time.Since(start)

	var out any
	if err == nil {
		out, err = suspend(Coerce(res))
	}

	for _, opt := range e.hooks {
		hookErr := opt.OnStepOutput(ex.call, ex.lastStep, step.Info, time.Since(start), computation, err)
		e.hookFailed(ex, "OnStepOutput", hookErr)
	}

	return out, err
}

// invoke calls the handler, turning a panic into the error of the step.
func invoke(ctx context.Context, handle Handler, in any) (out any, err error) {
	if handle == nil {
		return nil, ErrNilHandler
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = nil, recovered(r)
		}
	}()

	return handle(ctx, in)
}

func (e *engine) skipped(ex *execution, step Step) {
	e.logger.Debug("step skipped",
		zap.Stringer("call_id", ex.call.ID),
		zap.String("step", step.Info.Name),
		zap.String("kind", string(step.Info.Kind)),
		zap.Bool("handling_error", ex.handlingError),
	)

	for _, opt := range e.hooks {
		e.hookFailed(ex, "OnStepSkipped", opt.OnStepSkipped(ex.call, step.Info))
	}
}

func (e *engine) settled(ex *execution) {
	total := time.Since(ex.call.StartedAt)
	for _, opt := range e.hooks {
		e.hookFailed(ex, "AfterCall", opt.AfterCall(ex.call, ex.lastStep, total, ex.err))
	}
}

func (e *engine) hookFailed(ex *execution, hook string, err error) {
	if err == nil {
		return
	}

	e.logger.Warn("pipeline option failed",
		zap.Stringer("call_id", ex.call.ID),
		zap.String("hook", hook),
		zap.Error(err),
	)
}
