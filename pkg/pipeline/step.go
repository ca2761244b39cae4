package pipeline

import (
	"context"
	"strconv"

	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

// Handler is the untyped form of a step. in is the value carried by the call, or the call
// arguments for the first step. The result may be an Awaitable.
type Handler func(ctx context.Context, in any) (any, error)

// ErrorHandler is the untyped form of a recovery step. The result may be an Awaitable.
type ErrorHandler func(ctx context.Context, err error) (any, error)

// Step is a registered handler tagged with the control path it belongs to.
type Step struct {
	Info   *model.StepInfo
	handle Handler
}

// stepList is a persistent list of steps. Appending shares the prefix, so a list can be
// extended several times without the extensions seeing each other.
type stepList struct {
	step Step
	prev *stepList
	len  int
}

func (l *stepList) size() int {
	if l == nil {
		return 0
	}

	return l.len
}

func (l *stepList) push(kind model.StepKind, handle Handler, opts ...StepOption) *stepList {
	idx := l.size()
	info := &model.StepInfo{
		Kind:  kind,
		Index: idx,
		Name:  string(kind),
	}
	if kind != model.InitStepKind {
		info.Name += "-" + strconv.Itoa(idx)
	}

	for _, opt := range opts {
		opt(info)
	}

	return &stepList{
		step: Step{Info: info, handle: handle},
		prev: l,
		len:  idx + 1,
	}
}

// slice returns the steps in registration order.
func (l *stepList) slice() []Step {
	steps := make([]Step, l.size())
	for curr := l; curr != nil; curr = curr.prev {
		steps[curr.len-1] = curr.step
	}

	return steps
}

func errorHandler(h ErrorHandler) Handler {
	if h == nil {
		return nil
	}

	return func(ctx context.Context, in any) (any, error) {
		err, _ := in.(error)

		return h(ctx, err)
	}
}
