package pipeline

import (
	"context"

	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

// Definition is an untyped, immutable list of steps. The zero value is the empty pipeline.
// Every method returns a new definition and leaves its receiver untouched, so a definition
// can be used as the prefix of several pipelines.
type Definition struct {
	steps *stepList
}

// NewDefinition starts a definition with its entry step.
func NewDefinition(init Handler, opts ...StepOption) Definition {
	var steps *stepList

	return Definition{steps: steps.push(model.InitStepKind, init, opts...)}
}

// Then appends a step running while the call is not handling an error.
func (d Definition) Then(h Handler, opts ...StepOption) Definition {
	return Definition{steps: d.steps.push(model.ThenStepKind, h, opts...)}
}

// Catch appends a step running while the call is handling an error.
func (d Definition) Catch(h ErrorHandler, opts ...StepOption) Definition {
	return Definition{steps: d.steps.push(model.CatchStepKind, errorHandler(h), opts...)}
}

// Len returns the number of steps.
func (d Definition) Len() int {
	return d.steps.size()
}

// Steps returns the description of the steps in registration order.
func (d Definition) Steps() []model.StepInfo {
	return stepInfos(d.steps.slice())
}

// Materialize turns the definition into a flow.
func (d Definition) Materialize(opts ...Option) (*Flow[any, any], error) {
	return materialize[any, any](d, opts...)
}

// End turns the definition into a function. A definition that cannot be materialised
// gives a function rejecting every call.
func (d Definition) End() Func[any, any] {
	return end[any, any](d)
}

func end[A, R any](d Definition) Func[A, R] {
	f, err := materialize[A, R](d)
	if err != nil {
		return rejecting[A, R](err)
	}

	return f.Func()
}

// Builder is a typed Definition. A is the type of the call argument, R the type
// carried after the last step.
type Builder[A, R any] struct {
	def Definition
}

// Begin starts a pipeline with its entry step.
func Begin[A, R any](fn func(ctx context.Context, in A) (R, error), opts ...StepOption) Builder[A, R] {
	return Builder[A, R]{def: NewDefinition(Fn(fn), opts...)}
}

// BeginAsync starts a pipeline with an entry step returning an Awaiter.
func BeginAsync[A, R any](fn func(ctx context.Context, in A) Awaiter[R], opts ...StepOption) Builder[A, R] {
	return Builder[A, R]{def: NewDefinition(FnAsync(fn), opts...)}
}

// Then appends a step changing the carried type. A result implementing Awaitable is
// awaited, so steps returning an Awaiter should use ThenAsync.
func Then[A, R, N any](b Builder[A, R], fn func(ctx context.Context, in R) (N, error), opts ...StepOption) Builder[A, N] {
	return Builder[A, N]{def: b.def.Then(Fn(fn), opts...)}
}

// ThenAsync appends a step returning an Awaiter.
func ThenAsync[A, R, N any](b Builder[A, R], fn func(ctx context.Context, in R) Awaiter[N], opts ...StepOption) Builder[A, N] {
	return Builder[A, N]{def: b.def.Then(FnAsync(fn), opts...)}
}

// Then appends a step keeping the carried type.
func (b Builder[A, R]) Then(fn func(ctx context.Context, in R) (R, error), opts ...StepOption) Builder[A, R] {
	return Then(b, fn, opts...)
}

// Catch appends a recovery step. It receives the error exactly as it was returned.
func (b Builder[A, R]) Catch(fn func(ctx context.Context, err error) (R, error), opts ...StepOption) Builder[A, R] {
	if fn == nil {
		return Builder[A, R]{def: b.def.Catch(nil, opts...)}
	}

	return Builder[A, R]{def: b.def.Catch(func(ctx context.Context, err error) (any, error) {
		return fn(ctx, err)
	}, opts...)}
}

// CatchAsync appends a recovery step returning an Awaiter.
func (b Builder[A, R]) CatchAsync(fn func(ctx context.Context, err error) Awaiter[R], opts ...StepOption) Builder[A, R] {
	if fn == nil {
		return Builder[A, R]{def: b.def.Catch(nil, opts...)}
	}

	return Builder[A, R]{def: b.def.Catch(func(ctx context.Context, err error) (any, error) {
		return erase(fn(ctx, err)), nil
	}, opts...)}
}

// Definition returns the untyped definition.
func (b Builder[A, R]) Definition() Definition {
	return b.def
}

// Steps returns the description of the steps in registration order.
func (b Builder[A, R]) Steps() []model.StepInfo {
	return b.def.Steps()
}

// End turns the pipeline into a function.
func (b Builder[A, R]) End() Func[A, R] {
	return end[A, R](b.def)
}

// Build turns the pipeline into a flow.
func (b Builder[A, R]) Build(opts ...Option) (*Flow[A, R], error) {
	return materialize[A, R](b.def, opts...)
}

// Fn erases the types of a step.
func Fn[I, O any](fn func(ctx context.Context, in I) (O, error)) Handler {
	if fn == nil {
		return nil
	}

	return func(ctx context.Context, in any) (any, error) {
		v, err := cast[I](in)
		if err != nil {
			return nil, err
		}

		return fn(ctx, v)
	}
}

// FnAsync erases the types of a step returning an Awaiter.
func FnAsync[I, O any](fn func(ctx context.Context, in I) Awaiter[O]) Handler {
	if fn == nil {
		return nil
	}

	return func(ctx context.Context, in any) (any, error) {
		v, err := cast[I](in)
		if err != nil {
			return nil, err
		}

		return erase(fn(ctx, v)), nil
	}
}
