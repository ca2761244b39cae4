package pipeline

import (
	"context"
	"sync"
)

// Awaitable is implemented by values that settle later.
// Step results implementing it are awaited before being handed to the next step.
type Awaitable interface {
	AwaitAny(ctx context.Context) (any, error)
}

// Awaiter is the typed counterpart of Awaitable.
type Awaiter[T any] interface {
	Await(ctx context.Context) (T, error)
}

// Future is a value or an error that becomes available once.
type Future[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
	err  error
}

// NewFuture creates a pending future and the function settling it.
// Only the first call to the settle function has an effect.
func NewFuture[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{done: make(chan struct{})}

	return f, f.settle
}

// Resolve creates a future already settled with v.
func Resolve[T any](v T) *Future[T] {
	f, settle := NewFuture[T]()
	settle(v, nil)

	return f
}

// Reject creates a future already settled with err.
func Reject[T any](err error) *Future[T] {
	f, settle := NewFuture[T]()

	var zero T
	settle(zero, err)

	return f
}

// Async runs fn in its own goroutine and returns the future of its outcome.
func Async[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f, settle := NewFuture[T]()

	go func() {
		var (
			out T
			err error
		)

		defer func() {
			if r := recover(); r != nil {
				var zero T
				settle(zero, recovered(r))

				return
			}
			settle(out, err)
		}()

		out, err = fn(ctx)
	}()

	return f
}

func (f *Future[T]) settle(v T, err error) {
	f.once.Do(func() {
		f.val = v
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}

	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// AwaitAny implements Awaitable.
func (f *Future[T]) AwaitAny(ctx context.Context) (any, error) {
	return f.Await(ctx)
}

// mapFuture settles a new future with the outcome of src converted by fn.
func mapFuture[T, U any](src *Future[T], fn func(T, error) (U, error)) *Future[U] {
	dst, settle := NewFuture[U]()

	forward := func() {
		settle(fn(src.val, src.err))
	}

	select {
	case <-src.done:
		forward()
	default:
		go func() {
			<-src.done
			forward()
		}()
	}

	return dst
}

// awaiter exposes a typed Awaiter as an Awaitable.
type awaiter[T any] struct {
	aw Awaiter[T]
}

func (a awaiter[T]) AwaitAny(ctx context.Context) (any, error) {
	return a.aw.Await(ctx)
}

func erase[T any](aw Awaiter[T]) any {
	if isNil(aw) {
		return nil
	}
	if f, ok := aw.(Awaitable); ok {
		return f
	}

	return awaiter[T]{aw: aw}
}
