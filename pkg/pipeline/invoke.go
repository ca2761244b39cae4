package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Result is the settled outcome of one call.
type Result[T any] struct {
	id        uuid.UUID
	settledAt time.Time
	value     T
	err       error
}

func newResult[T any](v T, err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		settledAt: time.Now().UTC(),
		value:     v,
		err:       err,
	}
}

// Value returns the value the call settled with.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error the call settled with, as it was returned.
func (r Result[T]) Err() error {
	return r.err
}

// IsSuccess reports whether the call settled without an error.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// SettledAt returns the time the call settled at.
func (r Result[T]) SettledAt() time.Time {
	return r.settledAt
}

// ID identifies the call.
func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// InvokeAll calls f once per input, at most limit calls at once, and returns the values in
// input order. The first failure is returned as is and cancels the context of the other calls.
// A limit lower than 1 means no limit.
func InvokeAll[A, R any](ctx context.Context, f Func[A, R], inputs []A, limit int) ([]R, error) {
	errGrp, dCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		errGrp.SetLimit(limit)
	}

	outs := make([]R, len(inputs))
	for i, in := range inputs {
		errGrp.Go(func() error {
			out, err := f(dCtx, in).Await(dCtx)
			if err != nil {
				return err
			}
			outs[i] = out

			return nil
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return nil, err
	}

	return outs, nil
}

// InvokeEach calls f once per input, at most limit calls at once, and waits for every call
// to settle. Results are in input order.
func InvokeEach[A, R any](ctx context.Context, f Func[A, R], inputs []A, limit int) []Result[R] {
	errGrp := &errgroup.Group{}
	if limit > 0 {
		errGrp.SetLimit(limit)
	}

	results := make([]Result[R], len(inputs))
	for i, in := range inputs {
		errGrp.Go(func() error {
			results[i] = newResult[R](f(ctx, in).Await(ctx))

			return nil
		})
	}

	_ = errGrp.Wait()

	return results
}
