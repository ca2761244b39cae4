package pipeline

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
)

// Suspend blocks a procedure until aw settles. A rejection is returned as the error,
// at the point the procedure resumes.
type Suspend func(aw Awaitable) (any, error)

// Procedure is a sequential body that yields at every awaited value.
type Procedure func(ctx context.Context, suspend Suspend) (any, error)

// Scheduler runs a procedure to completion and returns the future of its outcome.
type Scheduler interface {
	Run(ctx context.Context, proc Procedure) *Future[any]
}

func suspender(ctx context.Context) Suspend {
	return func(aw Awaitable) (any, error) {
		if aw == nil {
			return nil, nil
		}

		return aw.AwaitAny(ctx)
	}
}

// runProcedure runs proc on the current goroutine, turning panics into errors.
func runProcedure(ctx context.Context, proc Procedure, suspend Suspend) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, recovered(r)
		}
	}()

	return proc(ctx, suspend)
}

// settled reports whether aw can be awaited without blocking.
func settled(aw Awaitable) bool {
	f, ok := aw.(interface{ Done() <-chan struct{} })
	if !ok {
		return false
	}

	select {
	case <-f.Done():
		return true
	default:
		return false
	}
}

// GoScheduler runs every procedure in its own goroutine.
type GoScheduler struct{}

func (GoScheduler) Run(ctx context.Context, proc Procedure) *Future[any] {
	f, settle := NewFuture[any]()

	go func() {
		settle(runProcedure(ctx, proc, suspender(ctx)))
	}()

	return f
}

// InlineScheduler runs every procedure on the calling goroutine.
// The returned future is always settled.
type InlineScheduler struct{}

func (InlineScheduler) Run(ctx context.Context, proc Procedure) *Future[any] {
	f, settle := NewFuture[any]()
	settle(runProcedure(ctx, proc, suspender(ctx)))

	return f
}

// LimitedScheduler runs procedures in their own goroutine, at most a fixed number at once.
// A procedure gives its slot back while it is suspended on a pending Awaitable, so calls
// waiting on each other, nested flows included, do not hold the slots they wait for.
type LimitedScheduler struct {
	sem *semaphore.Weighted
}

// NewLimitedScheduler creates a scheduler running at most maxConcurrent procedures at once.
func NewLimitedScheduler(maxConcurrent int64) *LimitedScheduler {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &LimitedScheduler{sem: semaphore.NewWeighted(maxConcurrent)}
}

func (s *LimitedScheduler) Run(ctx context.Context, proc Procedure) *Future[any] {
	f, settle := NewFuture[any]()

	go func() {
		sl := &slot{sem: s.sem}

		err := sl.acquire(ctx)
		if err != nil {
			settle(nil, err)

			return
		}
		defer sl.release()

		settle(runProcedure(ctx, proc, sl.suspender(ctx)))
	}()

	return f
}

// slot is the semaphore weight held by one procedure.
type slot struct {
	sem  *semaphore.Weighted
	held bool
}

func (sl *slot) acquire(ctx context.Context) error {
	err := sl.sem.Acquire(ctx, 1)
	if err != nil {
		return errors.Wrap(err, "unable to acquire scheduler slot")
	}
	sl.held = true

	return nil
}

func (sl *slot) release() {
	if sl.held {
		sl.held = false
		sl.sem.Release(1)
	}
}

func (sl *slot) suspender(ctx context.Context) Suspend {
	return func(aw Awaitable) (any, error) {
		if aw == nil {
			return nil, nil
		}
		if settled(aw) {
			return aw.AwaitAny(ctx)
		}

		sl.release()
		out, err := aw.AwaitAny(ctx)

		acqErr := sl.acquire(ctx)
		if acqErr != nil {
			return nil, acqErr
		}

		return out, err
	}
}

var (
	_ Scheduler = GoScheduler{}
	_ Scheduler = InlineScheduler{}
	_ Scheduler = (*LimitedScheduler)(nil)
)
