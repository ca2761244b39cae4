package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-flowpipe/pkg/pipeline"
	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

var errBig = errors.New("big")

func addOne(_ context.Context, x int) (int, error) {
	return x + 1, nil
}

func double(_ context.Context, x int) (int, error) {
	return x * 2, nil
}

func TestThenComposesLeftToRight(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	fn := pipeline.Then(pipeline.Begin(addOne), double).End()

	got, err := fn(ctx, 3).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestThenChangesType(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	fn := pipeline.Then(
		pipeline.ThenAsync(
			pipeline.Begin(func(_ context.Context, x int) (int, error) { return x + 100, nil }),
			func(_ context.Context, x int) pipeline.Awaiter[int] { return pipeline.Resolve(x + 100) },
		),
		func(_ context.Context, x int) (string, error) { return strconv.Itoa(x), nil },
	).End()

	got, err := fn(ctx, 1).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "201", got)
}

func TestCatchRecovers(t *testing.T) {
	t.Parallel()

	fn := pipeline.Begin(func(_ context.Context, x int) (any, error) {
		if x > 10 {
			return nil, errBig
		}

		return x, nil
	}).Catch(func(_ context.Context, err error) (any, error) {
		return "recovered:" + err.Error(), nil
	}).End()

	tcs := map[string]struct {
		input    int
		expected any
	}{
		"big":   {input: 20, expected: "recovered:big"},
		"small": {input: 5, expected: 5},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			got, err := fn(ctx, tc.input).Await(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEmptyPipeline(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	got, err := pipeline.Builder[int, int]{}.End()(ctx, 3).Await(ctx)
	require.NoError(t, err)
	assert.Zero(t, got)

	untyped, err := pipeline.Definition{}.End()(ctx, 42).Await(ctx)
	require.NoError(t, err)
	assert.Nil(t, untyped)
}

func TestRejectedAwaitableBehavesLikeError(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	syncFn := pipeline.Then(pipeline.Begin(addOne), func(_ context.Context, _ int) (int, error) {
		return 0, errBig
	}).End()
	asyncFn := pipeline.ThenAsync(pipeline.Begin(addOne), func(_ context.Context, _ int) pipeline.Awaiter[int] {
		return pipeline.Reject[int](errBig)
	}).End()

	_, syncErr := syncFn(ctx, 1).Await(ctx)
	_, asyncErr := asyncFn(ctx, 1).Await(ctx)

	assert.Same(t, errBig, syncErr)
	assert.Same(t, errBig, asyncErr)
}

func TestErrorSkipsThenSteps(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	var called atomic.Int32

	fn := pipeline.Begin(addOne).
		Then(func(_ context.Context, _ int) (int, error) { return 0, errBig }).
		Then(func(_ context.Context, x int) (int, error) {
			called.Add(1)

			return x, nil
		}).
		End()

	_, err := fn(ctx, 1).Await(ctx)
	assert.Same(t, errBig, err)
	assert.Zero(t, called.Load())
}

func TestCatchReceivesErrorAndFeedsNextStep(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	var caught error

	fn := pipeline.Then(
		pipeline.Begin(addOne).
			Then(func(_ context.Context, _ int) (int, error) { return 0, errBig }).
			Catch(func(_ context.Context, err error) (int, error) {
				caught = err

				return 40, nil
			}),
		func(_ context.Context, x int) (int, error) { return x + 2, nil },
	).End()

	got, err := fn(ctx, 1).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Same(t, errBig, caught)
}

func TestCatchSkippedOnNormalPath(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	var called atomic.Int32

	fn := pipeline.Begin(addOne).
		Catch(func(_ context.Context, _ error) (int, error) {
			called.Add(1)

			return 0, nil
		}).
		Then(double).
		End()

	got, err := fn(ctx, 1).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
	assert.Zero(t, called.Load())
}

func TestConsecutiveCatches(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	var second atomic.Int32

	fn := pipeline.Begin(func(_ context.Context, _ int) (int, error) { return 0, errBig }).
		Catch(func(_ context.Context, _ error) (int, error) { return 1, nil }).
		Catch(func(_ context.Context, _ error) (int, error) {
			second.Add(1)

			return 2, nil
		}).
		End()

	got, err := fn(ctx, 0).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Zero(t, second.Load())
}

func TestFailingCatchHandsOverToNextCatch(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	errCatch := errors.New("catch failed")

	var got []error

	fn := pipeline.Begin(func(_ context.Context, _ int) (int, error) { return 0, errBig }).
		Catch(func(_ context.Context, err error) (int, error) {
			got = append(got, err)

			return 0, errCatch
		}).
		Catch(func(_ context.Context, err error) (int, error) {
			got = append(got, err)

			return 7, nil
		}).
		End()

	out, err := fn(ctx, 0).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, out)
	require.Len(t, got, 2)
	assert.Same(t, errBig, got[0])
	assert.Same(t, errCatch, got[1])
}

func TestFailingLastCatchRejects(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	errCatch := errors.New("catch failed")

	fn := pipeline.Begin(func(_ context.Context, _ int) (int, error) { return 0, errBig }).
		Catch(func(_ context.Context, _ error) (int, error) { return 0, errCatch }).
		End()

	_, err := fn(ctx, 0).Await(ctx)
	assert.Same(t, errCatch, err)
}

func TestPanicsAreCarried(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	def := pipeline.NewDefinition(func(_ context.Context, _ any) (any, error) {
		panic("big")
	}).Catch(func(_ context.Context, err error) (any, error) {
		var panicErr *pipeline.PanicError
		if !errors.As(err, &panicErr) {
			return nil, err
		}

		return fmt.Sprint("recovered:", panicErr.Value), nil
	})

	got, err := def.End()(ctx, nil).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "recovered:big", got)

	errPanic := errors.New("panic error")
	fn := pipeline.Begin(func(_ context.Context, _ int) (int, error) { panic(errPanic) }).End()

	_, err = fn(ctx, 0).Await(ctx)
	assert.Same(t, errPanic, err)
}

func TestBuilderPrefixIsShared(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	base := pipeline.Begin(addOne)
	plusOne := base.Then(addOne)
	timesTen := base.Then(func(_ context.Context, x int) (int, error) { return x * 10, nil })

	assert.Len(t, base.Steps(), 1)
	assert.Len(t, plusOne.Steps(), 2)
	assert.Len(t, timesTen.Steps(), 2)

	got, err := plusOne.End()(ctx, 1).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = timesTen.End()(ctx, 1).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	got, err = base.End()(ctx, 1).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestMaterializeTwice(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	builder := pipeline.Then(pipeline.Begin(addOne), double)
	first := builder.End()
	second := builder.End()

	for i := range 5 {
		a, errA := first(ctx, i).Await(ctx)
		b, errB := second(ctx, i).Await(ctx)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b)
	}
}

func TestNestedFlows(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	inner, err := pipeline.Begin(func(_ context.Context, x int) (int, error) { return x + 100, nil }).Build()
	require.NoError(t, err)

	outer := pipeline.Then(
		pipeline.ThenAsync(
			pipeline.Begin(func(_ context.Context, x int) (int, error) { return x + 10, nil }),
			func(ctx context.Context, x int) pipeline.Awaiter[int] { return inner.Invoke(ctx, x+10) },
		),
		func(_ context.Context, x int) (string, error) { return strconv.Itoa(x), nil },
	).End()

	got, err := inner.Call(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 101, got)

	out, err := outer(ctx, 1).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "121", out)

	untyped := pipeline.NewDefinition(func(ctx context.Context, in any) (any, error) {
		return inner.Invoke(ctx, in.(int)), nil
	}).End()

	v, err := untyped(ctx, 1).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 101, v)
}

func TestUnexpectedType(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	fn := pipeline.NewDefinition(func(_ context.Context, _ any) (any, error) {
		return "not an int", nil
	}).Then(pipeline.Fn(double)).End()

	_, err := fn(ctx, nil).Await(ctx)
	assert.ErrorIs(t, err, pipeline.ErrUnexpectedType)
}

func TestNilHandler(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	fn := pipeline.NewDefinition(nil).End()

	_, err := fn(ctx, 1).Await(ctx)
	assert.ErrorIs(t, err, pipeline.ErrNilHandler)
}

func TestDuplicateStepName(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	builder := pipeline.Begin(addOne, pipeline.StepName("add")).Then(addOne, pipeline.StepName("add"))

	_, err := builder.Build()
	require.ErrorIs(t, err, pipeline.ErrDuplicateStepName)

	_, err = builder.End()(ctx, 1).Await(ctx)
	assert.ErrorIs(t, err, pipeline.ErrDuplicateStepName)
}

func TestStepsDescription(t *testing.T) {
	t.Parallel()

	builder := pipeline.Begin(addOne).
		Then(double, pipeline.StepName("double")).
		Catch(func(_ context.Context, _ error) (int, error) { return 0, nil })

	assert.Equal(t, []model.StepInfo{
		{Kind: model.InitStepKind, Name: "init", Index: 0},
		{Kind: model.ThenStepKind, Name: "double", Index: 1},
		{Kind: model.CatchStepKind, Name: "catch-2", Index: 2},
	}, builder.Steps())

	flow, err := builder.Build()
	require.NoError(t, err)
	assert.Equal(t, builder.Steps(), flow.Steps())
}

func TestConcurrentCallsDoNotShareState(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	release := make(chan struct{})

	fn := pipeline.Then(
		pipeline.Begin(func(_ context.Context, x int) (int, error) {
			if x == 1 {
				<-release
			}

			return x, nil
		}),
		double,
	).End()

	blocked := fn(ctx, 1)
	free := fn(ctx, 2)

	got, err := free.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	close(release)

	got, err = blocked.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestCallRespectsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	never, _ := pipeline.NewFuture[int]()

	flow, err := pipeline.ThenAsync(pipeline.Begin(addOne), func(_ context.Context, _ int) pipeline.Awaiter[int] {
		return never
	}).Build()
	require.NoError(t, err)

	cancel()

	_, err = flow.Call(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
