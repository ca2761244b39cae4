package pipeline

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constAwaiter struct {
	val int
}

func (c constAwaiter) Await(context.Context) (int, error) {
	return c.val, nil
}

func TestMapFuture(t *testing.T) {
	t.Parallel()

	toString := func(v int, err error) (string, error) {
		if err != nil {
			return "", err
		}

		return strconv.Itoa(v), nil
	}

	settled := mapFuture(Resolve(1), toString)
	select {
	case <-settled.Done():
	default:
		t.Fatal("future should be settled")
	}

	got, err := settled.Await(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	src, settle := NewFuture[int]()
	pending := mapFuture(src, toString)
	settle(2, nil)

	got, err = pending.Await(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	errMap := errors.New("map")
	_, err = mapFuture(Reject[int](errMap), toString).Await(t.Context())
	assert.Same(t, errMap, err)
}

func TestErase(t *testing.T) {
	t.Parallel()

	var (
		nilFuture *Future[int]
		nilAw     Awaiter[int]
	)

	assert.Nil(t, erase[int](nilFuture))
	assert.Nil(t, erase(nilAw))

	fut := Resolve(1)
	assert.Same(t, fut, erase[int](fut))

	erased := erase[int](constAwaiter{val: 3})
	aw, ok := erased.(Awaitable)
	require.True(t, ok)

	got, err := aw.AwaitAny(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}
