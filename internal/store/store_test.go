package store_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-flowpipe/internal/store"
	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

func newStore(t *testing.T, steps ...*model.StepInfo) store.StepStore {
	t.Helper()

	s := store.NewMemoryStore()
	for _, step := range steps {
		require.NoError(t, s.AddVertex(store.StepHash(step), step, graph.VertexProperties{}))
	}

	return s
}

var (
	initStep  = &model.StepInfo{Kind: model.InitStepKind, Name: "init"}
	thenStep  = &model.StepInfo{Kind: model.ThenStepKind, Name: "then-1", Index: 1}
	catchStep = &model.StepInfo{Kind: model.CatchStepKind, Name: "catch-2", Index: 2}
)

func TestMemoryStoreVertices(t *testing.T) {
	t.Parallel()

	s := newStore(t, model.StartStep, initStep, thenStep, catchStep)

	assert.ErrorIs(t, s.AddVertex("init", initStep, graph.VertexProperties{}), graph.ErrVertexAlreadyExists)

	names, err := s.ListVertices()
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "init", "then-1", "catch-2"}, names)

	count, err := s.VertexCount()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	assert.Equal(t, []string{"catch-2"}, s.VerticesByKind(model.CatchStepKind))
	assert.Empty(t, s.VerticesByKind(model.EndStepKind))

	step, props, err := s.Vertex("then-1")
	require.NoError(t, err)
	assert.Same(t, thenStep, step)
	assert.NotNil(t, props.Attributes)

	_, _, err = s.Vertex("missing")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestMemoryStoreUpdateVertex(t *testing.T) {
	t.Parallel()

	s := newStore(t, initStep)

	require.NoError(t, s.UpdateVertex("init", graph.VertexAttribute("xlabel", "1 runs")))

	_, props, err := s.Vertex("init")
	require.NoError(t, err)
	assert.Equal(t, "1 runs", props.Attributes["xlabel"])

	assert.ErrorIs(t, s.UpdateVertex("missing"), graph.ErrVertexNotFound)
}

func TestMemoryStoreEdges(t *testing.T) {
	t.Parallel()

	s := newStore(t, initStep, thenStep, catchStep)

	require.NoError(t, s.AddEdge("init", "then-1", graph.Edge[string]{Source: "init", Target: "then-1"}))
	require.NoError(t, s.AddEdge("then-1", "catch-2", graph.Edge[string]{Source: "then-1", Target: "catch-2"}))

	edges, err := s.ListEdges()
	require.NoError(t, err)
	assert.Len(t, edges, 2)

	edge, err := s.Edge("init", "then-1")
	require.NoError(t, err)
	assert.Equal(t, "then-1", edge.Target)

	_, err = s.Edge("then-1", "init")
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)

	edge.Properties.Weight = 3
	require.NoError(t, s.UpdateEdge("init", "then-1", edge))
	assert.ErrorIs(t, s.UpdateEdge("catch-2", "init", edge), graph.ErrEdgeNotFound)

	edge, err = s.Edge("init", "then-1")
	require.NoError(t, err)
	assert.Equal(t, 3, edge.Properties.Weight)

	assert.ErrorIs(t, s.RemoveVertex("then-1"), graph.ErrVertexHasEdges)

	require.NoError(t, s.RemoveEdge("then-1", "catch-2"))
	require.NoError(t, s.RemoveEdge("init", "then-1"))
	require.NoError(t, s.RemoveVertex("then-1"))
	assert.ErrorIs(t, s.RemoveVertex("then-1"), graph.ErrVertexNotFound)

	names, err := s.ListVertices()
	require.NoError(t, err)
	assert.Equal(t, []string{"init", "catch-2"}, names)
}

func TestMemoryStoreCreatesCycle(t *testing.T) {
	t.Parallel()

	s := newStore(t, initStep, thenStep, catchStep)
	require.NoError(t, s.AddEdge("init", "then-1", graph.Edge[string]{Source: "init", Target: "then-1"}))
	require.NoError(t, s.AddEdge("then-1", "catch-2", graph.Edge[string]{Source: "then-1", Target: "catch-2"}))

	tcs := map[string]struct {
		source   string
		target   string
		expected bool
	}{
		"forward":  {source: "init", target: "catch-2", expected: false},
		"backward": {source: "catch-2", target: "init", expected: true},
		"self":     {source: "init", target: "init", expected: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := s.CreatesCycle(tc.source, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := s.CreatesCycle("missing", "init")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "unable to get vertex missing")

	_, err = s.CreatesCycle("init", "missing")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "unable to get vertex missing")
}
