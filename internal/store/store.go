package store

import (
	"sync"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

// StepHash identifies a step vertex by its name.
func StepHash(step *model.StepInfo) string {
	return step.Name
}

// StepStore is a graph.Store of flow steps, safe for concurrent use.
type StepStore interface {
	graph.Store[string, *model.StepInfo]
	// UpdateVertex applies options to the properties of a vertex.
	UpdateVertex(name string, options ...func(*graph.VertexProperties)) error
	// VerticesByKind returns the names of the vertices of a given kind, in registration order.
	VerticesByKind(kind model.StepKind) []string
	CreatesCycle(source, target string) (bool, error)
}

type MemoryStore struct {
	lock             sync.RWMutex
	order            []string
	vertices         map[string]*model.StepInfo
	vertexProperties map[string]*graph.VertexProperties

	// outEdges and inEdges store all outgoing and ingoing edges for all vertices. For O(1) access,
	// these edges themselves are stored in maps whose keys are the names of the target vertices.
	outEdges map[string]map[string]graph.Edge[string] // source -> target
	inEdges  map[string]map[string]graph.Edge[string] // target -> source
}

func NewMemoryStore() StepStore {
	return &MemoryStore{
		vertices:         make(map[string]*model.StepInfo),
		vertexProperties: make(map[string]*graph.VertexProperties),
		outEdges:         make(map[string]map[string]graph.Edge[string]),
		inEdges:          make(map[string]map[string]graph.Edge[string]),
	}
}

func (s *MemoryStore) AddVertex(name string, step *model.StepInfo, p graph.VertexProperties) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.vertices[name]; ok {
		return graph.ErrVertexAlreadyExists
	}

	if p.Attributes == nil {
		p.Attributes = make(map[string]string)
	}

	s.vertices[name] = step
	s.vertexProperties[name] = &p
	s.order = append(s.order, name)

	return nil
}

func (s *MemoryStore) ListVertices() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return append([]string{}, s.order...), nil
}

func (s *MemoryStore) VerticesByKind(kind model.StepKind) []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	names := make([]string, 0)
	for _, name := range s.order {
		if s.vertices[name].Kind == kind {
			names = append(names, name)
		}
	}

	return names
}

func (s *MemoryStore) VertexCount() (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.vertices), nil
}

func (s *MemoryStore) Vertex(name string) (*model.StepInfo, graph.VertexProperties, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	v, ok := s.vertices[name]
	if !ok {
		return v, graph.VertexProperties{}, graph.ErrVertexNotFound
	}

	p := s.vertexProperties[name]

	return v, *p, nil
}

func (s *MemoryStore) RemoveVertex(name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.vertices[name]; !ok {
		return graph.ErrVertexNotFound
	}

	if len(s.inEdges[name]) > 0 || len(s.outEdges[name]) > 0 {
		return graph.ErrVertexHasEdges
	}

	delete(s.inEdges, name)
	delete(s.outEdges, name)
	delete(s.vertices, name)
	delete(s.vertexProperties, name)

	for i, curr := range s.order {
		if curr == name {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}

	return nil
}

func (s *MemoryStore) UpdateVertex(name string, options ...func(*graph.VertexProperties)) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	p, ok := s.vertexProperties[name]
	if !ok {
		return graph.ErrVertexNotFound
	}

	for _, opt := range options {
		opt(p)
	}

	return nil
}

func (s *MemoryStore) AddEdge(sourceName, targetName string, edge graph.Edge[string]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.outEdges[sourceName]; !ok {
		s.outEdges[sourceName] = make(map[string]graph.Edge[string])
	}

	s.outEdges[sourceName][targetName] = edge

	if _, ok := s.inEdges[targetName]; !ok {
		s.inEdges[targetName] = make(map[string]graph.Edge[string])
	}

	s.inEdges[targetName][sourceName] = edge

	return nil
}

func (s *MemoryStore) UpdateEdge(sourceName, targetName string, edge graph.Edge[string]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.outEdges[sourceName][targetName]; !ok {
		return graph.ErrEdgeNotFound
	}

	s.outEdges[sourceName][targetName] = edge
	s.inEdges[targetName][sourceName] = edge

	return nil
}

func (s *MemoryStore) RemoveEdge(sourceName, targetName string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.inEdges[targetName], sourceName)
	delete(s.outEdges[sourceName], targetName)

	return nil
}

func (s *MemoryStore) Edge(sourceName, targetName string) (graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	edge, ok := s.outEdges[sourceName][targetName]
	if !ok {
		return graph.Edge[string]{}, graph.ErrEdgeNotFound
	}

	return edge, nil
}

func (s *MemoryStore) ListEdges() ([]graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	res := make([]graph.Edge[string], 0)
	for _, source := range s.order {
		for _, edge := range s.outEdges[source] {
			res = append(res, edge)
		}
	}

	return res, nil
}

// CreatesCycle reports whether an edge from source to target would close a cycle.
func (s *MemoryStore) CreatesCycle(source, target string) (bool, error) {
	if _, _, err := s.Vertex(source); err != nil {
		return false, errors.Wrapf(err, "unable to get vertex %s", source)
	}

	if _, _, err := s.Vertex(target); err != nil {
		return false, errors.Wrapf(err, "unable to get vertex %s", target)
	}

	if source == target {
		return true, nil
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	stack := []string{source}
	visited := make(map[string]struct{})

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[current]; ok {
			continue
		}

		// If the walk back from source reaches target, target is an ancestor of source.
		if current == target {
			return true, nil
		}

		visited[current] = struct{}{}

		for parent := range s.inEdges[current] {
			stack = append(stack, parent)
		}
	}

	return false, nil
}
