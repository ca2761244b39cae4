package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-flowpipe/internal/store"
	"github.com/askiada/go-flowpipe/pkg/pipeline/measure"
	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

// DOTDrawer is a drawer that writes the pipeline graph in the graphviz DOT language.
type DOTDrawer struct {
	graph    graph.Graph[string, *model.StepInfo]
	store    store.StepStore
	fileName string
	wrt      io.Writer
}

// NewDOTDrawer creates a drawer writing to fileName.
func NewDOTDrawer(fileName string) *DOTDrawer {
	d := newDOTDrawer()
	d.fileName = fileName

	return d
}

// NewDOTDrawerTo creates a drawer writing to wrt.
func NewDOTDrawerTo(wrt io.Writer) *DOTDrawer {
	d := newDOTDrawer()
	d.wrt = wrt

	return d
}

func newDOTDrawer() *DOTDrawer {
	stepStore := store.NewMemoryStore()

	return &DOTDrawer{
		store: stepStore,
		graph: graph.NewWithStore(store.StepHash, stepStore, graph.Directed(), graph.PreventCycles()),
	}
}

var kindAttributes = map[model.StepKind]map[string]string{
	model.StartStepKind: {"shape": "circle"},
	model.EndStepKind:   {"shape": "doublecircle"},
	model.InitStepKind:  {"shape": "box"},
	model.ThenStepKind:  {"shape": "box"},
	model.CatchStepKind: {"shape": "octagon", "color": "red"},
}

var linkAttributes = map[LinkKind]map[string]string{
	NormalLink:   {},
	ErrorLink:    {"style": "dashed", "color": "red"},
	RecoveryLink: {"color": "darkgreen"},
}

// AddStep adds a step to the pipeline graph.
func (d *DOTDrawer) AddStep(step *model.StepInfo) error {
	options := make([]func(*graph.VertexProperties), 0, len(kindAttributes[step.Kind]))
	for k, v := range kindAttributes[step.Kind] {
		options = append(options, graph.VertexAttribute(k, v))
	}

	err := d.graph.AddVertex(step, options...)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", step.Name)
	}

	return nil
}

// AddLink adds a link between parent and child steps.
func (d *DOTDrawer) AddLink(parentName, childName string, kind LinkKind) error {
	options := make([]func(*graph.EdgeProperties), 0, len(linkAttributes[kind]))
	for k, v := range linkAttributes[kind] {
		options = append(options, graph.EdgeAttribute(k, v))
	}

	err := d.graph.AddEdge(parentName, childName, options...)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// Draw writes the pipeline graph.
func (d *DOTDrawer) Draw() error {
	if d.wrt != nil {
		return d.dot(d.wrt)
	}

	file, err := os.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}
	defer file.Close()

	err = d.dot(file)
	if err != nil {
		return errors.Wrapf(err, "unable to write dot file %s", d.fileName)
	}

	return nil
}

const maxRGB = 240

// AddMeasure adds measure to drawer. Links are coloured from blue to red by
// their average await time.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	allAwaitElapsed := make(map[time.Duration]string)
	sortedAllAwaitElapsed := []time.Duration{}

	for _, step := range msr.AllMetrics() {
		for _, info := range step.AVGAwaitDuration() {
			if info.Elapsed == 0 {
				continue
			}

			if _, ok := allAwaitElapsed[info.Elapsed]; ok {
				continue
			}

			allAwaitElapsed[info.Elapsed] = ""

			sortedAllAwaitElapsed = append(sortedAllAwaitElapsed, info.Elapsed)
		}
	}

	sort.Slice(sortedAllAwaitElapsed, func(i, j int) bool {
		return sortedAllAwaitElapsed[i] > sortedAllAwaitElapsed[j]
	})

	if len(sortedAllAwaitElapsed) > 0 {
		maxValue := sortedAllAwaitElapsed[0]
		minValue := sortedAllAwaitElapsed[len(sortedAllAwaitElapsed)-1]

		for curr := range allAwaitElapsed {
			fraction := 1.0
			if maxValue > minValue {
				fraction = float64(curr-minValue) / float64(maxValue-minValue)
			}

			red := maxRGB * fraction
			blue := maxRGB - red

			color, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
			if err != nil {
				return errors.Wrap(err, "unable to get colour")
			}

			allAwaitElapsed[curr] = color.ToHEX().String()
		}
	}

	err := d.updateMetrics(msr, allAwaitElapsed)
	if err != nil {
		return errors.Wrap(err, "unable to update metrics")
	}

	return nil
}

func (d *DOTDrawer) updateMetrics(msr measure.Measure, allAwaitElapsed map[time.Duration]string) error {
	for name, step := range msr.AllMetrics() {
		err := d.store.UpdateVertex(name, graph.VertexAttribute("xlabel", metricLabel(step)))
		if errors.Is(err, graph.ErrVertexNotFound) {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "unable to update vertex")
		}

		for parentStep, info := range step.AVGAwaitDuration() {
			if info.Elapsed == 0 {
				continue
			}

			err := d.graph.UpdateEdge(parentStep, name,
				graph.EdgeAttribute("label", info.Elapsed.String()),
				graph.EdgeAttribute("fontcolor", "blue"),
				graph.EdgeAttribute("color", allAwaitElapsed[info.Elapsed]), //nolint
			)
			if errors.Is(err, graph.ErrEdgeNotFound) {
				continue
			}
			if err != nil {
				return errors.Wrap(err, "unable to update edge")
			}
		}
	}

	return nil
}

func metricLabel(mt measure.Metric) string {
	parts := []string{}
	if avg := mt.AVGDuration(); avg != 0 {
		parts = append(parts, "avg "+avg.String())
	}
	if total := mt.Total(); total > 0 {
		parts = append(parts, fmt.Sprintf("%d runs", total))
	}
	if failures := mt.Failures(); failures > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failures))
	}
	if skips := mt.Skips(); skips > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skips))
	}

	return strings.Join(parts, ", ")
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func (d *DOTDrawer) dot(wrt io.Writer, options ...func(*description)) error {
	desc, err := d.generateDOT(options...)
	if err != nil {
		return errors.Wrap(err, "unable to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the [DOT] method.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

// generateDOT walks the vertices in registration order so that the output is stable.
func (d *DOTDrawer) generateDOT(options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if d.graph.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	vertices, err := d.store.ListVertices()
	if err != nil {
		return desc, errors.Wrap(err, "unable to list vertices")
	}

	position := make(map[string]int, len(vertices))
	for i, vertex := range vertices {
		position[vertex] = i
	}

	adjacencyMap, err := d.graph.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for _, vertex := range vertices {
		_, sourceProperties, err := d.graph.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)
		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))

		for k, v := range sourceProperties.Attributes {
			sourceAttributes[k] = v
		}

		if xlabel, ok := sourceAttributes["xlabel"]; ok {
			if xlabel != "" {
				htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)
			}

			delete(sourceAttributes, "xlabel")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		targets := make([]string, 0, len(adjacencyMap[vertex]))
		for target := range adjacencyMap[vertex] {
			targets = append(targets, target)
		}
		sort.Slice(targets, func(i, j int) bool {
			return position[targets[i]] < position[targets[j]]
		})

		for _, target := range targets {
			edge := adjacencyMap[vertex][target]
			stmt := statement{
				Source:         vertex,
				Target:         target,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
