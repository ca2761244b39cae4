package drawer

import (
	"github.com/askiada/go-flowpipe/pkg/pipeline/measure"
	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

// LinkKind tells which control path a link belongs to.
type LinkKind string

const (
	// NormalLink hands a value from a step to the next one.
	NormalLink LinkKind = "normal"
	// ErrorLink hands an error to a catch step.
	ErrorLink LinkKind = "error"
	// RecoveryLink hands the value produced by a catch step back to the normal path.
	RecoveryLink LinkKind = "recovery"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddStep adds a step to the pipeline drawer.
	AddStep(step *model.StepInfo) error
	// AddLink adds a link between parent and child steps.
	AddLink(parentStepName, childStepName string, kind LinkKind) error
	// AddMeasure adds a measure to the pipeline drawer.
	AddMeasure(measure measure.Measure) error
	// Draw writes the pipeline graph.
	Draw() error
}
