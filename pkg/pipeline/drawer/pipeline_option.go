package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-flowpipe/pkg/pipeline/measure"
	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m measure.Measure
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStep(model.StartStep)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = pd.AddStep(model.EndStep)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareStep(parentSteps []*model.StepInfo, step *model.StepInfo) error {
	if step.Kind != model.EndStepKind {
		err := pd.AddStep(step)
		if err != nil {
			return err
		}
	}

	for _, parentStep := range parentSteps {
		err := pd.AddLink(parentStep.Name, step.Name, linkKind(parentStep, step))
		if err != nil {
			return err
		}
	}

	return nil
}

func linkKind(parentStep, step *model.StepInfo) LinkKind {
	switch {
	case step.IsCatch():
		return ErrorLink
	case parentStep.IsCatch():
		return RecoveryLink
	default:
		return NormalLink
	}
}

func (pd *pipelineDrawer) Finish() error {
	if pd.m != nil {
		err := pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

func (pd *pipelineDrawer) OnStepOutput(_ *model.CallInfo, _, _ *model.StepInfo, _, _ time.Duration, _ error) error {
	return nil
}

func (pd *pipelineDrawer) OnStepSkipped(_ *model.CallInfo, _ *model.StepInfo) error {
	return nil
}

func (pd *pipelineDrawer) AfterCall(_ *model.CallInfo, _ *model.StepInfo, _ time.Duration, _ error) error {
	return nil
}

// PipelineDrawer draws the steps of a flow when the flow is closed. When measure is set,
// the drawing includes the timings it recorded.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{drawer, measure}
}
