package measure

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

var ErrUnknownStep = errors.New("no metric for step")

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.StartStep.Name)
	pm.AddMetric(model.EndStep.Name)

	return nil
}

func (pm *pipelineMeasure) PrepareStep(_ []*model.StepInfo, step *model.StepInfo) error {
	pm.AddMetric(step.Name)

	return nil
}

func (pm *pipelineMeasure) metric(step *model.StepInfo) (Metric, error) {
	mt := pm.GetMetric(step.Name)
	if mt == nil {
		return nil, errors.Wrap(ErrUnknownStep, step.Name)
	}

	return mt, nil
}

func (pm *pipelineMeasure) OnStepOutput(_ *model.CallInfo, parentStep, step *model.StepInfo, iterationDuration, computationDuration time.Duration, err error) error {
	mt, mErr := pm.metric(step)
	if mErr != nil {
		return mErr
	}

	mt.AddDuration(computationDuration)
	mt.AddAwaitDuration(parentStep.Name, iterationDuration-computationDuration)
	if err != nil {
		mt.AddFailure()
	}

	return nil
}

func (pm *pipelineMeasure) OnStepSkipped(_ *model.CallInfo, step *model.StepInfo) error {
	mt, err := pm.metric(step)
	if err != nil {
		return err
	}

	mt.AddSkip()

	return nil
}

func (pm *pipelineMeasure) AfterCall(_ *model.CallInfo, lastStep *model.StepInfo, totalDuration time.Duration, err error) error {
	mt, mErr := pm.metric(model.EndStep)
	if mErr != nil {
		return mErr
	}

	mt.AddDuration(totalDuration)
	mt.AddAwaitDuration(lastStep.Name, 0)
	if err != nil {
		mt.AddFailure()
	}

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	return nil
}

// PipelineMeasure records the timings of a flow into measure.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
