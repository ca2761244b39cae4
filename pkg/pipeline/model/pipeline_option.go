package model

import "time"

//go:generate mockgen -source=pipeline_option.go -destination=pipeline_option_mock.go -package=model

// PipelineOption defines the interface for pipeline options.
//
// Definition hooks run once when a flow is materialised. Call hooks may run concurrently
// for independent calls of the same flow.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	pipelineStepOption
	pipelineCallOption

	// Finish runs when the flow is closed.
	Finish() error
}

// pipelineStepOption defines the interface for step options at the pipeline level.
type pipelineStepOption interface {
	// PrepareStep runs once for every step, in order, and once for the end step.
	// parentSteps are the steps whose outcome can hand control to step.
	PrepareStep(parentSteps []*StepInfo, step *StepInfo) error
	// OnStepOutput runs every time a step settles. parentStep is the step whose outcome
	// the step consumed, iterationDuration includes the time spent awaiting the result.
	OnStepOutput(call *CallInfo, parentStep, step *StepInfo, iterationDuration, computationDuration time.Duration, err error) error
	// OnStepSkipped runs every time a step does not apply to the current state of a call.
	OnStepSkipped(call *CallInfo, step *StepInfo) error
}

// pipelineCallOption defines the interface for call options at the pipeline level.
type pipelineCallOption interface {
	// AfterCall runs once a call has settled.
	AfterCall(call *CallInfo, lastStep *StepInfo, totalDuration time.Duration, err error) error
}
