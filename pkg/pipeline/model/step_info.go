package model

import (
	"time"

	"github.com/google/uuid"
)

// StepKind tags a step with the control path it belongs to.
type StepKind string

const (
	StartStepKind StepKind = "start"
	InitStepKind  StepKind = "init"
	ThenStepKind  StepKind = "then"
	CatchStepKind StepKind = "catch"
	EndStepKind   StepKind = "end"
)

// StepInfo describes a registered step.
type StepInfo struct {
	Kind  StepKind
	Name  string
	Index int
}

// IsCatch reports whether the step only runs while a call is handling an error.
func (s *StepInfo) IsCatch() bool {
	return s.Kind == CatchStepKind
}

var (
	StartStep = &StepInfo{Kind: StartStepKind, Name: "start", Index: -1}
	EndStep   = &StepInfo{Kind: EndStepKind, Name: "end", Index: -1}
)

// CallInfo describes one invocation of a flow.
type CallInfo struct {
	ID        uuid.UUID
	StartedAt time.Time
}

// NewCallInfo creates the description of a new invocation.
func NewCallInfo() *CallInfo {
	return &CallInfo{
		ID:        uuid.New(),
		StartedAt: time.Now(),
	}
}
