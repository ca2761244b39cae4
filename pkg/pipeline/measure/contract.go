package measure

import "time"

// Measure holds the metrics of every step of a flow.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric holds the timings of a single step.
type Metric interface {
	// AddDuration records the time spent in the step handler.
	AddDuration(elapsed time.Duration)
	// AddAwaitDuration records the time spent awaiting the result of the step,
	// keyed by the step whose outcome was consumed.
	AddAwaitDuration(parentStepName string, elapsed time.Duration)
	AddFailure()
	AddSkip()
	AVGDuration() time.Duration
	AVGAwaitDuration() map[string]*AwaitInfo
	AllAwaits() map[string]*AwaitInfo
	Total() int64
	Failures() int64
	Skips() int64
}
