package pipeline

import (
	"go.uber.org/zap"

	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

// Option configures a materialised flow.
type Option func(c *config)

type config struct {
	scheduler Scheduler
	logger    *zap.Logger
	hooks     []model.PipelineOption
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		scheduler: GoScheduler{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithScheduler sets the scheduler running the calls. Defaults to GoScheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *config) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPipelineOptions registers hooks observing the flow.
func WithPipelineOptions(opts ...model.PipelineOption) Option {
	return func(c *config) {
		c.hooks = append(c.hooks, opts...)
	}
}

// StepOption configures a step when it is registered.
type StepOption func(s *model.StepInfo)

// StepName overrides the default name of a step.
func StepName(name string) StepOption {
	return func(s *model.StepInfo) {
		if name != "" {
			s.Name = name
		}
	}
}
