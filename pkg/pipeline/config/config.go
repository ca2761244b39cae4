// Package config loads the options of a flow from YAML.
//
//	scheduler:
//	  kind: limited
//	  max_concurrent: 4
//	log:
//	  level: debug
//	measure:
//	  enabled: true
//	drawer:
//	  file: flow.dot
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-flowpipe/pkg/pipeline"
	"github.com/askiada/go-flowpipe/pkg/pipeline/drawer"
	"github.com/askiada/go-flowpipe/pkg/pipeline/measure"
	"github.com/askiada/go-flowpipe/pkg/pipeline/model"
)

var (
	ErrUnknownScheduler = errors.New("unknown scheduler kind")
	ErrMaxConcurrent    = errors.New("max_concurrent must be greater than 0")
	ErrEmptyConfig      = errors.New("config is empty")
)

const (
	GoroutineScheduler = "goroutine"
	InlineScheduler    = "inline"
	LimitedScheduler   = "limited"
)

// Config is the configuration of a flow.
type Config struct {
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
	Measure   MeasureConfig   `yaml:"measure"`
	Drawer    DrawerConfig    `yaml:"drawer"`
}

// SchedulerConfig selects the scheduler running the calls.
type SchedulerConfig struct {
	Kind          string `yaml:"kind"`
	MaxConcurrent int64  `yaml:"max_concurrent"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// MeasureConfig enables step metrics.
type MeasureConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DrawerConfig sets the DOT file the flow is drawn to when closed.
type DrawerConfig struct {
	File string `yaml:"file"`
}

// Setup is what a Config turns into. It is meant for a single flow.
type Setup struct {
	Options []pipeline.Option
	Logger  *zap.Logger
	Measure measure.Measure
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Scheduler: SchedulerConfig{Kind: GoroutineScheduler},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads the configuration from a YAML file.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to open %s", path)
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to parse %s", path)
	}

	return cfg, nil
}

// Parse decodes the configuration from YAML. Unknown fields are rejected.
func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to read config")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Config{}, ErrEmptyConfig
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err = dec.Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to decode config")
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch strings.ToLower(c.Scheduler.Kind) {
	case "", GoroutineScheduler, InlineScheduler:
	case LimitedScheduler:
		if c.Scheduler.MaxConcurrent < 1 {
			return ErrMaxConcurrent
		}
	default:
		return errors.Wrap(ErrUnknownScheduler, c.Scheduler.Kind)
	}

	_, err := zap.ParseAtomicLevel(c.levelOrDefault())
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	return nil
}

func (c Config) levelOrDefault() string {
	if c.Log.Level == "" {
		return "info"
	}

	return c.Log.Level
}

// NewScheduler creates the configured scheduler.
func (c Config) NewScheduler() (pipeline.Scheduler, error) {
	switch strings.ToLower(c.Scheduler.Kind) {
	case "", GoroutineScheduler:
		return pipeline.GoScheduler{}, nil
	case InlineScheduler:
		return pipeline.InlineScheduler{}, nil
	case LimitedScheduler:
		if c.Scheduler.MaxConcurrent < 1 {
			return nil, ErrMaxConcurrent
		}

		return pipeline.NewLimitedScheduler(c.Scheduler.MaxConcurrent), nil
	default:
		return nil, errors.Wrap(ErrUnknownScheduler, c.Scheduler.Kind)
	}
}

// NewLogger creates the configured logger.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.levelOrDefault())
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	zapCfg := zap.NewProductionConfig()
	if c.Log.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build logger")
	}

	return logger, nil
}

// Setup turns the configuration into flow options.
func (c Config) Setup() (*Setup, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	scheduler, err := c.NewScheduler()
	if err != nil {
		return nil, err
	}

	logger, err := c.NewLogger()
	if err != nil {
		return nil, err
	}

	setup := &Setup{
		Logger:  logger,
		Options: []pipeline.Option{pipeline.WithScheduler(scheduler), pipeline.WithLogger(logger)},
	}

	hooks := []model.PipelineOption{}
	if c.Measure.Enabled {
		setup.Measure = measure.NewDefaultMeasure()
		hooks = append(hooks, measure.PipelineMeasure(setup.Measure))
	}

	if c.Drawer.File != "" {
		hooks = append(hooks, drawer.PipelineDrawer(drawer.NewDOTDrawer(c.Drawer.File), setup.Measure))
	}

	if len(hooks) > 0 {
		setup.Options = append(setup.Options, pipeline.WithPipelineOptions(hooks...))
	}

	return setup, nil
}
