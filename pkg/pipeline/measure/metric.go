package measure

import (
	"sync"
	"time"
)

type AwaitInfo struct {
	Elapsed time.Duration
	total   int64
}

type DefaultMetric struct {
	allAwaits   map[string]*AwaitInfo
	mu          *sync.Mutex
	stepElapsed time.Duration
	total       int64
	failures    int64
	skips       int64
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.total++
	mt.stepElapsed += elapsed
}

func (mt *DefaultMetric) AddAwaitDuration(parentStepName string, elapsed time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.allAwaits[parentStepName] == nil {
		mt.allAwaits[parentStepName] = &AwaitInfo{}
	}
	aw := mt.allAwaits[parentStepName]
	aw.Elapsed += elapsed
	aw.total++
}

func (mt *DefaultMetric) AddFailure() {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.failures++
}

func (mt *DefaultMetric) AddSkip() {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.skips++
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.stepElapsed) / float64(mt.total)))
}

// AVGAwaitDuration returns the average await time per parent step.
func (mt *DefaultMetric) AVGAwaitDuration() map[string]*AwaitInfo {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	avg := make(map[string]*AwaitInfo, len(mt.allAwaits))
	for name, aw := range mt.allAwaits {
		info := &AwaitInfo{total: aw.total}
		if aw.total > 0 {
			info.Elapsed = round(time.Duration(float64(aw.Elapsed) / float64(aw.total)))
		}
		avg[name] = info
	}

	return avg
}

func (mt *DefaultMetric) AllAwaits() map[string]*AwaitInfo {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	all := make(map[string]*AwaitInfo, len(mt.allAwaits))
	for name, aw := range mt.allAwaits {
		all[name] = &AwaitInfo{Elapsed: aw.Elapsed, total: aw.total}
	}

	return all
}

func (mt *DefaultMetric) Total() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.total
}

func (mt *DefaultMetric) Failures() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.failures
}

func (mt *DefaultMetric) Skips() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.skips
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Hour)
	case d > time.Minute:
		d = d.Round(time.Minute)
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

var _ Metric = (*DefaultMetric)(nil)
