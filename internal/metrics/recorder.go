package metrics

import "time"

// ResultLabel enumerates phase result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFailed   ResultLabel = "failed"
	ResultSkipped  ResultLabel = "skipped"
	ResultCanceled ResultLabel = "canceled"
)

// Recorder defines observability hooks for a build pass and its phases.
type Recorder interface {
	ObservePhaseDuration(phase string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncPhaseResult(phase string, result ResultLabel)
	AddPathsStripped(n int)
	AddCollisions(n int)
	AddLinksRewritten(n int)
	AddNavTitlesStripped(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObservePhaseDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncPhaseResult(string, ResultLabel)         {}
func (NoopRecorder) AddPathsStripped(int)                       {}
func (NoopRecorder) AddCollisions(int)                          {}
func (NoopRecorder) AddLinksRewritten(int)                      {}
func (NoopRecorder) AddNavTitlesStripped(int)                   {}
