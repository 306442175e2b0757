package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "stripprefix"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	phaseDuration    *prom.HistogramVec
	buildDuration    prom.Histogram
	phaseResults     *prom.CounterVec
	pathsStripped    prom.Counter
	collisions       prom.Counter
	linksRewritten   prom.Counter
	navTitlesStriped prom.Counter
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		phaseDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Duration of individual plugin phases",
			Buckets:   prom.DefBuckets,
		}, []string{"phase"}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Total build pass duration",
			Buckets:   prom.DefBuckets,
		}),
		phaseResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "phase_results_total",
			Help:      "Phase result counts by outcome",
		}, []string{"phase", "result"}),
		pathsStripped: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "paths_stripped_total",
			Help:      "Files whose output path and URL had a number prefix removed",
		}),
		collisions: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "destination_collisions_total",
			Help:      "Files left unchanged because their stripped destination was already claimed",
		}),
		linksRewritten: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "links_rewritten_total",
			Help:      "Markdown link targets rewritten to their stripped form",
		}),
		navTitlesStriped: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "nav_titles_stripped_total",
			Help:      "Navigation titles rewritten to their display form",
		}),
	}
	reg.MustRegister(pr.phaseDuration, pr.buildDuration, pr.phaseResults,
		pr.pathsStripped, pr.collisions, pr.linksRewritten, pr.navTitlesStriped)
	return pr
}

func (p *PrometheusRecorder) ObservePhaseDuration(phase string, d time.Duration) {
	if p == nil {
		return
	}
	p.phaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPhaseResult(phase string, result ResultLabel) {
	if p == nil {
		return
	}
	p.phaseResults.WithLabelValues(phase, string(result)).Inc()
}

func (p *PrometheusRecorder) AddPathsStripped(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.pathsStripped.Add(float64(n))
}

func (p *PrometheusRecorder) AddCollisions(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.collisions.Add(float64(n))
}

func (p *PrometheusRecorder) AddLinksRewritten(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.linksRewritten.Add(float64(n))
}

func (p *PrometheusRecorder) AddNavTitlesStripped(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.navTitlesStriped.Add(float64(n))
}
