package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for the saves counter.
const (
	OutcomeCommitted    = "committed"
	OutcomeNoChanges    = "no_changes"
	OutcomeWriteFailed  = "write_failed"
	OutcomeCommitFailed = "commit_failed"
)

// Recorder holds the notebook's Prometheus metrics. A nil Recorder is a
// no-op, so services can be constructed without metrics in tests.
type Recorder struct {
	registry     *prom.Registry
	saves        *prom.CounterVec
	saveDuration prom.Histogram
}

// NewRecorder constructs and registers the notebook metrics on the given
// registry (a fresh one when nil).
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{registry: reg}
	r.saves = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "notebook",
		Name:      "saves_total",
		Help:      "Save requests by outcome",
	}, []string{"outcome"})
	r.saveDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "notebook",
		Name:      "save_duration_seconds",
		Help:      "Duration of the write-then-commit pipeline",
		Buckets:   prom.DefBuckets,
	})
	reg.MustRegister(r.saves, r.saveDuration)
	return r
}

func (r *Recorder) IncSave(outcome string) {
	if r == nil || r.saves == nil {
		return
	}
	r.saves.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveSaveDuration(d time.Duration) {
	if r == nil || r.saveDuration == nil {
		return
	}
	r.saveDuration.Observe(d.Seconds())
}

// HTTPHandler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
