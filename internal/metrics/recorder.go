package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Load outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeBadInput    = "bad_input"
	OutcomeRenderError = "render_error"
	OutcomeReadError   = "read_error"
)

// Recorder collects document load metrics on a private registry.
type Recorder struct {
	reg          *prom.Registry
	loads        *prom.CounterVec
	loadDuration prom.Histogram
	headings     prom.Histogram
	storedDocs   prom.Gauge
}

// NewRecorder constructs and registers the metrics. A nil registry gets a
// fresh one.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{
		reg: reg,
		loads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "mdreader",
			Name:      "document_loads_total",
			Help:      "Document loads by outcome",
		}, []string{"outcome"}),
		loadDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "mdreader",
			Name:      "document_load_duration_seconds",
			Help:      "Time to render a document and build its outline",
			Buckets:   prom.DefBuckets,
		}),
		headings: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "mdreader",
			Name:      "document_headings",
			Help:      "Number of headings per loaded document",
			Buckets:   prom.ExponentialBuckets(1, 2, 10),
		}),
		storedDocs: prom.NewGauge(prom.GaugeOpts{
			Namespace: "mdreader",
			Name:      "stored_documents",
			Help:      "Documents currently held in the store",
		}),
	}
	reg.MustRegister(r.loads, r.loadDuration, r.headings, r.storedDocs)
	return r
}

// ObserveLoad records one load attempt. headings is ignored unless the
// outcome is OutcomeOK.
func (r *Recorder) ObserveLoad(outcome string, d time.Duration, headings int) {
	if r == nil {
		return
	}
	r.loads.WithLabelValues(outcome).Inc()
	if outcome != OutcomeOK {
		return
	}
	r.loadDuration.Observe(d.Seconds())
	r.headings.Observe(float64(headings))
}

// SetStoredDocuments updates the stored documents gauge.
func (r *Recorder) SetStoredDocuments(n int) {
	if r == nil {
		return
	}
	r.storedDocs.Set(float64(n))
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
