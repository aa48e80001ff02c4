// Package metrics exposes site lifecycle counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ersonp/logitrust/internal/domain/entities"
)

const namespace = "logitrust"

// Recorder implements ports.LifecycleObserver with Prometheus metrics.
type Recorder struct {
	registry  *prometheus.Registry
	submitted *prometheus.CounterVec
	decided   *prometheus.CounterVec
	reviews   prometheus.Counter
	ratings   prometheus.Histogram
}

// NewRecorder creates a recorder with its own registry, including Go
// runtime and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		submitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edit_requests_submitted_total",
			Help:      "Edit requests submitted, by field key.",
		}, []string{"field_key"}),
		decided: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edit_requests_decided_total",
			Help:      "Edit requests decided, by outcome.",
		}, []string{"outcome"}),
		reviews: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_added_total",
			Help:      "Driver reviews added.",
		}),
		ratings: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "review_rating",
			Help:      "Distribution of review ratings.",
			Buckets:   []float64{1, 2, 3, 4, 5},
		}),
	}

	r.registry.MustRegister(
		r.submitted,
		r.decided,
		r.reviews,
		r.ratings,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// RequestSubmitted counts a new edit request.
func (r *Recorder) RequestSubmitted(req entities.EditRequest) {
	r.submitted.WithLabelValues(req.FieldKey).Inc()
}

// RequestDecided counts an approve, reject or hold decision.
func (r *Recorder) RequestDecided(req entities.EditRequest) {
	r.decided.WithLabelValues(string(req.Status)).Inc()
}

// ReviewAdded counts a review and records its rating.
func (r *Recorder) ReviewAdded(review entities.Review) {
	r.reviews.Inc()
	r.ratings.Observe(float64(review.Rating))
}

// TrackPending registers a gauge reporting the current pending queue size.
func (r *Recorder) TrackPending(pending func() int) {
	r.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "edit_requests_pending",
		Help:      "Edit requests awaiting review.",
	}, func() float64 { return float64(pending()) }))
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
