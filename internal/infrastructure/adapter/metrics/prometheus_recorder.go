package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// Recorder exports wallet business metrics to Prometheus
type Recorder struct {
	submitted        *prometheus.CounterVec
	processed        *prometheus.CounterVec
	processedAmount  *prometheus.CounterVec
	conflicts        *prometheus.CounterVec
	ledgerPostings   *prometheus.CounterVec
	ledgerAmount     *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	rateLimitBlocked prometheus.Counter
}

// NewRecorder registers every collector with reg
func NewRecorder(reg prometheus.Registerer, namespace string) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		submitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_submitted_total",
			Help:      "Financial requests submitted, by kind",
		}, []string{"kind"}),
		processed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_processed_total",
			Help:      "Financial requests moved to a terminal status, by kind and status",
		}, []string{"kind", "status"}),
		processedAmount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_processed_amount_minor_total",
			Help:      "Sum of processed request amounts in minor units",
		}, []string{"kind", "status"}),
		conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transition_conflicts_total",
			Help:      "Refused admin decisions, by kind and reason",
		}, []string{"kind", "reason"}),
		ledgerPostings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_postings_total",
			Help:      "Ledger entries written, by type",
		}, []string{"type"}),
		ledgerAmount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_amount_minor_total",
			Help:      "Absolute ledger movement in minor units, by type and direction",
		}, []string{"type", "direction"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route and status code",
		}, []string{"method", "route", "code"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimitBlocked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejections_total",
			Help:      "Requests refused by the submission rate limiter",
		}),
	}
}

// RequestSubmitted counts a new financial request
func (r *Recorder) RequestSubmitted(kind string) {
	r.submitted.WithLabelValues(kind).Inc()
}

// RequestProcessed counts a terminal decision and its amount
func (r *Recorder) RequestProcessed(kind, status string, amount int64) {
	r.processed.WithLabelValues(kind, status).Inc()
	r.processedAmount.WithLabelValues(kind, status).Add(float64(amount))
}

// TransitionConflict counts a refused decision
func (r *Recorder) TransitionConflict(kind, reason string) {
	r.conflicts.WithLabelValues(kind, reason).Inc()
}

// LedgerPosted counts a ledger entry; amount is signed
func (r *Recorder) LedgerPosted(ledgerType string, amount int64) {
	direction := "credit"
	if amount < 0 {
		direction = "debit"
		amount = -amount
	}
	r.ledgerPostings.WithLabelValues(ledgerType).Inc()
	r.ledgerAmount.WithLabelValues(ledgerType, direction).Add(float64(amount))
}

// ObserveHTTP records one served HTTP request
func (r *Recorder) ObserveHTTP(method, route, code string, seconds float64) {
	r.httpRequests.WithLabelValues(method, route, code).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// RateLimited counts a request refused by the rate limiter
func (r *Recorder) RateLimited() {
	r.rateLimitBlocked.Inc()
}

// NoopRecorder discards every measurement; used when metrics are disabled
type NoopRecorder struct{}

func (NoopRecorder) RequestSubmitted(string) {}
func (NoopRecorder) RequestProcessed(string, string, int64) {}
func (NoopRecorder) TransitionConflict(string, string) {}
func (NoopRecorder) LedgerPosted(string, int64) {}
func (NoopRecorder) ObserveHTTP(string, string, string, float64) {}
func (NoopRecorder) RateLimited() {}

var (
	_ coreport.MetricsRecorder = (*Recorder)(nil)
	_ coreport.MetricsRecorder = NoopRecorder{}
)
