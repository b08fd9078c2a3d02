package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder is the interface connector and pool code depend on, so
// callers who don't want Prometheus can supply Noop instead (SPEC_FULL.md
// §4.9).
type MetricsRecorder interface {
	IncQueries(dialect string)
	ObserveQueryDuration(dialect string, seconds float64)
	IncErrors(dialect, kind string)
	SetPoolSize(dialect string, size float64)
	SetPoolInUse(dialect string, inUse float64)
	IncTransactions(dialect, result string)
}

// Noop discards every observation; the zero value is ready to use.
type Noop struct{}

func (Noop) IncQueries(string)                     {}
func (Noop) ObserveQueryDuration(string, float64)   {}
func (Noop) IncErrors(string, string)               {}
func (Noop) SetPoolSize(string, float64)            {}
func (Noop) SetPoolInUse(string, float64)           {}
func (Noop) IncTransactions(string, string)         {}

// PromMetrics is the Prometheus-backed MetricsRecorder, adapted from the
// proxy's pkg/observability/metrics.go Metrics struct: the same gauge/
// counter/histogram shape, relabeled for a query layer instead of a
// MySQL-wire proxy and given a "dialect" label everywhere the source had
// none, since one process here may hold connectors to more than one
// dialect at once.
type PromMetrics struct {
	QueriesTotal      *prometheus.CounterVec
	QueryDuration     *prometheus.HistogramVec
	ErrorsTotal       *prometheus.CounterVec
	PoolSize          *prometheus.GaugeVec
	PoolInUse         *prometheus.GaugeVec
	TransactionsTotal *prometheus.CounterVec
}

// NewPromMetrics registers the connector's metric family with the default
// Prometheus registry via promauto.
func NewPromMetrics() *PromMetrics {
	return &PromMetrics{
		QueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sqlkit_queries_total",
			Help: "Total number of queries executed, by dialect.",
		}, []string{"dialect"}),
		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sqlkit_query_duration_seconds",
			Help:    "Query execution duration in seconds, by dialect.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}, []string{"dialect"}),
		ErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sqlkit_errors_total",
			Help: "Total number of query errors, by dialect and normalized kind.",
		}, []string{"dialect", "kind"}),
		PoolSize: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sqlkit_pool_size",
			Help: "Configured connector pool size, by dialect.",
		}, []string{"dialect"}),
		PoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sqlkit_pool_in_use",
			Help: "Connector pool members currently checked out, by dialect.",
		}, []string{"dialect"}),
		TransactionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sqlkit_transactions_total",
			Help: "Total number of transactions by dialect and result.",
		}, []string{"dialect", "result"}),
	}
}

func (m *PromMetrics) IncQueries(dialect string) {
	m.QueriesTotal.WithLabelValues(dialect).Inc()
}

func (m *PromMetrics) ObserveQueryDuration(dialect string, seconds float64) {
	m.QueryDuration.WithLabelValues(dialect).Observe(seconds)
}

func (m *PromMetrics) IncErrors(dialect, kind string) {
	m.ErrorsTotal.WithLabelValues(dialect, kind).Inc()
}

func (m *PromMetrics) SetPoolSize(dialect string, size float64) {
	m.PoolSize.WithLabelValues(dialect).Set(size)
}

func (m *PromMetrics) SetPoolInUse(dialect string, inUse float64) {
	m.PoolInUse.WithLabelValues(dialect).Set(inUse)
}

func (m *PromMetrics) IncTransactions(dialect, result string) {
	m.TransactionsTotal.WithLabelValues(dialect, result).Inc()
}
