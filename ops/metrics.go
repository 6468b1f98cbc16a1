// Package ops provides the store's observability surface (C10): Prometheus
// metrics, a readiness health check, and a bounded in-memory audit log.
package ops

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics registers and exposes query and ledger counters/gauges/histograms
// (§4.8 "custom_metrics": queries executed, cache hits/misses, pool hit
// rate, predictor accuracy, query duration). The query engine does not
// record into it; callers feed it through ObserveQuery and the other
// methods below, and ObserveQuery counts hits and misses under the
// "result" tier only.
type Metrics struct {
	QueriesTotal      prometheus.Counter
	QueryDuration     prometheus.Histogram
	CacheHitsTotal    *prometheus.CounterVec
	CacheMissesTotal  *prometheus.CounterVec
	JoinPoolHitRate   prometheus.Gauge
	PredictorAccuracy prometheus.Gauge
	LedgerBlocksTotal prometheus.Counter
	GraphsActive      prometheus.Gauge
}

// NewMetrics constructs a Metrics registered against reg. Pass
// prometheus.NewRegistry() for an isolated registry in tests, or
// prometheus.DefaultRegisterer in production.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		QueriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "owl2store",
			Name:      "queries_total",
			Help:      "Total number of query.Engine.Execute calls.",
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "owl2store",
			Name:      "query_duration_seconds",
			Help:      "Query execution duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		CacheHitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "owl2store",
			Name:      "cache_hits_total",
			Help:      "Cache hits by tier (aqi, compiled, result).",
		}, []string{"tier"}),
		CacheMissesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "owl2store",
			Name:      "cache_misses_total",
			Help:      "Cache misses by tier (aqi, compiled, result).",
		}, []string{"tier"}),
		JoinPoolHitRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "owl2store",
			Name:      "join_pool_hit_rate",
			Help:      "Most recently observed join-table pool hit rate.",
		}),
		PredictorAccuracy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "owl2store",
			Name:      "predictor_accuracy",
			Help:      "Most recently observed access-pattern predictor accuracy.",
		}),
		LedgerBlocksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "owl2store",
			Name:      "ledger_blocks_total",
			Help:      "Total number of blocks appended to the ledger.",
		}),
		GraphsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "owl2store",
			Name:      "graphs_active",
			Help:      "Number of named graphs currently held by the store.",
		}),
	}

	reg.MustRegister(
		m.QueriesTotal,
		m.QueryDuration,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.JoinPoolHitRate,
		m.PredictorAccuracy,
		m.LedgerBlocksTotal,
		m.GraphsActive,
	)
	return m
}

// ObserveQuery records one query execution's duration and cache outcome.
func (m *Metrics) ObserveQuery(seconds float64, fromCache bool) {
	m.QueriesTotal.Inc()
	m.QueryDuration.Observe(seconds)
	tier := "result"
	if fromCache {
		m.CacheHitsTotal.WithLabelValues(tier).Inc()
	} else {
		m.CacheMissesTotal.WithLabelValues(tier).Inc()
	}
}

// SetJoinPoolHitRate updates the join-pool gauge from a query.JoinPoolStats
// snapshot's HitRate().
func (m *Metrics) SetJoinPoolHitRate(rate float64) { m.JoinPoolHitRate.Set(rate) }

// SetPredictorAccuracy updates the predictor gauge from a
// query.Predictor.Accuracy() snapshot.
func (m *Metrics) SetPredictorAccuracy(accuracy float64) { m.PredictorAccuracy.Set(accuracy) }

// ObserveLedgerAppend increments the ledger block counter.
func (m *Metrics) ObserveLedgerAppend() { m.LedgerBlocksTotal.Inc() }

// SetGraphsActive reports the current number of named graphs in the store.
func (m *Metrics) SetGraphsActive(n int) { m.GraphsActive.Set(float64(n)) }
