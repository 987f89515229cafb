// Package metrics holds the storage collectors shared by the SQLite and
// PostgreSQL backends. It imports nothing from the rest of the module so
// database and middleware can both depend on it.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SlowQueryThreshold is the duration above which a query counts as slow
const SlowQueryThreshold = 100 * time.Millisecond

var dbLabels = []string{"database", "operation"}

var (
	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agrix_db_query_duration_seconds",
			Help:    "Storage query duration in seconds by backend and statement keyword",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		dbLabels,
	)

	dbQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrix_db_queries_total",
			Help: "Storage queries executed by backend and statement keyword",
		},
		dbLabels,
	)

	dbQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrix_db_query_errors_total",
			Help: "Storage queries that returned a driver error",
		},
		dbLabels,
	)

	dbSlowQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrix_db_slow_queries_total",
			Help: "Storage queries slower than 100ms",
		},
		dbLabels,
	)
)

// RecordDBQuery records one finished query on database ("sqlite" or
// "postgres"). failed marks a driver error.
func RecordDBQuery(database, operation string, duration time.Duration, failed bool) {
	dbQueryTotal.WithLabelValues(database, operation).Inc()
	dbQueryDuration.WithLabelValues(database, operation).Observe(duration.Seconds())

	if duration > SlowQueryThreshold {
		dbSlowQueries.WithLabelValues(database, operation).Inc()
	}
	if failed {
		dbQueryErrors.WithLabelValues(database, operation).Inc()
	}
}
