package database

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agrix/agrix/internal/pkg/metrics"
)

const slowQueryThreshold = metrics.SlowQueryThreshold

// QueryMetrics holds counters collected from executed queries
type QueryMetrics struct {
	TotalQueries    int64 `json:"total_queries"`
	SlowQueries     int64 `json:"slow_queries"`
	FailedQueries   int64 `json:"failed_queries"`
	TotalDurationMs int64 `json:"total_duration_ms"`
}

// queryStats accumulates QueryMetrics for one backend and mirrors every
// query into the Prometheus collectors.
type queryStats struct {
	database string
	log      *zap.Logger

	mu sync.Mutex
	m  QueryMetrics
}

func newQueryStats(database string, log *zap.Logger) *queryStats {
	return &queryStats{database: database, log: log}
}

// record counts one finished query and reports whether it was slow
func (s *queryStats) record(sql string, duration time.Duration, failed bool) bool {
	operation := queryOperation(sql)
	slow := duration > slowQueryThreshold

	s.mu.Lock()
	s.m.TotalQueries++
	s.m.TotalDurationMs += duration.Milliseconds()
	if failed {
		s.m.FailedQueries++
	}
	if slow {
		s.m.SlowQueries++
	}
	s.mu.Unlock()

	metrics.RecordDBQuery(s.database, operation, duration, failed)

	if slow {
		s.log.Warn("slow query detected",
			zap.String("operation", operation),
			zap.Int64("duration_ms", duration.Milliseconds()),
			zap.String("sql", truncateSQL(sql, 200)),
		)
	}
	return slow
}

func (s *queryStats) snapshot() QueryMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m
}

// queryOperation returns the leading SQL keyword in lower case, e.g. "select"
func queryOperation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

func truncateSQL(sql string, maxLen int) string {
	if len(sql) <= maxLen {
		return sql
	}
	return sql[:maxLen] + "..."
}
