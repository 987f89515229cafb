package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormLogger routes gorm's logging through zap and feeds every traced
// statement into queryStats.
type gormLogger struct {
	level gormlogger.LogLevel
	stats *queryStats
}

var _ gormlogger.Interface = (*gormLogger)(nil)

func newGormLogger(level gormlogger.LogLevel, stats *queryStats) *gormLogger {
	return &gormLogger{level: level, stats: stats}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.stats.log.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.stats.log.Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.stats.log.Error(fmt.Sprintf(msg, args...))
	}
}

// Trace runs for every statement regardless of level so the counters stay
// complete. A missing row is a lookup result, not a failed query.
func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	duration := time.Since(begin)
	sql, rows := fc()
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	slow := l.stats.record(sql, duration, failed)

	switch {
	case failed && l.level >= gormlogger.Warn:
		l.stats.log.Warn("query failed",
			zap.Error(err),
			zap.String("sql", truncateSQL(sql, 200)),
		)
	case !slow && l.level >= gormlogger.Info:
		l.stats.log.Debug("query executed",
			zap.Duration("duration", duration),
			zap.String("sql", truncateSQL(sql, 200)),
			zap.Int64("rows", rows),
		)
	}
}
