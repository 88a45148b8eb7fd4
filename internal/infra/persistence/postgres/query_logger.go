package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"accounts/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger adapts slog to gorm's logger.Interface. Failed statements log
// at error, statements over slowQueryThreshold at warn, and every statement
// at info when debug is on. Record-not-found is an expected outcome of the
// lookup operations and is never logged as a failure.
type queryLogger struct {
	base  *slog.Logger
	level logger.LogLevel
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &queryLogger{base: base, level: level}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < min {
		return
	}

	l.base.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.base.LogAttrs(ctx, slog.LevelError, "Query failed",
			append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))...)
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		l.base.LogAttrs(ctx, slog.LevelWarn, "Slow query",
			append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("threshold", slowQueryThreshold))...)
	case l.level >= logger.Info:
		l.base.LogAttrs(ctx, slog.LevelInfo, "Query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
