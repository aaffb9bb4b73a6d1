package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// ZapGormLogger implements gormlogger.Interface on top of zap.
type ZapGormLogger struct {
	log   *zap.Logger
	level gormlogger.LogLevel
}

func NewZapGormLogger(log *zap.Logger) *ZapGormLogger {
	return &ZapGormLogger{
		log:   log.Named("gorm"),
		level: gormlogger.Warn,
	}
}

// LogMode returns a logger with the updated level.
func (l *ZapGormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	copy := *l
	copy.level = level
	return &copy
}

func (l *ZapGormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	_ = ctx
	if l.level < gormlogger.Info {
		return
	}
	l.log.Info(msg, zap.Any("data", data))
}

func (l *ZapGormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	_ = ctx
	if l.level < gormlogger.Warn {
		return
	}
	l.log.Warn(msg, zap.Any("data", data))
}

func (l *ZapGormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	_ = ctx
	if l.level < gormlogger.Error {
		return
	}
	l.log.Error(msg, zap.Any("data", data))
}

// Trace logs SQL statements with structured fields.
func (l *ZapGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	_ = ctx
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Error("gorm.query", queryFields(sql, rows, elapsed, err)...)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.log.Warn("gorm.query", queryFields(sql, rows, elapsed, nil)...)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.log.Debug("gorm.query", queryFields(sql, rows, elapsed, nil)...)
	}
}

func queryFields(sql string, rows int64, elapsed time.Duration, err error) []zap.Field {
	fields := []zap.Field{
		zap.String("sql", strings.TrimSpace(sql)),
		zap.Int64("duration_ms", elapsed.Milliseconds()),
	}
	if rows >= 0 {
		fields = append(fields, zap.Int64("rows_affected", rows))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}

var _ gormlogger.Interface = (*ZapGormLogger)(nil)
