// Package observability adapts the axfor-aproxy proxy's zap-based logger
// and Prometheus metrics (pkg/observability/{logger,metrics}.go) from
// per-client-session proxy events to per-query connector events.
package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with the connector's query/connection/error
// event shapes.
type Logger struct {
	*zap.Logger
	redactParams bool
}

// NewLogger builds a Logger at the given level ("debug"/"info"/"warn"/
// "error") and format ("json"/"console").
func NewLogger(level, format string, redactParams bool) (*Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{Logger: logger, redactParams: redactParams}, nil
}

// LogQuery records one executed statement. When redactParams is set, SQL
// text longer than 100 characters is cut to its first 100 followed by
// "... [REDACTED]", and shorter text is replaced by "[REDACTED]".
func (l *Logger) LogQuery(dialect, sql string, duration float64, rowsAffected int64, err error) {
	if l.redactParams {
		sql = l.redactSQL(sql)
	}

	fields := []zap.Field{
		zap.String("dialect", dialect),
		zap.String("sql", sql),
		zap.Float64("duration_seconds", duration),
		zap.Int64("rows_affected", rowsAffected),
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		l.Error("query_error", fields...)
	} else {
		l.Info("query_executed", fields...)
	}
}

// LogConnection records a connector being opened or closed.
func (l *Logger) LogConnection(dialect, dsn string, opened bool) {
	if opened {
		l.Info("connector_opened", zap.String("dialect", dialect), zap.String("target", dsn))
	} else {
		l.Info("connector_closed", zap.String("dialect", dialect), zap.String("target", dsn))
	}
}

// LogTransaction records a transaction boundary event (begin/commit/rollback).
func (l *Logger) LogTransaction(dialect, event string, err error) {
	fields := []zap.Field{
		zap.String("dialect", dialect),
		zap.String("event", event),
	}
	if err != nil {
		l.Error("transaction_error", append(fields, zap.Error(err))...)
		return
	}
	l.Info("transaction_"+event, fields...)
}

func (l *Logger) redactSQL(sql string) string {
	if len(sql) > 100 {
		return sql[:100] + "... [REDACTED]"
	}
	return "[REDACTED]"
}
