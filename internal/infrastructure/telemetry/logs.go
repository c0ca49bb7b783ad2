package telemetry

import (
	"context"
	"fmt"

	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerProvider exports zap records as OTLP logs
type LoggerProvider struct {
	provider *sdklog.LoggerProvider
	minLevel zapcore.Level
}

// NewLoggerProvider ships logs at or above minLevel to the collector when
// telemetry is enabled
func NewLoggerProvider(ctx context.Context, cfg config.TelemetryConfig, minLevel zapcore.Level) (*LoggerProvider, error) {
	if !cfg.Enabled {
		return &LoggerProvider{minLevel: minLevel}, nil
	}

	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp log exporter: %w", err)
	}
	return newLoggerProvider(cfg.ServiceName, sdklog.NewBatchProcessor(exporter), minLevel)
}

func newLoggerProvider(serviceName string, processor sdklog.Processor, minLevel zapcore.Level) (*LoggerProvider, error) {
	res, err := serviceResource(serviceName)
	if err != nil {
		return nil, err
	}
	provider := sdklog.NewLoggerProvider(sdklog.WithResource(res), sdklog.WithProcessor(processor))
	return &LoggerProvider{provider: provider, minLevel: minLevel}, nil
}

// Bridge returns base teed into the OTLP pipeline. With export disabled
// base is returned unchanged.
func (lp *LoggerProvider) Bridge(base *zap.Logger) *zap.Logger {
	if lp.provider == nil {
		return base
	}
	otelCore := &minLevelCore{
		Core:  otelzap.NewCore(TracerName, otelzap.WithLoggerProvider(lp.provider)),
		level: lp.minLevel,
	}
	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, otelCore)
	}))
}

// Enabled reports whether logs are exported
func (lp *LoggerProvider) Enabled() bool {
	return lp.provider != nil
}

// Shutdown flushes pending records
func (lp *LoggerProvider) Shutdown(ctx context.Context) error {
	if lp.provider == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := lp.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown logger provider: %w", err)
	}
	return nil
}

// minLevelCore drops entries below level before they reach the exporter
type minLevelCore struct {
	zapcore.Core
	level zapcore.Level
}

func (c *minLevelCore) Enabled(lvl zapcore.Level) bool {
	return lvl >= c.level && c.Core.Enabled(lvl)
}

func (c *minLevelCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(entry.Level) {
		return ce
	}
	return c.Core.Check(entry, ce)
}

func (c *minLevelCore) With(fields []zapcore.Field) zapcore.Core {
	return &minLevelCore{Core: c.Core.With(fields), level: c.level}
}
