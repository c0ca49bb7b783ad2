package telemetry

import (
	"context"
	"fmt"

	"github.com/grafana/pyroscope-go"
	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Profiler streams continuous profiles to Pyroscope
type Profiler struct {
	profiler *pyroscope.Profiler
	logger   *zap.Logger
}

// StartProfiler starts Pyroscope when cfg.ProfilingEnabled is set. The
// environment name is attached as a tag.
func StartProfiler(cfg config.TelemetryConfig, env string, logger *zap.Logger) (*Profiler, error) {
	if !cfg.ProfilingEnabled {
		logger.Info("Profiling disabled")
		return &Profiler{logger: logger}, nil
	}

	p, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: cfg.ServiceName,
		ServerAddress:   cfg.PyroscopeURL,
		Logger:          pyroscopeLogger{logger.Sugar()},
		Tags:            map[string]string{"env": env},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}
	logger.Info("Profiling enabled", zap.String("server", cfg.PyroscopeURL))
	return &Profiler{profiler: p, logger: logger}, nil
}

// Enabled reports whether profiles are streamed
func (p *Profiler) Enabled() bool {
	return p.profiler != nil
}

// Stop flushes and stops profiling
func (p *Profiler) Stop() error {
	if p.profiler == nil {
		return nil
	}
	return p.profiler.Stop()
}

// WithOperationLabels runs fn with the workflow operation attached to its
// profile samples
func WithOperationLabels(ctx context.Context, operation string, fn func(context.Context)) {
	pyroscope.TagWrapper(ctx, pyroscope.Labels("operation", operation), fn)
}

type pyroscopeLogger struct {
	*zap.SugaredLogger
}

func (l pyroscopeLogger) Infof(format string, args ...any)  { l.SugaredLogger.Debugf(format, args...) }
func (l pyroscopeLogger) Debugf(format string, args ...any) { l.SugaredLogger.Debugf(format, args...) }
func (l pyroscopeLogger) Errorf(format string, args ...any) { l.SugaredLogger.Errorf(format, args...) }
