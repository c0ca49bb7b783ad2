package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultSlowQueryThreshold = 200 * time.Millisecond
	poolStatsInterval         = 15 * time.Second
	startedAtKey              = "telemetry:started_at"
)

// DBInstrumentation records query spans, query latency and connection pool
// usage for one gorm.DB
type DBInstrumentation struct {
	logger        *zap.Logger
	slowThreshold time.Duration
	sqlDB         *sql.DB

	queries  *Counter
	slow     *Counter
	duration *Histogram
	pool     *Gauge

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// InstrumentDB installs otelgorm spans (when tracing and DBTraceEnabled are
// on) and query metrics on db
func InstrumentDB(db *gorm.DB, meter metric.Meter, cfg config.TelemetryConfig, logger *zap.Logger) (*DBInstrumentation, error) {
	if cfg.Enabled && cfg.DBTraceEnabled {
		var opts []otelgorm.Option
		if !cfg.DBLogFullSQL {
			opts = append(opts, otelgorm.WithoutQueryVariables())
		}
		if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
			return nil, fmt.Errorf("register otelgorm: %w", err)
		}
	}

	threshold := cfg.DBSlowQueryThresh
	if threshold <= 0 {
		threshold = defaultSlowQueryThreshold
	}
	inst := &DBInstrumentation{
		logger:        logger,
		slowThreshold: threshold,
		stop:          make(chan struct{}),
	}

	var err error
	if inst.queries, err = NewCounter(meter, "db_queries_total", "Database statements executed", "{queries}"); err != nil {
		return nil, err
	}
	if inst.slow, err = NewCounter(meter, "db_slow_queries_total", "Database statements slower than the threshold", "{queries}"); err != nil {
		return nil, err
	}
	if inst.duration, err = NewHistogram(meter, HistogramOpts{
		Name:        "db_query_duration_seconds",
		Description: "Database statement latency",
		Unit:        "s",
		Boundaries:  LatencyBuckets,
	}); err != nil {
		return nil, err
	}
	if inst.pool, err = NewGauge(meter, "db_pool_connections", "Connections per pool state", "{connections}"); err != nil {
		return nil, err
	}

	if err := inst.registerCallbacks(db); err != nil {
		return nil, fmt.Errorf("register db metrics callbacks: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		inst.sqlDB = sqlDB
	}
	return inst, nil
}

func (i *DBInstrumentation) registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Create().Before("gorm:create").Register("telemetry:before_create", markStart),
		cb.Create().After("gorm:create").Register("telemetry:after_create", i.finish("INSERT")),
		cb.Query().Before("gorm:query").Register("telemetry:before_query", markStart),
		cb.Query().After("gorm:query").Register("telemetry:after_query", i.finish("SELECT")),
		cb.Update().Before("gorm:update").Register("telemetry:before_update", markStart),
		cb.Update().After("gorm:update").Register("telemetry:after_update", i.finish("UPDATE")),
		cb.Delete().Before("gorm:delete").Register("telemetry:before_delete", markStart),
		cb.Delete().After("gorm:delete").Register("telemetry:after_delete", i.finish("DELETE")),
		cb.Row().Before("gorm:row").Register("telemetry:before_row", markStart),
		cb.Row().After("gorm:row").Register("telemetry:after_row", i.finish("")),
		cb.Raw().Before("gorm:raw").Register("telemetry:before_raw", markStart),
		cb.Raw().After("gorm:raw").Register("telemetry:after_raw", i.finish("")),
	)
}

func markStart(db *gorm.DB) {
	db.InstanceSet(startedAtKey, time.Now())
}

// finish records one statement. An empty operation is read from the SQL.
func (i *DBInstrumentation) finish(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		started, ok := db.InstanceGet(startedAtKey)
		if !ok {
			return
		}
		elapsed := time.Since(started.(time.Time))

		ctx := db.Statement.Context
		if ctx == nil {
			ctx = context.Background()
		}
		op := operation
		if op == "" {
			op = statementOperation(db.Statement.SQL.String())
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}

		i.queries.Inc(ctx, AttrDBOperation.String(op))
		i.duration.RecordDuration(ctx, elapsed, AttrDBOperation.String(op))
		if elapsed <= i.slowThreshold {
			return
		}

		i.slow.Inc(ctx, AttrDBTable.String(table))
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.SetAttributes(attribute.Bool("db.slow_query", true))
		}
		i.logger.Warn("Slow query",
			zap.String("operation", op),
			zap.String("table", table),
			zap.Duration("elapsed", elapsed),
			zap.Duration("threshold", i.slowThreshold),
		)
	}
}

func statementOperation(sqlText string) string {
	fields := strings.Fields(sqlText)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	switch op := strings.ToUpper(fields[0]); op {
	case "SELECT", "INSERT", "UPDATE", "DELETE":
		return op
	case "WITH":
		return "SELECT"
	default:
		return "OTHER"
	}
}

// StartPoolStats samples connection pool usage until Stop or ctx is done
func (i *DBInstrumentation) StartPoolStats(ctx context.Context) {
	if i.sqlDB == nil {
		return
	}
	i.wg.Add(1)
	go func() {
		defer i.wg.Done()
		ticker := time.NewTicker(poolStatsInterval)
		defer ticker.Stop()
		for {
			i.recordPoolStats(ctx)
			select {
			case <-i.stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (i *DBInstrumentation) recordPoolStats(ctx context.Context) {
	stats := i.sqlDB.Stats()
	i.pool.Record(ctx, int64(stats.Idle), AttrDBState.String("idle"))
	i.pool.Record(ctx, int64(stats.InUse), AttrDBState.String("in_use"))
	i.pool.Record(ctx, int64(stats.MaxOpenConnections), AttrDBState.String("max"))
}

// Stop ends pool sampling. Safe to call more than once.
func (i *DBInstrumentation) Stop() {
	i.stopOnce.Do(func() {
		close(i.stop)
		i.wg.Wait()
	})
}
