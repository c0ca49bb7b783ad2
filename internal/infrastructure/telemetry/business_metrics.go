// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics provides business metrics for the procurement workflow.
// It tracks order creation, approval decisions, notifications and the size
// of the approval backlog.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	orderCreatedTotal  *Counter
	orderAmountTotal   *Counter
	orderSubmitted     *Counter
	orderFinalized     *Counter
	approvalDecisions  *Counter
	notificationsTotal *Counter

	// Gauge metrics (point-in-time values)
	ordersByStatus *Gauge

	// Histogram metrics
	chainLength *Histogram

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	workflowProvider WorkflowMetricsProvider
}

// WorkflowMetricsProvider supplies workflow state for periodic gauge
// collection without tying telemetry to the procurement domain.
type WorkflowMetricsProvider interface {
	// CountOrdersByStatus returns the number of purchase orders per status
	CountOrdersByStatus(ctx context.Context) (map[string]int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter            metric.Meter
	Logger           *zap.Logger
	CollectInterval  time.Duration // Default: 5 minutes
	WorkflowProvider WorkflowMetricsProvider
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:            cfg.Meter,
		logger:           logger,
		stopChan:         make(chan struct{}),
		workflowProvider: cfg.WorkflowProvider,
	}

	counters := []struct {
		target      **Counter
		name        string
		description string
		unit        string
	}{
		{&bm.orderCreatedTotal, "procurement_po_created_total", "Total number of purchase orders created", "{orders}"},
		{&bm.orderAmountTotal, "procurement_po_amount_total", "Total submitted purchase order amount in cents", "{cents}"},
		{&bm.orderSubmitted, "procurement_po_submitted_total", "Total number of purchase orders submitted for approval", "{orders}"},
		{&bm.orderFinalized, "procurement_po_finalized_total", "Total number of purchase orders reaching a terminal status", "{orders}"},
		{&bm.approvalDecisions, "procurement_approval_decisions_total", "Total number of approval decisions recorded", "{decisions}"},
		{&bm.notificationsTotal, "procurement_notifications_total", "Total number of workflow notifications attempted", "{emails}"},
	}
	for _, c := range counters {
		counter, err := NewCounter(cfg.Meter, c.name, c.description, c.unit)
		if err != nil {
			return nil, err
		}
		*c.target = counter
	}

	var err error
	bm.ordersByStatus, err = NewGauge(
		cfg.Meter,
		"procurement_po_by_status",
		"Current number of purchase orders per status",
		"{orders}",
	)
	if err != nil {
		return nil, err
	}

	bm.chainLength, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "procurement_approval_chain_length",
		Description: "Number of approval levels resolved on submission",
		Unit:        "{levels}",
		Boundaries:  ChainLengthBuckets,
	})
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// =============================================================================
// Order Metrics
// =============================================================================

// RecordOrderCreated records a new draft purchase order.
func (bm *BusinessMetrics) RecordOrderCreated(ctx context.Context) {
	bm.orderCreatedTotal.Inc(ctx)
}

// RecordSubmission records a submitted order, its amount and the number of
// approval levels it was routed through. Zero levels means it was approved
// on submission.
func (bm *BusinessMetrics) RecordSubmission(ctx context.Context, amount decimal.Decimal, levels int) {
	outcome := "routed"
	if levels == 0 {
		outcome = "auto_approved"
	}
	bm.orderSubmitted.Inc(ctx, AttrSubmitOutcome.String(outcome))

	amountCents := amount.Mul(decimal.NewFromInt(100)).IntPart()
	bm.orderAmountTotal.Add(ctx, amountCents)
	bm.chainLength.Record(ctx, float64(levels))
}

// RecordFinalized records an order reaching APPROVED, REJECTED or CANCELLED.
func (bm *BusinessMetrics) RecordFinalized(ctx context.Context, status string) {
	bm.orderFinalized.Inc(ctx, AttrOrderStatus.String(status))
}

// =============================================================================
// Approval Metrics
// =============================================================================

// RecordDecision records one approver's decision at a level.
func (bm *BusinessMetrics) RecordDecision(ctx context.Context, decision string, level int) {
	bm.approvalDecisions.Inc(ctx,
		AttrDecision.String(decision),
		AttrApprovalLevel.Int(level),
	)
}

// =============================================================================
// Notification Metrics
// =============================================================================

// NotificationStatus represents the outcome of a notification for labeling.
type NotificationStatus string

const (
	NotificationStatusSuccess NotificationStatus = "success"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// RecordNotification records an attempted e-mail of the given kind.
func (bm *BusinessMetrics) RecordNotification(ctx context.Context, kind string, status NotificationStatus) {
	bm.notificationsTotal.Inc(ctx,
		AttrNotificationKind.String(kind),
		AttrNotificationStatus.String(string(status)),
	)
}

// RecordOrdersByStatus records the current order count for one status.
func (bm *BusinessMetrics) RecordOrdersByStatus(ctx context.Context, status string, count int64) {
	bm.ordersByStatus.Record(ctx, count, AttrOrderStatus.String(status))
}

// =============================================================================
// Periodic Collection
// =============================================================================

// StartPeriodicCollection starts periodic collection of gauge metrics.
// This is non-blocking - use Stop() to stop collection.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		go bm.runPeriodicCollection(ctx, interval)
	})
}

func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately on start
	bm.collectWorkflowMetrics(ctx)

	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			bm.logger.Info("Context cancelled, stopping periodic business metrics collection")
			return
		case <-ticker.C:
			bm.collectWorkflowMetrics(ctx)
		}
	}
}

func (bm *BusinessMetrics) collectWorkflowMetrics(ctx context.Context) {
	if bm.workflowProvider == nil {
		bm.logger.Debug("No workflow provider configured, skipping workflow metrics collection")
		return
	}

	counts, err := bm.workflowProvider.CountOrdersByStatus(ctx)
	if err != nil {
		bm.logger.Warn("Failed to count purchase orders by status", zap.Error(err))
		return
	}
	for status, count := range counts {
		bm.RecordOrdersByStatus(ctx, status, count)
	}
}

// Stop stops the periodic collection.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}

// =============================================================================
// Attribute Key Constants
// =============================================================================

// Workflow attribute keys not already defined in metrics.go
var (
	AttrSubmitOutcome      = attribute.Key("submit_outcome")
	AttrNotificationKind   = attribute.Key("notification_kind")
	AttrNotificationStatus = attribute.Key("notification_status")
)

// ChainLengthBuckets are bucket boundaries for approval chain lengths.
var ChainLengthBuckets = []float64{0, 1, 2, 3, 4, 6, 8}
