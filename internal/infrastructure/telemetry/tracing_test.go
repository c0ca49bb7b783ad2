package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func TestStartServiceSpan(t *testing.T) {
	rec := recordSpans(t)
	poID := uuid.New()

	ctx, span := StartServiceSpan(context.Background(), "approval", "decide",
		WithAttribute(SpanAttrOrderID, poID),
		WithAttribute(SpanAttrApprovalLevel, 2),
		WithAttribute(SpanAttrDecision, "APPROVED"),
	)
	assert.NotEmpty(t, TraceID(ctx))
	EndSpan(span, nil)

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "approval.decide", ended[0].Name())
	assert.Equal(t, trace.SpanKindInternal, ended[0].SpanKind())
	assert.Contains(t, ended[0].Attributes(), attribute.String(SpanAttrOrderID, poID.String()))
	assert.Contains(t, ended[0].Attributes(), attribute.Int(SpanAttrApprovalLevel, 2))
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
}

func TestEndSpan_RecordsError(t *testing.T) {
	rec := recordSpans(t)

	_, span := StartSpan(context.Background(), "outbox.dispatch", WithSpanKind(trace.SpanKindConsumer))
	EndSpan(span, errors.New("smtp: connection refused"))

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, trace.SpanKindConsumer, ended[0].SpanKind())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "smtp: connection refused", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestTraceID_OutsideSpan(t *testing.T) {
	assert.Empty(t, TraceID(context.Background()))
}

func TestToAttribute(t *testing.T) {
	tests := []struct {
		value any
		want  attribute.KeyValue
	}{
		{"x", attribute.String("k", "x")},
		{3, attribute.Int("k", 3)},
		{int64(4), attribute.Int64("k", 4)},
		{1.5, attribute.Float64("k", 1.5)},
		{true, attribute.Bool("k", true)},
		{[]int{1}, attribute.String("k", "[1]")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toAttribute("k", tt.value))
	}
}

func TestTracerProvider_Disabled(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), config.TelemetryConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, tp.Enabled())
	tp.EnableSpanProfiles()
	assert.NoError(t, tp.Shutdown(context.Background()))
}
