package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

// recordSpans installs an always-sampling provider backed by a recorder and
// restores the previous global provider when the test ends
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	prev := otel.GetTracerProvider()
	rec := tracetest.NewSpanRecorder()
	tp, err := newTracerProvider(config.TelemetryConfig{ServiceName: "procurement-test", SamplingRatio: 1}, sdktrace.WithSpanProcessor(rec), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return rec
}

// manualMeter returns a meter whose data is read on demand
func manualMeter(t *testing.T) (*MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()
	prev := otel.GetMeterProvider()
	reader := sdkmetric.NewManualReader()
	mp, err := newMeterProvider("procurement-test", reader, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = mp.Shutdown(context.Background())
		otel.SetMeterProvider(prev)
	})
	return mp, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

// sumWhere adds the int64 sum points whose attribute key equals value
func sumWhere(data metricdata.Aggregation, key attribute.Key, value string) int64 {
	sum, ok := data.(metricdata.Sum[int64])
	if !ok {
		return 0
	}
	var total int64
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(key); ok && v.AsString() == value {
			total += dp.Value
		}
	}
	return total
}

func gaugeWhere(data metricdata.Aggregation, key attribute.Key, value string) (int64, bool) {
	gauge, ok := data.(metricdata.Gauge[int64])
	if !ok {
		return 0, false
	}
	for _, dp := range gauge.DataPoints {
		if v, ok := dp.Attributes.Value(key); ok && v.AsString() == value {
			return dp.Value, true
		}
	}
	return 0, false
}
