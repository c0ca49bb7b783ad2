package telemetry

import (
	"context"
	"runtime/pprof"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	"go.uber.org/zap"
)

func TestStartProfiler_Disabled(t *testing.T) {
	p, err := StartProfiler(config.TelemetryConfig{}, "test", zap.NewNop())
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Stop())
}

func TestWithOperationLabels(t *testing.T) {
	var got string
	var ok bool
	WithOperationLabels(context.Background(), "approval.decide", func(ctx context.Context) {
		got, ok = pprof.Label(ctx, "operation")
	})
	require.True(t, ok)
	assert.Equal(t, "approval.decide", got)
}
