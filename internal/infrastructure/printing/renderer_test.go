package printing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderError(t *testing.T) {
	cause := errors.New("websocket closed")
	err := NewRenderError(ErrCodeRenderFailed, "chromedp execution failed", cause)
	assert.Equal(t, "chromedp execution failed: websocket closed", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "PDF printing is disabled", NewRenderError(ErrCodePrintingDisabled, "PDF printing is disabled", nil).Error())
}

func TestDisabledRenderer(t *testing.T) {
	pdf, err := DisabledRenderer{}.RenderPurchaseOrder(context.Background(), sampleDocument())
	assert.Nil(t, pdf)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodePrintingDisabled, renderErr.Code)
}

func TestEstimatePageCount(t *testing.T) {
	assert.Equal(t, 1, estimatePageCount([]byte("%PDF-1.7")))
	pdf := []byte("<< /Type /Pages /Count 2 >> << /Type /Page >> << /Type /Page >>")
	assert.Equal(t, 2, estimatePageCount(pdf))
}
