package printing

import (
	"bytes"
	"context"

	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
)

// RenderError represents an error during PDF rendering
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for rendering failures
const (
	ErrCodeRenderTimeout    = "RENDER_TIMEOUT"
	ErrCodeRenderFailed     = "RENDER_FAILED"
	ErrCodeInvalidDocument  = "INVALID_DOCUMENT"
	ErrCodeTemplateFailed   = "TEMPLATE_FAILED"
	ErrCodePrintingDisabled = "PRINTING_DISABLED"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// DisabledRenderer is wired when printing is switched off. Every render
// fails, so dispatch logs the failure and the order keeps its state.
type DisabledRenderer struct{}

var _ procurementapp.DocumentRenderer = DisabledRenderer{}

func (DisabledRenderer) RenderPurchaseOrder(context.Context, *procurementapp.PurchaseOrderDocument) ([]byte, error) {
	return nil, NewRenderError(ErrCodePrintingDisabled, "PDF printing is disabled", nil)
}

// estimatePageCount counts page objects in a PDF
func estimatePageCount(pdfData []byte) int {
	// every "/Type /Pages" also matches "/Type /Page"
	count := bytes.Count(pdfData, []byte("/Type /Page")) - bytes.Count(pdfData, []byte("/Type /Pages"))
	return max(count, 1)
}
