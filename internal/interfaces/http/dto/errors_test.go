package dto

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeTokenRevoked, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConcurrencyConflict, http.StatusConflict},
		{ErrCodeInvalidState, http.StatusConflict},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestGetHTTPStatus_DomainErrors(t *testing.T) {
	tests := []struct {
		err      *shared.DomainError
		expected int
	}{
		{procurement.ErrApprovalNotFound, http.StatusNotFound},
		{procurement.ErrPurchaseOrderNotFound, http.StatusNotFound},
		{identity.ErrUserNotFound, http.StatusNotFound},
		{partner.ErrSupplierNotFound, http.StatusNotFound},
		{procurement.ErrNotAssignedApprover, http.StatusForbidden},
		{procurement.ErrNotOwner, http.StatusForbidden},
		{procurement.ErrApprovalAlreadyProcessed, http.StatusConflict},
		{procurement.ErrPurchaseOrderNotPending, http.StatusConflict},
		{procurement.ErrApprovalLevelNotActive, http.StatusConflict},
		{procurement.ErrPurchaseOrderNotEditable, http.StatusConflict},
		{procurement.ErrValidation, http.StatusBadRequest},
		{identity.ErrEmailExists, http.StatusConflict},
		{partner.ErrSupplierInactive, http.StatusUnprocessableEntity},
		{shared.ErrInvalidState, http.StatusConflict},
		{shared.NewDomainError("INVALID_APPROVAL_LIMIT", "negative"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.Code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(NormalizeErrorCode(tt.err.Code)))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeValidation, NormalizeErrorCode("VALIDATION_ERROR"))
	assert.Equal(t, ErrCodeInvalidState, NormalizeErrorCode("INVALID_STATE"))
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound))
	assert.Equal(t, "APPROVAL_ALREADY_PROCESSED", NormalizeErrorCode("APPROVAL_ALREADY_PROCESSED"))
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	before := time.Now().UTC()
	resp := NewErrorResponseWithRequestID("NOT_FOUND", "Purchase order not found", "req-123")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)
	assert.False(t, resp.Error.Timestamp.Before(before))

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "data")
	assert.Equal(t, "req-123", decoded["error"].(map[string]any)["request_id"])
}

func TestNewValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse("Request validation failed", "req-1", []ValidationDetail{
		{Field: "decision", Message: "Must be one of: APPROVED REJECTED"},
	})

	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "decision", resp.Error.Details[0].Field)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	tests := []struct {
		total         int64
		pageSize      int
		expectedPages int
		expectedSize  int
	}{
		{100, 10, 10, 10},
		{101, 10, 11, 10},
		{0, 10, 0, 10},
		{100, 0, 5, 20},
		{100, -1, 5, 20},
	}

	for _, tt := range tests {
		resp := NewSuccessResponseWithMeta(nil, tt.total, 1, tt.pageSize)
		assert.Equal(t, tt.expectedPages, resp.Meta.TotalPages)
		assert.Equal(t, tt.expectedSize, resp.Meta.PageSize)
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse(shared.NewPaginated[string](nil, 0, 1, 20))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{}, resp.Data)
	assert.Equal(t, 20, resp.Meta.PageSize)

	resp = NewPageResponse(shared.NewPaginated([]string{"a", "b"}, 5, 2, 2))
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Equal(t, int64(5), resp.Meta.Total)
}
