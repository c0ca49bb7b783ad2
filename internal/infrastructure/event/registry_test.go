package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
)

func TestHandlerRegistry_TypedHandlersPrecedeCatchAll(t *testing.T) {
	r := NewHandlerRegistry()
	catchAll := newRecordingHandler()
	first := newRecordingHandler()
	second := newRecordingHandler()

	r.Register(catchAll)
	r.Register(first, procurement.EventTypeApprovalRequested)
	r.Register(second, procurement.EventTypeApprovalRequested, procurement.EventTypePurchaseOrderApproved)

	handlers := r.GetHandlers(procurement.EventTypeApprovalRequested)
	if assert.Len(t, handlers, 3) {
		assert.Same(t, first, handlers[0])
		assert.Same(t, second, handlers[1])
		assert.Same(t, catchAll, handlers[2])
	}
	assert.Len(t, r.GetHandlers(procurement.EventTypePurchaseOrderApproved), 2)
	assert.Len(t, r.GetHandlers(procurement.EventTypePurchaseOrderRejected), 1)
}

func TestHandlerRegistry_DuplicateRegistrationIgnored(t *testing.T) {
	r := NewHandlerRegistry()
	h := newRecordingHandler()

	r.Register(h, procurement.EventTypePurchaseOrderApproved)
	r.Register(h, procurement.EventTypePurchaseOrderApproved)
	r.Register(h)
	r.Register(h)

	assert.Len(t, r.GetHandlers(procurement.EventTypePurchaseOrderApproved), 2)
}

func TestHandlerRegistry_Unregister(t *testing.T) {
	r := NewHandlerRegistry()
	keep := newRecordingHandler()
	drop := newRecordingHandler()
	r.Register(keep, procurement.EventTypePurchaseOrderApproved)
	r.Register(drop, procurement.EventTypePurchaseOrderApproved, procurement.EventTypePurchaseOrderRejected)
	r.Register(drop)

	r.Unregister(drop)

	handlers := r.GetHandlers(procurement.EventTypePurchaseOrderApproved)
	if assert.Len(t, handlers, 1) {
		assert.Same(t, keep, handlers[0])
	}
	assert.Empty(t, r.GetHandlers(procurement.EventTypePurchaseOrderRejected))
	assert.ElementsMatch(t, []string{procurement.EventTypePurchaseOrderApproved}, r.SubscribedTypes())
}
