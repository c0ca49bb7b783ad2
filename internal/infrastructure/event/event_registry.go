package event

import (
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// RegisterAllEvents registers every procurement event with the serializer.
// The outbox processor cannot replay an event whose type is missing here.
func RegisterAllEvents(serializer *EventSerializer) {
	serializer.Register(procurement.EventTypePurchaseOrderSubmitted, func() shared.DomainEvent {
		return &procurement.PurchaseOrderSubmittedEvent{}
	})
	serializer.Register(procurement.EventTypeApprovalRequested, func() shared.DomainEvent {
		return &procurement.ApprovalRequestedEvent{}
	})
	serializer.Register(procurement.EventTypeApprovalDecided, func() shared.DomainEvent {
		return &procurement.ApprovalDecidedEvent{}
	})
	serializer.Register(procurement.EventTypePurchaseOrderApproved, func() shared.DomainEvent {
		return &procurement.PurchaseOrderApprovedEvent{}
	})
	serializer.Register(procurement.EventTypePurchaseOrderRejected, func() shared.DomainEvent {
		return &procurement.PurchaseOrderRejectedEvent{}
	})
	serializer.Register(procurement.EventTypePurchaseOrderCancelled, func() shared.DomainEvent {
		return &procurement.PurchaseOrderCancelledEvent{}
	})
}
