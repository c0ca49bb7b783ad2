package procurement

import (
	"github.com/umitgh/procurement-system/internal/domain/shared"
	infraevent "github.com/umitgh/procurement-system/internal/infrastructure/event"
	"go.uber.org/zap"
)

// EventHandlers returns the workflow's outbox subscribers guarded by store.
// Each handler claims keys in its own scope: notifications once per event,
// supplier dispatch once per order.
func EventHandlers(
	notifications *ApprovalNotificationHandler,
	dispatch *SupplierDispatchHandler,
	store shared.IdempotencyStore,
	cfg shared.IdempotencyConfig,
	logger *zap.Logger,
) []shared.EventHandler {
	return infraevent.WrapHandlersWithIdempotency(
		[]shared.EventHandler{notifications, dispatch},
		store,
		logger,
		infraevent.WithIdempotencyConfig(cfg),
	)
}
