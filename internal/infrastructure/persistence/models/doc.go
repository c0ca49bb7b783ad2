// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// of ORM concerns. Every model has a ToDomain method and a FromDomain
// constructor; repositories only ever hand domain types to their callers.
//
// Files:
//   - base.go: shared id, timestamp and version columns
//   - identity.go: users and their reporting line
//   - partner.go: suppliers and companies
//   - procurement.go: purchase orders, their lines and approvals
//   - notification.go: e-mail audit log
//   - outbox.go: outbox entries for event delivery
package models

// AllModels lists every model in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&SupplierModel{},
		&CompanyModel{},
		&PurchaseOrderModel{},
		&PurchaseOrderItemModel{},
		&ApprovalModel{},
		&EmailLogModel{},
		&OutboxEntryModel{},
	}
}
