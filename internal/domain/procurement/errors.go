package procurement

import "github.com/umitgh/procurement-system/internal/domain/shared"

// Errors surfaced by the approval workflow. Each precondition failure has its
// own code so callers can tell them apart.
var (
	ErrPurchaseOrderNotFound = shared.NewDomainError("PURCHASE_ORDER_NOT_FOUND", "Purchase order not found")
	ErrApprovalNotFound      = shared.NewDomainError("APPROVAL_NOT_FOUND", "Approval not found")
	ErrDocumentNotFound      = shared.NewDomainError("DOCUMENT_NOT_FOUND", "Purchase order document has not been generated")
	ErrCreatorNotFound       = shared.NewDomainError("USER_NOT_FOUND", "Purchase order creator not found")

	ErrNotAssignedApprover = shared.NewDomainError("NOT_ASSIGNED_APPROVER", "Not your approval")
	ErrNotOwner            = shared.NewDomainError("NOT_PURCHASE_ORDER_OWNER", "Only the creator or an administrator can change this purchase order")

	ErrApprovalAlreadyProcessed    = shared.NewDomainError("APPROVAL_ALREADY_PROCESSED", "Approval already processed")
	ErrPurchaseOrderNotPending     = shared.NewDomainError("PURCHASE_ORDER_NOT_PENDING", "Purchase order is no longer pending approval")
	ErrApprovalLevelNotActive      = shared.NewDomainError("APPROVAL_LEVEL_NOT_ACTIVE", "An earlier approval level is still pending")
	ErrInvalidStatusTransition     = shared.NewDomainError("INVALID_STATUS_TRANSITION", "Status transition not allowed")
	ErrPurchaseOrderNotEditable    = shared.NewDomainError("PURCHASE_ORDER_NOT_EDITABLE", "Only draft purchase orders can be changed")
	ErrApprovalsAlreadyInitialized = shared.NewDomainError("APPROVALS_ALREADY_INITIALIZED", "Approvals already exist for this purchase order")

	ErrValidation = shared.NewDomainError("VALIDATION_ERROR", "Invalid purchase order")
)

func validationError(message string) *shared.DomainError {
	return shared.NewDomainError(ErrValidation.Code, message)
}

