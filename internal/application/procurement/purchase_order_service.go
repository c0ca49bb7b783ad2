package procurement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// maxNumberAttempts bounds PO number collisions between concurrent creates
const maxNumberAttempts = 3

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	orderRepo       procurement.PurchaseOrderRepository
	approvalRepo    procurement.ApprovalRepository
	supplierRepo    partner.SupplierRepository
	companyRepo     partner.CompanyRepository
	approvals       *ApprovalService
	spend           *SpendMonitor
	documents       DocumentStore
	eventPublisher  shared.EventPublisher
	businessMetrics *telemetry.BusinessMetrics
	logger          *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orderRepo procurement.PurchaseOrderRepository,
	approvalRepo procurement.ApprovalRepository,
	supplierRepo partner.SupplierRepository,
	companyRepo partner.CompanyRepository,
	approvals *ApprovalService,
	spend *SpendMonitor,
	logger *zap.Logger,
) *PurchaseOrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseOrderService{
		orderRepo:    orderRepo,
		approvalRepo: approvalRepo,
		supplierRepo: supplierRepo,
		companyRepo:  companyRepo,
		approvals:    approvals,
		spend:        spend,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PurchaseOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetBusinessMetrics sets the business metrics collector
func (s *PurchaseOrderService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// SetDocumentStore enables download links for generated documents
func (s *PurchaseOrderService) SetDocumentStore(store DocumentStore) {
	s.documents = store
}

// Create creates a new draft purchase order owned by actor
func (s *PurchaseOrderService) Create(ctx context.Context, actor Actor, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	if err := s.checkParties(ctx, req.SupplierID, req.CompanyID); err != nil {
		return nil, err
	}

	var order *procurement.PurchaseOrder
	for attempt := 1; ; attempt++ {
		number, err := s.nextNumber(ctx)
		if err != nil {
			return nil, err
		}
		order, err = procurement.NewPurchaseOrder(number, actor.ID, req.SupplierID, req.CompanyID, req.Remarks, toLineItemInputs(req.LineItems))
		if err != nil {
			return nil, err
		}
		err = s.orderRepo.Create(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, shared.ErrAlreadyExists) || attempt == maxNumberAttempts {
			return nil, err
		}
		s.logger.Debug("PO number taken, retrying", zap.String("po_number", number), zap.Int("attempt", attempt))
	}

	if s.businessMetrics != nil {
		s.businessMetrics.RecordOrderCreated(ctx)
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order visible to actor
func (s *PurchaseOrderService) GetByID(ctx context.Context, actor Actor, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureVisible(ctx, actor, order); err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination. Plain users
// only see their own orders.
func (s *PurchaseOrderService) List(ctx context.Context, actor Actor, filter PurchaseOrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	domainFilter := procurement.PurchaseOrderFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
			Search:   filter.Search,
		}.Normalize(),
		SupplierID: filter.SupplierID,
	}
	if domainFilter.OrderBy == "" {
		domainFilter.OrderBy = "created_at"
	}
	if filter.Status != "" {
		status := procurement.Status(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown status: "+filter.Status)
		}
		domainFilter.Status = &status
	}
	if !actor.Role.SeesAllPurchaseOrders() {
		domainFilter.CreatedByID = &actor.ID
	}

	orders, total, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]PurchaseOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = ToPurchaseOrderResponse(o)
	}
	return out, total, nil
}

// Update replaces the header and lines of a draft
func (s *PurchaseOrderService) Update(ctx context.Context, actor Actor, orderID uuid.UUID, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.EnsureEditableBy(actor.ID, actor.IsAdmin()); err != nil {
		return nil, err
	}
	if err := s.checkParties(ctx, req.SupplierID, req.CompanyID); err != nil {
		return nil, err
	}
	if err := order.UpdateHeader(req.SupplierID, req.CompanyID, req.Remarks); err != nil {
		return nil, err
	}
	if err := order.ReplaceItems(toLineItemInputs(req.LineItems)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Delete removes a draft
func (s *PurchaseOrderService) Delete(ctx context.Context, actor Actor, orderID uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := order.EnsureEditableBy(actor.ID, actor.IsAdmin()); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, order.ID)
}

// Submit sends a draft into approval and builds its approval chain
func (s *PurchaseOrderService) Submit(ctx context.Context, actor Actor, orderID uuid.UUID) (*SubmitResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeModifiedBy(actor.ID, actor.IsAdmin()) {
		return nil, procurement.ErrNotOwner
	}
	if err := order.Submit(); err != nil {
		return nil, err
	}
	exceeded := s.spend.annotateIfExceeded(ctx, order)

	events := order.GetDomainEvents()
	if err := s.orderRepo.SaveWithLockAndEvents(ctx, order, events); err != nil {
		return nil, err
	}
	order.ClearDomainEvents()
	publishAfterCommit(ctx, s.eventPublisher, s.logger, events)

	count, err := s.approvals.InitializeApprovals(ctx, order.ID)
	if err != nil {
		// the order is already committed as pending and has no approvers
		s.logger.Error("Purchase order stuck pending approval, approval chain not created",
			zap.String("po_id", order.ID.String()),
			zap.String("po_number", order.PONumber),
			zap.String("status", string(order.Status)),
			zap.Bool("needs_attention", true),
			zap.Error(err),
		)
		return nil, fmt.Errorf("initialize approvals for %s: %w", order.PONumber, err)
	}

	final, err := s.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &SubmitResponse{
		Order:         ToPurchaseOrderResponse(final),
		ApprovalCount: count,
		AutoApproved:  count == 0,
		SpendExceeded: exceeded,
	}, nil
}

// Cancel withdraws an order awaiting approval
func (s *PurchaseOrderService) Cancel(ctx context.Context, actor Actor, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Cancel(actor.ID, actor.IsAdmin()); err != nil {
		return nil, err
	}

	events := order.GetDomainEvents()
	if err := s.orderRepo.SaveWithLockAndEvents(ctx, order, events); err != nil {
		return nil, err
	}
	order.ClearDomainEvents()
	publishAfterCommit(ctx, s.eventPublisher, s.logger, events)

	if s.businessMetrics != nil {
		s.businessMetrics.RecordFinalized(ctx, string(order.Status))
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// DocumentURL returns a presigned link to an approved order's PDF
func (s *PurchaseOrderService) DocumentURL(ctx context.Context, actor Actor, orderID uuid.UUID) (*DocumentLinkResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureVisible(ctx, actor, order); err != nil {
		return nil, err
	}
	if order.Status != procurement.StatusApproved || s.documents == nil {
		return nil, procurement.ErrDocumentNotFound
	}

	key := DocumentKey(order.PONumber)
	exists, err := s.documents.ObjectExists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, procurement.ErrDocumentNotFound
	}
	url, expiresAt, err := s.documents.GenerateDownloadURL(ctx, key, order.PONumber+".pdf")
	if err != nil {
		return nil, err
	}
	return &DocumentLinkResponse{URL: url, ExpiresAt: expiresAt}, nil
}

func (s *PurchaseOrderService) nextNumber(ctx context.Context) (string, error) {
	day := shared.Now()
	latest, err := s.orderRepo.LatestNumberWithPrefix(ctx, procurement.PONumberPrefix(day))
	if err != nil {
		return "", err
	}
	return procurement.NextPONumber(day, latest), nil
}

func (s *PurchaseOrderService) checkParties(ctx context.Context, supplierID, companyID uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if !supplier.IsActive() {
		return partner.ErrSupplierInactive
	}
	if _, err := s.companyRepo.FindByID(ctx, companyID); err != nil {
		return err
	}
	return nil
}

func (s *PurchaseOrderService) ensureVisible(ctx context.Context, actor Actor, order *procurement.PurchaseOrder) error {
	if actor.Role.SeesAllPurchaseOrders() || order.CreatedByID == actor.ID {
		return nil
	}
	approvals, err := s.approvalRepo.FindByPurchaseOrder(ctx, order.ID)
	if err != nil {
		return err
	}
	if !canView(actor, order, approvals) {
		return procurement.ErrNotOwner
	}
	return nil
}
