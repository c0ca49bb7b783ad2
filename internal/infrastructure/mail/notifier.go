// Package mail delivers workflow notifications over SMTP and records every
// attempt in the e-mail log.
package mail

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/notification"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

var _ procurementapp.Notifier = (*SMTPNotifier)(nil)

// ErrNotConfigured is returned, and logged, when no SMTP host is set
var ErrNotConfigured = errors.New("SMTP not configured")

// ErrNoRecipient is returned when the recipient has no e-mail address
var ErrNoRecipient = errors.New("recipient has no e-mail address")

const dialTimeout = 15 * time.Second

// Sender delivers composed messages. *gomail.Client satisfies it.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// SMTPNotifier implements the workflow Notifier
type SMTPNotifier struct {
	cfg       config.MailConfig
	currency  string
	logs      notification.EmailLogRepository
	templates templateSet
	sender    Sender
	logger    *zap.Logger
}

// Option configures an SMTPNotifier
type Option func(*SMTPNotifier)

// WithSender replaces the SMTP client
func WithSender(s Sender) Option {
	return func(n *SMTPNotifier) {
		n.sender = s
	}
}

// WithCurrencySymbol sets the symbol printed before amounts
func WithCurrencySymbol(symbol string) Option {
	return func(n *SMTPNotifier) {
		n.currency = symbol
	}
}

// NewSMTPNotifier creates a notifier. logs may be nil, in which case attempts
// are only written to the application log.
func NewSMTPNotifier(cfg config.MailConfig, logs notification.EmailLogRepository, logger *zap.Logger, opts ...Option) (*SMTPNotifier, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	n := &SMTPNotifier{
		cfg:       cfg,
		currency:  "₪",
		logs:      logs,
		templates: templates,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(n)
	}
	if !cfg.Configured() {
		logger.Warn("SMTP host not configured, e-mails will be logged as failed")
		return n, nil
	}
	if n.sender == nil {
		client, err := newClient(cfg)
		if err != nil {
			return nil, err
		}
		n.sender = client
		logger.Info("SMTP client configured", zap.String("addr", cfg.Addr()))
	}
	return n, nil
}

// newClient upgrades to TLS when the server offers STARTTLS and
// authenticates only when a username is set
func newClient(cfg config.MailConfig) (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(dialTimeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}
	return gomail.NewClient(cfg.Host, opts...)
}

// NotifyApprovalNeeded asks an approver to decide on an order
func (n *SMTPNotifier) NotifyApprovalNeeded(ctx context.Context, approver *identity.User, order procurementapp.OrderBrief) error {
	if approver == nil {
		return ErrNoRecipient
	}
	return n.deliver(ctx, approver.Email, kindApprovalNeeded,
		"Approval required for purchase order "+order.PONumber,
		messageData{Heading: "Approval required", RecipientName: approver.Name, Order: order}, nil)
}

// NotifyApproved tells the creator their order was approved
func (n *SMTPNotifier) NotifyApproved(ctx context.Context, creator *identity.User, order procurementapp.OrderBrief) error {
	if creator == nil {
		return ErrNoRecipient
	}
	return n.deliver(ctx, creator.Email, kindApproved,
		"Purchase order "+order.PONumber+" approved",
		messageData{Heading: "Purchase order approved", RecipientName: creator.Name, Order: order}, nil)
}

// NotifyRejected tells the creator their order was rejected and why
func (n *SMTPNotifier) NotifyRejected(ctx context.Context, creator *identity.User, order procurementapp.OrderBrief, reason string) error {
	if creator == nil {
		return ErrNoRecipient
	}
	return n.deliver(ctx, creator.Email, kindRejected,
		"Purchase order "+order.PONumber+" rejected",
		messageData{Heading: "Purchase order rejected", RecipientName: creator.Name, Order: order, Reason: reason}, nil)
}

// SendPurchaseOrderToSupplier e-mails the approved order with its PDF attached
func (n *SMTPNotifier) SendPurchaseOrderToSupplier(ctx context.Context, supplier *partner.Supplier, order procurementapp.OrderBrief, pdf []byte) error {
	if supplier == nil {
		return ErrNoRecipient
	}
	var attachments []Attachment
	if len(pdf) > 0 {
		attachments = append(attachments, Attachment{
			FileName:    order.PONumber + ".pdf",
			ContentType: "application/pdf",
			Data:        pdf,
		})
	}
	name := supplier.ContactPerson
	if name == "" {
		name = supplier.Name
	}
	return n.deliver(ctx, supplier.Email, kindSupplierOrder,
		"Purchase order "+order.PONumber,
		messageData{Heading: "New purchase order", RecipientName: name, Order: order}, attachments)
}

// deliver renders, sends and records one message. The e-mail log row is
// written whatever the outcome; failing to write it is only logged.
func (n *SMTPNotifier) deliver(ctx context.Context, to string, kind messageKind, subject string, data messageData, attachments []Attachment) error {
	if strings.TrimSpace(to) == "" {
		return ErrNoRecipient
	}
	data.Amount = n.formatAmount(data.Order.TotalAmount)
	base := strings.TrimRight(n.cfg.AppURL, "/")
	data.OrderURL = base + "/purchase-orders/" + data.Order.OrderID.String()
	data.ApprovalsURL = base + "/approvals"

	html, err := n.templates.render(kind, data)
	if err != nil {
		n.logger.Error("Failed to render e-mail", zap.String("template", string(kind)), zap.Error(err))
		return err
	}

	sendErr := n.sendMessage(ctx, Message{
		From:        n.cfg.From,
		To:          to,
		Subject:     subject,
		HTML:        html,
		Attachments: attachments,
	})
	n.record(ctx, to, subject, html, sendErr)

	log := n.logger.With(
		zap.String("to", to),
		zap.String("template", string(kind)),
		zap.String("po_number", data.Order.PONumber),
	)
	if sendErr != nil {
		log.Warn("E-mail not sent", zap.Error(sendErr))
		return sendErr
	}
	log.Info("E-mail sent")
	return nil
}

func (n *SMTPNotifier) sendMessage(ctx context.Context, m Message) error {
	if !n.cfg.Configured() || n.sender == nil {
		return ErrNotConfigured
	}
	msg, err := m.Build(shared.Now())
	if err != nil {
		return err
	}
	return n.sender.DialAndSendWithContext(ctx, msg)
}

func (n *SMTPNotifier) record(ctx context.Context, to, subject, body string, sendErr error) {
	if n.logs == nil {
		return
	}
	if err := n.logs.Save(ctx, notification.NewEmailLog(to, subject, body, sendErr)); err != nil {
		n.logger.Error("Failed to write e-mail log", zap.String("to", to), zap.Error(err))
	}
}

func (n *SMTPNotifier) formatAmount(v decimal.Decimal) string {
	return n.currency + v.StringFixed(2)
}
