package printing

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

const purchaseOrderTemplate = "templates/purchase_order.html"

// TemplateEngine renders purchase order documents to HTML
type TemplateEngine struct {
	currency string
	tmpl     *template.Template
}

// TemplateEngineOption configures a TemplateEngine
type TemplateEngineOption func(*TemplateEngine)

// WithCurrencySymbol sets the symbol printed before amounts
func WithCurrencySymbol(symbol string) TemplateEngineOption {
	return func(e *TemplateEngine) {
		if symbol != "" {
			e.currency = symbol
		}
	}
}

// NewTemplateEngine parses the embedded purchase order template. It panics if
// the embedded template is malformed.
func NewTemplateEngine(opts ...TemplateEngineOption) *TemplateEngine {
	e := &TemplateEngine{currency: "₪"}
	for _, opt := range opts {
		opt(e)
	}
	e.tmpl = template.Must(template.New("purchase_order.html").
		Funcs(e.funcMap()).
		ParseFS(templateFS, purchaseOrderTemplate))
	return e
}

// purchaseOrderView is the template data
type purchaseOrderView struct {
	*procurementapp.PurchaseOrderDocument
	GeneratedAt *time.Time
}

// RenderPurchaseOrder renders doc to a complete HTML page
func (e *TemplateEngine) RenderPurchaseOrder(doc *procurementapp.PurchaseOrderDocument) (string, error) {
	if doc == nil {
		return "", NewRenderError(ErrCodeInvalidDocument, "purchase order document is nil", nil)
	}
	var buf bytes.Buffer
	now := shared.Now()
	view := purchaseOrderView{PurchaseOrderDocument: doc, GeneratedAt: &now}
	if err := e.tmpl.Execute(&buf, view); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to execute purchase order template", err)
	}
	return buf.String(), nil
}

func (e *TemplateEngine) funcMap() template.FuncMap {
	return template.FuncMap{
		"money":    e.formatMoney,
		"quantity": formatQuantity,
		"date":     formatDate,
		"dateTime": formatDateTime,
		"status":   statusLabel,
		"orDash":   orDash,
		"join":     strings.Join,
	}
}

// formatMoney prints v with two decimals and thousands separators
func (e *TemplateEngine) formatMoney(v decimal.Decimal) string {
	s := v.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	return sign + e.currency + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func formatQuantity(v decimal.Decimal) string {
	return v.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("01/02/2006")
}

func formatDateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("01/02/2006 15:04")
}

// statusLabel turns PENDING_APPROVAL into "Pending Approval"
func statusLabel(status string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(status), "_", " "))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
