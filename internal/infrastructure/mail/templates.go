package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
)

//go:embed templates/*.html
var templateFS embed.FS

type messageKind string

const (
	kindApprovalNeeded messageKind = "approval_needed"
	kindApproved       messageKind = "approved"
	kindRejected       messageKind = "rejected"
	kindSupplierOrder  messageKind = "supplier_order"
)

var accents = map[messageKind]string{
	kindApprovalNeeded: "#2563eb",
	kindApproved:       "#16a34a",
	kindRejected:       "#dc2626",
	kindSupplierOrder:  "#2563eb",
}

// messageData is what every mail template sees
type messageData struct {
	Heading       string
	Accent        string
	RecipientName string
	Order         procurementapp.OrderBrief
	Amount        string
	Reason        string
	OrderURL      string
	ApprovalsURL  string
}

type templateSet map[messageKind]*template.Template

func parseTemplates() (templateSet, error) {
	base, err := template.New("mail").ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, err
	}
	set := make(templateSet, len(accents))
	for kind := range accents {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		t, err := clone.ParseFS(templateFS, "templates/"+string(kind)+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", kind, err)
		}
		set[kind] = t
	}
	return set, nil
}

func (s templateSet) render(kind messageKind, data messageData) (string, error) {
	t, ok := s[kind]
	if !ok {
		return "", fmt.Errorf("unknown mail template %q", kind)
	}
	data.Accent = accents[kind]
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("render %s template: %w", kind, err)
	}
	return buf.String(), nil
}
