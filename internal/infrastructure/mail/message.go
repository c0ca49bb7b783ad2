package mail

import (
	"bytes"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// Attachment is a file sent along with a message
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Message is one outgoing e-mail with an HTML body
type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Build composes m as a UTF-8 message dated date
func (m Message) Build(date time.Time) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return nil, err
	}
	if err := msg.To(m.To); err != nil {
		return nil, err
	}
	msg.Subject(m.Subject)
	msg.SetDateWithValue(date)
	msg.SetMessageID()
	msg.SetBodyString(gomail.TypeTextHTML, m.HTML)

	for _, a := range m.Attachments {
		err := msg.AttachReader(a.FileName, bytes.NewReader(a.Data),
			gomail.WithFileContentType(gomail.ContentType(a.ContentType)))
		if err != nil {
			return nil, err
		}
	}
	return msg, nil
}
