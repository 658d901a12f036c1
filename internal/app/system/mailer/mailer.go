// internal/app/system/mailer/mailer.go

// Package mailer sends outbound email over SMTP.
//
// The transport is gomail; each send dials fresh, which matches the
// low-volume reply traffic this app generates. Credentials are never read
// from package state: the caller passes an Identity on every send, so the
// per-site support mailbox can override the process default without any
// global mutation.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Identity is one outbound mail identity: the address the message is sent
// from and the credentials that authenticate it.
type Identity struct {
	FromName string
	Address  string
	Password string
}

// Email is one message to deliver. DispatchID, when set, becomes the
// Message-ID header so a delivered message can be tied back to the
// dispatch record that produced it.
type Email struct {
	To         string
	Subject    string
	TextBody   string
	HTMLBody   string
	DispatchID string
}

// Sender is the mail transport seam. Tests substitute a stub; production
// uses *Mailer.
type Sender interface {
	Send(id Identity, e Email) error
}

// Mailer is the SMTP-backed Sender.
type Mailer struct {
	host string
	port int
}

// New constructs a Mailer for the given SMTP endpoint.
func New(host string, port int) *Mailer {
	return &Mailer{host: host, port: port}
}

// Send delivers one message as the given identity. The call blocks until
// the SMTP server accepts or rejects the message; the transport's own
// dial timeout is the only timeout applied.
func (m *Mailer) Send(id Identity, e Email) error {
	msg := gomail.NewMessage()
	if id.FromName != "" {
		msg.SetHeader("From", fmt.Sprintf("%s <%s>", id.FromName, id.Address))
	} else {
		msg.SetHeader("From", id.Address)
	}
	msg.SetHeader("To", e.To)
	msg.SetHeader("Subject", e.Subject)
	if e.DispatchID != "" {
		msg.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", e.DispatchID, m.host))
	}
	msg.SetBody("text/plain", e.TextBody)
	if e.HTMLBody != "" {
		msg.AddAlternative("text/html", e.HTMLBody)
	}

	d := gomail.NewDialer(m.host, m.port, id.Address, id.Password)
	return d.DialAndSend(msg)
}
