package mailer

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"text/template"
	"time"

	"github.com/strategix-ai/site-server/app/database"
)

// Sender delivers a single email. The SMTP implementation is swapped for
// a recorder in tests.
type Sender interface {
	Send(to []string, subject, body string) error
}

// SMTPSender delivers mail through a plain SMTP relay.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

var _ Sender = (*SMTPSender)(nil)

func NewSMTPSender(host, port, username, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *SMTPSender) Send(to []string, subject, body string) error {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, auth, s.from, to, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", addr, err)
	}

	return nil
}

var contactTemplate = template.Must(template.New("contact").Parse(
	`New contact form submission.

Name:    {{.Name}}
Email:   {{.Email}}
Company: {{.Company}}
Source:  {{.Source}}

Message:
{{.Message}}
`))

var bookingTemplate = template.Must(template.New("booking").Parse(
	`New consultation booking.

Service: {{.Service}}
Date:    {{.Date}}
Status:  {{.Status}}

Notes:
{{.Notes}}
`))

// Mailer renders and sends the transactional notifications for lead
// capture. A nil Mailer (email not configured) is a safe no-op.
type Mailer struct {
	sender Sender
	notify string
}

func NewMailer(sender Sender, notifyEmail string) *Mailer {
	return &Mailer{
		sender: sender,
		notify: notifyEmail,
	}
}

// NotifyContact emails the configured recipient about a new contact.
// Failures are logged, never surfaced to the submitting visitor.
func (m *Mailer) NotifyContact(contact database.Contact) {
	if m == nil || m.notify == "" {
		return
	}

	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, contact); err != nil {
		slog.Error("Failed to render contact notification", "error", err)
		return
	}

	subject := "New contact: " + contact.Name
	if err := m.sender.Send([]string{m.notify}, subject, body.String()); err != nil {
		slog.Error("Failed to send contact notification", "contact_id", contact.ID, "error", err)
		return
	}

	slog.Info("Contact notification sent", "contact_id", contact.ID)
}

// NotifyBooking emails the configured recipient about a new booking.
func (m *Mailer) NotifyBooking(booking database.Booking) {
	if m == nil || m.notify == "" {
		return
	}

	data := struct {
		Service string
		Date    string
		Status  string
		Notes   string
	}{
		Service: booking.Service,
		Date:    booking.Date.Format(time.RFC1123),
		Status:  booking.Status,
		Notes:   booking.Notes,
	}

	var body bytes.Buffer
	if err := bookingTemplate.Execute(&body, data); err != nil {
		slog.Error("Failed to render booking notification", "error", err)
		return
	}

	subject := "New booking: " + booking.Service
	if err := m.sender.Send([]string{m.notify}, subject, body.String()); err != nil {
		slog.Error("Failed to send booking notification", "booking_id", booking.ID, "error", err)
		return
	}

	slog.Info("Booking notification sent", "booking_id", booking.ID)
}
