// Package notify tells the business owner about new quote requests and reviews.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"
)

// Message is a plain-text notification.
type Message struct {
	Subject string
	Body    string
}

// Notifier delivers a Message. Callers treat a failure as non-fatal.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// LogNotifier writes notifications to the log. It is used when SMTP is disabled.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, msg Message) error {
	slog.Info("[Notify] Notification", "subject", msg.Subject)
	return nil
}

// SMTPConfig is the relay the notifications are sent through.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier sends notifications as email.
type SMTPNotifier struct {
	cfg  SMTPConfig
	auth smtp.Auth
	send sendFunc
	now  func() time.Time
}

func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.From == "" || len(cfg.To) == 0 {
		return nil, fmt.Errorf("smtp from and to are required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPNotifier{cfg: cfg, auth: auth, send: smtp.SendMail, now: time.Now}, nil
}

// Notify sends msg. net/smtp has no context support, so ctx is only checked up front.
func (n *SMTPNotifier) Notify(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	if err := n.send(addr, n.auth, n.cfg.From, n.cfg.To, n.compose(msg)); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	slog.Debug("[Notify] Sent notification", "subject", msg.Subject, "recipients", len(n.cfg.To))
	return nil
}

func (n *SMTPNotifier) compose(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(n.cfg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", n.now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}

// sanitizeHeader keeps user-supplied text from injecting extra headers.
func sanitizeHeader(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// Send delivers msg and logs a failure instead of returning it.
func Send(ctx context.Context, n Notifier, msg Message) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, msg); err != nil {
		slog.Warn("[Notify] Failed to deliver notification", "subject", msg.Subject, "error", err)
	}
}
