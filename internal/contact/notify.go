package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig describes the mailbox that receives contact notifications.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string
}

func (c SMTPConfig) Enabled() bool { return c.User != "" && c.Password != "" && c.To != "" }

// SMTPNotifier emails the site owner when a message arrives.
type SMTPNotifier struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPNotifier{cfg: cfg, send: smtp.SendMail}
}

func (n *SMTPNotifier) Notify(ctx context.Context, f Form) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)
	if err := n.send(n.cfg.Host+":"+n.cfg.Port, auth, n.cfg.User, []string{n.cfg.To}, n.compose(f)); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) compose(f Form) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, f.Name, f.Email, f.Subject, f.Message)

	return []byte("To: " + n.cfg.To + "\r\n" +
		"Subject: " + headerSafe("Portfolio Contact: "+f.Subject) + "\r\n" +
		"From: " + n.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(f.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe strips line breaks so form input cannot add headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
