// Package notify dispatches order confirmations to the customer. The SMTP
// notifier is the only external collaborator of the checkout pipeline; when
// it is left unconfigured the order is still confirmed, just without a sent
// email.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/smtp"
	"strings"

	"github.com/dev-star23/Audiophile/internal/domain"
)

// Notifier dispatches one confirmation per order submission attempt.
type Notifier interface {
	SendConfirmation(ctx context.Context, order domain.Order) error
}

// SMTPConfig carries the mail relay settings. An empty Host disables
// delivery without failing submissions.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	// BaseURL prefixes relative product image paths in the email body.
	BaseURL string
}

type smtpNotifier struct {
	cfg    SMTPConfig
	logger *log.Logger
	// send is swapped out in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTP(cfg SMTPConfig, logger *log.Logger) Notifier {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.FromName == "" {
		cfg.FromName = "Audiophile"
	}
	return &smtpNotifier{cfg: cfg, logger: logger, send: smtp.SendMail}
}

func (n *smtpNotifier) SendConfirmation(_ context.Context, order domain.Order) error {
	if n.cfg.Host == "" || n.cfg.Username == "" {
		n.logger.Printf("notify: smtp not configured, skipping delivery for order %s", order.Number)
		return nil
	}

	body, err := renderConfirmation(order, n.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %q <%s>\r\n", n.cfg.FromName, n.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", order.Form.Email)
	fmt.Fprintf(&msg, "Subject: Order Confirmation - %s\r\n", order.Number)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.Write(body)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	if err := n.send(addr, auth, n.cfg.From, []string{order.Form.Email}, msg.Bytes()); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	n.logger.Printf("notify: confirmation for order %s sent to %s", order.Number, order.Form.Email)
	return nil
}

// absoluteImageURL qualifies relative catalog image paths for use in email
// clients, which cannot resolve site-relative URLs.
func absoluteImageURL(baseURL, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(baseURL, "/") + path
}
