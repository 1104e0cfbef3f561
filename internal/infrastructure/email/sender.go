package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"rugcare.backend/internal/domain/entities"
	"rugcare.backend/pkg/logger"
)

var (
	ErrNotConfigured = errors.New("email sender not configured")
	ErrNoRecipient   = errors.New("no recipient address")
)

// Config configures the transactional email API
type Config struct {
	APIURL  string
	APIKey  string
	From    string
	ReplyTo string
}

// HTTPSender sends staff and client emails through a Resend-compatible JSON API
type HTTPSender struct {
	cfg    Config
	client *http.Client
}

// NewHTTPSender creates a sender. A nil client gets a 15s timeout client.
func NewHTTPSender(cfg Config, client *http.Client) *HTTPSender {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPSender{cfg: cfg, client: client}
}

type sendRequest struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	ReplyTo     string       `json:"reply_to,omitempty"`
	Attachments []attachment `json:"attachments,omitempty"`
}

type attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// SendStaffNotification tells the business that a job was paid
func (s *HTTPSender) SendStaffNotification(ctx context.Context, c *entities.ConfirmationContext) error {
	to := recipient(c.BusinessEmail)
	if to == "" {
		return fmt.Errorf("staff notification: %w", ErrNoRecipient)
	}
	html, err := renderStaff(c)
	if err != nil {
		return fmt.Errorf("render staff notification: %w", err)
	}
	return s.send(ctx, sendRequest{
		From:    s.cfg.From,
		To:      []string{to},
		Subject: fmt.Sprintf("Payment received: %s ($%s)", c.JobNumber, c.Amount),
		HTML:    html,
		ReplyTo: s.cfg.ReplyTo,
	})
}

// SendClientConfirmation sends the client a receipt, with the invoice when one was generated
func (s *HTTPSender) SendClientConfirmation(ctx context.Context, c *entities.ClientConfirmation) error {
	if c == nil || c.ConfirmationContext == nil {
		return fmt.Errorf("client confirmation: %w", ErrNoRecipient)
	}
	to := recipient(c.ClientEmail)
	if to == "" {
		return fmt.Errorf("client confirmation: %w", ErrNoRecipient)
	}
	html, err := renderClient(c)
	if err != nil {
		return fmt.Errorf("render client confirmation: %w", err)
	}

	req := sendRequest{
		From:    s.cfg.From,
		To:      []string{to},
		Subject: fmt.Sprintf("Payment confirmation for job %s", c.JobNumber),
		HTML:    html,
		ReplyTo: s.replyTo(c.BusinessEmail),
	}
	if c.Invoice != nil {
		req.Attachments = []attachment{{Filename: c.Invoice.Filename, Content: c.Invoice.ContentBase64}}
	}
	return s.send(ctx, req)
}

// replyTo prefers the business address so clients answer the business directly
func (s *HTTPSender) replyTo(businessEmail string) string {
	if r := recipient(businessEmail); r != "" {
		return r
	}
	return s.cfg.ReplyTo
}

func (s *HTTPSender) send(ctx context.Context, payload sendRequest) error {
	if s.cfg.APIKey == "" || s.cfg.APIURL == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("email api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("email api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	logger.Debug(ctx, "Email sent", zap.String("subject", payload.Subject), zap.Int("attachments", len(payload.Attachments)))
	return nil
}

// recipient drops blanks and rendering placeholders
func recipient(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == entities.PlaceholderUnknown || addr == entities.PlaceholderNA || !strings.Contains(addr, "@") {
		return ""
	}
	return addr
}
