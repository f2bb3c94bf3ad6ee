// Package mailer delivers order notification emails through a Resend-style
// HTTP API.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"resty.dev/v3"

	"checkpoint-server/internal/config"
	"checkpoint-server/internal/domain/order"
	"checkpoint-server/internal/utils/platformerrors"
)

// Attachment is a base64-encoded file to ship with the notification.
type Attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type sendRequest struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Mailer sends order notifications. Failures are reported to the caller and
// never block order persistence.
type Mailer interface {
	SendOrderEmail(ctx context.Context, to []string, subject string, ord *order.Order, attachments []Attachment) error
}

type ResendMailer struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	from    string
}

var _ Mailer = (*ResendMailer)(nil)

func NewResendMailer(client *resty.Client, cfg *config.Config) *ResendMailer {
	return &ResendMailer{
		client:  client,
		baseURL: strings.TrimRight(cfg.MailAPIURL, "/"),
		apiKey:  cfg.MailAPIKey,
		from:    cfg.MailFrom,
	}
}

func (m *ResendMailer) SendOrderEmail(ctx context.Context, to []string, subject string, ord *order.Order, attachments []Attachment) error {
	body := sendRequest{
		From:        m.from,
		To:          to,
		Subject:     subject,
		HTML:        renderOrderHTML(ord),
		Attachments: attachments,
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", m.apiKey)).
		SetBody(body).
		Post(m.baseURL + "/emails")
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerInfra,
			platformerrors.ErrorTypeExternal,
			"mail service unreachable",
			err,
			"a8f2d6b4-7c1e-49a3-b5d8-2e0f4c6a8d1b",
		)
	}
	if resp.IsError() {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerInfra,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("mail service returned status %d", resp.StatusCode()),
			nil,
			"d3b7f1e5-4a9c-40d6-8e2b-6c5a9f3d7e1c",
		)
	}
	return nil
}

func renderOrderHTML(ord *order.Order) string {
	return fmt.Sprintf(`<h2>Novo Checkpoint Registrado</h2>
<div style="background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
  <p><strong>📦 Site:</strong> %s</p>
  <p><strong>🔖 DU:</strong> %s</p>
  <p><strong>📋 Projeto:</strong> %s</p>
  <p><strong>⚠️ Motivo:</strong> %s</p>
  <p><strong>⏰ Data:</strong> %s</p>
</div>
<p>Evidências em anexo.</p>`,
		ord.Site, ord.DU, ord.Projeto, ord.Motivo, ord.CreatedAt.Format("02/01/2006 15:04:05"))
}
