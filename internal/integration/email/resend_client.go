// Package email queues, renders and delivers notification emails.
package email

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}
}

// SetBaseURL points the client at another Resend-compatible endpoint.
func (c *ResendClient) SetBaseURL(raw string) error {
	u, err := url.Parse(strings.TrimSuffix(raw, "/") + "/")
	if err != nil {
		return fmt.Errorf("invalid resend base url: %w", err)
	}
	c.client.BaseURL = u
	return nil
}

// Send sends an email via Resend. Failures that retrying cannot fix are
// reported with ErrCodeEmailRejected.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	to := input.To
	if input.Name != "" {
		to = fmt.Sprintf("%s <%s>", input.Name, input.To)
	}

	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	})
	if err != nil {
		code := domainerror.ErrCodeEmailSendFailed
		if isPermanentError(err) {
			code = domainerror.ErrCodeEmailRejected
		}
		return nil, domainerror.NewEmailError(code, "resend delivery failed", errors.Join(domainerror.ErrEmailSendFailed, err))
	}

	return &adapter.SendEmailResult{ResendID: resp.Id}, nil
}

// permanentMarkers are fragments of Resend errors for 401, 403 and 422 responses.
var permanentMarkers = []string{"401", "403", "422", "unauthorized", "forbidden", "validation", "invalid"}

func isPermanentError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range permanentMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// IsPermanent reports whether err is a delivery failure that must not be retried.
func IsPermanent(err error) bool {
	var emailErr *domainerror.EmailError
	return errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodeEmailRejected
}

var _ adapter.EmailSender = (*ResendClient)(nil)
