package provider

import (
	"context"
	"errors"
	"net/http"

	"github.com/aliskhannn/mail-dispatcher/pkg/resend"
)

// NameResend is the identifier of the Resend backend.
const NameResend = "resend"

type resendClient interface {
	Send(ctx context.Context, req resend.SendEmailRequest) (string, error)
}

// Resend sends email through the Resend API.
type Resend struct {
	client resendClient
}

// NewResend creates the Resend backend.
func NewResend(c resendClient) *Resend {
	return &Resend{client: c}
}

func (r *Resend) Name() string { return NameResend }

func (r *Resend) Send(ctx context.Context, e Email) Response {
	id, err := r.client.Send(ctx, resend.SendEmailRequest{
		From:    e.From,
		To:      e.To,
		Subject: e.Subject,
		HTML:    e.HTML,
		Text:    e.Text,
	})
	if err == nil {
		return success(http.StatusOK, id)
	}

	var apiErr *resend.APIError
	if errors.As(err, &apiErr) {
		return failure(apiErr.StatusCode, apiErr.Error())
	}

	return networkFailure(err)
}
