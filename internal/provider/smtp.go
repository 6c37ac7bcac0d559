package provider

import (
	"context"
	"net/http"

	"github.com/aliskhannn/mail-dispatcher/pkg/email"
)

// NameSMTP is the identifier of the SMTP backend.
const NameSMTP = "smtp"

type smtpClient interface {
	Send(ctx context.Context, msg email.Message) (string, error)
}

// SMTP sends email through an SMTP relay.
//
// Transient SMTP replies (4xx) are reported as 503 and permanent ones (5xx)
// as 422 so that they classify like their HTTP counterparts.
type SMTP struct {
	client smtpClient
}

// NewSMTP creates the SMTP backend.
func NewSMTP(c smtpClient) *SMTP {
	return &SMTP{client: c}
}

func (s *SMTP) Name() string { return NameSMTP }

func (s *SMTP) Send(ctx context.Context, e Email) Response {
	id, err := s.client.Send(ctx, email.Message{
		To:      e.To,
		From:    e.From,
		Subject: e.Subject,
		Text:    e.Text,
		HTML:    e.HTML,
	})
	if err == nil {
		return success(http.StatusOK, id)
	}

	code, ok := email.ReplyCode(err)
	switch {
	case ok && code >= 400 && code < 500:
		return failure(http.StatusServiceUnavailable, err.Error())
	case ok && code >= 500:
		return failure(http.StatusUnprocessableEntity, err.Error())
	default:
		return networkFailure(err)
	}
}
