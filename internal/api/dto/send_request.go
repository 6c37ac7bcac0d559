package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aliskhannn/mail-dispatcher/internal/model"
)

// Recipients accepts either a single address or a list of addresses.
type Recipients []string

// UnmarshalJSON implements json.Unmarshaler.
func (r *Recipients) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = nil
		return nil
	}

	if data[0] == '"' {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*r = Recipients{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("to must be a string or an array of strings: %w", err)
	}
	*r = many

	return nil
}

// SendRequest is the body of POST /api/messages.
type SendRequest struct {
	To                Recipients      `json:"to" validate:"required,min=1,max=1000,dive,required"`
	From              string          `json:"from" validate:"omitempty,max=320"`
	Subject           string          `json:"subject" validate:"max=998"`
	Body              string          `json:"body"`
	HTML              string          `json:"html"`
	TemplateName      string          `json:"templateName" validate:"max=255"`
	TemplateVariables model.Variables `json:"templateVariables"`
	Provider          string          `json:"provider" validate:"max=64"`
	SendAt            *time.Time      `json:"sendAt"`
}

// ToModel converts the request into the service input.
func (r SendRequest) ToModel() model.SendRequest {
	return model.SendRequest{
		To:          []string(r.To),
		From:        r.From,
		Subject:     r.Subject,
		Text:        r.Body,
		HTML:        r.HTML,
		TemplateKey: r.TemplateName,
		Variables:   r.TemplateVariables,
		Provider:    r.Provider,
		SendAt:      r.SendAt,
	}
}
