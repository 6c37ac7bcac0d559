package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// NameSendGrid is the identifier of the SendGrid backend.
const NameSendGrid = "sendgrid"

const sendgridBaseURL = "https://api.sendgrid.com"

// SendGrid sends email through the SendGrid v3 Mail Send API.
type SendGrid struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSendGrid creates the SendGrid backend. An empty baseURL selects the public API.
func NewSendGrid(apiKey, baseURL string, timeout time.Duration) *SendGrid {
	if baseURL == "" {
		baseURL = sendgridBaseURL
	}

	return &SendGrid{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *SendGrid) Name() string { return NameSendGrid }

func (s *SendGrid) Send(ctx context.Context, e Email) Response {
	payload := sgMailPayload{
		From:    sgAddress{Email: e.From},
		Subject: e.Subject,
	}

	to := make([]sgAddress, 0, len(e.To))
	for _, addr := range e.To {
		to = append(to, sgAddress{Email: addr})
	}
	payload.Personalizations = []sgPersonalization{{To: to}}

	// text/plain must precede text/html.
	if e.Text != "" {
		payload.Content = append(payload.Content, sgContent{Type: "text/plain", Value: e.Text})
	}
	if e.HTML != "" {
		payload.Content = append(payload.Content, sgContent{Type: "text/html", Value: e.HTML})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return failure(http.StatusBadRequest, fmt.Sprintf("failed to marshal SendGrid payload: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return failure(http.StatusBadRequest, fmt.Sprintf("failed to create SendGrid request: %v", err))
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return networkFailure(fmt.Errorf("SendGrid request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return success(resp.StatusCode, resp.Header.Get("X-Message-Id"))
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	return failure(resp.StatusCode, sendgridError(resp.StatusCode, respBody))
}

func sendgridError(code int, body []byte) string {
	var parsed struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if json.Unmarshal(body, &parsed) == nil && len(parsed.Errors) > 0 {
		msgs := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			msgs = append(msgs, e.Message)
		}

		return fmt.Sprintf("SendGrid returned status %d: %s", code, strings.Join(msgs, "; "))
	}

	return fmt.Sprintf("SendGrid returned status %d: %s", code, strings.TrimSpace(string(body)))
}

// SendGrid v3 Mail Send API payload types.
type sgMailPayload struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
