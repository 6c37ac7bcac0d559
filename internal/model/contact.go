package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is a recipient email identity, unique by address.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Template is a named content definition with {{name}} placeholders.
type Template struct {
	ID      uuid.UUID `json:"id"`
	Key     string    `json:"key"`
	Subject string    `json:"subject"`
	HTML    string    `json:"html"`
	Text    string    `json:"text"`
}

// OptOut suppresses delivery of one template to one contact.
type OptOut struct {
	ContactID  uuid.UUID `json:"contact_id"`
	TemplateID uuid.UUID `json:"template_id"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NormalizeEmail returns the canonical form contacts are keyed by.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
