package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the delivery state of a message.
type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusQueued     Status = "QUEUED"
	StatusProcessing Status = "PROCESSING"
	StatusSent       Status = "SENT"
	StatusFailed     Status = "FAILED"
)

// Selectable reports whether a message in this status may be locked for processing.
func (s Status) Selectable() bool {
	switch s {
	case StatusScheduled, StatusQueued, StatusFailed:
		return true
	default:
		return false
	}
}

// Variables holds template substitution values (string, number or boolean).
type Variables map[string]any

// Value implements driver.Valuer, variables are stored as a JSON object.
func (v Variables) Value() (driver.Value, error) {
	if v == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(v)
}

// Scan implements sql.Scanner.
func (v *Variables) Scan(src any) error {
	var raw []byte
	switch s := src.(type) {
	case nil:
		*v = Variables{}
		return nil
	case []byte:
		raw = s
	case string:
		raw = []byte(s)
	default:
		return fmt.Errorf("variables: unsupported type %T", src)
	}

	out := Variables{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("variables: %w", err)
	}
	*v = out

	return nil
}

// Content is the resolved subject and bodies of an email.
type Content struct {
	Subject string `json:"subject"`
	HTML    string `json:"html,omitempty"`
	Text    string `json:"text,omitempty"`
}

// Empty reports whether no part of the content is set.
func (c Content) Empty() bool {
	return c.Subject == "" && c.HTML == "" && c.Text == ""
}

// Message is one logical delivery task to a single recipient.
//
// Recipient and TemplateKey are loaded by join. TemplateID is nil for
// direct-content messages, whose Content is persisted on the row.
type Message struct {
	ID           uuid.UUID  `json:"id"`
	ContactID    uuid.UUID  `json:"contact_id"`
	Recipient    string     `json:"recipient"`
	TemplateID   *uuid.UUID `json:"template_id,omitempty"`
	TemplateKey  string     `json:"template_key,omitempty"`
	Status       Status     `json:"status"`
	Variables    Variables  `json:"variables,omitempty"`
	Content      Content    `json:"content"`
	From         string     `json:"from"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	Attempts     int        `json:"attempts"`
	MaxAttempts  int        `json:"max_attempts"`
	NextRetryAt  *time.Time `json:"next_retry_at,omitempty"`
	Provider     string     `json:"provider,omitempty"`
	ExternalID   string     `json:"external_id,omitempty"`
	LastError    string     `json:"last_error,omitempty"`
	ErrorDetails string     `json:"error_details,omitempty"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LockedAt     *time.Time `json:"locked_at,omitempty"`
}

// HasTemplate reports whether the message content is derived from a template.
func (m Message) HasTemplate() bool {
	return m.TemplateID != nil
}

// Due reports whether the message may be dispatched at now.
func (m Message) Due(now time.Time) bool {
	switch m.Status {
	case StatusScheduled, StatusQueued:
		return !m.ScheduledAt.After(now) && m.Attempts < m.MaxAttempts
	case StatusFailed:
		return m.NextRetryAt != nil && !m.NextRetryAt.After(now) && m.Attempts < m.MaxAttempts
	default:
		return false
	}
}

// AttemptOutcome is the persisted result of one dispatch attempt.
//
// LockedAt is the lock token returned by TryLock. The outcome is only
// written while the row still holds that lock.
type AttemptOutcome struct {
	MessageID    uuid.UUID
	LockedAt     time.Time
	Status       Status // StatusSent or StatusFailed
	Attempts     int
	NextRetryAt  *time.Time
	Provider     string
	ExternalID   string
	LastError    string
	ErrorDetails string
	At           time.Time
}

// StatusCacheKey is the cache key holding the last known status of a message.
func StatusCacheKey(id uuid.UUID) string {
	return "message:status:" + id.String()
}
