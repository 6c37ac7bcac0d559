package model

import (
	"time"

	"github.com/google/uuid"
)

// SendRequest is an accepted request to deliver content to one or more recipients.
type SendRequest struct {
	To          []string
	From        string
	Subject     string
	Text        string
	HTML        string
	TemplateKey string
	Variables   Variables
	Provider    string
	SendAt      *time.Time
}

// SendResult reports the messages created for a request.
type SendResult struct {
	Messages []QueuedMessage  `json:"messages"`
	Skipped  []SkippedMessage `json:"skipped,omitempty"`
	Failed   []SkippedMessage `json:"failed,omitempty"`
}

// QueuedMessage is a message row created for one recipient.
type QueuedMessage struct {
	ID     uuid.UUID `json:"id"`
	To     string    `json:"to"`
	Status Status    `json:"status"`
}

// SkippedMessage is a recipient that was not queued.
type SkippedMessage struct {
	To     string `json:"to"`
	Reason string `json:"reason"`
}
