package message

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/mail-dispatcher/internal/model"
)

const maxErrorLen = 1024

var (
	ErrMessageNotFound = errors.New("message not found")
	// ErrLockLost is returned when the row no longer holds the caller's lock.
	ErrLockLost = errors.New("message lock lost")
)

var firstSendStatuses = []string{string(model.StatusScheduled), string(model.StatusQueued)}

const messageColumns = `
		SELECT m.id, m.contact_id, c.email, m.template_id, COALESCE(t.key, ''), m.status,
		       m.variables, m.subject, m.html_body, m.text_body, m.from_address,
		       m.scheduled_at, m.attempts, m.max_attempts, m.next_retry_at,
		       m.provider, m.external_id, m.last_error, m.error_details,
		       m.sent_at, m.created_at, m.updated_at, m.locked_at`

const messageJoins = `
		JOIN contacts c ON c.id = m.contact_id
		LEFT JOIN templates t ON t.id = m.template_id`

const selectColumns = messageColumns + `
		FROM messages m` + messageJoins

// Repository is the message log: it creates and mutates message rows and
// answers the scheduler's due-work queries.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new message repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateQueued inserts a message. The status is SCHEDULED when ScheduledAt is
// after now and QUEUED otherwise.
func (r *Repository) CreateQueued(ctx context.Context, msg model.Message, now time.Time) (model.Message, error) {
	if msg.ScheduledAt.IsZero() {
		msg.ScheduledAt = now
	}

	msg.Status = model.StatusQueued
	if msg.ScheduledAt.After(now) {
		msg.Status = model.StatusScheduled
	}

	if msg.Variables == nil {
		msg.Variables = model.Variables{}
	}

	query := `
		INSERT INTO messages (
		    contact_id, template_id, status, variables, subject, html_body, text_body,
		    from_address, scheduled_at, max_attempts, provider
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;
    `

	err := r.db.Master.QueryRowContext(
		ctx, query,
		msg.ContactID, msg.TemplateID, msg.Status, msg.Variables,
		msg.Content.Subject, msg.Content.HTML, msg.Content.Text,
		msg.From, msg.ScheduledAt, msg.MaxAttempts, msg.Provider,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	return msg, nil
}

// GetByID returns the message with the given id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Message, error) {
	query := selectColumns + `
		WHERE m.id = $1;
    `

	msg, err := scanMessage(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Message{}, ErrMessageNotFound
		}

		return model.Message{}, fmt.Errorf("failed to get message: %w", err)
	}

	return msg, nil
}

// List returns messages newest first, optionally filtered by status.
func (r *Repository) List(ctx context.Context, status model.Status, limit, offset int) ([]model.Message, error) {
	query := selectColumns + `
		WHERE ($1 = '' OR m.status = $1)
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3;
    `

	rows, err := r.db.QueryContext(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return collect(rows)
}

// DueForFirstSend returns SCHEDULED and QUEUED messages whose scheduled time
// has passed, oldest first.
func (r *Repository) DueForFirstSend(ctx context.Context, now time.Time, limit int) ([]model.Message, error) {
	query := selectColumns + `
		WHERE m.status = ANY($1)
		  AND m.scheduled_at <= $2
		  AND m.attempts < m.max_attempts
		ORDER BY m.scheduled_at ASC
		LIMIT $3;
    `

	rows, err := r.db.QueryContext(ctx, query, pq.Array(firstSendStatuses), now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select due messages: %w", err)
	}

	return collect(rows)
}

// DueForRetry returns FAILED messages with attempts left whose retry time has
// passed. A FAILED row without next_retry_at is terminal and never selected.
func (r *Repository) DueForRetry(ctx context.Context, now time.Time, limit int) ([]model.Message, error) {
	query := selectColumns + `
		WHERE m.status = $1
		  AND m.attempts < m.max_attempts
		  AND m.next_retry_at <= $2
		ORDER BY m.next_retry_at ASC
		LIMIT $3;
    `

	rows, err := r.db.QueryContext(ctx, query, model.StatusFailed, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select retriable messages: %w", err)
	}

	return collect(rows)
}

// TryLock moves the message to PROCESSING if it is still selectable and due
// at now, and returns the row as locked. It is a single conditional update, so
// concurrent callers racing on the same id get exactly one winner. A SCHEDULED
// row whose time has not come has no winner.
//
// The returned row is the only valid input for the attempt: callers must not
// rely on a snapshot read before the lock. Its LockedAt is the lock token for
// ReleaseLock and UpdateAfterAttempt.
func (r *Repository) TryLock(ctx context.Context, id uuid.UUID, now time.Time) (model.Message, bool, error) {
	query := `
		WITH m AS (
		    UPDATE messages
		    SET status = 'PROCESSING', locked_at = $2, updated_at = $2
		    WHERE id = $1
		      AND attempts < max_attempts
		      AND (
		          (status = ANY($3) AND scheduled_at <= $2)
		          OR (status = 'FAILED' AND next_retry_at <= $2)
		      )
		    RETURNING *
		)` + messageColumns + `
		FROM m` + messageJoins + `;
    `

	msg, err := scanMessage(r.db.Master.QueryRowContext(ctx, query, id, now, pq.Array(firstSendStatuses)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Message{}, false, nil
		}

		return model.Message{}, false, fmt.Errorf("failed to lock message: %w", err)
	}

	return msg, true, nil
}

// ReleaseLock gives up a lock without recording an attempt. A message that was
// never attempted goes back to QUEUED, one that was goes back to FAILED with its
// retry time intact. It returns the status the row was released to.
func (r *Repository) ReleaseLock(ctx context.Context, id uuid.UUID, lockedAt time.Time) (model.Status, error) {
	query := `
		UPDATE messages
		SET status = CASE WHEN attempts > 0 THEN 'FAILED' ELSE 'QUEUED' END,
		    locked_at = NULL, updated_at = NOW()
		WHERE id = $1 AND status = 'PROCESSING' AND locked_at = $2
		RETURNING status;
    `

	var status model.Status
	err := r.db.Master.QueryRowContext(ctx, query, id, lockedAt).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLockLost
		}

		return "", fmt.Errorf("failed to release message: %w", err)
	}

	return status, nil
}

// UpdateAfterAttempt persists the outcome of a dispatch attempt. It only
// applies while the row is still PROCESSING under out.LockedAt, so a reclaimed
// or relocked row is never overwritten. Attempts never decrease.
func (r *Repository) UpdateAfterAttempt(ctx context.Context, out model.AttemptOutcome) error {
	var (
		res sql.Result
		err error
	)

	switch out.Status {
	case model.StatusSent:
		query := `
			UPDATE messages
			SET status = 'SENT', attempts = GREATEST(attempts, $2), next_retry_at = NULL,
			    provider = $3, external_id = $4, last_error = '', error_details = '',
			    sent_at = $5, locked_at = NULL, updated_at = $5
			WHERE id = $1 AND status = 'PROCESSING' AND locked_at = $6;
        `
		res, err = r.db.ExecContext(
			ctx, query, out.MessageID, out.Attempts, out.Provider, out.ExternalID, out.At, out.LockedAt,
		)
	case model.StatusFailed:
		query := `
			UPDATE messages
			SET status = 'FAILED', attempts = GREATEST(attempts, $2), next_retry_at = $3,
			    provider = $4, last_error = $5, error_details = $6,
			    locked_at = NULL, updated_at = $7
			WHERE id = $1 AND status = 'PROCESSING' AND locked_at = $8;
        `
		res, err = r.db.ExecContext(
			ctx, query, out.MessageID, out.Attempts, out.NextRetryAt, out.Provider,
			truncate(out.LastError), truncate(out.ErrorDetails), out.At, out.LockedAt,
		)
	default:
		return fmt.Errorf("invalid attempt outcome status %q", out.Status)
	}
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrLockLost
	}

	return nil
}

// ReclaimStale fails messages left in PROCESSING since before cutoff, e.g. by
// a crash mid-dispatch. The lost attempt is counted; messages with attempts
// left become due at now, the rest are terminal.
func (r *Repository) ReclaimStale(ctx context.Context, cutoff, now time.Time) (int64, error) {
	query := `
		UPDATE messages
		SET status = 'FAILED',
		    attempts = LEAST(attempts + 1, max_attempts),
		    next_retry_at = CASE WHEN attempts + 1 < max_attempts THEN $2::timestamptz ELSE NULL END,
		    last_error = 'processing timeout',
		    error_details = 'message was locked longer than the processing timeout',
		    locked_at = NULL,
		    updated_at = $2
		WHERE status = 'PROCESSING' AND locked_at < $1;
    `

	res, err := r.db.ExecContext(ctx, query, cutoff, now)
	if err != nil {
		return 0, fmt.Errorf("failed to reclaim messages: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (model.Message, error) {
	var m model.Message
	err := row.Scan(
		&m.ID, &m.ContactID, &m.Recipient, &m.TemplateID, &m.TemplateKey, &m.Status,
		&m.Variables, &m.Content.Subject, &m.Content.HTML, &m.Content.Text, &m.From,
		&m.ScheduledAt, &m.Attempts, &m.MaxAttempts, &m.NextRetryAt,
		&m.Provider, &m.ExternalID, &m.LastError, &m.ErrorDetails,
		&m.SentAt, &m.CreatedAt, &m.UpdatedAt, &m.LockedAt,
	)

	return m, err
}

func collect(rows *sql.Rows) ([]model.Message, error) {
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}

		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}

	return messages, nil
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxErrorLen {
		return s
	}

	return string([]rune(s)[:maxErrorLen])
}
