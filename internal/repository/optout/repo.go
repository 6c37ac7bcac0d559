package optout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
)

var ErrOptOutNotFound = errors.New("opt-out not found")

// Repository provides access to the opt_outs table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new opt-out repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Find looks up the opt-out of the contact with email from the template with key.
// found is false when either the contact or the row does not exist.
func (r *Repository) Find(ctx context.Context, email, templateKey string) (reason string, found bool, err error) {
	query := `
		SELECT o.reason
		FROM opt_outs o
		JOIN contacts c ON c.id = o.contact_id
		JOIN templates t ON t.id = o.template_id
		WHERE c.email = $1 AND t.key = $2;
    `

	err = r.db.Master.QueryRowContext(ctx, query, email, templateKey).Scan(&reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("failed to find opt-out: %w", err)
	}

	return reason, true, nil
}

// Upsert records the opt-out, replacing the reason if the pair already exists.
func (r *Repository) Upsert(ctx context.Context, contactID, templateID uuid.UUID, reason string) error {
	query := `
		INSERT INTO opt_outs (contact_id, template_id, reason)
		VALUES ($1, $2, $3)
		ON CONFLICT (contact_id, template_id) DO UPDATE
		    SET reason = EXCLUDED.reason;
    `

	if _, err := r.db.ExecContext(ctx, query, contactID, templateID, reason); err != nil {
		return fmt.Errorf("failed to upsert opt-out: %w", err)
	}

	return nil
}

// Delete removes the opt-out for the pair.
func (r *Repository) Delete(ctx context.Context, contactID, templateID uuid.UUID) error {
	query := `
		DELETE FROM opt_outs
		WHERE contact_id = $1 AND template_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, contactID, templateID)
	if err != nil {
		return fmt.Errorf("failed to delete opt-out: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrOptOutNotFound
	}

	return nil
}
