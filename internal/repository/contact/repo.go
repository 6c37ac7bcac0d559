package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/mail-dispatcher/internal/model"
)

var ErrContactNotFound = errors.New("contact not found")

// Repository provides access to the contacts table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new contact repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByEmail returns the contact with the given address.
func (r *Repository) GetByEmail(ctx context.Context, email string) (model.Contact, error) {
	query := `
		SELECT id, email, name, created_at
		FROM contacts
		WHERE email = $1;
    `

	var c model.Contact
	err := r.db.Master.QueryRowContext(ctx, query, email).Scan(&c.ID, &c.Email, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Contact{}, ErrContactNotFound
		}

		return model.Contact{}, fmt.Errorf("failed to get contact: %w", err)
	}

	return c, nil
}

// GetOrCreate returns the contact for email, inserting it on first reference.
// A non-empty name replaces the stored one.
func (r *Repository) GetOrCreate(ctx context.Context, email, name string) (model.Contact, error) {
	query := `
		INSERT INTO contacts (email, name)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE
		    SET name = COALESCE(NULLIF(EXCLUDED.name, ''), contacts.name)
		RETURNING id, email, name, created_at;
    `

	var c model.Contact
	err := r.db.Master.QueryRowContext(ctx, query, email, name).Scan(&c.ID, &c.Email, &c.Name, &c.CreatedAt)
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to upsert contact: %w", err)
	}

	return c, nil
}
