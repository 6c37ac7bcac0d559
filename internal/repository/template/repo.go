package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/mail-dispatcher/internal/model"
)

var ErrTemplateNotFound = errors.New("template not found")

// Repository reads templates. Templates are owned by another service,
// the delivery pipeline never writes them.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new template repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByKey returns the template identified by key.
func (r *Repository) GetByKey(ctx context.Context, key string) (model.Template, error) {
	query := `
		SELECT id, key, subject, html_body, text_body
		FROM templates
		WHERE key = $1;
    `

	var t model.Template
	err := r.db.Master.QueryRowContext(ctx, query, key).Scan(&t.ID, &t.Key, &t.Subject, &t.HTML, &t.Text)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Template{}, ErrTemplateNotFound
		}

		return model.Template{}, fmt.Errorf("failed to get template: %w", err)
	}

	return t, nil
}
