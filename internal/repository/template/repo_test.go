package template

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestGetByKey(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	query := regexp.QuoteMeta(`
		SELECT id, key, subject, html_body, text_body
		FROM templates
		WHERE key = $1;
    `)

	mock.ExpectQuery(query).
		WithArgs("welcome").
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "subject", "html_body", "text_body"}).
			AddRow(id.String(), "welcome", "Hi {{name}}", "<p>Hello {{name}}</p>", "Hello {{name}}"))

	tpl, err := repo.GetByKey(context.Background(), "welcome")
	assert.NoError(t, err)
	assert.Equal(t, id, tpl.ID)
	assert.Equal(t, "Hi {{name}}", tpl.Subject)
	assert.Equal(t, "Hello {{name}}", tpl.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByKey_Errors(t *testing.T) {
	repo, mock := setupMockDB(t)

	query := regexp.QuoteMeta(`SELECT id, key, subject, html_body, text_body`)

	mock.ExpectQuery(query).WithArgs("ghost").WillReturnError(sql.ErrNoRows)
	_, err := repo.GetByKey(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	mock.ExpectQuery(query).WithArgs("welcome").WillReturnError(errors.New("connection reset"))
	_, err = repo.GetByKey(context.Background(), "welcome")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTemplateNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
