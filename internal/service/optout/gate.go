package optout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/mail-dispatcher/internal/model"
	"github.com/aliskhannn/mail-dispatcher/internal/repository/contact"
	"github.com/aliskhannn/mail-dispatcher/internal/repository/optout"
)

//go:generate mockgen -source=gate.go -destination=../../mocks/service/optout/mock.go -package=mocks

type optOutRepository interface {
	Find(ctx context.Context, email, templateKey string) (string, bool, error)
	Upsert(ctx context.Context, contactID, templateID uuid.UUID, reason string) error
	Delete(ctx context.Context, contactID, templateID uuid.UUID) error
}

type contactRepository interface {
	GetByEmail(ctx context.Context, email string) (model.Contact, error)
	GetOrCreate(ctx context.Context, email, name string) (model.Contact, error)
}

type templateRepository interface {
	GetByKey(ctx context.Context, key string) (model.Template, error)
}

// Result is the answer of an opt-out check.
type Result struct {
	OptedOut bool   `json:"opted_out"`
	Reason   string `json:"reason,omitempty"`
}

// Gate decides whether a recipient has opted out of a template.
type Gate struct {
	optOuts   optOutRepository
	contacts  contactRepository
	templates templateRepository
}

// NewGate creates a new opt-out gate.
func NewGate(o optOutRepository, c contactRepository, t templateRepository) *Gate {
	return &Gate{optOuts: o, contacts: c, templates: t}
}

// IsOptedOut checks the opt-out of email from the template with key. An
// unknown contact is not opted out. Storage errors fail open: the check is
// logged and reported as not opted out.
func (g *Gate) IsOptedOut(ctx context.Context, email, templateKey string) Result {
	reason, found, err := g.optOuts.Find(ctx, model.NormalizeEmail(email), templateKey)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("email", email).Str("template", templateKey).Msg("opt-out check failed, allowing delivery")
		return Result{}
	}

	return Result{OptedOut: found, Reason: reason}
}

// Add records an opt-out. Adding an existing pair replaces its reason.
func (g *Gate) Add(ctx context.Context, email, templateKey, reason string) error {
	t, err := g.templates.GetByKey(ctx, templateKey)
	if err != nil {
		return fmt.Errorf("get template: %w", err)
	}

	c, err := g.contacts.GetOrCreate(ctx, model.NormalizeEmail(email), "")
	if err != nil {
		return fmt.Errorf("get contact: %w", err)
	}

	if err := g.optOuts.Upsert(ctx, c.ID, t.ID, reason); err != nil {
		return fmt.Errorf("add opt-out: %w", err)
	}

	return nil
}

// Remove deletes an opt-out. It returns optout.ErrOptOutNotFound when the
// contact or the row does not exist.
func (g *Gate) Remove(ctx context.Context, email, templateKey string) error {
	t, err := g.templates.GetByKey(ctx, templateKey)
	if err != nil {
		return fmt.Errorf("get template: %w", err)
	}

	c, err := g.contacts.GetByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			return optout.ErrOptOutNotFound
		}

		return fmt.Errorf("get contact: %w", err)
	}

	if err := g.optOuts.Delete(ctx, c.ID, t.ID); err != nil {
		return fmt.Errorf("remove opt-out: %w", err)
	}

	return nil
}
