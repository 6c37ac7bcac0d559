package optout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/mail-dispatcher/internal/api/dto"
	"github.com/aliskhannn/mail-dispatcher/internal/api/respond"
	optoutrepo "github.com/aliskhannn/mail-dispatcher/internal/repository/optout"
	"github.com/aliskhannn/mail-dispatcher/internal/repository/template"
	optoutsvc "github.com/aliskhannn/mail-dispatcher/internal/service/optout"
)

// optOutGate defines the opt-out operations used by the Handler.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/optout/mock.go -package=mocks
type optOutGate interface {
	IsOptedOut(ctx context.Context, email, templateKey string) optoutsvc.Result
	Add(ctx context.Context, email, templateKey, reason string) error
	Remove(ctx context.Context, email, templateKey string) error
}

// Handler handles HTTP requests that manage recipient opt-outs.
type Handler struct {
	gate      optOutGate
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(g optOutGate, v *validator.Validate) *Handler {
	return &Handler{gate: g, validator: v}
}

// Add handles HTTP POST requests that opt a recipient out of a template.
func (h *Handler) Add(c *ginext.Context) {
	var req dto.OptOutRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if err := h.gate.Add(c.Request.Context(), req.Email, req.Template, req.Reason); err != nil {
		h.fail(c, err, "failed to add opt-out")
		return
	}

	respond.Created(c.Writer, optoutsvc.Result{OptedOut: true, Reason: req.Reason})
}

// Remove handles HTTP DELETE requests. Email and template are read from the
// query string.
func (h *Handler) Remove(c *ginext.Context) {
	email, key, ok := pairFromQuery(c)
	if !ok {
		return
	}

	if err := h.gate.Remove(c.Request.Context(), email, key); err != nil {
		h.fail(c, err, "failed to remove opt-out")
		return
	}

	respond.OK(c.Writer, optoutsvc.Result{OptedOut: false})
}

// Check handles HTTP GET requests that report whether a recipient is opted
// out of a template.
func (h *Handler) Check(c *ginext.Context) {
	email, key, ok := pairFromQuery(c)
	if !ok {
		return
	}

	respond.OK(c.Writer, h.gate.IsOptedOut(c.Request.Context(), email, key))
}

func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, template.ErrTemplateNotFound):
		zlog.Logger.Warn().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("template not found"))
	case errors.Is(err, optoutrepo.ErrOptOutNotFound):
		zlog.Logger.Warn().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("opt-out not found"))
	default:
		zlog.Logger.Error().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func pairFromQuery(c *ginext.Context) (string, string, bool) {
	email, key := c.Query("email"), c.Query("template")
	if email == "" || key == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("email and template are required"))
		return "", "", false
	}

	return email, key, true
}
