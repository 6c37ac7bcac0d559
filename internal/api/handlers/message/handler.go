package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/mail-dispatcher/internal/api/dto"
	"github.com/aliskhannn/mail-dispatcher/internal/api/respond"
	"github.com/aliskhannn/mail-dispatcher/internal/config"
	"github.com/aliskhannn/mail-dispatcher/internal/model"
	msgrepo "github.com/aliskhannn/mail-dispatcher/internal/repository/message"
	"github.com/aliskhannn/mail-dispatcher/internal/repository/template"
	msgsvc "github.com/aliskhannn/mail-dispatcher/internal/service/message"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// messageService defines the interface that the Handler depends on.
//
// It abstracts accepting send requests and querying the message log.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/message/mock.go -package=mocks
type messageService interface {
	Send(ctx context.Context, strategy retry.Strategy, req model.SendRequest) (model.SendResult, error)
	GetMessage(ctx context.Context, id uuid.UUID) (model.Message, error)
	ListMessages(ctx context.Context, status model.Status, limit, offset int) ([]model.Message, error)
	GetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error)
}

// Handler handles HTTP requests related to messages.
//
// It provides endpoints for sending email, listing messages and reading a
// single message or its status.
type Handler struct {
	service   messageService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
//
// Parameters:
//   - s: implementation of messageService
//   - v: validator instance for request validation
//   - cfg: configuration instance
func NewHandler(
	s messageService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Send handles HTTP POST requests to send an email to one or more recipients.
//
// It validates the request body and queues one message per recipient. The
// response confirms acceptance only, delivery happens asynchronously.
func (h *Handler) Send(c *ginext.Context) {
	var req dto.SendRequest

	// Decode JSON request body into SendRequest struct.
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	// Validate request fields using go-playground/validator.
	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	// Queue messages using the service layer.
	result, err := h.service.Send(c.Request.Context(), h.cfg.Retry, req.ToModel())
	if err != nil {
		switch {
		case errors.Is(err, msgsvc.ErrValidation):
			zlog.Logger.Warn().Err(err).Msg("invalid send request")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		case errors.Is(err, template.ErrTemplateNotFound):
			zlog.Logger.Warn().Err(err).Str("template", req.TemplateName).Msg("template not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("template not found"))
		default:
			zlog.Logger.Error().Err(err).Msg("failed to send messages")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	// Respond with the queued and skipped recipients.
	respond.Accepted(c.Writer, result)
}

// List handles HTTP GET requests to list messages.
//
// It supports optional status, limit and offset query parameters.
func (h *Handler) List(c *ginext.Context) {
	status := model.Status(c.Query("status"))
	if status != "" && !validStatus(status) {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid status %q", status))
		return
	}

	limit, err := queryInt(c, "limit", defaultListLimit)
	if err != nil || limit < 1 || limit > maxListLimit {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("limit must be between 1 and %d", maxListLimit))
		return
	}

	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid offset"))
		return
	}

	// Fetch messages from the service layer.
	messages, err := h.service.ListMessages(c.Request.Context(), status, limit, offset)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list messages")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if messages == nil {
		messages = []model.Message{}
	}

	respond.OK(c.Writer, messages)
}

// Get handles HTTP GET requests to retrieve a single message.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	msg, err := h.service.GetMessage(c.Request.Context(), id)
	if err != nil {
		h.failLookup(c, id, err)
		return
	}

	respond.OK(c.Writer, msg)
}

// GetStatus handles HTTP GET requests to retrieve the status of a message.
//
// It expects the message ID as a URL parameter and returns its status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Fetch message status from service.
	status, err := h.service.GetStatus(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		h.failLookup(c, id, err)
		return
	}

	respond.OK(c.Writer, status)
}

func (h *Handler) failLookup(c *ginext.Context, id uuid.UUID, err error) {
	if errors.Is(err, msgrepo.ErrMessageNotFound) {
		zlog.Logger.Warn().Interface("id", id).Err(err).Msg("message not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("message not found"))
		return
	}

	zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to get message")
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}

// parseID extracts the message ID from URL parameters and writes a 400
// response when it is missing or malformed.
func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}

func queryInt(c *ginext.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}

	return strconv.Atoi(raw)
}

func validStatus(s model.Status) bool {
	switch s {
	case model.StatusScheduled, model.StatusQueued, model.StatusProcessing, model.StatusSent, model.StatusFailed:
		return true
	default:
		return false
	}
}
