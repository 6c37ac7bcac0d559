package scheduler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/mail-dispatcher/internal/api/respond"
	"github.com/aliskhannn/mail-dispatcher/internal/scheduler"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/scheduler/mock.go -package=mocks
type ticker interface {
	Tick(ctx context.Context) (scheduler.TickResult, error)
}

// Handler exposes a manual scheduler trigger.
type Handler struct {
	ticker ticker
}

// NewHandler creates a new Handler instance.
func NewHandler(t ticker) *Handler {
	return &Handler{ticker: t}
}

// Tick runs one scheduler tick and reports how many messages it picked up.
// Delivery of those messages continues in the background.
func (h *Handler) Tick(c *ginext.Context) {
	res, err := h.ticker.Tick(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("manual scheduler tick failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, res)
}
