package dispatch

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/mail-dispatcher/internal/rabbitmq/queue"
	"github.com/aliskhannn/mail-dispatcher/internal/repository/message"
	"github.com/aliskhannn/mail-dispatcher/internal/service/delivery"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/dispatch/mock.go -package=mocks
type deliveryService interface {
	ProcessByID(ctx context.Context, id uuid.UUID) (delivery.Outcome, error)
}

// Handler processes dispatch messages taken off the queue.
type Handler struct {
	service deliveryService
}

// NewHandler creates a new Handler.
func NewHandler(svc deliveryService) *Handler {
	return &Handler{
		service: svc,
	}
}

// HandleMessage makes one dispatch attempt for the message named by msg.
// Storage errors are retried with strategy; if they persist the message is
// left to the scheduler.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.DispatchMessage, strategy retry.Strategy) {
	var outcome delivery.Outcome

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			var err error
			outcome, err = h.service.ProcessByID(ctx, msg.ID)
			return err
		}
	}, strategy)

	if err != nil {
		if errors.Is(err, message.ErrMessageNotFound) {
			zlog.Logger.Warn().Str("id", msg.ID.String()).Msg("Handle Message: message not found, dropping")
			return
		}

		zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("Handle Message: failed to process message, leaving it to the scheduler")
		return
	}

	zlog.Logger.Info().Str("id", msg.ID.String()).Str("outcome", string(outcome)).Msg("Handle Message: message processed")
}
