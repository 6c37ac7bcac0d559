package dispatch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/mail-dispatcher/internal/mocks/rabbitmq/handlers/dispatch"
	"github.com/aliskhannn/mail-dispatcher/internal/rabbitmq/queue"
	"github.com/aliskhannn/mail-dispatcher/internal/repository/message"
	"github.com/aliskhannn/mail-dispatcher/internal/service/delivery"
)

func TestHandler_HandleMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockdeliveryService(ctrl)
	h := NewHandler(mockService)

	msg := queue.DispatchMessage{ID: uuid.New()}
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond}

	mockService.EXPECT().
		ProcessByID(gomock.Any(), msg.ID).
		Return(delivery.OutcomeSent, nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_RetriesStorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockdeliveryService(ctrl)
	h := NewHandler(mockService)

	msg := queue.DispatchMessage{ID: uuid.New()}
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}

	gomock.InOrder(
		mockService.EXPECT().ProcessByID(gomock.Any(), msg.ID).Return(delivery.Outcome(""), errors.New("connection reset")),
		mockService.EXPECT().ProcessByID(gomock.Any(), msg.ID).Return(delivery.OutcomeRetry, nil),
	)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockdeliveryService(ctrl)
	h := NewHandler(mockService)

	msg := queue.DispatchMessage{ID: uuid.New()}
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().
		ProcessByID(gomock.Any(), msg.ID).
		Return(delivery.Outcome(""), fmt.Errorf("get message: %w", message.ErrMessageNotFound))

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockdeliveryService(ctrl)
	h := NewHandler(mockService)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h.HandleMessage(ctx, queue.DispatchMessage{ID: uuid.New()}, retry.Strategy{Attempts: 1, Delay: time.Millisecond})
}
