package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/mail-dispatcher/internal/model"
	"github.com/aliskhannn/mail-dispatcher/internal/rabbitmq/queue"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

type dispatchQueue interface {
	Consume(ctx context.Context, out chan<- queue.DispatchMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.DispatchMessage, strategy retry.Strategy)
}

type statusService interface {
	GetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error)
}

// Dispatcher runs a pool of workers consuming the dispatch queue.
type Dispatcher struct {
	queue   dispatchQueue
	handler messageHandler
	service statusService
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(q dispatchQueue, h messageHandler, s statusService) *Dispatcher {
	return &Dispatcher{
		queue:   q,
		handler: h,
		service: s,
	}
}

// Run consumes the queue with workerCount workers until ctx is done.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan queue.DispatchMessage, workerCount*10)

	go func() {
		if err := d.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Debug().Int("worker", id).Msg("worker started")

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Debug().Int("worker", id).Msg("worker shutting down")
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Debug().Int("worker", id).Msg("channel closed, worker shutting down")
						return
					}

					d.handle(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("dispatcher stopped")
}

func (d *Dispatcher) handle(ctx context.Context, msg queue.DispatchMessage, strategy retry.Strategy) {
	// shortcut only, the orchestrator's lock decides
	status, err := d.service.GetStatus(ctx, strategy, msg.ID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("failed to get message status")
		return
	}

	if !status.Selectable() {
		zlog.Logger.Debug().Str("id", msg.ID.String()).Str("status", string(status)).Msg("message not dispatchable, skipping")
		return
	}

	d.handler.HandleMessage(ctx, msg, strategy)
}
