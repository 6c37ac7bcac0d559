package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Names holds the exchange and queue names the dispatch queue is declared with.
type Names struct {
	Exchange   string
	Queue      string
	DLQ        string
	RoutingKey string
}

// DefaultNames are used for any name left empty.
var DefaultNames = Names{
	Exchange:   "mail-exchange",
	Queue:      "mail-dispatch",
	DLQ:        "mail-dispatch-dlq",
	RoutingKey: "dispatch",
}

// DispatchMessage asks a worker to process the message with ID right away.
// The message row is the source of truth, the payload carries only its id.
type DispatchMessage struct {
	ID uuid.UUID `json:"id"`
}

// DispatchQueue is the fast path for messages that are due on creation.
type DispatchQueue struct {
	Publisher  *rabbitmq.Publisher
	Consumer   *rabbitmq.Consumer
	routingKey string
}

// NewDispatchQueue declares the exchange, the dispatch queue and its
// dead-letter queue on ch.
func NewDispatchQueue(ch *rabbitmq.Channel, names Names) (*DispatchQueue, error) {
	names = names.withDefaults()

	exchange := rabbitmq.NewExchange(names.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(names.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": names.DLQ,
	}

	mainQ, err := qm.DeclareQueue(names.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare dispatch queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, names.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the dispatch queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &DispatchQueue{Publisher: pub, Consumer: cons, routingKey: names.RoutingKey}, nil
}

// Publish enqueues msg.
func (q *DispatchQueue) Publish(msg DispatchMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume decodes deliveries into out until ctx is done. It blocks while the
// underlying consumer runs.
func (q *DispatchQueue) Consume(ctx context.Context, out chan<- DispatchMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go forward(ctx, msgChan, out)

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

func forward(ctx context.Context, in <-chan []byte, out chan<- DispatchMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-in:
			if !ok {
				return
			}

			var msg DispatchMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal dispatch message")
				continue
			}

			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (n Names) withDefaults() Names {
	if n.Exchange == "" {
		n.Exchange = DefaultNames.Exchange
	}
	if n.Queue == "" {
		n.Queue = DefaultNames.Queue
	}
	if n.DLQ == "" {
		n.DLQ = DefaultNames.DLQ
	}
	if n.RoutingKey == "" {
		n.RoutingKey = DefaultNames.RoutingKey
	}

	return n
}
