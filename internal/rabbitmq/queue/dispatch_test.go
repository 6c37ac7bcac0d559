package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan []byte)
	out := make(chan DispatchMessage, 1)

	go forward(ctx, in, out)

	id := uuid.New()
	in <- []byte("not json")
	in <- []byte(`{"id":"` + id.String() + `"}`)

	select {
	case msg := <-out:
		assert.Equal(t, id, msg.ID)
	case <-time.After(time.Second):
		t.Fatal("message was not forwarded")
	}
}

func TestForwardStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan []byte)
	done := make(chan struct{})

	go func() {
		forward(ctx, in, make(chan DispatchMessage))
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forward did not return after cancel")
	}
}

func TestNamesWithDefaults(t *testing.T) {
	n := Names{Queue: "custom"}.withDefaults()
	require.Equal(t, "custom", n.Queue)
	assert.Equal(t, DefaultNames.Exchange, n.Exchange)
	assert.Equal(t, DefaultNames.DLQ, n.DLQ)
	assert.Equal(t, DefaultNames.RoutingKey, n.RoutingKey)
}
