package provider

import (
	"context"
	"strings"
)

// Gateway selects a backend by provider identifier.
type Gateway struct {
	senders  map[string]Sender
	fallback string
}

// NewGateway registers senders under their names. fallback is used when a
// message names no provider or an unknown one and must itself be registered.
func NewGateway(fallback string, senders ...Sender) *Gateway {
	m := make(map[string]Sender, len(senders))
	for _, s := range senders {
		m[strings.ToLower(s.Name())] = s
	}

	return &Gateway{senders: m, fallback: strings.ToLower(fallback)}
}

// Resolve returns the backend registered under name, or the default one.
func (g *Gateway) Resolve(name string) Sender {
	if s, ok := g.senders[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}

	return g.senders[g.fallback]
}

// Has reports whether a backend is registered under name.
func (g *Gateway) Has(name string) bool {
	_, ok := g.senders[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Send dispatches e through the resolved backend and returns the response
// along with the name of the backend that handled it.
func (g *Gateway) Send(ctx context.Context, name string, e Email) (Response, string) {
	s := g.Resolve(name)
	if s == nil {
		return Response{Code: 0, Message: "no provider configured", Retriable: false}, name
	}

	return s.Send(ctx, e), s.Name()
}
