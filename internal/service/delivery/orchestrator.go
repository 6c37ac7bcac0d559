// Package delivery drives a single message through one dispatch attempt:
// lock, render, send, and persist the outcome with the retry decision.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/mail-dispatcher/internal/backoff"
	"github.com/aliskhannn/mail-dispatcher/internal/clock"
	"github.com/aliskhannn/mail-dispatcher/internal/model"
	"github.com/aliskhannn/mail-dispatcher/internal/provider"
	"github.com/aliskhannn/mail-dispatcher/internal/render"
)

//go:generate mockgen -source=orchestrator.go -destination=../../mocks/service/delivery/mock.go -package=mocks

type messageStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Message, error)
	TryLock(ctx context.Context, id uuid.UUID, now time.Time) (model.Message, bool, error)
	ReleaseLock(ctx context.Context, id uuid.UUID, lockedAt time.Time) (model.Status, error)
	UpdateAfterAttempt(ctx context.Context, out model.AttemptOutcome) error
}

type contentRenderer interface {
	Render(ctx context.Context, key string, vars model.Variables) (model.Content, error)
}

type gateway interface {
	Send(ctx context.Context, name string, e provider.Email) (provider.Response, string)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Outcome describes what Process did with a message.
type Outcome string

const (
	// OutcomeSkipped means the lock was not acquired, another worker owns the message.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeSent means the provider accepted the message.
	OutcomeSent Outcome = "sent"
	// OutcomeRetry means the attempt failed and a retry is scheduled.
	OutcomeRetry Outcome = "retry"
	// OutcomeFailed means the attempt failed terminally.
	OutcomeFailed Outcome = "failed"
)

// Options configures an Orchestrator.
type Options struct {
	Policy      backoff.Policy
	Clock       clock.Clock
	SendTimeout time.Duration
	DefaultFrom string
	Strategy    retry.Strategy
}

// Orchestrator processes due messages.
type Orchestrator struct {
	store    messageStore
	renderer contentRenderer
	gateway  gateway
	cache    cache
	opts     Options
}

// NewOrchestrator creates a new Orchestrator. cache may be nil.
func NewOrchestrator(s messageStore, r contentRenderer, g gateway, c cache, opts Options) *Orchestrator {
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Strategy.Attempts < 1 {
		opts.Strategy.Attempts = 1
	}

	return &Orchestrator{store: s, renderer: r, gateway: g, cache: c, opts: opts}
}

// ProcessByID loads the message and processes it.
func (o *Orchestrator) ProcessByID(ctx context.Context, id uuid.UUID) (Outcome, error) {
	msg, err := o.store.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get message: %w", err)
	}

	return o.Process(ctx, msg)
}

// Process makes one dispatch attempt for msg. Only msg.ID is used: the
// attempt works on the row returned by the lock, never on the caller's
// snapshot. An error is returned only when storage failed; dispatch failures
// are recorded on the message.
func (o *Orchestrator) Process(ctx context.Context, msg model.Message) (Outcome, error) {
	now := o.opts.Clock.Now()

	locked, ok, err := o.store.TryLock(ctx, msg.ID, now)
	if err != nil {
		return "", fmt.Errorf("lock message: %w", err)
	}
	if !ok {
		zlog.Logger.Debug().Str("id", msg.ID.String()).Msg("message is locked or no longer due, skipping")
		return OutcomeSkipped, nil
	}

	token := now
	if locked.LockedAt != nil {
		token = *locked.LockedAt
	}

	o.cacheStatus(ctx, locked.ID, model.StatusProcessing)

	content, err := o.content(ctx, locked)
	if err != nil {
		if errors.Is(err, render.ErrNotFound) || errors.Is(err, errNoContent) {
			return o.finish(ctx, locked, token, "", provider.Response{Code: http.StatusNotFound, Message: err.Error()})
		}

		status, relErr := o.store.ReleaseLock(ctx, locked.ID, token)
		if relErr != nil {
			zlog.Logger.Error().Err(relErr).Str("id", locked.ID.String()).Msg("failed to release message lock")
		} else {
			o.cacheStatus(ctx, locked.ID, status)
		}

		return "", fmt.Errorf("render message: %w", err)
	}

	from := locked.From
	if from == "" {
		from = o.opts.DefaultFrom
	}

	sendCtx := ctx
	if o.opts.SendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, o.opts.SendTimeout)
		defer cancel()
	}

	resp, used := o.gateway.Send(sendCtx, locked.Provider, provider.Email{
		To:      []string{locked.Recipient},
		From:    from,
		Subject: content.Subject,
		Text:    content.Text,
		HTML:    content.HTML,
	})

	return o.finish(ctx, locked, token, used, resp)
}

var errNoContent = errors.New("message has neither a template nor content")

func (o *Orchestrator) content(ctx context.Context, msg model.Message) (model.Content, error) {
	if msg.HasTemplate() {
		return o.renderer.Render(ctx, msg.TemplateKey, msg.Variables)
	}

	if msg.Content.Empty() {
		return model.Content{}, errNoContent
	}

	return msg.Content, nil
}

// finish turns the provider response into an attempt outcome and persists it
// under the lock token. msg must be the locked row.
func (o *Orchestrator) finish(ctx context.Context, msg model.Message, token time.Time, used string, resp provider.Response) (Outcome, error) {
	now := o.opts.Clock.Now()
	attempts := msg.Attempts + 1

	out := model.AttemptOutcome{
		MessageID: msg.ID,
		LockedAt:  token,
		Attempts:  attempts,
		Provider:  used,
		At:        now,
	}

	result := OutcomeSent
	if resp.OK() {
		out.Status = model.StatusSent
		out.ExternalID = resp.ExternalID()
	} else {
		out.Status = model.StatusFailed
		out.LastError = lastError(resp)
		out.ErrorDetails = resp.Message

		retriable := resp.Retriable || backoff.IsRetriableFailure(resp.Code, resp.Message)
		if retriable && backoff.ShouldRetry(attempts, msg.MaxAttempts) {
			next := o.opts.Policy.NextRetryAt(now, attempts-1)
			out.NextRetryAt = &next
			result = OutcomeRetry
		} else {
			result = OutcomeFailed
		}
	}

	err := retry.Do(func() error {
		return o.store.UpdateAfterAttempt(ctx, out)
	}, o.opts.Strategy)
	if err != nil {
		return "", fmt.Errorf("update message: %w", err)
	}

	o.cacheStatus(ctx, msg.ID, out.Status)

	log := zlog.Logger.Info()
	if result != OutcomeSent {
		log = zlog.Logger.Warn()
	}
	log.Str("id", msg.ID.String()).
		Str("provider", used).
		Int("code", resp.Code).
		Int("attempts", attempts).
		Str("outcome", string(result)).
		Msg("dispatch attempt finished")

	return result, nil
}

func (o *Orchestrator) cacheStatus(ctx context.Context, id uuid.UUID, status model.Status) {
	if o.cache == nil {
		return
	}

	if err := o.cache.SetWithRetry(ctx, o.opts.Strategy, model.StatusCacheKey(id), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache message status")
	}
}

func lastError(resp provider.Response) string {
	if resp.Code == 0 {
		return "network error"
	}

	if text := http.StatusText(resp.Code); text != "" {
		return fmt.Sprintf("%d %s", resp.Code, text)
	}

	return fmt.Sprintf("status %d", resp.Code)
}
