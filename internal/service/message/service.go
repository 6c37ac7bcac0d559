package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/mail-dispatcher/internal/clock"
	"github.com/aliskhannn/mail-dispatcher/internal/model"
	"github.com/aliskhannn/mail-dispatcher/internal/rabbitmq/queue"
	"github.com/aliskhannn/mail-dispatcher/internal/service/optout"
)

// ErrValidation is returned for malformed or conflicting send requests.
var ErrValidation = errors.New("validation error")

//go:generate mockgen -source=service.go -destination=../../mocks/service/message/mock.go -package=mocks

type messageRepository interface {
	CreateQueued(ctx context.Context, msg model.Message, now time.Time) (model.Message, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Message, error)
	List(ctx context.Context, status model.Status, limit, offset int) ([]model.Message, error)
}

type contactRepository interface {
	GetOrCreate(ctx context.Context, email, name string) (model.Contact, error)
}

type templateRepository interface {
	GetByKey(ctx context.Context, key string) (model.Template, error)
}

type optOutGate interface {
	IsOptedOut(ctx context.Context, email, templateKey string) optout.Result
}

type dispatchPublisher interface {
	Publish(msg queue.DispatchMessage, strategy retry.Strategy) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Defaults are applied to send requests that leave the field empty.
type Defaults struct {
	From        string
	Provider    string
	MaxAttempts int
}

// Service accepts send requests and answers message queries.
type Service struct {
	messages  messageRepository
	contacts  contactRepository
	templates templateRepository
	gate      optOutGate
	queue     dispatchPublisher
	cache     cache
	clock     clock.Clock
	defaults  Defaults
}

// NewService creates a new message service. queue and cache may be nil.
func NewService(
	messages messageRepository,
	contacts contactRepository,
	templates templateRepository,
	gate optOutGate,
	queue dispatchPublisher,
	cache cache,
	clk clock.Clock,
	defaults Defaults,
) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	if defaults.MaxAttempts <= 0 {
		defaults.MaxAttempts = 3
	}

	return &Service{
		messages:  messages,
		contacts:  contacts,
		templates: templates,
		gate:      gate,
		queue:     queue,
		cache:     cache,
		clock:     clk,
		defaults:  defaults,
	}
}

// Send validates req and creates one message per recipient. Recipients that
// opted out of the template are skipped. A recipient whose message could not
// be stored is reported in Failed and the rest are still created; an error is
// returned only when nothing was created. Delivery happens asynchronously, the
// result only confirms acceptance.
func (s *Service) Send(ctx context.Context, strategy retry.Strategy, req model.SendRequest) (model.SendResult, error) {
	recipients, err := s.validate(req)
	if err != nil {
		return model.SendResult{}, err
	}

	var tpl *model.Template
	if req.TemplateKey != "" {
		t, err := s.templates.GetByKey(ctx, req.TemplateKey)
		if err != nil {
			return model.SendResult{}, fmt.Errorf("get template: %w", err)
		}
		tpl = &t
	}

	from := req.From
	if from == "" {
		from = s.defaults.From
	}

	providerName := req.Provider
	if providerName == "" {
		providerName = s.defaults.Provider
	}

	now := s.clock.Now()

	var scheduledAt time.Time
	if req.SendAt != nil {
		scheduledAt = req.SendAt.UTC()
	}

	result := model.SendResult{
		Messages: make([]model.QueuedMessage, 0, len(recipients)),
	}

	var storeErr error
	fail := func(to string, err error) {
		zlog.Logger.Error().Err(err).Str("to", to).Msg("failed to create message, skipping recipient")
		result.Failed = append(result.Failed, model.SkippedMessage{To: to, Reason: "storage error"})
		if storeErr == nil {
			storeErr = err
		}
	}

	for _, rcpt := range recipients {
		if tpl != nil {
			if res := s.gate.IsOptedOut(ctx, rcpt.Address, tpl.Key); res.OptedOut {
				zlog.Logger.Info().Str("to", rcpt.Address).Str("template", tpl.Key).Msg("recipient opted out, skipping")
				result.Skipped = append(result.Skipped, model.SkippedMessage{To: rcpt.Address, Reason: skipReason(res.Reason)})
				continue
			}
		}

		c, err := s.contacts.GetOrCreate(ctx, rcpt.Address, rcpt.Name)
		if err != nil {
			fail(rcpt.Address, fmt.Errorf("get contact %s: %w", rcpt.Address, err))
			continue
		}

		msg := model.Message{
			ContactID:   c.ID,
			Recipient:   c.Email,
			From:        from,
			ScheduledAt: scheduledAt,
			MaxAttempts: s.defaults.MaxAttempts,
			Provider:    providerName,
		}
		if tpl != nil {
			msg.TemplateID = &tpl.ID
			msg.TemplateKey = tpl.Key
			msg.Variables = req.Variables
		} else {
			msg.Content = model.Content{Subject: req.Subject, HTML: req.HTML, Text: req.Text}
		}

		created, err := s.messages.CreateQueued(ctx, msg, now)
		if err != nil {
			fail(rcpt.Address, fmt.Errorf("create message for %s: %w", rcpt.Address, err))
			continue
		}

		s.cacheStatus(ctx, strategy, created.ID, created.Status)

		if created.Status == model.StatusQueued {
			s.publish(created.ID, strategy)
		}

		result.Messages = append(result.Messages, model.QueuedMessage{
			ID:     created.ID,
			To:     rcpt.Address,
			Status: created.Status,
		})
	}

	if len(result.Messages) == 0 && storeErr != nil {
		return result, storeErr
	}

	return result, nil
}

// GetMessage returns a single message.
func (s *Service) GetMessage(ctx context.Context, id uuid.UUID) (model.Message, error) {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return model.Message{}, fmt.Errorf("get message: %w", err)
	}

	return msg, nil
}

// ListMessages returns a page of messages, newest first.
func (s *Service) ListMessages(ctx context.Context, status model.Status, limit, offset int) ([]model.Message, error) {
	messages, err := s.messages.List(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}

// GetStatus returns the status of a message, from the cache when possible.
func (s *Service) GetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error) {
	key := model.StatusCacheKey(id)

	if s.cache != nil {
		status, err := s.cache.GetWithRetry(ctx, strategy, key)
		if err == nil {
			return model.Status(status), nil
		}
		if !errors.Is(err, redis.Nil) {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get message status from cache")
		}
	}

	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get message status: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, msg.Status)

	return msg.Status, nil
}

type recipient struct {
	Address string
	Name    string
}

func (s *Service) validate(req model.SendRequest) ([]recipient, error) {
	direct := req.Subject != "" || req.Text != "" || req.HTML != ""
	templated := req.TemplateKey != ""

	switch {
	case direct && templated:
		return nil, fmt.Errorf("%w: either template or subject/body must be set, not both", ErrValidation)
	case !direct && !templated:
		return nil, fmt.Errorf("%w: either template or subject/body is required", ErrValidation)
	case direct && req.Subject == "":
		return nil, fmt.Errorf("%w: subject is required", ErrValidation)
	case direct && req.Text == "" && req.HTML == "":
		return nil, fmt.Errorf("%w: text or html body is required", ErrValidation)
	case !templated && len(req.Variables) > 0:
		return nil, fmt.Errorf("%w: variables require a template", ErrValidation)
	}

	for name, v := range req.Variables {
		if !scalar(v) {
			return nil, fmt.Errorf("%w: variable %q must be a string, number or boolean", ErrValidation, name)
		}
	}

	if req.From == "" && s.defaults.From == "" {
		return nil, fmt.Errorf("%w: from is required", ErrValidation)
	}
	if req.From != "" {
		if _, err := mail.ParseAddress(req.From); err != nil {
			return nil, fmt.Errorf("%w: invalid from address %q", ErrValidation, req.From)
		}
	}

	if len(req.To) == 0 {
		return nil, fmt.Errorf("%w: at least one recipient is required", ErrValidation)
	}

	seen := make(map[string]struct{}, len(req.To))
	recipients := make([]recipient, 0, len(req.To))
	for _, raw := range req.To {
		addr, err := mail.ParseAddress(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid recipient %q", ErrValidation, raw)
		}

		email := model.NormalizeEmail(addr.Address)
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}

		recipients = append(recipients, recipient{Address: email, Name: addr.Name})
	}

	return recipients, nil
}

func (s *Service) publish(id uuid.UUID, strategy retry.Strategy) {
	if s.queue == nil {
		return
	}

	if err := s.queue.Publish(queue.DispatchMessage{ID: id}, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to publish message, scheduler will pick it up")
	}
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.Status) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SetWithRetry(ctx, strategy, model.StatusCacheKey(id), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache message status")
	}
}

// scalar reports whether v can be substituted into a template as is.
func scalar(v any) bool {
	switch v.(type) {
	case string, bool, float64, float32, int, int32, int64, uint, uint32, uint64, json.Number:
		return true
	default:
		return false
	}
}

func skipReason(reason string) string {
	if reason == "" {
		return "opted out"
	}

	return "opted out: " + reason
}
