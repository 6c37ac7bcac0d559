// Package scheduler runs the periodic trigger that feeds due messages to the
// delivery orchestrator.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/mail-dispatcher/internal/clock"
	"github.com/aliskhannn/mail-dispatcher/internal/model"
	"github.com/aliskhannn/mail-dispatcher/internal/service/delivery"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks

type messageStore interface {
	DueForFirstSend(ctx context.Context, now time.Time, limit int) ([]model.Message, error)
	DueForRetry(ctx context.Context, now time.Time, limit int) ([]model.Message, error)
	ReclaimStale(ctx context.Context, cutoff, now time.Time) (int64, error)
}

type processor interface {
	Process(ctx context.Context, msg model.Message) (delivery.Outcome, error)
}

// Config bounds the work done per tick.
type Config struct {
	Interval          time.Duration
	FirstSendLimit    int
	RetryLimit        int
	Concurrency       int
	ProcessingTimeout time.Duration
}

// TickResult reports what one tick picked up. Deferred counts selected
// messages left for a later tick because every dispatch slot was busy.
type TickResult struct {
	Reclaimed int64 `json:"reclaimed"`
	FirstSend int   `json:"first_send"`
	Retry     int   `json:"retry"`
	Deferred  int   `json:"deferred"`
}

// Scheduler selects due messages and hands each one to the orchestrator in
// its own goroutine, at most Concurrency at a time across all ticks. Ticks may
// overlap; the per-message lock taken by the orchestrator is what keeps a
// message from being sent twice.
type Scheduler struct {
	store     messageStore
	processor processor
	clock     clock.Clock
	cfg       Config

	sem chan struct{}
	wg  sync.WaitGroup
}

// New creates a new Scheduler.
func New(s messageStore, p processor, c clock.Clock, cfg Config) *Scheduler {
	if c == nil {
		c = clock.System{}
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 15 * time.Second
	}
	if cfg.FirstSendLimit <= 0 {
		cfg.FirstSendLimit = 100
	}
	if cfg.RetryLimit <= 0 {
		cfg.RetryLimit = 100
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 10
	}

	return &Scheduler{
		store:     s,
		processor: p,
		clock:     c,
		cfg:       cfg,
		sem:       make(chan struct{}, cfg.Concurrency),
	}
}

// Run ticks immediately and then every Interval until ctx is done, then
// waits for in-flight dispatches to finish.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", s.cfg.Interval).Msg("scheduler started")

	s.runTick(ctx)

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler stopping, waiting for in-flight dispatches")
			s.Wait()
			zlog.Logger.Info().Msg("scheduler stopped")
			return
		case <-ticker.C:
			s.runTick(ctx)
		}
	}
}

func (s *Scheduler) runTick(ctx context.Context) {
	if _, err := s.Tick(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("scheduler tick failed")
	}
}

// Tick runs one selection cycle: reclaim stale locks, then pick up first
// sends and due retries. It returns once the work is started, not finished.
func (s *Scheduler) Tick(ctx context.Context) (TickResult, error) {
	var res TickResult
	now := s.clock.Now()

	if s.cfg.ProcessingTimeout > 0 {
		n, err := s.store.ReclaimStale(ctx, now.Add(-s.cfg.ProcessingTimeout), now)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to reclaim stale messages")
		} else if n > 0 {
			zlog.Logger.Warn().Int64("count", n).Msg("reclaimed messages stuck in processing")
		}
		res.Reclaimed = n
	}

	first, err := s.store.DueForFirstSend(ctx, now, s.cfg.FirstSendLimit)
	if err != nil {
		return res, fmt.Errorf("select first sends: %w", err)
	}
	res.FirstSend = len(first)

	retries, err := s.store.DueForRetry(ctx, now, s.cfg.RetryLimit)
	if err != nil {
		res.Deferred = s.dispatch(ctx, first)
		return res, fmt.Errorf("select retries: %w", err)
	}
	res.Retry = len(retries)

	res.Deferred = s.dispatch(ctx, first)
	res.Deferred += s.dispatch(ctx, retries)

	if res.FirstSend+res.Retry > 0 {
		zlog.Logger.Info().
			Int("first_send", res.FirstSend).
			Int("retry", res.Retry).
			Int("deferred", res.Deferred).
			Msg("scheduler tick dispatched messages")
	}

	return res, nil
}

// Wait blocks until every dispatch started by Tick has finished.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// dispatch starts a goroutine per message while a slot is free and returns
// how many messages it left for the next tick. Deferred rows stay due, so the
// next selection picks them up again.
func (s *Scheduler) dispatch(ctx context.Context, msgs []model.Message) int {
	// Dispatches outlive the tick that started them, e.g. an HTTP request.
	ctx = context.WithoutCancel(ctx)

	deferred := 0
	for _, msg := range msgs {
		select {
		case s.sem <- struct{}{}:
		default:
			deferred++
			continue
		}

		s.wg.Add(1)
		go func(msg model.Message) {
			defer s.wg.Done()
			defer func() { <-s.sem }()

			if _, err := s.processor.Process(ctx, msg); err != nil {
				zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("failed to process message")
			}
		}(msg)
	}

	if deferred > 0 {
		zlog.Logger.Debug().Int("count", deferred).Msg("dispatch slots busy, deferring messages")
	}

	return deferred
}
