package delivery

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/mail-dispatcher/internal/backoff"
	"github.com/aliskhannn/mail-dispatcher/internal/clock"
	mocks "github.com/aliskhannn/mail-dispatcher/internal/mocks/service/delivery"
	"github.com/aliskhannn/mail-dispatcher/internal/model"
	"github.com/aliskhannn/mail-dispatcher/internal/provider"
	"github.com/aliskhannn/mail-dispatcher/internal/render"
)

var (
	errNotFound = errors.New("message not found")
	errLockLost = errors.New("message lock lost")
)

// memStore mirrors the conditional updates of the message repository.
type memStore struct {
	mu   sync.Mutex
	msgs map[uuid.UUID]model.Message
}

func newMemStore(msgs ...model.Message) *memStore {
	s := &memStore{msgs: make(map[uuid.UUID]model.Message)}
	for _, m := range msgs {
		s.msgs[m.ID] = m
	}

	return s
}

func (s *memStore) get(id uuid.UUID) model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.msgs[id]
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.msgs[id]
	if !ok {
		return model.Message{}, errNotFound
	}

	return m, nil
}

func (s *memStore) TryLock(_ context.Context, id uuid.UUID, now time.Time) (model.Message, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.msgs[id]
	if !ok || !m.Due(now) {
		return model.Message{}, false, nil
	}

	lockedAt := now
	m.Status = model.StatusProcessing
	m.LockedAt = &lockedAt
	s.msgs[id] = m

	return m, true, nil
}

func (s *memStore) holds(m model.Message, token time.Time) bool {
	return m.Status == model.StatusProcessing && m.LockedAt != nil && m.LockedAt.Equal(token)
}

func (s *memStore) ReleaseLock(_ context.Context, id uuid.UUID, lockedAt time.Time) (model.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.msgs[id]
	if !ok || !s.holds(m, lockedAt) {
		return "", errLockLost
	}

	m.Status = model.StatusQueued
	if m.Attempts > 0 {
		m.Status = model.StatusFailed
	}
	m.LockedAt = nil
	s.msgs[id] = m

	return m.Status, nil
}

func (s *memStore) UpdateAfterAttempt(_ context.Context, out model.AttemptOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.msgs[out.MessageID]
	if !ok || !s.holds(m, out.LockedAt) {
		return errLockLost
	}

	m.Status = out.Status
	m.Attempts = max(m.Attempts, out.Attempts)
	m.NextRetryAt = out.NextRetryAt
	m.Provider = out.Provider
	m.LockedAt = nil

	if out.Status == model.StatusSent {
		at := out.At
		m.SentAt = &at
		m.ExternalID = out.ExternalID
		m.LastError, m.ErrorDetails = "", ""
	} else {
		m.LastError, m.ErrorDetails = out.LastError, out.ErrorDetails
	}

	s.msgs[out.MessageID] = m

	return nil
}

// reclaim does what the scheduler's stale sweep does to a PROCESSING row.
func (s *memStore) reclaim(id uuid.UUID, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.msgs[id]
	m.Status = model.StatusFailed
	m.Attempts = min(m.Attempts+1, m.MaxAttempts)
	m.NextRetryAt = &now
	m.LastError = "processing timeout"
	m.LockedAt = nil
	s.msgs[id] = m
}

type stubRenderer struct {
	content model.Content
	err     error
}

func (r stubRenderer) Render(context.Context, string, model.Variables) (model.Content, error) {
	return r.content, r.err
}

// scriptedGateway answers with responses in order and repeats the last one.
type scriptedGateway struct {
	mu        sync.Mutex
	responses []provider.Response
	sent      []provider.Email
	onSend    func()
}

func (g *scriptedGateway) Send(_ context.Context, _ string, e provider.Email) (provider.Response, string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.onSend != nil {
		g.onSend()
	}

	i := min(len(g.sent), len(g.responses)-1)
	g.sent = append(g.sent, e)

	return g.responses[i], provider.NameSMTP
}

func (g *scriptedGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.sent)
}

var (
	start        = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	unavailable  = provider.Response{Code: http.StatusServiceUnavailable, Message: "service unavailable", Retriable: true}
	accepted     = provider.Response{Code: http.StatusAccepted, Data: &provider.ResponseData{ID: "ext-1"}}
	notFound     = provider.Response{Code: http.StatusNotFound, Message: "unknown recipient"}
	maxJitter    = func(n int64) int64 { return n - 1 }
	renderedBody = model.Content{Subject: "Hi Ann", Text: "Hello Ann"}
)

func newTemplateMessage() model.Message {
	tplID := uuid.New()

	return model.Message{
		ID:          uuid.New(),
		ContactID:   uuid.New(),
		Recipient:   "ann@example.com",
		TemplateID:  &tplID,
		TemplateKey: "welcome",
		Status:      model.StatusQueued,
		Variables:   model.Variables{"name": "Ann"},
		ScheduledAt: start,
		MaxAttempts: 3,
	}
}

func newOrchestrator(store *memStore, r contentRenderer, g *scriptedGateway, clk clock.Clock) *Orchestrator {
	return NewOrchestrator(store, r, g, nil, Options{
		Policy:      backoff.NewPolicy(30*time.Second, 10*time.Second).WithRand(maxJitter),
		Clock:       clk,
		DefaultFrom: "noreply@example.com",
		Strategy:    retry.Strategy{Attempts: 1, Delay: time.Millisecond},
	})
}

func TestProcess_RetryThenSuccess(t *testing.T) {
	msg := newTemplateMessage()
	store := newMemStore(msg)
	clk := clock.NewManual(start)
	gw := &scriptedGateway{responses: []provider.Response{unavailable, unavailable, accepted}}
	o := newOrchestrator(store, stubRenderer{content: renderedBody}, gw, clk)
	ctx := context.Background()

	outcome, err := o.Process(ctx, store.get(msg.ID))
	require.NoError(t, err)
	assert.Equal(t, OutcomeRetry, outcome)

	got := store.get(msg.ID)
	assert.Equal(t, model.StatusFailed, got.Status)
	assert.Equal(t, 1, got.Attempts)
	require.NotNil(t, got.NextRetryAt)
	assert.Equal(t, start.Add(40*time.Second), *got.NextRetryAt)

	outcome, err = o.Process(ctx, store.get(msg.ID))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome, "retry is not due yet")

	clk.Advance(40 * time.Second)
	failedAt := clk.Now()

	outcome, err = o.ProcessByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRetry, outcome)

	got = store.get(msg.ID)
	assert.Equal(t, model.StatusFailed, got.Status)
	assert.Equal(t, 2, got.Attempts)
	require.NotNil(t, got.NextRetryAt)
	assert.GreaterOrEqual(t, got.NextRetryAt.Sub(failedAt), 60*time.Second)
	assert.LessOrEqual(t, got.NextRetryAt.Sub(failedAt), 70*time.Second)

	clk.Set(*got.NextRetryAt)

	outcome, err = o.ProcessByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, outcome)

	got = store.get(msg.ID)
	assert.Equal(t, model.StatusSent, got.Status)
	assert.Equal(t, 3, got.Attempts)
	assert.Nil(t, got.NextRetryAt)
	require.NotNil(t, got.SentAt)
	assert.Equal(t, "ext-1", got.ExternalID)
	assert.Equal(t, provider.NameSMTP, got.Provider)
	assert.Empty(t, got.LastError)

	assert.Equal(t, 3, gw.calls())
	assert.Equal(t, []string{"ann@example.com"}, gw.sent[0].To)
	assert.Equal(t, "Hi Ann", gw.sent[0].Subject)
	assert.Equal(t, "noreply@example.com", gw.sent[0].From)
}

func TestProcess_RetriesExhausted(t *testing.T) {
	msg := newTemplateMessage()
	store := newMemStore(msg)
	clk := clock.NewManual(start)
	gw := &scriptedGateway{responses: []provider.Response{unavailable}}
	o := newOrchestrator(store, stubRenderer{content: renderedBody}, gw, clk)

	for i := 0; i < 3; i++ {
		_, err := o.ProcessByID(context.Background(), msg.ID)
		require.NoError(t, err)
		clk.Advance(time.Hour)
	}

	got := store.get(msg.ID)
	assert.Equal(t, model.StatusFailed, got.Status)
	assert.Equal(t, 3, got.Attempts)
	assert.Nil(t, got.NextRetryAt)
	assert.Equal(t, "503 Service Unavailable", got.LastError)

	outcome, err := o.ProcessByID(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, 3, gw.calls())
}

func TestProcess_TerminalFailure(t *testing.T) {
	msg := newTemplateMessage()
	store := newMemStore(msg)
	clk := clock.NewManual(start)
	gw := &scriptedGateway{responses: []provider.Response{notFound, accepted}}
	o := newOrchestrator(store, stubRenderer{content: renderedBody}, gw, clk)

	outcome, err := o.Process(context.Background(), store.get(msg.ID))
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)

	got := store.get(msg.ID)
	assert.Equal(t, model.StatusFailed, got.Status)
	assert.Equal(t, 1, got.Attempts)
	assert.Nil(t, got.NextRetryAt)
	assert.Equal(t, "unknown recipient", got.ErrorDetails)

	clk.Advance(24 * time.Hour)

	outcome, err = o.ProcessByID(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, 1, gw.calls())
}

func TestProcess_NetworkFailureIsRetried(t *testing.T) {
	msg := newTemplateMessage()
	store := newMemStore(msg)
	gw := &scriptedGateway{responses: []provider.Response{{Code: 0, Message: "dial tcp: connection refused", Retriable: true}}}
	o := newOrchestrator(store, stubRenderer{content: renderedBody}, gw, clock.NewManual(start))

	outcome, err := o.Process(context.Background(), store.get(msg.ID))
	require.NoError(t, err)
	assert.Equal(t, OutcomeRetry, outcome)
	assert.Equal(t, "network error", store.get(msg.ID).LastError)
}

func TestProcess_TemplateNotFound(t *testing.T) {
	msg := newTemplateMessage()
	store := newMemStore(msg)
	gw := &scriptedGateway{responses: []provider.Response{accepted}}
	o := newOrchestrator(store, stubRenderer{err: render.ErrNotFound}, gw, clock.NewManual(start))

	outcome, err := o.Process(context.Background(), store.get(msg.ID))
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)

	got := store.get(msg.ID)
	assert.Equal(t, model.StatusFailed, got.Status)
	assert.Equal(t, 1, got.Attempts)
	assert.Nil(t, got.NextRetryAt)
	assert.Zero(t, gw.calls())
}

func TestProcess_RenderStorageErrorReleasesLock(t *testing.T) {
	msg := newTemplateMessage()
	store := newMemStore(msg)
	gw := &scriptedGateway{responses: []provider.Response{accepted}}
	o := newOrchestrator(store, stubRenderer{err: errors.New("connection reset by peer")}, gw, clock.NewManual(start))

	_, err := o.Process(context.Background(), store.get(msg.ID))
	require.Error(t, err)

	got := store.get(msg.ID)
	assert.Equal(t, model.StatusQueued, got.Status)
	assert.Zero(t, got.Attempts)
	assert.Zero(t, gw.calls())
}

func TestProcess_RenderStorageErrorAfterAttemptReleasesToFailed(t *testing.T) {
	msg := newTemplateMessage()
	msg.Status = model.StatusFailed
	msg.Attempts = 1
	retryAt := start
	msg.NextRetryAt = &retryAt

	store := newMemStore(msg)
	gw := &scriptedGateway{responses: []provider.Response{accepted}}
	o := newOrchestrator(store, stubRenderer{err: errors.New("connection reset by peer")}, gw, clock.NewManual(start))

	_, err := o.Process(context.Background(), msg)
	require.Error(t, err)

	got := store.get(msg.ID)
	assert.Equal(t, model.StatusFailed, got.Status)
	assert.Equal(t, 1, got.Attempts)
	assert.Nil(t, got.LockedAt)
}

func TestProcess_StaleSnapshotNeverExceedsMaxAttempts(t *testing.T) {
	msg := newTemplateMessage()
	store := newMemStore(msg)
	clk := clock.NewManual(start)
	gw := &scriptedGateway{responses: []provider.Response{unavailable}}
	o := newOrchestrator(store, stubRenderer{content: renderedBody}, gw, clk)

	// QUEUED with zero attempts, as the scheduler saw it before the first try.
	snapshot := store.get(msg.ID)

	for i := 0; i < 2*msg.MaxAttempts; i++ {
		_, err := o.Process(context.Background(), snapshot)
		require.NoError(t, err)
		clk.Advance(time.Hour)
	}

	got := store.get(msg.ID)
	assert.Equal(t, msg.MaxAttempts, gw.calls())
	assert.Equal(t, gw.calls(), got.Attempts)
	assert.Equal(t, model.StatusFailed, got.Status)
	assert.Nil(t, got.NextRetryAt)
}

func TestProcess_UsesLockedRowNotSnapshot(t *testing.T) {
	msg := newTemplateMessage()
	msg.Status = model.StatusFailed
	msg.Attempts = 2
	retryAt := start
	msg.NextRetryAt = &retryAt

	store := newMemStore(msg)
	gw := &scriptedGateway{responses: []provider.Response{unavailable}}
	o := newOrchestrator(store, stubRenderer{content: renderedBody}, gw, clock.NewManual(start))

	stale := msg
	stale.Status = model.StatusQueued
	stale.Attempts = 0
	stale.Recipient = "old@example.com"

	outcome, err := o.Process(context.Background(), stale)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome, "last attempt is terminal")

	got := store.get(msg.ID)
	assert.Equal(t, 3, got.Attempts)
	assert.Nil(t, got.NextRetryAt)
	assert.Equal(t, []string{"ann@example.com"}, gw.sent[0].To)
}

func TestProcess_LostLockIsNotOverwritten(t *testing.T) {
	msg := newTemplateMessage()
	store := newMemStore(msg)
	clk := clock.NewManual(start)
	gw := &scriptedGateway{responses: []provider.Response{accepted}}
	gw.onSend = func() {
		// the send outlived the processing timeout and the row was reclaimed
		store.reclaim(msg.ID, start.Add(10*time.Minute))
	}
	o := newOrchestrator(store, stubRenderer{content: renderedBody}, gw, clk)

	_, err := o.Process(context.Background(), store.get(msg.ID))
	assert.ErrorIs(t, err, errLockLost)

	got := store.get(msg.ID)
	assert.Equal(t, model.StatusFailed, got.Status)
	assert.Equal(t, 1, got.Attempts)
	assert.Equal(t, "processing timeout", got.LastError)
}

func TestProcess_DirectContent(t *testing.T) {
	msg := newTemplateMessage()
	msg.TemplateID, msg.TemplateKey = nil, ""
	msg.Content = model.Content{Subject: "Invoice", HTML: "<p>Paid</p>"}
	msg.From = "billing@example.com"

	store := newMemStore(msg)
	gw := &scriptedGateway{responses: []provider.Response{unavailable}}
	o := newOrchestrator(store, stubRenderer{err: errors.New("must not render")}, gw, clock.NewManual(start))

	outcome, err := o.Process(context.Background(), store.get(msg.ID))
	require.NoError(t, err)
	assert.Equal(t, OutcomeRetry, outcome, "direct content is retriable")
	assert.Equal(t, "Invoice", gw.sent[0].Subject)
	assert.Equal(t, "billing@example.com", gw.sent[0].From)
}

func TestProcess_NoContent(t *testing.T) {
	msg := newTemplateMessage()
	msg.TemplateID, msg.TemplateKey = nil, ""

	store := newMemStore(msg)
	gw := &scriptedGateway{responses: []provider.Response{accepted}}
	o := newOrchestrator(store, stubRenderer{}, gw, clock.NewManual(start))

	outcome, err := o.Process(context.Background(), store.get(msg.ID))
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Nil(t, store.get(msg.ID).NextRetryAt)
	assert.Zero(t, gw.calls())
}

func TestProcess_NotDueYet(t *testing.T) {
	msg := newTemplateMessage()
	msg.Status = model.StatusScheduled
	msg.ScheduledAt = start.Add(time.Hour)

	store := newMemStore(msg)
	gw := &scriptedGateway{responses: []provider.Response{accepted}}
	o := newOrchestrator(store, stubRenderer{content: renderedBody}, gw, clock.NewManual(start))

	outcome, err := o.Process(context.Background(), store.get(msg.ID))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, model.StatusScheduled, store.get(msg.ID).Status)
}

func TestProcess_NotDueYetHasNoWinner(t *testing.T) {
	msg := newTemplateMessage()
	msg.Status = model.StatusScheduled
	msg.ScheduledAt = start.Add(time.Minute)

	store := newMemStore(msg)
	gw := &scriptedGateway{responses: []provider.Response{accepted}}
	o := newOrchestrator(store, stubRenderer{content: renderedBody}, gw, clock.NewManual(start))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			outcome, err := o.Process(context.Background(), msg)
			assert.NoError(t, err)
			assert.Equal(t, OutcomeSkipped, outcome)
		}()
	}
	wg.Wait()

	assert.Zero(t, gw.calls())
	assert.Equal(t, model.StatusScheduled, store.get(msg.ID).Status)
}

func TestProcess_ConcurrentCallersSendOnce(t *testing.T) {
	msg := newTemplateMessage()
	store := newMemStore(msg)
	gw := &scriptedGateway{responses: []provider.Response{accepted}}
	o := newOrchestrator(store, stubRenderer{content: renderedBody}, gw, clock.NewManual(start))

	const callers = 16

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		outcomes = make(map[Outcome]int)
	)

	snapshot := store.get(msg.ID)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			outcome, err := o.Process(context.Background(), snapshot)
			assert.NoError(t, err)

			mu.Lock()
			outcomes[outcome]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, outcomes[OutcomeSent])
	assert.Equal(t, callers-1, outcomes[OutcomeSkipped])
	assert.Equal(t, 1, gw.calls())
}

func TestProcess_CachesStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msg := newTemplateMessage()
	store := newMemStore(msg)
	gw := &scriptedGateway{responses: []provider.Response{accepted}}
	cacheMock := mocks.NewMockcache(ctrl)
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	o := NewOrchestrator(store, stubRenderer{content: renderedBody}, gw, cacheMock, Options{
		Clock:    clock.NewManual(start),
		Strategy: strategy,
	})

	key := model.StatusCacheKey(msg.ID)
	gomock.InOrder(
		cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, key, "PROCESSING").Return(nil),
		cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, key, "SENT").Return(errors.New("redis down")),
	)

	outcome, err := o.Process(context.Background(), store.get(msg.ID))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, outcome)
}

func TestProcessByID_NotFound(t *testing.T) {
	o := newOrchestrator(newMemStore(), stubRenderer{}, &scriptedGateway{responses: []provider.Response{accepted}}, clock.NewManual(start))

	_, err := o.ProcessByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errNotFound)
}
