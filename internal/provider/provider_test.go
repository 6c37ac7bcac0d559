package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/mail-dispatcher/pkg/email"
	"github.com/aliskhannn/mail-dispatcher/pkg/resend"
)

type fakeSender struct {
	name string
	resp Response
}

func (f fakeSender) Name() string                         { return f.name }
func (f fakeSender) Send(context.Context, Email) Response { return f.resp }

func TestGatewayResolve(t *testing.T) {
	g := NewGateway(NameSMTP,
		fakeSender{name: NameSMTP},
		fakeSender{name: NameSendGrid},
	)

	assert.Equal(t, NameSendGrid, g.Resolve("SendGrid").Name())
	assert.Equal(t, NameSMTP, g.Resolve("").Name())
	assert.Equal(t, NameSMTP, g.Resolve("carrier-pigeon").Name())
	assert.True(t, g.Has("sendgrid"))
	assert.False(t, g.Has("resend"))

	resp, used := g.Send(context.Background(), "unknown", Email{})
	assert.Equal(t, NameSMTP, used)
	assert.Equal(t, 0, resp.Code)
}

func TestGatewayWithoutFallback(t *testing.T) {
	g := NewGateway("missing")

	resp, _ := g.Send(context.Background(), "", Email{})
	assert.False(t, resp.OK())
	assert.False(t, resp.Retriable)
}

type stubSMTP struct {
	id  string
	err error
}

func (s stubSMTP) Send(context.Context, email.Message) (string, error) { return s.id, s.err }

func TestSMTPSend(t *testing.T) {
	tests := []struct {
		name          string
		client        stubSMTP
		wantCode      int
		wantRetriable bool
		wantID        string
	}{
		{"accepted", stubSMTP{id: "<abc@example.com>"}, http.StatusOK, false, "<abc@example.com>"},
		{"mailbox busy", stubSMTP{err: &textproto.Error{Code: 450, Msg: "mailbox busy"}}, http.StatusServiceUnavailable, true, ""},
		{"no such user", stubSMTP{err: &textproto.Error{Code: 550, Msg: "no such user"}}, http.StatusUnprocessableEntity, false, ""},
		{"dial failure", stubSMTP{err: errors.New("dial tcp: connection refused")}, 0, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewSMTP(tt.client).Send(context.Background(), Email{To: []string{"user@example.com"}})
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantRetriable, resp.Retriable)
			assert.Equal(t, tt.wantID, resp.ExternalID())
		})
	}
}

func TestSendGridSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer sg-key", r.Header.Get("Authorization"))

		var payload sgMailPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Content, 2)
		assert.Equal(t, "text/plain", payload.Content[0].Type)
		assert.Equal(t, "user@example.com", payload.Personalizations[0].To[0].Email)

		w.Header().Set("X-Message-Id", "sg-42")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	resp := NewSendGrid("sg-key", srv.URL, time.Second).Send(context.Background(), Email{
		To: []string{"user@example.com"}, From: "noreply@example.com", Subject: "Hi", Text: "Hi", HTML: "<b>Hi</b>",
	})
	assert.True(t, resp.OK())
	assert.Equal(t, "sg-42", resp.ExternalID())
}

func TestSendGridErrors(t *testing.T) {
	for _, code := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusUnauthorized, http.StatusBadRequest} {
		t.Run(fmt.Sprint(code), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
				_, _ = w.Write([]byte(`{"errors":[{"message":"nope"}]}`))
			}))
			defer srv.Close()

			resp := NewSendGrid("k", srv.URL, time.Second).Send(context.Background(), Email{To: []string{"a@b.c"}})
			assert.False(t, resp.OK())
			assert.Equal(t, code, resp.Code)
			assert.Equal(t, code == http.StatusTooManyRequests || code >= 500, resp.Retriable)
			assert.Contains(t, resp.Message, "nope")
		})
	}
}

func TestSendGridTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	resp := NewSendGrid("k", srv.URL, 20*time.Millisecond).Send(context.Background(), Email{To: []string{"a@b.c"}})
	assert.Equal(t, 0, resp.Code)
	assert.True(t, resp.Retriable)
}

type stubResend struct {
	id  string
	err error
}

func (s stubResend) Send(context.Context, resend.SendEmailRequest) (string, error) { return s.id, s.err }

func TestResendSend(t *testing.T) {
	resp := NewResend(stubResend{id: "re_1"}).Send(context.Background(), Email{})
	assert.True(t, resp.OK())
	assert.Equal(t, "re_1", resp.ExternalID())

	resp = NewResend(stubResend{err: &resend.APIError{StatusCode: 404, Message: "not found"}}).Send(context.Background(), Email{})
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.False(t, resp.Retriable)

	resp = NewResend(stubResend{err: errors.New("send request: EOF")}).Send(context.Background(), Email{})
	assert.Equal(t, 0, resp.Code)
	assert.True(t, resp.Retriable)
}
