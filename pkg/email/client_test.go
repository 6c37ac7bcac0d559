package email

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

func TestReplyCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		wantOK bool
	}{
		{"textproto", &textproto.Error{Code: 421, Msg: "busy"}, 421, true},
		{"wrapped", fmt.Errorf("send: %w", &textproto.Error{Code: 550, Msg: "no such user"}), 550, true},
		{"send error", &mail.SendError{Cause: &textproto.Error{Code: 452, Msg: "mailbox full"}}, 452, true},
		{"network", errors.New("dial tcp: connection refused"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ReplyCode(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestMessageID(t *testing.T) {
	id := messageID("Sender <noreply@example.com>")
	assert.True(t, strings.HasPrefix(id, "<"))
	assert.True(t, strings.HasSuffix(id, "@example.com>"))

	assert.True(t, strings.HasSuffix(messageID("nobody"), "@localhost>"))
}

func TestSend_CanceledContext(t *testing.T) {
	c := NewClient("localhost", 25, "", "", "noreply@example.com", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Send(ctx, Message{To: []string{"bob@example.com"}, Subject: "hi", Text: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
