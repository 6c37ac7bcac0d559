// Package email sends mail over SMTP.
package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"
)

// Message is an email to send.
type Message struct {
	To      []string
	From    string
	Subject string
	Text    string
	HTML    string
}

// Client sends email through a single SMTP relay.
type Client struct {
	dialer *mail.Dialer
	from   string
}

// NewClient creates a new SMTP client. from is used when a message does not
// set its own sender.
func NewClient(smtpHost string, smtpPort int, username, password, from string, timeout time.Duration) *Client {
	dialer := mail.NewDialer(smtpHost, smtpPort, username, password)
	if timeout > 0 {
		dialer.Timeout = timeout
	}
	dialer.TLSConfig = &tls.Config{ServerName: smtpHost}

	return &Client{
		dialer: dialer,
		from:   from,
	}
}

// Send delivers msg and returns the Message-ID it was sent with.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	from := msg.From
	if from == "" {
		from = c.from
	}

	id := messageID(from)

	m := mail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", id)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}

	if err := c.dialer.DialAndSend(m); err != nil {
		return "", err
	}

	return id, nil
}

// ReplyCode extracts the SMTP reply code from an error returned by Send.
func ReplyCode(err error) (int, bool) {
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) {
		err = sendErr.Cause
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		return protoErr.Code, true
	}

	return 0, false
}

func messageID(from string) string {
	domain := "localhost"
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		domain = strings.TrimSuffix(from[i+1:], ">")
	}

	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
