// Package provider defines the uniform outbound delivery contract and the
// backends that satisfy it.
//
// Every backend maps its native outcome onto a Response: 2xx is success with
// an optional id, 429 and 5xx are retriable, other 4xx are terminal and
// transport errors are reported with Code 0 and Retriable set.
package provider

import (
	"context"
	"net/http"
)

// Email is a single outbound email.
type Email struct {
	To      []string
	From    string
	Subject string
	Text    string
	HTML    string
}

// ResponseData carries backend specific data of a successful send.
type ResponseData struct {
	ID string `json:"id"`
}

// Response is the outcome of one send call.
type Response struct {
	Code      int           `json:"code"`
	Message   string        `json:"message"`
	Data      *ResponseData `json:"data,omitempty"`
	Retriable bool          `json:"retriable"`
}

// OK reports whether the backend accepted the email.
func (r Response) OK() bool {
	return r.Code >= 200 && r.Code < 300
}

// ExternalID returns the backend message id, if any.
func (r Response) ExternalID() string {
	if r.Data == nil {
		return ""
	}

	return r.Data.ID
}

// Sender is implemented by every delivery backend.
type Sender interface {
	// Name returns the provider identifier the backend is registered under.
	Name() string
	// Send dispatches the email. It never returns an error, failures are
	// described by the Response.
	Send(ctx context.Context, e Email) Response
}

func success(code int, id string) Response {
	resp := Response{Code: code, Message: http.StatusText(code)}
	if id != "" {
		resp.Data = &ResponseData{ID: id}
	}

	return resp
}

func failure(code int, msg string) Response {
	if msg == "" {
		msg = http.StatusText(code)
	}

	return Response{Code: code, Message: msg, Retriable: retriableStatus(code)}
}

func networkFailure(err error) Response {
	return Response{Code: 0, Message: err.Error(), Retriable: true}
}

func retriableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}
