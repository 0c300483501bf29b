package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/teamdesk/teamdesk/pkg/proto"
)

// RequestError is a non-2xx response from the backend. Field-specific
// validation messages are kept so forms can map them back to their inputs.
type RequestError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Detail is the backend's generic message, taken from the "detail",
	// "error", or "message" keys of the response body, in this order.
	Detail string

	// Fields maps a field name to its validation messages.
	Fields map[string][]string
}

// Error implements error.
func (e *RequestError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	for name, msgs := range e.Fields {
		if len(msgs) > 0 {
			return fmt.Sprintf("%s: %s", name, msgs[0])
		}
	}
	return http.StatusText(e.StatusCode)
}

// Unwrap maps well-known statuses to sentinel errors so call sites can use
// errors.Is without caring about the response body.
func (e *RequestError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return proto.ErrUnauthorized
	case http.StatusNotFound:
		return proto.ErrNotFound
	default:
		return nil
	}
}

// Field returns the first validation message for the named field, or an
// empty string.
func (e *RequestError) Field(name string) string {
	if msgs, ok := e.Fields[name]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// newRequestError builds a RequestError from a response body. Django REST
// bodies come in a few shapes: {"detail": "..."}, {"error": "..."},
// {"message": "..."}, and {"field": ["msg", ...]}.
func newRequestError(status int, body []byte) *RequestError {
	e := &RequestError{StatusCode: status, Fields: map[string][]string{}}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return e
	}

	for _, key := range []string{"detail", "error", "message"} {
		if v, ok := raw[key].(string); ok {
			e.Detail = v
			break
		}
	}

	for key, val := range raw {
		switch v := val.(type) {
		case string:
			switch key {
			case "detail", "error", "message":
			default:
				e.Fields[key] = []string{v}
			}
		case []any:
			msgs := make([]string, 0, len(v))
			for _, m := range v {
				if s, ok := m.(string); ok {
					msgs = append(msgs, s)
				}
			}
			if len(msgs) > 0 {
				e.Fields[key] = msgs
			}
		}
	}

	return e
}
