package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/lostlink/internal/common"
)

// FieldError maps a validation failure onto a form field so the caller can
// blame the right input instead of matching on message text.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a structured backend error. It wraps one of the common sentinel
// errors, so callers can match with errors.Is while still having access to
// the status code, message, and field breakdown.
type Error struct {
	StatusCode int
	Message    string
	Fields     []FieldError

	sentinel error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend error (%d)", e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.sentinel
}

// FieldMessages returns field->message pairs for form-level reporting.
// Empty when the response did not map cleanly onto fields.
func (e *Error) FieldMessages() map[string]string {
	if len(e.Fields) == 0 {
		return nil
	}
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Message
	}
	return m
}

// statusSentinel maps an HTTP status code onto the sentinel error taxonomy.
func statusSentinel(code int) error {
	switch {
	case code == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case code == http.StatusForbidden:
		return common.ErrForbidden
	case code == http.StatusNotFound:
		return common.ErrNotFound
	case code == http.StatusConflict:
		return common.ErrConflict
	case code >= 400 && code < 500:
		return common.ErrValidation
	case code >= 500:
		return common.ErrInternal
	default:
		return common.ErrInternal
	}
}

// errorBody is the backend's error payload. Older endpoints return only a
// message; newer ones add the structured errors array.
type errorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func (c *Client) decodeError(resp *http.Response) *Error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		sentinel:   statusSentinel(resp.StatusCode),
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		// Not JSON; keep a trimmed snippet as the message.
		apiErr.Message = strings.TrimSpace(string(raw))
		return apiErr
	}
	apiErr.Message = body.Message
	apiErr.Fields = body.Errors
	return apiErr
}
