package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-200 answer. Its message is the response body, so what the
// operator sees is what the server said.
type APIError struct {
	Status int
	Body   string
}

func newAPIError(status int, body []byte) *APIError {
	text := strings.TrimSpace(string(body))
	var buf bytes.Buffer
	if json.Valid(body) && json.Compact(&buf, body) == nil {
		text = buf.String()
	}
	if text == "" {
		text = fmt.Sprintf("%d %s", status, http.StatusText(status))
	}
	return &APIError{Status: status, Body: text}
}

func (e *APIError) Error() string {
	return e.Body
}

// ErrorResponse carries the "error" field of an otherwise successful-looking body.
type ErrorResponse struct {
	Message string
}

func (e *ErrorResponse) Error() string {
	return e.Message
}
