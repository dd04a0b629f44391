package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError carries the backend status and message for a failed request.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("field API %s returned %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// newAPIError extracts the FastAPI-style {"detail": ...} message when
// present, falling back to the raw body.
func newAPIError(endpoint string, status int, body []byte) *APIError {
	msg := strings.TrimSpace(string(body))

	var detail struct {
		Detail string `json:"detail"`
	}

	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		msg = detail.Detail
	}

	return &APIError{
		Endpoint:   endpoint,
		StatusCode: status,
		Message:    msg,
	}
}
