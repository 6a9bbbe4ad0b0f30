package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrBreakerOpen is returned without contacting the backend while the circuit
// breaker is open or saturated in the half-open state.
var ErrBreakerOpen = errors.New("apiclient: backend circuit breaker is open")

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	Endpoint   string
	StatusCode int
	// Detail is the FastAPI "detail" field when the body carried one.
	Detail string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("apiclient: %s returned %d %s", e.Endpoint, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// IsClientError reports whether err is a 4xx StatusError. Those are caused by
// the request, not by the backend's health.
func IsClientError(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 400 && se.StatusCode < 500
	}
	return false
}

// parseDetail extracts FastAPI's {"detail": ...} field. Validation errors carry
// a list of objects there, which is kept as compact JSON.
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}
	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}
	return string(payload.Detail)
}
