package authapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// DefaultErrorMessage is shown when the backend gives no message of its own.
const DefaultErrorMessage = "요청에 실패했습니다. 다시 시도해주세요."

var (
	// ErrSessionExpired is returned when a 401 could not be recovered by a refresh.
	// The stored session has already been cleared when it is returned.
	ErrSessionExpired = errors.New("session expired")
	// ErrNoBaseURL is returned when no backend address is configured.
	ErrNoBaseURL = errors.New("auth api base url is not configured")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
}

// Error implements error.
func (e *APIError) Error() string {
	return fmt.Sprintf("auth api: %d %s", e.Status, e.Message)
}

// UserMessage returns the text to show next to the form.
func (e *APIError) UserMessage() string {
	if e.Message == "" {
		return DefaultErrorMessage
	}
	return e.Message
}

// IsUnauthorized reports whether the backend answered 401.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// newAPIError reads {"message": ...} out of an error body when present.
func newAPIError(status int, body []byte) *APIError {
	msg := ""
	if gjson.ValidBytes(body) {
		msg = gjson.GetBytes(body, "message").String()
	}
	return &APIError{Status: status, Message: msg}
}

// UserMessage maps any login or signup failure to a form message.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return DefaultErrorMessage
}
