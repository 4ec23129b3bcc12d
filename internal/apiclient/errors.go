package apiclient

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/tijaniyah/companion/internal/errors"
)

// StatusError records a non-2xx response. It is the cause of the *errors.AppError
// returned by Do, so callers can recover the status with errors.As.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d", e.StatusCode)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not a response failure.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// statusFailure surfaces the response body text as the error message, or "HTTP <status>"
// when the body is empty.
func statusFailure(resp *Response, code apperrors.ErrorCode) error {
	body := resp.Body
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}
	text := strings.TrimSpace(string(body))
	msg := text
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}
	return apperrors.Wrap(&StatusError{StatusCode: resp.StatusCode, Body: text}, code, msg)
}

// IsAuthFailure reports whether err was produced by an authorization-failure response.
func IsAuthFailure(err error) bool {
	return apperrors.IsUnauthorized(err) && StatusCode(err) != 0
}
