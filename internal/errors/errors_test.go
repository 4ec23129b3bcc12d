package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "user not found",
			},
			want: "user not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeTransport,
				Message: "request failed",
				Cause:   errors.New("connection refused"),
			},
			want: "request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrCodeInternal, "wrapped error")

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestWrap_NilReturnsNil(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "x") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsHelpers_ThroughWrapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"validation", Validation("bad"), IsValidation},
		{"conflict", Conflict("dup"), IsConflict},
		{"not found", NotFound("missing"), IsNotFound},
		{"unauthorized", Unauthorizedf("wrong password for %s", "x"), IsUnauthorized},
		{"transient", Wrap(errors.New("503"), ErrCodeTransient, "unavailable"), IsTransient},
		{"transport", Wrap(errors.New("dial"), ErrCodeTransport, "offline"), IsTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !tt.check(wrapped) {
				t.Errorf("expected %s helper to match wrapped error", tt.name)
			}
		})
	}
}

func TestIsRemote(t *testing.T) {
	if IsRemote(Validation("x")) {
		t.Error("validation must not be remote")
	}
	if !IsRemote(Wrap(errors.New("x"), ErrCodeHTTP, "HTTP 418")) {
		t.Error("http error must be remote")
	}
	if IsRemote(errors.New("plain")) {
		t.Error("plain error must not be remote")
	}
}

func TestGetFieldAndMessage(t *testing.T) {
	err := ValidationField("email", "Please enter a valid email address")
	if GetField(err) != "email" {
		t.Errorf("GetField() = %q", GetField(err))
	}
	if Message(fmt.Errorf("ctx: %w", err)) != "Please enter a valid email address" {
		t.Errorf("Message() = %q", Message(err))
	}
	if Message(errors.New("plain")) != "plain" {
		t.Error("Message() should fall back to Error()")
	}
	if Message(nil) != "" {
		t.Error("Message(nil) should be empty")
	}
}
