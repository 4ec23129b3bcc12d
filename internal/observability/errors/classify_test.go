package errors

import (
	"context"
	goerrors "errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "github.com/tijaniyah/companion/internal/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"app error", apperrors.Validation("bad"), "validation"},
		{"wrapped app error", fmt.Errorf("login: %w", apperrors.Unauthorized("nope")), "unauthorized"},
		{"canceled", fmt.Errorf("do: %w", context.Canceled), "canceled"},
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"net op error", &net.OpError{Op: "dial", Err: goerrors.New("refused")}, "errors_errorstring"},
		{"plain", goerrors.New("x"), "errors_errorstring"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}
