package errors_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	cserrors "github.com/systmms/credstore/internal/errors"
)

func TestUserErrorFormatting(t *testing.T) {
	t.Parallel()

	err := cserrors.UserError{
		Message:    "Cannot read config file",
		Suggestion: "Check the file permissions",
	}

	msg := err.Error()
	assert.Contains(t, msg, "Cannot read config file")
	assert.Contains(t, msg, "Check the file permissions")
	assert.Contains(t, msg, "💡")
}

func TestUserErrorFallsBackToWrappedMessage(t *testing.T) {
	t.Parallel()

	err := cserrors.UserError{Err: fmt.Errorf("permission denied")}
	assert.Contains(t, err.Error(), "permission denied")
}

func TestUserErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := cserrors.UserError{Message: "Cannot read config file", Err: fs.ErrPermission}
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestConfigErrorFormatting(t *testing.T) {
	t.Parallel()

	err := cserrors.ConfigError{
		Field:      "biometry",
		Value:      "retina",
		Message:    "unknown biometry constraint",
		Suggestion: "Use one of: any, current_set, user_presence",
	}

	msg := err.Error()
	assert.Contains(t, msg, "biometry")
	assert.Contains(t, msg, "retina")
	assert.Contains(t, msg, "unknown biometry constraint")
	assert.Contains(t, msg, "Use one of")
}

func TestConfigErrorMatchesWithErrorsAs(t *testing.T) {
	t.Parallel()

	var wrapped error = fmt.Errorf("loading: %w", cserrors.ConfigError{Field: "recovery", Message: "bad value"})

	var cerr cserrors.ConfigError
	assert.True(t, errors.As(wrapped, &cerr))
	assert.Equal(t, "recovery", cerr.Field)
}
