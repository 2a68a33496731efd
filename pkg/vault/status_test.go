package vault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/credstore/pkg/vault"
)

func TestStatusOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status vault.Status
		want   vault.Outcome
	}{
		{"success", vault.StatusSuccess, vault.OutcomeSuccess},
		{"not_found", vault.StatusItemNotFound, vault.OutcomeNotFound},
		{"duplicate", vault.StatusDuplicateItem, vault.OutcomeDuplicateItem},
		{"interaction_blocked", vault.StatusInteractionNotAllowed, vault.OutcomeInteractionBlocked},
		{"auth_failed", vault.StatusAuthFailed, vault.OutcomeAuthenticationFailed},
		{"user_cancelled", vault.StatusUserCancelled, vault.OutcomeUserCancelled},
		{"unimplemented_is_unknown", vault.StatusUnimplemented, vault.OutcomeUnknown},
		{"arbitrary_code_is_unknown", vault.Status(-34018), vault.OutcomeUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.status.Outcome())
		})
	}
}

func TestStatusErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status vault.Status
		want   error
	}{
		{"success_is_nil", vault.StatusSuccess, nil},
		{"not_found", vault.StatusItemNotFound, vault.ErrNotFound},
		{"duplicate", vault.StatusDuplicateItem, vault.ErrDuplicateItem},
		{"interaction_blocked", vault.StatusInteractionNotAllowed, vault.ErrInteractionBlocked},
		{"auth_failed", vault.StatusAuthFailed, vault.ErrAuthenticationFailed},
		{"user_cancelled", vault.StatusUserCancelled, vault.ErrUserCancelled},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.status.Err()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStatusErrUnknownKeepsRawCode(t *testing.T) {
	t.Parallel()

	err := vault.Status(-34018).Err()
	require.Error(t, err)

	var unknown *vault.UnknownStatusError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, vault.Status(-34018), unknown.Code)
	assert.Contains(t, err.Error(), "-34018")
}

func TestStatusPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, vault.StatusSuccess.IsSuccess())
	assert.True(t, vault.StatusItemNotFound.IsNotFound())
	assert.True(t, vault.StatusAuthFailed.IsAuthenticationFailed())
	assert.True(t, vault.StatusUserCancelled.IsUserCancelled())

	assert.False(t, vault.StatusItemNotFound.IsSuccess())
	assert.False(t, vault.StatusSuccess.IsNotFound())
	assert.False(t, vault.StatusUserCancelled.IsAuthenticationFailed())
	assert.False(t, vault.StatusAuthFailed.IsUserCancelled())
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "success", vault.StatusSuccess.String())
	assert.Equal(t, "not_found", vault.StatusItemNotFound.String())
	assert.Equal(t, "unknown(-34018)", vault.Status(-34018).String())
}
