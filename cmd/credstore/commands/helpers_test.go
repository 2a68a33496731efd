package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cserrors "github.com/systmms/credstore/internal/errors"
	"github.com/systmms/credstore/pkg/credstore"
	"github.com/systmms/credstore/pkg/vault"
	"github.com/systmms/credstore/tests/fakes"
)

// applyOptions runs a Set against a fake vault and returns the stored item,
// which reflects how the option list resolved.
func applyOptions(t *testing.T, opts []credstore.Option) *fakes.FakeItem {
	t.Helper()
	fv := fakes.NewFakeVault()
	store := credstore.New(fv)
	require.NoError(t, store.Set("v", "svc", "acct", opts...))
	item := fv.Item("svc", "acct")
	require.NotNil(t, item)
	return item
}

func TestPolicyFlagsOptionsEmpty(t *testing.T) {
	t.Parallel()

	pf := &policyFlags{}
	opts, err := pf.options()
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestPolicyFlagsOptionsAccessGroup(t *testing.T) {
	t.Parallel()

	pf := &policyFlags{accessGroup: "com.example.team"}
	opts, err := pf.options()
	require.NoError(t, err)

	item := applyOptions(t, opts)
	assert.Equal(t, "com.example.team", item.AccessGroup)
}

func TestPolicyFlagsOptionsAccessibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  vault.Accessibility
	}{
		{label: "when_unlocked", want: vault.AccessibleWhenUnlocked},
		{label: "when_unlocked_this_device_only", want: vault.AccessibleWhenUnlockedThisDeviceOnly},
		{label: "after_first_unlock", want: vault.AccessibleAfterFirstUnlock},
		{label: "after_first_unlock_this_device_only", want: vault.AccessibleAfterFirstUnlockThisDeviceOnly},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			pf := &policyFlags{accessibility: tt.label}
			opts, err := pf.options()
			require.NoError(t, err)

			item := applyOptions(t, opts)
			assert.Equal(t, tt.want, item.Accessibility)
		})
	}
}

func TestPolicyFlagsOptionsBiometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  vault.Biometry
	}{
		{label: "any", want: vault.BiometryAny},
		{label: "current_set", want: vault.BiometryCurrentSet},
		{label: "user_presence", want: vault.UserPresence},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			pf := &policyFlags{biometry: tt.label}
			opts, err := pf.options()
			require.NoError(t, err)

			item := applyOptions(t, opts)
			assert.Equal(t, tt.want, item.Biometry)
			assert.Equal(t, vault.AccessibleWhenPasscodeSetThisDeviceOnly, item.Accessibility)
		})
	}
}

func TestPolicyFlagsOptionsRejectsUnknownBiometry(t *testing.T) {
	t.Parallel()

	pf := &policyFlags{biometry: "retina"}
	_, err := pf.options()

	var cerr cserrors.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "biometry", cerr.Field)
}

func TestPolicyFlagsOptionsRejectsUnknownAccessibility(t *testing.T) {
	t.Parallel()

	pf := &policyFlags{accessibility: "sometimes"}
	_, err := pf.options()

	var cerr cserrors.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "accessibility", cerr.Field)
}

func TestPolicyFlagsOptionsNoPromptSkipsProtectedItems(t *testing.T) {
	t.Parallel()

	fv := fakes.NewFakeVault()
	fv.SeedProtected("svc", "guarded", "secret")
	fv.Seed("svc", "open", "value")
	store := credstore.New(fv)

	pf := &policyFlags{skipInteraction: true}
	opts, err := pf.options()
	require.NoError(t, err)

	creds, err := store.Keys("svc", "", opts...)
	require.NoError(t, err)
	assert.Equal(t, []credstore.Credential{{Service: "svc", Account: "open"}}, creds)
}
