package credstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/systmms/credstore/pkg/vault"
)

var testDefaults = defaults{
	accessGroup:   "",
	accessibility: vault.AccessibleAfterFirstUnlockThisDeviceOnly,
}

func TestResolvePolicyLastAccessibilityWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		want vault.Accessibility
	}{
		{
			name: "two_classes_last_wins",
			opts: []Option{WhenUnlocked(), AfterFirstUnlock()},
			want: vault.AccessibleAfterFirstUnlock,
		},
		{
			name: "reversed_order_reverses_winner",
			opts: []Option{AfterFirstUnlock(), WhenUnlocked()},
			want: vault.AccessibleWhenUnlocked,
		},
		{
			name: "three_classes_last_wins",
			opts: []Option{WhenUnlocked(), AfterFirstUnlockThisDeviceOnly(), WhenUnlockedThisDeviceOnly()},
			want: vault.AccessibleWhenUnlockedThisDeviceOnly,
		},
		{
			name: "interleaved_with_other_categories",
			opts: []Option{WhenUnlocked(), AccessGroup("team"), AfterFirstUnlock()},
			want: vault.AccessibleAfterFirstUnlock,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := resolvePolicy(testDefaults, tt.opts)
			assert.Equal(t, tt.want, p.Accessibility)
		})
	}
}

func TestResolvePolicyDefaults(t *testing.T) {
	t.Parallel()

	d := defaults{
		accessGroup:   "com.example.shared",
		accessibility: vault.AccessibleWhenUnlocked,
	}

	p := resolvePolicy(d, nil)
	assert.Equal(t, vault.AccessibleWhenUnlocked, p.Accessibility)
	assert.Equal(t, "com.example.shared", p.AccessGroup)
	assert.Equal(t, vault.BiometryNone, p.Biometry)
	assert.Nil(t, p.AuthContext)
	assert.False(t, p.SkipInteraction)
}

func TestResolvePolicyLastBiometryWins(t *testing.T) {
	t.Parallel()

	p := resolvePolicy(testDefaults, []Option{BiometryAny(), UserPresence(), BiometryCurrentSet()})
	assert.Equal(t, vault.BiometryCurrentSet, p.Biometry)
}

func TestResolvePolicyBiometryBackingClass(t *testing.T) {
	t.Parallel()

	t.Run("defaults_to_passcode_set_device_only", func(t *testing.T) {
		t.Parallel()
		p := resolvePolicy(testDefaults, []Option{BiometryAny()})
		assert.Equal(t, vault.AccessibleWhenPasscodeSetThisDeviceOnly, p.Accessibility)
	})

	t.Run("explicit_class_overrides_backing", func(t *testing.T) {
		t.Parallel()
		p := resolvePolicy(testDefaults, []Option{BiometryAny(), WhenUnlockedThisDeviceOnly()})
		assert.Equal(t, vault.AccessibleWhenUnlockedThisDeviceOnly, p.Accessibility)
		assert.Equal(t, vault.BiometryAny, p.Biometry)
	})
}

func TestResolvePolicyAccessGroupOverride(t *testing.T) {
	t.Parallel()

	d := defaults{accessGroup: "default.group", accessibility: vault.AccessibleAfterFirstUnlockThisDeviceOnly}

	p := resolvePolicy(d, []Option{AccessGroup("first"), AccessGroup("second")})
	assert.Equal(t, "second", p.AccessGroup)
}

func TestResolvePolicyContextAndSkip(t *testing.T) {
	t.Parallel()

	ctx := vault.NonInteractive()
	p := resolvePolicy(testDefaults, []Option{AuthContext(ctx), SkipInteractiveAuth()})

	assert.Same(t, ctx, p.AuthContext)
	assert.True(t, p.SkipInteraction)
}
