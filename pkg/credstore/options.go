package credstore

import "github.com/systmms/credstore/pkg/vault"

// optionCategory partitions options into mutually exclusive groups. Within a
// category the last option of an option list wins; across categories options
// compose.
type optionCategory int

const (
	catAccessibility optionCategory = iota
	catBiometry
	catAccessGroup
	catAuthContext
	catSkipInteraction
)

// Option is one protection policy request. Options are supplied as an
// ordered list; conflicting options of the same category are not an error,
// the later entry simply overrides the earlier one.
type Option struct {
	category      optionCategory
	accessibility vault.Accessibility
	biometry      vault.Biometry
	group         string
	ctx           *vault.AuthContext
}

// AccessGroup shares the credential with other applications in the named
// access group.
func AccessGroup(id string) Option {
	return Option{category: catAccessGroup, group: id}
}

// AuthContext reuses an existing platform authentication session for the
// operation.
func AuthContext(ctx *vault.AuthContext) Option {
	return Option{category: catAuthContext, ctx: ctx}
}

// SkipInteractiveAuth prevents any biometric or passcode UI from appearing;
// protected items are silently excluded from results instead of triggering
// a prompt.
func SkipInteractiveAuth() Option {
	return Option{category: catSkipInteraction}
}

// AfterFirstUnlock makes the credential readable any time after the first
// unlock following a reboot.
func AfterFirstUnlock() Option {
	return Option{category: catAccessibility, accessibility: vault.AccessibleAfterFirstUnlock}
}

// AfterFirstUnlockThisDeviceOnly is AfterFirstUnlock bound to this device.
func AfterFirstUnlockThisDeviceOnly() Option {
	return Option{category: catAccessibility, accessibility: vault.AccessibleAfterFirstUnlockThisDeviceOnly}
}

// WhenUnlocked makes the credential readable only while the device is
// unlocked.
func WhenUnlocked() Option {
	return Option{category: catAccessibility, accessibility: vault.AccessibleWhenUnlocked}
}

// WhenUnlockedThisDeviceOnly is WhenUnlocked bound to this device.
func WhenUnlockedThisDeviceOnly() Option {
	return Option{category: catAccessibility, accessibility: vault.AccessibleWhenUnlockedThisDeviceOnly}
}

// BiometryAny gates the credential behind any enrolled biometric.
func BiometryAny() Option {
	return Option{category: catBiometry, biometry: vault.BiometryAny}
}

// BiometryCurrentSet gates the credential behind the biometric set enrolled
// at store time.
func BiometryCurrentSet() Option {
	return Option{category: catBiometry, biometry: vault.BiometryCurrentSet}
}

// UserPresence gates the credential behind a biometric or the device
// passcode.
func UserPresence() Option {
	return Option{category: catBiometry, biometry: vault.UserPresence}
}
