package vault

// Accessibility selects when a stored item is readable relative to the
// device lock state. Exactly one class applies to an item.
type Accessibility int

const (
	// AccessibilityUnspecified leaves the choice to the caller's defaults.
	AccessibilityUnspecified Accessibility = iota

	// AccessibleWhenUnlocked makes the item readable only while the device
	// is unlocked. Migrates to new devices.
	AccessibleWhenUnlocked

	// AccessibleWhenUnlockedThisDeviceOnly is AccessibleWhenUnlocked bound
	// to the current device.
	AccessibleWhenUnlockedThisDeviceOnly

	// AccessibleAfterFirstUnlock makes the item readable any time after
	// the first unlock following a reboot. Migrates to new devices.
	AccessibleAfterFirstUnlock

	// AccessibleAfterFirstUnlockThisDeviceOnly is the device-bound variant
	// of AccessibleAfterFirstUnlock, and the store-wide default class.
	AccessibleAfterFirstUnlockThisDeviceOnly

	// AccessibleWhenPasscodeSetThisDeviceOnly requires a device passcode
	// and never migrates. The backing class for biometric-gated items.
	AccessibleWhenPasscodeSetThisDeviceOnly
)

// String returns the configuration label for the class.
func (a Accessibility) String() string {
	switch a {
	case AccessibleWhenUnlocked:
		return "when_unlocked"
	case AccessibleWhenUnlockedThisDeviceOnly:
		return "when_unlocked_this_device_only"
	case AccessibleAfterFirstUnlock:
		return "after_first_unlock"
	case AccessibleAfterFirstUnlockThisDeviceOnly:
		return "after_first_unlock_this_device_only"
	case AccessibleWhenPasscodeSetThisDeviceOnly:
		return "when_passcode_set_this_device_only"
	default:
		return "unspecified"
	}
}

// Biometry names the user-verification constraint attached to an item.
// Orthogonal to Accessibility: any class may additionally require a
// challenge.
type Biometry int

const (
	// BiometryNone attaches no challenge.
	BiometryNone Biometry = iota

	// BiometryAny accepts any enrolled biometric, surviving enrollment
	// changes.
	BiometryAny

	// BiometryCurrentSet accepts only the biometric set enrolled at store
	// time; items become unreadable after re-enrollment.
	BiometryCurrentSet

	// UserPresence accepts a biometric or the device passcode.
	UserPresence
)

// String returns the configuration label for the constraint.
func (b Biometry) String() string {
	switch b {
	case BiometryAny:
		return "any"
	case BiometryCurrentSet:
		return "current_set"
	case UserPresence:
		return "user_presence"
	default:
		return "none"
	}
}

// AccessControl couples an accessibility class with a user-verification
// constraint. Carried under KeyAccessControl on insert queries for protected
// items.
type AccessControl struct {
	Accessibility Accessibility
	Biometry      Biometry
}
