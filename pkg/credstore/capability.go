package credstore

// BiometryCapabilities reports what user-verification constraints the
// current device can enforce. Injected at construction so the query builder
// never branches on platform versions directly; a backend or test supplies
// whatever truth applies.
type BiometryCapabilities interface {
	// SupportsBiometry reports whether any biometric sensor is available.
	SupportsBiometry() bool

	// SupportsBiometryCurrentSet reports whether the device can pin a
	// constraint to the currently enrolled biometric set.
	SupportsBiometryCurrentSet() bool
}

// StaticCapabilities is a fixed BiometryCapabilities, useful as a
// conservative default and in tests.
type StaticCapabilities struct {
	Biometry   bool
	CurrentSet bool
}

func (c StaticCapabilities) SupportsBiometry() bool           { return c.Biometry }
func (c StaticCapabilities) SupportsBiometryCurrentSet() bool { return c.CurrentSet }

// defaultCapabilities assumes a fully capable device. Stores on restricted
// hardware should inject the real capabilities.
var defaultCapabilities BiometryCapabilities = StaticCapabilities{Biometry: true, CurrentSet: true}
