package credstore

import "github.com/systmms/credstore/pkg/vault"

// Policy is the concrete, internally consistent protection description an
// option list resolves to. Immutable once built: exactly one accessibility
// class is active, the biometric constraint is additive.
type Policy struct {
	Accessibility   vault.Accessibility
	Biometry        vault.Biometry
	AccessGroup     string
	AuthContext     *vault.AuthContext
	SkipInteraction bool
}

// defaults are the store-level baseline a policy falls back to when the
// option list leaves a field unset.
type defaults struct {
	accessGroup   string
	accessibility vault.Accessibility
}

// resolvePolicy reduces an ordered option list against the store defaults.
// A single pass; for the mutually exclusive categories the last option wins.
//
// When a biometric constraint is requested without an explicit accessibility
// option, the backing class is "passcode set, this device only" rather than
// the store default: a challenge-gated item on a device without a passcode
// would be unenforceable.
func resolvePolicy(d defaults, opts []Option) Policy {
	p := Policy{AccessGroup: d.accessGroup}

	for _, o := range opts {
		switch o.category {
		case catAccessibility:
			p.Accessibility = o.accessibility
		case catBiometry:
			p.Biometry = o.biometry
		case catAccessGroup:
			p.AccessGroup = o.group
		case catAuthContext:
			p.AuthContext = o.ctx
		case catSkipInteraction:
			p.SkipInteraction = true
		}
	}

	if p.Accessibility == vault.AccessibilityUnspecified {
		if p.Biometry != vault.BiometryNone {
			p.Accessibility = vault.AccessibleWhenPasscodeSetThisDeviceOnly
		} else {
			p.Accessibility = d.accessibility
		}
	}

	return p
}
