package credstore

import "github.com/systmms/credstore/pkg/vault"

// operation selects the query shape. Read operations add match limits and
// interaction gating; writes add payloads and protection attributes.
type operation int

const (
	opExists operation = iota
	opGet
	opKeys
	opInsert
	opUpdateFilter
	opDelete
)

// buildQuery turns an identity, a resolved policy, and an operation kind
// into the exact request the vault understands.
//
// Identity and access-group fields are set only when non-empty: presence of
// a field in the map, not its emptiness, controls vault matching, and an
// absent field means "match any". Delete queries carry identity only - no
// policy filter - so removal works regardless of how the item was protected.
func buildQuery(service, account string, p Policy, op operation, caps BiometryCapabilities) vault.Query {
	q := vault.Query{vault.KeyClass: vault.ClassGenericPassword}

	if service != "" {
		q[vault.KeyService] = service
	}
	if account != "" {
		q[vault.KeyAccount] = account
	}
	if op == opDelete {
		return q
	}

	if p.AccessGroup != "" {
		q[vault.KeyAccessGroup] = p.AccessGroup
	}

	switch op {
	case opExists, opGet, opKeys, opUpdateFilter:
		if op == opKeys {
			q[vault.KeyMatchLimit] = vault.MatchAll
			q[vault.KeyReturnAttributes] = true
		} else if op != opUpdateFilter {
			q[vault.KeyMatchLimit] = vault.MatchOne
		}
		if op == opGet {
			q[vault.KeyReturnData] = true
		}
		if ui, ok := interactionMode(p); ok {
			q[vault.KeyAuthUI] = ui
		}
		if p.AuthContext != nil {
			q[vault.KeyAuthContext] = p.AuthContext
		}

	case opInsert:
		if p.Biometry != vault.BiometryNone {
			q[vault.KeyAccessControl] = vault.AccessControl{
				Accessibility: p.Accessibility,
				Biometry:      normalizeBiometry(p.Biometry, caps),
			}
		} else {
			q[vault.KeyAccessible] = p.Accessibility
		}
	}

	return q
}

// updateAttributes is the payload-only map applied by an update; everything
// else about the item is left untouched.
func updateAttributes(value []byte) vault.Query {
	return vault.Query{vault.KeyData: value}
}

// interactionMode maps the resolved policy onto the vault's authentication
// UI modes. Skipping wins over a non-interacting context: skipped queries
// silently drop protected items, failing ones surface the block.
func interactionMode(p Policy) (vault.AuthUI, bool) {
	if p.SkipInteraction {
		return vault.AuthUISkip, true
	}
	if p.AuthContext != nil && !p.AuthContext.InteractionAllowed {
		return vault.AuthUIFail, true
	}
	return vault.AuthUIAllow, false
}

// normalizeBiometry degrades the requested constraint to what the device
// can enforce: current-set falls back to any enrolled biometric, and a
// device without biometric hardware falls back to user presence.
func normalizeBiometry(b vault.Biometry, caps BiometryCapabilities) vault.Biometry {
	if caps == nil {
		caps = defaultCapabilities
	}
	switch b {
	case vault.BiometryCurrentSet:
		if !caps.SupportsBiometryCurrentSet() {
			return normalizeBiometry(vault.BiometryAny, caps)
		}
	case vault.BiometryAny:
		if !caps.SupportsBiometry() {
			return vault.UserPresence
		}
	}
	return b
}
