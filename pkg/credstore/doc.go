// Package credstore stores, retrieves, enumerates, and deletes named
// credentials in a platform secure vault under configurable protection
// policies: accessibility classes, biometric or passcode gating, device
// binding, and access-group sharing.
//
// The package does no cryptography of its own. The vault encrypts data at
// rest and enforces the challenges; credstore composes the request that
// selects which protection class applies, and maps the vault's status codes
// onto a semantic error taxonomy.
//
// A minimal round trip:
//
//	store := credstore.New(backend)
//	if err := store.Set("hunter2", "example.com", "alice"); err != nil {
//	    return err
//	}
//	value, err := store.Get("example.com", "alice")
//
// Protection policies are ordered option lists. Conflicting options of the
// same category are not an error; the last one wins:
//
//	err := store.Set(token, "example.com", "alice",
//	    credstore.WhenUnlockedThisDeviceOnly(),
//	    credstore.BiometryCurrentSet(),
//	)
//
// Set is an upsert. When the identity already exists the call falls through
// to an in-place update, and when that update is blocked by a protection
// challenge the store's RecoveryPolicy decides whether to delete and
// re-create the item (the historical default) or to surface
// vault.ErrInteractionBlocked.
package credstore
