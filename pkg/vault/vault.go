// Package vault defines the request/response contract for platform secure
// vaults (the OS-managed protected key-value stores behind credstore).
//
// A vault is addressed through map-based queries: a Query carries well-known
// keys for the item class, identity attributes, protection attributes, and
// operation modifiers. Field *presence* controls matching - a key absent from
// the query means "match any", which is different from a key present with an
// empty value. Responses are a Status plus, for fetch operations, zero or
// more Items.
//
// Implementations adapt a concrete platform facility (macOS Keychain, the
// freedesktop Secret Service) to this contract. The in-memory fake used by
// the test suite implements the same contract, including duplicate detection
// and interaction gating, so the policy and store layers can be tested
// without an OS keychain.
//
// # Implementing a Vault
//
// Implementations must:
//   - Report StatusDuplicateItem from Add when an item with the same
//     identity already exists.
//   - Report StatusItemNotFound when a fetch, update, or delete matches
//     nothing.
//   - Honor KeyAuthUI: AuthUIFail means a protected item produces
//     StatusInteractionNotAllowed instead of a prompt; AuthUISkip means
//     protected items are silently excluded from results.
//   - Never prompt the user during Add, Update, or Delete.
//
// A backend that cannot express part of the contract (access groups,
// accessibility classes) should ignore the attribute rather than fail, and
// document the degradation.
package vault

// Key names a well-known field in a vault query or response attribute map.
type Key string

// Query and attribute keys. The values mirror the platform wire labels so a
// query dumped in debug logs lines up with what the OS tooling shows.
const (
	// KeyClass selects the item class. Always ClassGenericPassword here.
	KeyClass Key = "class"

	// KeyService and KeyAccount form the credential identity.
	KeyService Key = "svce"
	KeyAccount Key = "acct"

	// KeyAccessGroup scopes the item to an application access group.
	KeyAccessGroup Key = "agrp"

	// KeyAccessible carries an Accessibility value on insert queries.
	KeyAccessible Key = "pdmn"

	// KeyAccessControl carries an AccessControl value on insert queries
	// that require a biometric or user-presence challenge. Mutually
	// exclusive with KeyAccessible.
	KeyAccessControl Key = "accc"

	// KeyAuthContext carries a *AuthContext for reads that should reuse an
	// existing authentication session.
	KeyAuthContext Key = "u_AuthCtx"

	// KeyAuthUI carries an AuthUI value controlling whether the vault may
	// present an interactive challenge while serving the query.
	KeyAuthUI Key = "u_AuthUI"

	// KeyMatchLimit carries a MatchLimit on read queries.
	KeyMatchLimit Key = "m_Limit"

	// KeyReturnData asks the vault to include item payloads in results.
	KeyReturnData Key = "r_Data"

	// KeyReturnAttributes asks the vault to include item attributes
	// (service, account, access group) in results.
	KeyReturnAttributes Key = "r_Attrs"

	// KeyData carries the payload bytes on insert and update queries.
	KeyData Key = "v_Data"
)

// ClassGenericPassword is the only item class credstore uses.
const ClassGenericPassword = "genp"

// Query is a mapping-based vault request. Presence of a key, not the
// emptiness of its value, determines whether the vault matches on it.
type Query map[Key]any

// String returns the string value stored under k, if any.
func (q Query) String(k Key) (string, bool) {
	v, ok := q[k].(string)
	return v, ok
}

// Bytes returns the byte payload stored under k, if any.
func (q Query) Bytes(k Key) ([]byte, bool) {
	v, ok := q[k].([]byte)
	return v, ok
}

// Bool reports whether k is present and set to true.
func (q Query) Bool(k Key) bool {
	v, ok := q[k].(bool)
	return ok && v
}

// MatchLimit bounds how many items a read query may return.
type MatchLimit int

const (
	// MatchOne returns at most a single item.
	MatchOne MatchLimit = iota + 1
	// MatchAll returns every matching item.
	MatchAll
)

// AuthUI controls interactive authentication while serving a query.
type AuthUI int

const (
	// AuthUIAllow permits the vault to prompt the user. The default when
	// KeyAuthUI is absent.
	AuthUIAllow AuthUI = iota
	// AuthUIFail makes queries touching protected items report
	// StatusInteractionNotAllowed instead of prompting.
	AuthUIFail
	// AuthUISkip silently excludes protected items from results.
	AuthUISkip
)

// AuthContext is a handle onto a platform authentication session. A context
// with InteractionAllowed false must never cause a prompt; queries carrying
// one degrade to StatusInteractionNotAllowed when a challenge would be
// required.
type AuthContext struct {
	// Handle is an opaque platform session reference. May be nil.
	Handle any

	// InteractionAllowed reports whether the vault may challenge the user
	// while satisfying this context.
	InteractionAllowed bool
}

// NonInteractive returns a context that disallows any user interaction.
func NonInteractive() *AuthContext {
	return &AuthContext{InteractionAllowed: false}
}

// Item is a single record returned by a fetch. Data is only populated when
// the query asked for payload return, Attributes only when it asked for
// attribute return.
type Item struct {
	Data       []byte
	Attributes map[Key]any
}

// Vault is the narrow request/response surface of a platform secure store.
//
// All calls are synchronous and may block on an interactive authentication
// challenge when the query allows one. Implementations must be safe for the
// caller patterns documented on credstore.Store; they are not required to
// add their own locking beyond what the platform store provides.
type Vault interface {
	// Add inserts a new item described entirely by q (identity, payload,
	// protection attributes). Reports StatusDuplicateItem when an item
	// with the same identity already exists.
	Add(q Query) Status

	// Fetch returns the items matching q, subject to KeyMatchLimit,
	// KeyAuthUI, and the return flags.
	Fetch(q Query) ([]Item, Status)

	// Update modifies the items matching filter, applying the fields of
	// attrs (in practice only KeyData). The filter is evaluated with the
	// same interaction gating as Fetch.
	Update(filter Query, attrs Query) Status

	// Delete removes the items matching q.
	Delete(q Query) Status
}
