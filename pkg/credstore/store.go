package credstore

import (
	"errors"
	"unicode/utf8"

	"github.com/systmms/credstore/pkg/vault"
)

// Credential identifies one stored secret. Service and account are opaque
// caller-supplied strings; the pair is unique within an access group.
type Credential struct {
	Service string
	Account string
}

// RecoveryPolicy controls what Update does when the existing item is
// protected and the current context cannot satisfy its challenge.
type RecoveryPolicy int

const (
	// RecoverDeleteAndRecreate silently deletes the blocked item and
	// re-creates it with the new value and the caller-supplied options.
	// This matches the historical behavior, and it is aggressive: a
	// protected credential can be replaced by a differently protected or
	// unprotected one without the user ever authenticating.
	RecoverDeleteAndRecreate RecoveryPolicy = iota

	// RecoverNone surfaces ErrInteractionBlocked and leaves the item
	// untouched.
	RecoverNone
)

// StoreOption configures a Store at construction.
type StoreOption func(*Store)

// WithDefaultAccessGroup sets the access group applied to every query that
// does not override it.
func WithDefaultAccessGroup(group string) StoreOption {
	return func(s *Store) { s.defaultAccessGroup = group }
}

// WithDefaultAccessibility sets the accessibility class used when an option
// list names none. The initial default is after-first-unlock, this device
// only.
func WithDefaultAccessibility(a vault.Accessibility) StoreOption {
	return func(s *Store) { s.defaultAccessibility = a }
}

// WithRecoveryPolicy selects the update fallback behavior.
func WithRecoveryPolicy(p RecoveryPolicy) StoreOption {
	return func(s *Store) { s.recovery = p }
}

// WithBiometryCapabilities injects the device capability report used to
// normalize biometric constraints.
func WithBiometryCapabilities(c BiometryCapabilities) StoreOption {
	return func(s *Store) { s.caps = c }
}

// Store exposes policy-driven credential operations over a secure vault.
//
// A Store is not safe for concurrent use: LastStatus is instance state
// overwritten by every operation, and the vault contract assumes at most one
// in-flight request per instance. Callers that share a Store across
// goroutines must serialize access externally. Operations block until the
// vault answers, which for interactive policies includes waiting on the
// user; a dismissed prompt surfaces as ErrUserCancelled.
type Store struct {
	vault      vault.Vault
	caps       BiometryCapabilities
	recovery   RecoveryPolicy
	lastStatus vault.Status

	defaultAccessGroup   string
	defaultAccessibility vault.Accessibility
}

// New builds a Store over the given vault. Without options the store binds
// credentials to this device, readable after first unlock, in no particular
// access group, with the historical delete-and-recreate update recovery.
func New(v vault.Vault, opts ...StoreOption) *Store {
	s := &Store{
		vault:                v,
		caps:                 defaultCapabilities,
		defaultAccessibility: vault.AccessibleAfterFirstUnlockThisDeviceOnly,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetDefaultAccessGroup changes the store-wide access group.
func (s *Store) SetDefaultAccessGroup(group string) { s.defaultAccessGroup = group }

// SetDefaultAccessibility changes the store-wide accessibility baseline.
func (s *Store) SetDefaultAccessibility(a vault.Accessibility) { s.defaultAccessibility = a }

// LastStatus returns the raw vault status of the most recent operation.
// Overwritten by every call; read it immediately after the operation whose
// outcome you care about.
func (s *Store) LastStatus() vault.Status { return s.lastStatus }

func (s *Store) defaults() defaults {
	return defaults{accessGroup: s.defaultAccessGroup, accessibility: s.defaultAccessibility}
}

// Exists reports whether a credential is stored under the identity, without
// revealing or prompting for protected data. A protected item the current
// context cannot read still exists: interaction-blocked counts as present.
func (s *Store) Exists(service, account string, opts ...Option) (bool, error) {
	p := resolvePolicy(s.defaults(), opts)
	p.AuthContext = vault.NonInteractive()

	_, st := s.vault.Fetch(buildQuery(service, account, p, opExists, s.caps))
	s.lastStatus = st

	switch st.Outcome() {
	case vault.OutcomeSuccess, vault.OutcomeInteractionBlocked:
		return true, nil
	case vault.OutcomeNotFound:
		return false, nil
	default:
		return false, st.Err()
	}
}

// Get returns the stored value for the identity. A missing credential
// reports ErrNotFound; so does a payload that is not valid UTF-8, since
// corruption and absence are indistinguishable to callers. Authentication
// failures and cancelled prompts surface as their own errors.
func (s *Store) Get(service, account string, opts ...Option) (string, error) {
	p := resolvePolicy(s.defaults(), opts)

	items, st := s.vault.Fetch(buildQuery(service, account, p, opGet, s.caps))
	s.lastStatus = st

	if !st.IsSuccess() {
		return "", st.Err()
	}
	if len(items) == 0 || !utf8.Valid(items[0].Data) {
		s.lastStatus = vault.StatusItemNotFound
		return "", vault.ErrNotFound
	}
	return string(items[0].Data), nil
}

// Set stores value under the identity. Set is an upsert: when the vault
// reports a duplicate the call falls through to Update with the same
// arguments, so callers cannot distinguish created from replaced except via
// status history.
func (s *Store) Set(value, service, account string, opts ...Option) error {
	return s.set(value, service, account, opts, true)
}

// Update replaces the value of an existing credential in place. The match
// filter uses a non-interacting context; when the existing item is protected
// and the challenge cannot be satisfied, the configured RecoveryPolicy
// decides between delete-and-recreate and surfacing ErrInteractionBlocked.
func (s *Store) Update(value, service, account string, opts ...Option) error {
	return s.update(value, service, account, opts, true)
}

// Delete removes the credential by identity only, with no policy filter.
// Reports ErrNotFound when nothing was stored.
func (s *Store) Delete(service, account string) error {
	st := s.vault.Delete(buildQuery(service, account, Policy{}, opDelete, s.caps))
	s.lastStatus = st
	return st.Err()
}

// Keys lists the (service, account) pairs currently stored, fully
// materialized and in no particular order. Empty service or account
// arguments match any. The default option set suppresses prompts, so
// protected credentials are omitted rather than failed; records missing
// either identity attribute are silently dropped.
func (s *Store) Keys(service, account string, opts ...Option) ([]Credential, error) {
	if len(opts) == 0 {
		opts = []Option{SkipInteractiveAuth()}
	}
	p := resolvePolicy(s.defaults(), opts)

	items, st := s.vault.Fetch(buildQuery(service, account, p, opKeys, s.caps))
	s.lastStatus = st

	if st.IsNotFound() {
		return nil, nil
	}
	if !st.IsSuccess() {
		return nil, st.Err()
	}

	var creds []Credential
	for _, item := range items {
		svc, _ := item.Attributes[vault.KeyService].(string)
		acct, _ := item.Attributes[vault.KeyAccount].(string)
		if svc == "" || acct == "" {
			continue
		}
		creds = append(creds, Credential{Service: svc, Account: acct})
	}
	return creds, nil
}

// set implements the insert leg of the upsert state machine. fallthrough
// to the update leg happens at most once per call chain:
//
//	INSERT --(duplicate)--> UPDATE --(interaction blocked)--> DELETE --> INSERT
//
// with every other status terminal.
func (s *Store) set(value, service, account string, opts []Option, fallthroughToUpdate bool) error {
	p := resolvePolicy(s.defaults(), opts)

	q := buildQuery(service, account, p, opInsert, s.caps)
	q[vault.KeyData] = []byte(value)

	st := s.vault.Add(q)
	s.lastStatus = st

	if st.Outcome() == vault.OutcomeDuplicateItem && fallthroughToUpdate {
		return s.update(value, service, account, opts, true)
	}
	return st.Err()
}

func (s *Store) update(value, service, account string, opts []Option, recover bool) error {
	p := resolvePolicy(s.defaults(), opts)
	p.AuthContext = vault.NonInteractive()
	p.SkipInteraction = false

	filter := buildQuery(service, account, p, opUpdateFilter, s.caps)

	st := s.vault.Update(filter, updateAttributes([]byte(value)))
	s.lastStatus = st

	if st.Outcome() == vault.OutcomeInteractionBlocked && recover && s.recovery == RecoverDeleteAndRecreate {
		if err := s.Delete(service, account); err != nil && !errors.Is(err, vault.ErrNotFound) {
			return err
		}
		// Re-create with the caller-supplied options; no further fallback.
		return s.set(value, service, account, opts, false)
	}
	return st.Err()
}
