// Package fakes provides test doubles shared by the credstore test suites.
package fakes

import (
	"sync"

	"github.com/systmms/credstore/pkg/vault"
)

// FakeItem is one record held by a FakeVault.
type FakeItem struct {
	Service       string
	Account       string
	AccessGroup   string
	Data          []byte
	Accessibility vault.Accessibility
	Biometry      vault.Biometry
}

// protected reports whether reading the item requires a user challenge.
func (it *FakeItem) protected() bool {
	return it.Biometry != vault.BiometryNone
}

// FakeVault is an in-memory test double for vault.Vault. It implements the
// full contract semantics: presence-based matching, duplicate detection on
// insert, and interaction gating for protected items, so the policy and
// store layers can be exercised without an OS keychain.
type FakeVault struct {
	mu    sync.Mutex
	items []*FakeItem

	// AddStatus, FetchStatus, UpdateStatus and DeleteStatus script the
	// corresponding operation to fail unconditionally when non-zero.
	AddStatus    vault.Status
	FetchStatus  vault.Status
	UpdateStatus vault.Status
	DeleteStatus vault.Status

	// ChallengeOutcome is how an interactive prompt resolves when a query
	// permits one over a protected item. Defaults to success; set
	// vault.StatusUserCancelled or vault.StatusAuthFailed to simulate a
	// dismissed or failed challenge.
	ChallengeOutcome vault.Status
}

// NewFakeVault creates an empty fake vault whose prompts succeed.
func NewFakeVault() *FakeVault {
	return &FakeVault{}
}

// Seed stores an unprotected item directly, bypassing Add semantics.
func (f *FakeVault) Seed(service, account, value string) {
	f.SeedRaw(service, account, []byte(value))
}

// SeedRaw stores raw payload bytes, for exercising decode behavior.
func (f *FakeVault) SeedRaw(service, account string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, &FakeItem{
		Service:       service,
		Account:       account,
		Data:          data,
		Accessibility: vault.AccessibleAfterFirstUnlockThisDeviceOnly,
	})
}

// SeedProtected stores an item gated behind a biometric challenge.
func (f *FakeVault) SeedProtected(service, account, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, &FakeItem{
		Service:       service,
		Account:       account,
		Data:          []byte(value),
		Accessibility: vault.AccessibleWhenPasscodeSetThisDeviceOnly,
		Biometry:      vault.BiometryAny,
	})
}

// SeedItem stores an arbitrary prebuilt item.
func (f *FakeVault) SeedItem(item FakeItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, &item)
}

// Item returns the stored item for an identity, or nil.
func (f *FakeVault) Item(service, account string) *FakeItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.Service == service && it.Account == account {
			cp := *it
			return &cp
		}
	}
	return nil
}

// Len returns the number of stored items.
func (f *FakeVault) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// matches reports whether the item satisfies the query's identity fields.
// A field absent from the query matches anything.
func (f *FakeVault) matches(it *FakeItem, q vault.Query) bool {
	if svc, ok := q.String(vault.KeyService); ok && it.Service != svc {
		return false
	}
	if acct, ok := q.String(vault.KeyAccount); ok && it.Account != acct {
		return false
	}
	if grp, ok := q.String(vault.KeyAccessGroup); ok && it.AccessGroup != grp {
		return false
	}
	return true
}

func (f *FakeVault) matching(q vault.Query) []*FakeItem {
	var out []*FakeItem
	for _, it := range f.items {
		if f.matches(it, q) {
			out = append(out, it)
		}
	}
	return out
}

// Add implements vault.Vault.
func (f *FakeVault) Add(q vault.Query) vault.Status {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.AddStatus != vault.StatusSuccess {
		return f.AddStatus
	}
	if len(f.matching(q)) > 0 {
		return vault.StatusDuplicateItem
	}

	item := &FakeItem{Data: append([]byte(nil), mustBytes(q, vault.KeyData)...)}
	item.Service, _ = q.String(vault.KeyService)
	item.Account, _ = q.String(vault.KeyAccount)
	item.AccessGroup, _ = q.String(vault.KeyAccessGroup)

	if ac, ok := q[vault.KeyAccessControl].(vault.AccessControl); ok {
		item.Accessibility = ac.Accessibility
		item.Biometry = ac.Biometry
	} else if acc, ok := q[vault.KeyAccessible].(vault.Accessibility); ok {
		item.Accessibility = acc
	}

	f.items = append(f.items, item)
	return vault.StatusSuccess
}

// Fetch implements vault.Vault.
func (f *FakeVault) Fetch(q vault.Query) ([]vault.Item, vault.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FetchStatus != vault.StatusSuccess {
		return nil, f.FetchStatus
	}

	matched := f.matching(q)
	matched, st := f.gateInteraction(matched, q)
	if st != vault.StatusSuccess {
		return nil, st
	}
	if len(matched) == 0 {
		return nil, vault.StatusItemNotFound
	}

	if limit, ok := q[vault.KeyMatchLimit].(vault.MatchLimit); ok && limit == vault.MatchOne {
		matched = matched[:1]
	}

	var out []vault.Item
	for _, it := range matched {
		item := vault.Item{}
		if q.Bool(vault.KeyReturnData) {
			item.Data = append([]byte(nil), it.Data...)
		}
		if q.Bool(vault.KeyReturnAttributes) {
			item.Attributes = map[vault.Key]any{
				vault.KeyService:     it.Service,
				vault.KeyAccount:     it.Account,
				vault.KeyAccessGroup: it.AccessGroup,
			}
		}
		out = append(out, item)
	}
	return out, vault.StatusSuccess
}

// Update implements vault.Vault.
func (f *FakeVault) Update(filter vault.Query, attrs vault.Query) vault.Status {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.UpdateStatus != vault.StatusSuccess {
		return f.UpdateStatus
	}

	matched := f.matching(filter)
	matched, st := f.gateInteraction(matched, filter)
	if st != vault.StatusSuccess {
		return st
	}
	if len(matched) == 0 {
		return vault.StatusItemNotFound
	}

	data, ok := attrs.Bytes(vault.KeyData)
	if !ok {
		return vault.StatusSuccess
	}
	for _, it := range matched {
		it.Data = append([]byte(nil), data...)
	}
	return vault.StatusSuccess
}

// Delete implements vault.Vault. Deletion never prompts.
func (f *FakeVault) Delete(q vault.Query) vault.Status {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.DeleteStatus != vault.StatusSuccess {
		return f.DeleteStatus
	}

	var kept []*FakeItem
	removed := 0
	for _, it := range f.items {
		if f.matches(it, q) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	if removed == 0 {
		return vault.StatusItemNotFound
	}
	f.items = kept
	return vault.StatusSuccess
}

// gateInteraction applies the query's authentication UI mode to a matched
// set containing protected items.
func (f *FakeVault) gateInteraction(matched []*FakeItem, q vault.Query) ([]*FakeItem, vault.Status) {
	hasProtected := false
	for _, it := range matched {
		if it.protected() {
			hasProtected = true
			break
		}
	}
	if !hasProtected {
		return matched, vault.StatusSuccess
	}

	ui, _ := q[vault.KeyAuthUI].(vault.AuthUI)
	switch ui {
	case vault.AuthUISkip:
		var visible []*FakeItem
		for _, it := range matched {
			if !it.protected() {
				visible = append(visible, it)
			}
		}
		return visible, vault.StatusSuccess
	case vault.AuthUIFail:
		return nil, vault.StatusInteractionNotAllowed
	default:
		if f.ChallengeOutcome != vault.StatusSuccess {
			return nil, f.ChallengeOutcome
		}
		return matched, vault.StatusSuccess
	}
}

func mustBytes(q vault.Query, k vault.Key) []byte {
	b, _ := q.Bytes(k)
	return b
}

var _ vault.Vault = (*FakeVault)(nil)
