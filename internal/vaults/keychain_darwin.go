//go:build darwin

package vaults

import (
	"errors"
	"os"

	gokeychain "github.com/keybase/go-keychain"

	"github.com/systmms/credstore/pkg/vault"
)

// keychainVault adapts the macOS Keychain to the vault contract.
//
// The binding exposes no SecAccessControl surface, so the biometric
// constraint of an access-control attribute cannot be attached here; the
// accessibility class it carries is applied, and the Keychain's own item
// protection still governs reads.
type keychainVault struct{}

// New returns the macOS Keychain backend.
func New() vault.Vault {
	return keychainVault{}
}

// Available reports whether the backend can be used at all.
func Available() bool { return true }

// Headless reports whether no interactive challenge could be presented.
func Headless() bool {
	return os.Getenv("SSH_TTY") != "" || os.Getenv("CI") != ""
}

func (keychainVault) Add(q vault.Query) vault.Status {
	item := toItem(q)
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	return statusFromError(gokeychain.AddItem(item))
}

func (keychainVault) Fetch(q vault.Query) ([]vault.Item, vault.Status) {
	results, err := gokeychain.QueryItem(toItem(q))
	if err != nil {
		return nil, statusFromError(err)
	}
	// QueryItem reports an empty result set instead of an error when
	// nothing matches.
	if len(results) == 0 {
		return nil, vault.StatusItemNotFound
	}

	items := make([]vault.Item, 0, len(results))
	for _, r := range results {
		item := vault.Item{}
		if q.Bool(vault.KeyReturnData) {
			item.Data = r.Data
		}
		if q.Bool(vault.KeyReturnAttributes) {
			item.Attributes = map[vault.Key]any{
				vault.KeyService:     r.Service,
				vault.KeyAccount:     r.Account,
				vault.KeyAccessGroup: r.AccessGroup,
			}
		}
		items = append(items, item)
	}
	return items, vault.StatusSuccess
}

func (keychainVault) Update(filter vault.Query, attrs vault.Query) vault.Status {
	update := gokeychain.NewItem()
	if data, ok := attrs.Bytes(vault.KeyData); ok {
		update.SetData(data)
	}
	return statusFromError(gokeychain.UpdateItem(toItem(filter), update))
}

func (keychainVault) Delete(q vault.Query) vault.Status {
	return statusFromError(gokeychain.DeleteItem(toItem(q)))
}

// toItem translates a map-based query into the binding's item form. Absent
// query fields stay absent on the item, preserving match-any semantics.
func toItem(q vault.Query) gokeychain.Item {
	item := gokeychain.NewItem()
	item.SetSecClass(gokeychain.SecClassGenericPassword)

	if svc, ok := q.String(vault.KeyService); ok {
		item.SetService(svc)
	}
	if acct, ok := q.String(vault.KeyAccount); ok {
		item.SetAccount(acct)
	}
	if grp, ok := q.String(vault.KeyAccessGroup); ok {
		item.SetAccessGroup(grp)
	}
	if data, ok := q.Bytes(vault.KeyData); ok {
		item.SetData(data)
	}
	if acc, ok := q[vault.KeyAccessible].(vault.Accessibility); ok {
		item.SetAccessible(toAccessible(acc))
	}
	if ac, ok := q[vault.KeyAccessControl].(vault.AccessControl); ok {
		item.SetAccessible(toAccessible(ac.Accessibility))
	}
	if limit, ok := q[vault.KeyMatchLimit].(vault.MatchLimit); ok {
		if limit == vault.MatchAll {
			item.SetMatchLimit(gokeychain.MatchLimitAll)
		} else {
			item.SetMatchLimit(gokeychain.MatchLimitOne)
		}
	}
	if q.Bool(vault.KeyReturnData) {
		item.SetReturnData(true)
	}
	if q.Bool(vault.KeyReturnAttributes) {
		item.SetReturnAttributes(true)
	}
	return item
}

func toAccessible(a vault.Accessibility) gokeychain.Accessible {
	switch a {
	case vault.AccessibleWhenUnlocked:
		return gokeychain.AccessibleWhenUnlocked
	case vault.AccessibleWhenUnlockedThisDeviceOnly:
		return gokeychain.AccessibleWhenUnlockedThisDeviceOnly
	case vault.AccessibleAfterFirstUnlock:
		return gokeychain.AccessibleAfterFirstUnlock
	case vault.AccessibleWhenPasscodeSetThisDeviceOnly:
		return gokeychain.AccessibleWhenPasscodeSetThisDeviceOnly
	default:
		return gokeychain.AccessibleAfterFirstUnlockThisDeviceOnly
	}
}

// statusFromError passes OSStatus codes through unchanged; the binding's
// error type wraps them directly. Non-keychain failures report as
// not-available, which the taxonomy classifies as unknown.
func statusFromError(err error) vault.Status {
	if err == nil {
		return vault.StatusSuccess
	}
	var ke gokeychain.Error
	if errors.As(err, &ke) {
		return vault.Status(ke)
	}
	return vault.StatusNotAvailable
}
