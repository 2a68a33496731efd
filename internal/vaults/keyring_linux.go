//go:build linux

package vaults

import (
	"errors"
	"os"

	"github.com/zalando/go-keyring"

	"github.com/systmms/credstore/pkg/vault"
)

// keyringVault adapts the freedesktop Secret Service (via go-keyring) to
// the vault contract. The API is a flat (service, account) store: access
// groups and accessibility classes are ignored, interaction gating is left
// to the Secret Service daemon, and enumeration is unsupported.
type keyringVault struct{}

// New returns the Secret Service backend.
func New() vault.Vault {
	return keyringVault{}
}

// Available reports whether a display session exists for the Secret
// Service daemon to run in.
func Available() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// Headless reports whether no interactive challenge could be presented.
func Headless() bool {
	if os.Getenv("SSH_TTY") != "" || os.Getenv("CI") != "" {
		return true
	}
	return !Available()
}

func (keyringVault) Add(q vault.Query) vault.Status {
	svc, acct, ok := identity(q)
	if !ok {
		return vault.StatusUnimplemented
	}
	// go-keyring's Set overwrites silently; probe first so the store's
	// upsert machinery sees the duplicate.
	if _, err := keyring.Get(svc, acct); err == nil {
		return vault.StatusDuplicateItem
	} else if !errors.Is(err, keyring.ErrNotFound) {
		return statusFromError(err)
	}

	data, _ := q.Bytes(vault.KeyData)
	return statusFromError(keyring.Set(svc, acct, string(data)))
}

func (keyringVault) Fetch(q vault.Query) ([]vault.Item, vault.Status) {
	if q.Bool(vault.KeyReturnAttributes) {
		// Enumeration is not part of the go-keyring surface.
		return nil, vault.StatusUnimplemented
	}
	svc, acct, ok := identity(q)
	if !ok {
		return nil, vault.StatusUnimplemented
	}

	value, err := keyring.Get(svc, acct)
	if err != nil {
		return nil, statusFromError(err)
	}

	item := vault.Item{}
	if q.Bool(vault.KeyReturnData) {
		item.Data = []byte(value)
	}
	return []vault.Item{item}, vault.StatusSuccess
}

func (keyringVault) Update(filter vault.Query, attrs vault.Query) vault.Status {
	svc, acct, ok := identity(filter)
	if !ok {
		return vault.StatusUnimplemented
	}
	if _, err := keyring.Get(svc, acct); err != nil {
		return statusFromError(err)
	}

	data, _ := attrs.Bytes(vault.KeyData)
	return statusFromError(keyring.Set(svc, acct, string(data)))
}

func (keyringVault) Delete(q vault.Query) vault.Status {
	svc, acct, ok := identity(q)
	if !ok {
		return vault.StatusUnimplemented
	}
	return statusFromError(keyring.Delete(svc, acct))
}

func identity(q vault.Query) (service, account string, ok bool) {
	service, haveSvc := q.String(vault.KeyService)
	account, haveAcct := q.String(vault.KeyAccount)
	return service, account, haveSvc && haveAcct
}

func statusFromError(err error) vault.Status {
	switch {
	case err == nil:
		return vault.StatusSuccess
	case errors.Is(err, keyring.ErrNotFound):
		return vault.StatusItemNotFound
	case errors.Is(err, keyring.ErrUnsupportedPlatform):
		return vault.StatusUnimplemented
	default:
		return vault.StatusNotAvailable
	}
}
