//go:build !darwin && !linux

package vaults

import "github.com/systmms/credstore/pkg/vault"

// unsupportedVault reports unimplemented for every operation.
type unsupportedVault struct{}

// New returns the stub backend for platforms without a secure vault.
func New() vault.Vault {
	return unsupportedVault{}
}

// Available reports whether the backend can be used at all.
func Available() bool { return false }

// Headless reports whether no interactive challenge could be presented.
func Headless() bool { return true }

func (unsupportedVault) Add(vault.Query) vault.Status {
	return vault.StatusUnimplemented
}

func (unsupportedVault) Fetch(vault.Query) ([]vault.Item, vault.Status) {
	return nil, vault.StatusUnimplemented
}

func (unsupportedVault) Update(vault.Query, vault.Query) vault.Status {
	return vault.StatusUnimplemented
}

func (unsupportedVault) Delete(vault.Query) vault.Status {
	return vault.StatusUnimplemented
}
