// Package vaults provides the platform vault backends.
//
// New returns the backend for the current platform: macOS Keychain on
// darwin, the freedesktop Secret Service on linux, and a stub elsewhere
// whose every operation reports vault.StatusUnimplemented. Available and
// Headless report whether the backend can work at all and whether an
// interactive challenge could ever be presented.
//
// The linux backend degrades the contract: the Secret Service API exposed
// by go-keyring carries no access groups, accessibility classes, or
// enumeration, so those query fields are ignored and listing reports
// unimplemented.
package vaults
