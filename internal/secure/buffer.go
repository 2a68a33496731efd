// Package secure holds secret payloads in protected memory while they pass
// through the CLI. Values are kept in memguard enclaves: encrypted at rest
// in process memory and shielded from swapping, so a credential read from
// the vault does not linger in plaintext between retrieval and output.
package secure

import "github.com/awnumar/memguard"

// Buffer is an encrypted in-memory holder for one secret payload.
type Buffer struct {
	enclave *memguard.Enclave
}

// NewBuffer seals data into a protected buffer. The caller keeps ownership
// of the input slice and should zero it when possible.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{enclave: memguard.NewEnclave(data)}
}

// NewBufferFromString seals a string value.
func NewBufferFromString(value string) *Buffer {
	return NewBuffer([]byte(value))
}

// Open decrypts the payload into a locked buffer. The caller must call
// Destroy on the result to wipe the plaintext.
func (b *Buffer) Open() (*memguard.LockedBuffer, error) {
	return b.enclave.Open()
}

// Purge wipes all protected memory held by the process. Call once, deferred
// from main.
func Purge() {
	memguard.Purge()
}
