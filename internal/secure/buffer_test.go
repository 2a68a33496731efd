package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferRoundTrip(t *testing.T) {
	buf := NewBufferFromString("hunter2")

	locked, err := buf.Open()
	require.NoError(t, err)
	defer locked.Destroy()

	assert.Equal(t, "hunter2", locked.String())
}

func TestBufferCanBeOpenedRepeatedly(t *testing.T) {
	buf := NewBuffer([]byte{0x00, 0xff, 0x10})

	for i := 0; i < 3; i++ {
		locked, err := buf.Open()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0xff, 0x10}, locked.Bytes())
		locked.Destroy()
	}
}

func TestBufferDoesNotAliasInput(t *testing.T) {
	data := []byte("original")
	buf := NewBuffer(data)

	// memguard wipes the input slice after sealing; the sealed copy
	// must survive regardless of what happens to the caller's slice.
	for i := range data {
		data[i] = 0
	}

	locked, err := buf.Open()
	require.NoError(t, err)
	defer locked.Destroy()

	assert.Equal(t, "original", locked.String())
}
