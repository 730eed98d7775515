package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldCipher_EmptySecret(t *testing.T) {
	c, err := NewFieldCipher("")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	c, err := NewFieldCipher("server-secret")
	require.NoError(t, err)

	enc, err := c.Encrypt("hr@roxanne.test")
	require.NoError(t, err)
	assert.NotEqual(t, "hr@roxanne.test", enc)

	_, err = base64.StdEncoding.DecodeString(enc)
	require.NoError(t, err, "ciphertext must be base64")

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "hr@roxanne.test", dec)
}

func TestFieldCipher_NonDeterministic(t *testing.T) {
	c, err := NewFieldCipher("server-secret")
	require.NoError(t, err)

	a, err := c.Encrypt("same")
	require.NoError(t, err)
	b, err := c.Encrypt("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestFieldCipher_SameSecretDecrypts(t *testing.T) {
	c1, err := NewFieldCipher("server-secret")
	require.NoError(t, err)
	c2, err := NewFieldCipher("server-secret")
	require.NoError(t, err)

	enc, err := c1.Encrypt("value")
	require.NoError(t, err)

	dec, err := c2.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "value", dec)
}

func TestFieldCipher_DecryptErrors(t *testing.T) {
	c, err := NewFieldCipher("server-secret")
	require.NoError(t, err)
	other, err := NewFieldCipher("other-secret")
	require.NoError(t, err)

	foreign, err := other.Encrypt("value")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
	}{
		{"not base64", "%%%"},
		{"too short", base64.StdEncoding.EncodeToString([]byte("abc"))},
		{"wrong key", foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.in)
			assert.ErrorIs(t, err, ErrDecrypt)
		})
	}
}
