// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

var (
	ErrEmptySecret = errors.New("empty cipher secret")
	ErrDecrypt     = errors.New("error decrypting field")
)

// keySalt domain-separates the derived field key from any other use of the
// server secret. Changing it invalidates every stored ciphertext.
var keySalt = []byte("go-job-board/field-cipher/v1")

// fieldCipher is the private implementation of [FieldCipher].
type fieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher derives a 256-bit key from secret with Argon2id
// (time 1, memory 64 MiB, 4 threads) and returns an AES-256-GCM [FieldCipher].
// Derivation runs once at startup.
func NewFieldCipher(secret string) (FieldCipher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := argon2.IDKey([]byte(secret), keySalt, 1, 64*1024, 4, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("error creating block cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("error creating GCM: %w", err)
	}

	return &fieldCipher{aead: gcm}, nil
}

// Encrypt implements [FieldCipher]. A random nonce is prepended to the
// sealed bytes: blob = nonce ‖ ciphertext.
func (c *fieldCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("error generating nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt implements [FieldCipher].
func (c *fieldCipher) Decrypt(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	return string(plain), nil
}
