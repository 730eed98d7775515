package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher encrypts single string columns before they are persisted.
// It knows nothing about the network, the database, or users.
//
// Ciphertexts are base64(nonce || AES-256-GCM(plaintext)), so encrypting the
// same value twice yields different outputs. Equality checks must use a
// separate keyed hash.
type FieldCipher interface {
	// Encrypt returns the base64 ciphertext of plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. It fails with ErrDecrypt when the blob is
	// malformed or was sealed under another key.
	Decrypt(ciphertext string) (string, error)
}
