// Package secret encrypts credential passwords at rest.
package secret

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	KeySize   = 32
	nonceSize = 24
)

var (
	ErrInvalidKey        = errors.New("credentials key must be 64 hex characters")
	ErrMalformedCipher   = errors.New("malformed ciphertext")
	ErrDecryptionFailure = errors.New("ciphertext could not be authenticated")
)

// Cipher encrypts and decrypts string secrets.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SecretBox seals values with XSalsa20-Poly1305. Tokens are
// base64url(nonce || box).
type SecretBox struct {
	key [KeySize]byte
}

func NewSecretBox(key [KeySize]byte) *SecretBox {
	return &SecretBox{key: key}
}

// ParseKey decodes a hex encoded 32 byte key.
func ParseKey(s string) ([KeySize]byte, error) {
	var key [KeySize]byte
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != KeySize {
		return key, ErrInvalidKey
	}
	copy(key[:], b)
	return key, nil
}

// GenerateKey returns a random key.
func GenerateKey() ([KeySize]byte, error) {
	var key [KeySize]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return key, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

func (s *SecretBox) Encrypt(plaintext string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key)
	return base64.URLEncoding.EncodeToString(sealed), nil
}

func (s *SecretBox) Decrypt(ciphertext string) (string, error) {
	sealed, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil || len(sealed) < nonceSize+secretbox.Overhead {
		return "", ErrMalformedCipher
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrDecryptionFailure
	}
	return string(plain), nil
}
