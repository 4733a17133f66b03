// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Mezhanin

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen = 16
	keyLen  = 32 // 256 bits

	// pbkdf2Iterations follows the OWASP recommendation for
	// PBKDF2-HMAC-SHA256. Changing it changes every derived key, so it is
	// as immutable as the salt.
	pbkdf2Iterations = 310_000
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct{}

// NewKeyChain constructs the production [KeyChain]: PBKDF2-HMAC-SHA256 with
// 310k iterations for derivation and AES-256-GCM for payload sealing.
func NewKeyChain() KeyChain {
	return &keyChain{}
}

// GenerateSalt implements [KeyChain].
func (k *keyChain) GenerateSalt() (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("read salt from csprng: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveKey implements [KeyChain]. The derived key exists only in client
// memory; it is recomputed from the password at every login and never
// persisted anywhere.
func (k *keyChain) DeriveKey(password, saltB64 string) (string, error) {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSalt, err)
	}
	if len(salt) == 0 {
		return "", fmt.Errorf("%w: empty salt", ErrInvalidSalt)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keyLen, sha256.New)
	return base64.StdEncoding.EncodeToString(key), nil
}

// Encrypt implements [KeyChain].
func (k *keyChain) Encrypt(plaintext []byte, keyB64 string) (string, error) {
	gcm, err := newGCM(keyB64)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// blob = nonce || ciphertext || tag; the nonce is prepended so Decrypt
	// can split it back out.
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(append(nonce, ciphertext...)), nil
}

// Decrypt implements [KeyChain].
func (k *keyChain) Decrypt(blobB64, keyB64 string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(blobB64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}

	gcm, err := newGCM(keyB64)
	if err != nil {
		return nil, err
	}

	if len(blob) < gcm.NonceSize()+gcm.Overhead() {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedBlob, len(blob))
	}
	nonce, ciphertext := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]

	// An open failure almost always means the blob was encrypted under a
	// different key (old password) or got corrupted in transit.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailure
	}
	return plaintext, nil
}

func newGCM(keyB64 string) (cipher.AEAD, error) {
	key, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyLength, err)
	}
	if len(key) != keyLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidKeyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
