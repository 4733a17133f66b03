// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Mezhanin

package crypto_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amezhanin/finlock/internal/crypto"
)

func testSalt(t *testing.T) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString(make([]byte, 16)) // 16 zero bytes
}

func TestKeyChain_DeriveKey_Deterministic(t *testing.T) {
	kc := crypto.NewKeyChain()
	salt := testSalt(t)

	key1, err := kc.DeriveKey("correct-horse-1", salt)
	require.NoError(t, err)
	key2, err := kc.DeriveKey("correct-horse-1", salt)
	require.NoError(t, err)

	assert.Equal(t, key1, key2)

	raw, err := base64.StdEncoding.DecodeString(key1)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestKeyChain_DeriveKey_DifferentInputsDifferentKeys(t *testing.T) {
	kc := crypto.NewKeyChain()
	salt := testSalt(t)

	key, err := kc.DeriveKey("correct-horse-1", salt)
	require.NoError(t, err)

	otherPassword, err := kc.DeriveKey("correct-horse-2", salt)
	require.NoError(t, err)
	assert.NotEqual(t, key, otherPassword)

	otherSalt := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef"))
	keyOtherSalt, err := kc.DeriveKey("correct-horse-1", otherSalt)
	require.NoError(t, err)
	assert.NotEqual(t, key, keyOtherSalt)
}

func TestKeyChain_DeriveKey_InvalidSalt(t *testing.T) {
	kc := crypto.NewKeyChain()

	_, err := kc.DeriveKey("pw", "not-base64!!!")
	assert.ErrorIs(t, err, crypto.ErrInvalidSalt)

	_, err = kc.DeriveKey("pw", "")
	assert.ErrorIs(t, err, crypto.ErrInvalidSalt)
}

func TestKeyChain_EncryptDecrypt_RoundTrip(t *testing.T) {
	kc := crypto.NewKeyChain()
	key, err := kc.DeriveKey("correct-horse-1", testSalt(t))
	require.NoError(t, err)

	plaintext := []byte(`{"amountUsd":100}`)
	blob, err := kc.Encrypt(plaintext, key)
	require.NoError(t, err)

	// Blob is opaque: it must not contain the plaintext.
	assert.NotContains(t, blob, "amountUsd")

	got, err := kc.Decrypt(blob, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestKeyChain_Encrypt_FreshNoncePerCall(t *testing.T) {
	kc := crypto.NewKeyChain()
	key, err := kc.DeriveKey("pw", testSalt(t))
	require.NoError(t, err)

	blob1, err := kc.Encrypt([]byte("same input"), key)
	require.NoError(t, err)
	blob2, err := kc.Encrypt([]byte("same input"), key)
	require.NoError(t, err)

	assert.NotEqual(t, blob1, blob2)
}

func TestKeyChain_Decrypt_WrongKeyFailsClosed(t *testing.T) {
	// Password change scenario: same salt, new password, old blobs must
	// become unreadable rather than garbled.
	kc := crypto.NewKeyChain()
	salt := testSalt(t)

	oldKey, err := kc.DeriveKey("correct-horse-1", salt)
	require.NoError(t, err)
	newKey, err := kc.DeriveKey("correct-horse-2", salt)
	require.NoError(t, err)
	require.NotEqual(t, oldKey, newKey)

	blob, err := kc.Encrypt([]byte(`{"amountUsd":100}`), oldKey)
	require.NoError(t, err)

	got, err := kc.Decrypt(blob, newKey)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
	assert.Nil(t, got)
}

func TestKeyChain_Decrypt_CorruptedOrTruncated(t *testing.T) {
	kc := crypto.NewKeyChain()
	key, err := kc.DeriveKey("pw", testSalt(t))
	require.NoError(t, err)

	blob, err := kc.Encrypt([]byte("payload"), key)
	require.NoError(t, err)

	tests := []struct {
		name string
		blob string
		want error
	}{
		{
			name: "not base64",
			blob: "%%%not-base64%%%",
			want: crypto.ErrMalformedBlob,
		},
		{
			name: "shorter than nonce plus tag",
			blob: base64.StdEncoding.EncodeToString([]byte("short")),
			want: crypto.ErrMalformedBlob,
		},
		{
			name: "flipped ciphertext byte",
			blob: flipByte(t, blob, 20),
			want: crypto.ErrAuthenticationFailure,
		},
		{
			name: "flipped nonce byte",
			blob: flipByte(t, blob, 0),
			want: crypto.ErrAuthenticationFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := kc.Decrypt(tt.blob, key)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)
		})
	}
}

func TestKeyChain_InvalidKeyLength(t *testing.T) {
	kc := crypto.NewKeyChain()
	shortKey := base64.StdEncoding.EncodeToString([]byte("too short"))

	_, err := kc.Encrypt([]byte("x"), shortKey)
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyLength)

	blob := base64.StdEncoding.EncodeToString(make([]byte, 64))
	_, err = kc.Decrypt(blob, shortKey)
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyLength)
}

func TestKeyChain_GenerateSalt(t *testing.T) {
	kc := crypto.NewKeyChain()

	salt1, err := kc.GenerateSalt()
	require.NoError(t, err)
	salt2, err := kc.GenerateSalt()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(salt1)
	require.NoError(t, err)
	assert.Len(t, raw, 16)
	assert.NotEqual(t, salt1, salt2)
}

func flipByte(t *testing.T, blobB64 string, idx int) string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(blobB64)
	require.NoError(t, err)
	require.Greater(t, len(raw), idx)
	raw[idx] ^= 0xff
	return base64.StdEncoding.EncodeToString(raw)
}
