// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Mezhanin

package crypto

import (
	"encoding/json"
	"sync"
)

// KeySlot holds the session's active encryption key: at most one key, in
// memory only. It is created once at startup and passed by reference to
// every component that needs to encrypt or decrypt record payloads.
//
// Both payload operations degrade instead of failing: when no key is held,
// or when encryption/decryption fails for any reason, they report ok=false
// so that callers can fall back to plaintext behaviour ("E2EE unavailable")
// or render a decryption-failed placeholder without crashing.
//
// Operations snapshot the key value on entry, so a concurrent Clear (logout,
// token expiry) can never corrupt a call already in flight; it only makes
// the next call start without a key.
type KeySlot struct {
	keychain KeyChain

	mu      sync.RWMutex
	keyB64  string
	version uint64
}

// NewKeySlot constructs an empty KeySlot over keychain.
func NewKeySlot(keychain KeyChain) *KeySlot {
	return &KeySlot{keychain: keychain}
}

// Replace installs keyB64 as the active key, dropping whatever was held
// before. Called with a freshly derived key after login and at the end of a
// key rotation.
func (s *KeySlot) Replace(keyB64 string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyB64 = keyB64
	s.version++
}

// Clear drops the held key. Called on logout, token expiry, and session
// teardown.
func (s *KeySlot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyB64 = ""
	s.version++
}

// Has reports whether a key is currently held.
func (s *KeySlot) Has() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyB64 != ""
}

// Version returns the mutation counter of the slot. It increments on every
// Replace and Clear, letting long-running callers detect that the key they
// started with has since been swapped out.
func (s *KeySlot) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Key returns the held key and whether one is held.
func (s *KeySlot) Key() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyB64, s.keyB64 != ""
}

// EncryptPayload serialises value to JSON and seals it under the held key.
// ok is false when no key is held or when serialisation/encryption fails.
func (s *KeySlot) EncryptPayload(value any) (blobB64 string, ok bool) {
	key, held := s.Key()
	if !held {
		return "", false
	}

	plaintext, err := json.Marshal(value)
	if err != nil {
		return "", false
	}
	blob, err := s.keychain.Encrypt(plaintext, key)
	if err != nil {
		return "", false
	}
	return blob, true
}

// DecryptPayload opens blobB64 under the held key and unmarshals the result
// into target (which must be a non-nil pointer, as for json.Unmarshal).
// Returns false when no key is held, the key is wrong, or the blob is
// corrupted. Never a partial result.
func (s *KeySlot) DecryptPayload(blobB64 string, target any) bool {
	key, held := s.Key()
	if !held {
		return false
	}

	plaintext, err := s.keychain.Decrypt(blobB64, key)
	if err != nil {
		return false
	}
	return json.Unmarshal(plaintext, target) == nil
}
