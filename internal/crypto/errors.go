package crypto

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key does not decode to
	// exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrMalformedBlob is returned when an encrypted blob is not valid
	// base64 or is shorter than nonce plus authentication tag.
	ErrMalformedBlob = errors.New("malformed encrypted blob")

	// ErrAuthenticationFailure is returned when the GCM tag does not
	// verify: wrong key, or tampered/corrupted ciphertext. No plaintext is
	// ever returned alongside it.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrInvalidSalt is returned when the stored salt cannot be decoded.
	// Derivation cannot proceed, so callers must abort rather than retry
	// per record.
	ErrInvalidSalt = errors.New("invalid encryption salt")
)
