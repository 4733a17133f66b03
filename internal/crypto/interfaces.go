package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain owns all client-side cryptography: deriving the symmetric key
// from the master password and the account salt, and sealing/opening the
// encrypted payload blobs stored on the server. It knows nothing about the
// network or about record shapes.
//
// Keys, salts and blobs cross this interface as standard base64 strings,
// matching the transport and storage encoding, so callers never handle raw
// key bytes.
type KeyChain interface {
	// GenerateSalt returns 16 bytes from the OS CSPRNG, base64-encoded.
	// Called exactly once per account, at registration. Returns an error
	// if the random read fails.
	GenerateSalt() (string, error)

	// DeriveKey stretches password and the decoded salt into a 32-byte
	// key via PBKDF2-HMAC-SHA256 and returns it base64-encoded.
	// Deterministic: identical inputs always yield the identical key,
	// which is what lets the client recompute the key at every login
	// instead of persisting it. Returns ErrInvalidSalt if saltB64 cannot
	// be decoded.
	DeriveKey(password, saltB64 string) (string, error)

	// Encrypt seals plaintext with AES-256-GCM under keyB64 using a fresh
	// random 12-byte nonce and returns base64(nonce ‖ ciphertext ‖ tag).
	// Returns ErrInvalidKeyLength if the decoded key is not 32 bytes.
	Encrypt(plaintext []byte, keyB64 string) (string, error)

	// Decrypt opens a blob produced by Encrypt. Fails closed: returns
	// ErrMalformedBlob if the blob cannot hold a nonce and a tag, and
	// ErrAuthenticationFailure if the tag does not verify. Partial
	// plaintext is never returned.
	Decrypt(blobB64, keyB64 string) ([]byte, error)
}
