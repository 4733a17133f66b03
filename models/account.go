package models

// Credentials carries the login form values. The password never travels
// further than the authentication request and the client-side key
// derivation.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AccountInfo is the slice of the account record this subsystem needs: the
// per-account encryption salt generated once at registration. The salt is
// immutable for the life of the account; regenerating it would orphan every
// previously encrypted record.
type AccountInfo struct {
	Login string `json:"login"`

	// EncryptionSalt is the base64 encoding of the 16 random bytes fed
	// into key derivation. Not a secret.
	EncryptionSalt string `json:"encryptionSalt"`
}

// Token is the bearer token returned by the backend after authentication.
type Token struct {
	SignedString string `json:"-"`
}
