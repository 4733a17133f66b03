package service

import "errors"

// ErrKeyUnavailable aborts a migration run started while the session key
// slot is empty. Encrypting with an absent key is impossible, and every
// record would fail identically, so the run never starts.
var ErrKeyUnavailable = errors.New("no encryption key held")
