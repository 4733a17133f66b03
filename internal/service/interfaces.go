// Package service implements the two lifecycle engines of the encryption
// subsystem: the one-shot migration of legacy plaintext records into
// encrypted form, and the re-encryption of every encrypted record under a
// new key after a password change.
//
// Both engines walk the same nine record categories in the fixed
// [models.CategoryOrder], fetch records through [adapter.ServerAdapter], and
// write them back one record at a time so that a failure stays attributable
// to a single record and never cancels sibling writes. Per-record failures
// are folded into the run result; only run-level setup failures (no key
// held, key derivation failure) abort a run.
package service

import (
	"context"

	"github.com/amezhanin/finlock/models"
)

// ProgressFunc is invoked before each category is processed. It is an
// in-process callback used for progress rendering, nothing more.
type ProgressFunc func(category models.Category)

// DecryptFunc opens an encrypted payload blob and returns the recovered
// plaintext JSON, or ok=false when the blob cannot be decrypted. The
// rotation engine takes one bound to the old key, so it stays independent of
// whichever key the session currently holds.
type DecryptFunc func(blobB64 string) (plaintext []byte, ok bool)

// MigrationService converts legacy plaintext records to encrypted form,
// exactly once per record.
type MigrationService interface {
	// Status counts, per category, the records that still need migration
	// over the engine's scan window. Pure read; no writes.
	Status(ctx context.Context) (models.MigrationStatus, error)

	// Run migrates every unmigrated record it can reach. Per-record write
	// failures are collected in the result and do not abort the run.
	// Returns an error only for run-level setup failures, most
	// importantly ErrKeyUnavailable when the session holds no key.
	// Idempotent: a second run over the same data performs no writes.
	Run(ctx context.Context, progress ProgressFunc) (models.MigrationResult, error)
}

// RotationService re-encrypts every encrypted record under a key freshly
// derived from the new password.
type RotationService interface {
	// Run derives the new key from newPassword and the account salt, then
	// walks every category re-encrypting each record's payload: decrypt
	// with oldDecrypt, re-encrypt under the new key, write back. Records
	// oldDecrypt cannot open are skipped silently. When every category
	// has been attempted the session key slot is replaced with the new
	// key unconditionally, even if some records failed; the result's
	// OK/ErrorCount surface that inconsistency to the caller, and the run
	// is safe to repeat.
	// Returns an error only when key derivation itself fails.
	Run(ctx context.Context, newPassword, saltB64 string, oldDecrypt DecryptFunc, progress ProgressFunc) (models.RotationResult, error)
}
