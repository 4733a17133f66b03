// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Mezhanin

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/amezhanin/finlock/internal/adapter"
	"github.com/amezhanin/finlock/internal/crypto"
	"github.com/amezhanin/finlock/internal/logger"
	"github.com/amezhanin/finlock/models"
)

type rotationService struct {
	source   recordSource
	keychain crypto.KeyChain
	keys     *crypto.KeySlot
	logger   *logger.Logger
}

// NewRotationService constructs a [RotationService]. keys is the session key
// slot that receives the new key once the run completes; the engine never
// reads from it; decryption of existing records goes through the
// caller-supplied [DecryptFunc] bound to the old key.
func NewRotationService(a adapter.ServerAdapter, keychain crypto.KeyChain, keys *crypto.KeySlot, log *logger.Logger, now func() time.Time) RotationService {
	if now == nil {
		now = time.Now
	}
	return &rotationService{
		source:   recordSource{adapter: a, now: now},
		keychain: keychain,
		keys:     keys,
		logger:   log,
	}
}

// Run implements [RotationService].
func (r *rotationService) Run(ctx context.Context, newPassword, saltB64 string, oldDecrypt DecryptFunc, progress ProgressFunc) (models.RotationResult, error) {
	// Derivation failure would repeat identically for every record, so it
	// aborts the run before any record is touched.
	newKey, err := r.keychain.DeriveKey(newPassword, saltB64)
	if err != nil {
		return models.RotationResult{}, fmt.Errorf("derive new key: %w", err)
	}

	var errs runErrors
	skipped := 0

	for _, cat := range models.CategoryOrder {
		if progress != nil {
			progress(cat)
		}
		r.logger.Info().Str("category", cat.String()).Msg("rotating category")

		records, err := r.source.records(ctx, cat)
		if err != nil {
			errs.addCategory(cat, err)
			continue
		}

		for _, rec := range records {
			if rec.placeholder || rec.blob == "" {
				continue
			}

			plaintext, ok := oldDecrypt(rec.blob)
			if !ok {
				// Cannot rotate what cannot be read. Neither a success
				// nor a failure; the record stays under whatever key
				// produced it.
				skipped++
				r.logger.Debug().
					Str("category", cat.String()).
					Str("id", rec.id).
					Msg("payload not decryptable with old key, skipped")
				continue
			}

			blob, err := r.keychain.Encrypt(plaintext, newKey)
			if err != nil {
				errs.add(rec.category, rec.id, err)
				continue
			}
			if err := rec.rewrite(ctx, blob); err != nil {
				errs.add(rec.category, rec.id, err)
				continue
			}
		}
	}

	// The swap is unconditional: after a partial failure the live key still
	// becomes the new one, and the leftover records stay encrypted under the
	// old key until the caller re-runs rotation. The result surfaces that
	// state; the engine does not hide it by refusing the swap.
	r.keys.Replace(newKey)

	if !errs.ok() || skipped > 0 {
		r.logger.Warn().
			Int("errors", errs.count).
			Int("skipped", skipped).
			Strs("sample", errs.sample).
			Msg("rotation finished with leftovers")
	}

	return models.RotationResult{
		OK:         errs.ok(),
		ErrorCount: errs.count,
		Errors:     errs.sample,
	}, nil
}
