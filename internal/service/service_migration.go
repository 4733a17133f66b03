// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Mezhanin

package service

import (
	"context"
	"time"

	"github.com/amezhanin/finlock/internal/adapter"
	"github.com/amezhanin/finlock/internal/crypto"
	"github.com/amezhanin/finlock/internal/logger"
	"github.com/amezhanin/finlock/models"
)

type migrationService struct {
	source recordSource
	keys   *crypto.KeySlot
	logger *logger.Logger
}

// NewMigrationService constructs a [MigrationService] over the given backend
// adapter and session key slot. now supplies the clock used to resolve the
// scan window; pass nil for time.Now.
func NewMigrationService(a adapter.ServerAdapter, keys *crypto.KeySlot, log *logger.Logger, now func() time.Time) MigrationService {
	if now == nil {
		now = time.Now
	}
	return &migrationService{
		source: recordSource{adapter: a, now: now},
		keys:   keys,
		logger: log,
	}
}

// Status implements [MigrationService].
func (m *migrationService) Status(ctx context.Context) (models.MigrationStatus, error) {
	status := models.MigrationStatus{Pending: make(map[models.Category]int, len(models.CategoryOrder))}

	for _, cat := range models.CategoryOrder {
		records, err := m.source.records(ctx, cat)
		if err != nil {
			return models.MigrationStatus{}, err
		}

		pending := 0
		for _, rec := range records {
			if rec.placeholder || rec.migrated {
				continue
			}
			pending++
		}
		status.Pending[cat] = pending
		status.Total += pending
	}

	return status, nil
}

// Run implements [MigrationService]. Categories are processed in the fixed
// order, write-backs strictly one record at a time.
func (m *migrationService) Run(ctx context.Context, progress ProgressFunc) (models.MigrationResult, error) {
	if !m.keys.Has() {
		return models.MigrationResult{}, ErrKeyUnavailable
	}

	var errs runErrors
	converted := make(map[models.Category]int, len(models.CategoryOrder))

	for _, cat := range models.CategoryOrder {
		if progress != nil {
			progress(cat)
		}
		m.logger.Info().Str("category", cat.String()).Msg("migrating category")

		records, err := m.source.records(ctx, cat)
		if err != nil {
			errs.addCategory(cat, err)
			continue
		}

		for _, rec := range records {
			if rec.placeholder || rec.migrated {
				continue
			}

			blob, ok := m.keys.EncryptPayload(rec.payload())
			if !ok {
				// The key was present when the run started; losing it
				// mid-run (logout) fails each remaining record.
				errs.add(rec.category, rec.id, ErrKeyUnavailable)
				continue
			}

			if err := rec.rewrite(ctx, blob); err != nil {
				errs.add(rec.category, rec.id, err)
				continue
			}
			converted[cat]++
		}

		m.logger.Info().
			Str("category", cat.String()).
			Int("converted", converted[cat]).
			Msg("category done")
	}

	if !errs.ok() {
		m.logger.Warn().
			Int("errors", errs.count).
			Strs("sample", errs.sample).
			Msg("migration finished with failures")
	}

	return models.MigrationResult{
		OK:         errs.ok(),
		ErrorCount: errs.count,
		Errors:     errs.sample,
		Converted:  converted,
	}, nil
}
