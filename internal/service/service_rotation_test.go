// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Mezhanin

package service_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amezhanin/finlock/internal/crypto"
	"github.com/amezhanin/finlock/internal/logger"
	"github.com/amezhanin/finlock/internal/mock"
	"github.com/amezhanin/finlock/internal/service"
	"github.com/amezhanin/finlock/models"
)

// rotationFixture holds the old and new keys plus a DecryptFunc bound to the
// old key, mirroring how the CLI wires the engine.
type rotationFixture struct {
	keychain   crypto.KeyChain
	slot       *crypto.KeySlot
	oldKey     string
	salt       string
	oldDecrypt service.DecryptFunc
}

func newRotationFixture(t *testing.T) rotationFixture {
	t.Helper()
	kc := crypto.NewKeyChain()
	salt := base64.StdEncoding.EncodeToString(make([]byte, 16))

	oldKey, err := kc.DeriveKey("old-password", salt)
	require.NoError(t, err)

	slot := crypto.NewKeySlot(kc)
	slot.Replace(oldKey)

	return rotationFixture{
		keychain: kc,
		slot:     slot,
		oldKey:   oldKey,
		salt:     salt,
		oldDecrypt: func(blobB64 string) ([]byte, bool) {
			plaintext, err := kc.Decrypt(blobB64, oldKey)
			return plaintext, err == nil
		},
	}
}

func (f rotationFixture) encryptOld(t *testing.T, plaintext string) string {
	t.Helper()
	blob, err := f.keychain.Encrypt([]byte(plaintext), f.oldKey)
	require.NoError(t, err)
	return blob
}

func TestRotation_Run_ReencryptsUnderNewKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	f := newRotationFixture(t)

	original := `{"amountUsd":1200,"description":"salary"}`
	srv.EXPECT().ListIncomes(gomock.Any(), 2025).Return([]models.Income{
		{ID: "inc-1", Year: 2025, Month: 1, EncryptedPayload: f.encryptOld(t, original)},
		{ID: "inc-2", Year: 2025, Month: 2}, // plaintext-only, nothing to rotate
	}, nil)
	stubEmptyLists(srv)

	var written models.Income
	srv.EXPECT().UpdateIncome(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.Income) error {
			written = rec
			return nil
		}).Times(1)

	rotator := service.NewRotationService(srv, f.keychain, f.slot, logger.Nop(), fixedNow)

	result, err := rotator.Run(context.Background(), "new-password", f.salt, f.oldDecrypt, nil)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Zero(t, result.ErrorCount)

	newKey, err := f.keychain.DeriveKey("new-password", f.salt)
	require.NoError(t, err)

	// Old key no longer opens the blob; the new one does.
	_, err = f.keychain.Decrypt(written.EncryptedPayload, f.oldKey)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)

	plaintext, err := f.keychain.Decrypt(written.EncryptedPayload, newKey)
	require.NoError(t, err)
	assert.JSONEq(t, original, string(plaintext))
}

func TestRotation_Run_SwapsSlotKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	f := newRotationFixture(t)
	stubEmptyLists(srv)

	before := f.slot.Version()
	rotator := service.NewRotationService(srv, f.keychain, f.slot, logger.Nop(), fixedNow)

	_, err := rotator.Run(context.Background(), "new-password", f.salt, f.oldDecrypt, nil)
	require.NoError(t, err)

	newKey, err := f.keychain.DeriveKey("new-password", f.salt)
	require.NoError(t, err)

	got, ok := f.slot.Key()
	require.True(t, ok)
	assert.Equal(t, newKey, got)
	assert.Greater(t, f.slot.Version(), before)
}

func TestRotation_Run_SkipsUndecryptableRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	f := newRotationFixture(t)

	// A blob produced under some other key: skipped, not an error.
	strayKey, err := f.keychain.DeriveKey("forgotten-password", f.salt)
	require.NoError(t, err)
	strayBlob, err := f.keychain.Encrypt([]byte(`{"monthlyUsd":400}`), strayKey)
	require.NoError(t, err)

	srv.EXPECT().ListBudgets(gomock.Any()).Return([]models.Budget{
		{ID: "bud-stray", Name: "food", EncryptedPayload: strayBlob},
		{ID: "bud-ok", Name: "rent", EncryptedPayload: f.encryptOld(t, `{"monthlyUsd":900}`)},
	}, nil)
	stubEmptyLists(srv)

	srv.EXPECT().UpdateBudget(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.Budget) error {
			assert.Equal(t, "bud-ok", rec.ID)
			return nil
		}).Times(1)

	rotator := service.NewRotationService(srv, f.keychain, f.slot, logger.Nop(), fixedNow)

	result, err := rotator.Run(context.Background(), "new-password", f.salt, f.oldDecrypt, nil)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Zero(t, result.ErrorCount)
}

func TestRotation_Run_SwapHappensDespiteWriteFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	f := newRotationFixture(t)

	srv.EXPECT().ListIncomes(gomock.Any(), 2025).Return([]models.Income{
		{ID: "inc-1", Year: 2025, Month: 1, EncryptedPayload: f.encryptOld(t, `{"amountUsd":1}`)},
	}, nil)
	stubEmptyLists(srv)

	srv.EXPECT().UpdateIncome(gomock.Any(), gomock.Any()).
		Return(errors.New("backend rejected write"))

	rotator := service.NewRotationService(srv, f.keychain, f.slot, logger.Nop(), fixedNow)

	result, err := rotator.Run(context.Background(), "new-password", f.salt, f.oldDecrypt, nil)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Equal(t, 1, result.ErrorCount)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "inc-1")

	// The live key is the new one even though a record was left behind; a
	// re-run under the new credentials picks the leftover up.
	newKey, err := f.keychain.DeriveKey("new-password", f.salt)
	require.NoError(t, err)
	got, ok := f.slot.Key()
	require.True(t, ok)
	assert.Equal(t, newKey, got)
}

func TestRotation_Run_DerivationFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	f := newRotationFixture(t)

	// No list expectations: a bad salt must abort before any backend call.
	rotator := service.NewRotationService(srv, f.keychain, f.slot, logger.Nop(), fixedNow)

	_, err := rotator.Run(context.Background(), "new-password", "%%%not-base64%%%", f.oldDecrypt, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrInvalidSalt)

	// The slot still holds the old key.
	got, ok := f.slot.Key()
	require.True(t, ok)
	assert.Equal(t, f.oldKey, got)
}

func TestRotation_Run_SkipsSnapshotPlaceholders(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	f := newRotationFixture(t)

	srv.EXPECT().ListInvestmentSnapshots(gomock.Any(), 2025).Return([]models.InvestmentSnapshot{
		{Year: 2025, Month: 1, EncryptedPayload: f.encryptOld(t, `{"valueUsd":0}`)},
		{ID: "snap-1", Year: 2025, Month: 2, EncryptedPayload: f.encryptOld(t, `{"valueUsd":9000}`)},
	}, nil)
	stubEmptyLists(srv)

	srv.EXPECT().UpdateInvestmentSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.InvestmentSnapshot) error {
			assert.Equal(t, "snap-1", rec.ID)
			return nil
		}).Times(1)

	rotator := service.NewRotationService(srv, f.keychain, f.slot, logger.Nop(), fixedNow)

	result, err := rotator.Run(context.Background(), "new-password", f.salt, f.oldDecrypt, nil)
	require.NoError(t, err)
	assert.True(t, result.OK)
}
