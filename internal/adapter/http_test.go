// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Mezhanin

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amezhanin/finlock/internal/logger"
	"github.com/amezhanin/finlock/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "host and port", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "explicit scheme", in: "https://fin.example.com", want: "https://fin.example.com"},
		{name: "trailing slash trimmed", in: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "surrounding spaces", in: "  localhost:8080  ", want: "http://localhost:8080"},
		{name: "empty", in: "", wantErr: true},
		{name: "blank", in: "   ", wantErr: true},
		{name: "scheme without host", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := parseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = parseBearerToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = parseBearerToken("Bearer ")
	assert.Error(t, err)

	_, err = parseBearerToken("")
	assert.Error(t, err)
}

func TestLogin_StoresBearerToken(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Login)
		assert.Equal(t, "secret", creds.Password)

		w.Header().Set("Authorization", "Bearer signed-token")
		w.WriteHeader(http.StatusOK)
	}))

	token, err := a.Login(context.Background(), models.Credentials{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token.SignedString)
	assert.Equal(t, "signed-token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "wrong credentials", http.StatusUnauthorized)
	}))

	_, err := a.Login(context.Background(), models.Credentials{Login: "alice", Password: "nope"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestAccountInfo(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/account", r.URL.Path)
		assert.Equal(t, "Bearer signed-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"alice","encryptionSalt":"c2FsdHNhbHRzYWx0c2Fs"}`))
	}))
	a.SetToken("signed-token")

	info, err := a.AccountInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Login)
	assert.Equal(t, "c2FsdHNhbHRzYWx0c2Fs", info.EncryptionSalt)
}

func TestListIncomes_SendsYearParam(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/incomes", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("year"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"inc-1","year":2025,"month":1,"amountUsd":1200,"description":"salary"}]`))
	}))

	recs, err := a.ListIncomes(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "inc-1", recs[0].ID)
	assert.Equal(t, 1200.0, recs[0].AmountUsd)
}

func TestListBudgets_NoYearParam(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/budgets", r.URL.Path)
		assert.False(t, r.URL.Query().Has("year"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	recs, err := a.ListBudgets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestUpdateExpense_PutsFullRecord(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/expenses/exp-1", r.URL.Path)

		var rec models.Expense
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		assert.Equal(t, "exp-1", rec.ID)
		assert.Equal(t, "blob", rec.EncryptedPayload)
		assert.Zero(t, rec.AmountUsd)

		w.WriteHeader(http.StatusOK)
	}))

	err := a.UpdateExpense(context.Background(), models.Expense{
		ID: "exp-1", Year: 2025, Month: 3, EncryptedPayload: "blob",
	})
	require.NoError(t, err)
}

func TestListIncomes_MapsServerFailure(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := a.ListIncomes(context.Background(), 2025)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.True(t, strings.Contains(err.Error(), "/api/incomes"))
}

func TestUpdateBudget_MapsConflict(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "stale revision", http.StatusConflict)
	}))

	err := a.UpdateBudget(context.Background(), models.Budget{ID: "bud-1"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestListIncomes_UnmappedStatusFallsThrough(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := a.ListIncomes(context.Background(), 2025)
	require.Error(t, err)

	// No sentinel for proxy statuses; the raw code is carried instead.
	for _, sentinel := range statusErrors {
		assert.NotErrorIs(t, err, sentinel)
	}
	assert.Contains(t, err.Error(), "http 502")
}

func TestNewHTTPServerAdapter_RejectsBadAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: ""}, logger.Nop())
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	mint := func(exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"login": "alice",
			"exp":   exp.Unix(),
		})
		signed, err := tok.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)
		return signed
	}

	a := newTestAdapter(t, http.NotFoundHandler())

	// No token held at all.
	assert.True(t, a.TokenExpired())

	a.SetToken(mint(time.Now().Add(time.Hour)))
	assert.False(t, a.TokenExpired())

	a.SetToken(mint(time.Now().Add(-time.Minute)))
	assert.True(t, a.TokenExpired())

	a.SetToken("not-a-jwt")
	assert.True(t, a.TokenExpired())
}
