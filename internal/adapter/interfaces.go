// Package adapter provides the transport layer between the encryption
// subsystem and the finance backend.
//
// The primary abstraction is [ServerAdapter], which exposes the minimal
// read/write contract the migration and rotation engines need: one List and
// one Update operation per record category, plus authentication and the
// account-info read that serves the encryption salt. The HTTP/REST
// implementation is constructed with [NewHTTPServerAdapter].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/amezhanin/finlock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the finance
// backend. List operations on year-partitioned categories take the calendar
// year to fetch; unpartitioned categories list everything. Update operations
// carry the full record value, including the encrypted payload and the
// zeroed plaintext fields.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called right after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if none has been set.
	Token() string

	// TokenExpired reports whether the stored token carries an exp claim
	// in the past. A missing or unparseable token counts as expired.
	TokenExpired() bool

	// Login authenticates against the backend and stores the returned
	// bearer token via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// AccountInfo fetches the account record slice this subsystem needs,
	// most importantly the immutable encryption salt generated at
	// registration.
	AccountInfo(ctx context.Context) (models.AccountInfo, error)

	ListIncomes(ctx context.Context, year int) ([]models.Income, error)
	UpdateIncome(ctx context.Context, rec models.Income) error

	ListExpenses(ctx context.Context, year int) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, rec models.Expense) error

	ListInvestmentSnapshots(ctx context.Context, year int) ([]models.InvestmentSnapshot, error)
	UpdateInvestmentSnapshot(ctx context.Context, rec models.InvestmentSnapshot) error

	ListInvestmentMovements(ctx context.Context, year int) ([]models.InvestmentMovement, error)
	UpdateInvestmentMovement(ctx context.Context, rec models.InvestmentMovement) error

	ListBudgets(ctx context.Context) ([]models.Budget, error)
	UpdateBudget(ctx context.Context, rec models.Budget) error

	ListExpenseTemplates(ctx context.Context) ([]models.ExpenseTemplate, error)
	UpdateExpenseTemplate(ctx context.Context, rec models.ExpenseTemplate) error

	ListPlannedExpenses(ctx context.Context) ([]models.PlannedExpense, error)
	UpdatePlannedExpense(ctx context.Context, rec models.PlannedExpense) error

	ListOtherExpenses(ctx context.Context, year int) ([]models.OtherExpenses, error)
	UpdateOtherExpenses(ctx context.Context, rec models.OtherExpenses) error

	ListMonthCloses(ctx context.Context, year int) ([]models.MonthClose, error)
	UpdateMonthClose(ctx context.Context, rec models.MonthClose) error
}
