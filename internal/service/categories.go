package service

import (
	"context"
	"time"

	"github.com/amezhanin/finlock/internal/adapter"
	"github.com/amezhanin/finlock/models"
)

// encryptable is the category-independent view of one fetched record that
// both engines operate on. The closures capture the full typed record, so a
// rewrite carries every field the category's write endpoint expects.
type encryptable struct {
	category models.Category
	id       string

	// blob is the record's current encrypted payload, empty if none.
	blob string

	// migrated means the record needs no migration work: payload present
	// and plaintext zeroed.
	migrated bool

	// placeholder marks server-side padding rows (snapshot months with no
	// data). Never written back.
	placeholder bool

	// payload builds the plaintext payload object from the record's
	// current plaintext fields, applying category-specific derivation.
	payload func() any

	// rewrite writes the record back with blob as the encrypted payload
	// and every plaintext value field zeroed.
	rewrite func(ctx context.Context, blob string) error
}

// recordSource fetches the records of one category as encryptables. Shared
// by the migration and rotation engines so both see the same scan window and
// the same record set.
type recordSource struct {
	adapter adapter.ServerAdapter
	now     func() time.Time
}

// scanYears returns the fixed scan window for year-partitioned categories:
// the two most recent calendar years, oldest first.
func (s recordSource) scanYears() []int {
	y := s.now().Year()
	return []int{y - 1, y}
}

// records fetches every record of cat within the scan window.
func (s recordSource) records(ctx context.Context, cat models.Category) ([]encryptable, error) {
	switch cat {
	case models.CategoryIncome:
		return perYear(ctx, s.scanYears(), s.adapter.ListIncomes, s.incomeView)
	case models.CategoryExpense:
		return perYear(ctx, s.scanYears(), s.adapter.ListExpenses, s.expenseView)
	case models.CategoryInvestmentSnapshot:
		return perYear(ctx, s.scanYears(), s.adapter.ListInvestmentSnapshots, s.snapshotView)
	case models.CategoryInvestmentMovement:
		return perYear(ctx, s.scanYears(), s.adapter.ListInvestmentMovements, s.movementView)
	case models.CategoryBudget:
		return unbounded(ctx, s.adapter.ListBudgets, s.budgetView)
	case models.CategoryExpenseTemplate:
		return unbounded(ctx, s.adapter.ListExpenseTemplates, s.templateView)
	case models.CategoryPlannedExpense:
		return unbounded(ctx, s.adapter.ListPlannedExpenses, s.plannedView)
	case models.CategoryOtherExpenses:
		return perYear(ctx, s.scanYears(), s.adapter.ListOtherExpenses, s.otherExpensesView)
	case models.CategoryMonthClose:
		return perYear(ctx, s.scanYears(), s.adapter.ListMonthCloses, s.monthCloseView)
	default:
		return nil, nil
	}
}

func perYear[T any](ctx context.Context, years []int, list func(context.Context, int) ([]T, error), view func(T) encryptable) ([]encryptable, error) {
	var out []encryptable
	for _, year := range years {
		recs, err := list(ctx, year)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			out = append(out, view(rec))
		}
	}
	return out, nil
}

func unbounded[T any](ctx context.Context, list func(context.Context) ([]T, error), view func(T) encryptable) ([]encryptable, error) {
	recs, err := list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]encryptable, 0, len(recs))
	for _, rec := range recs {
		out = append(out, view(rec))
	}
	return out, nil
}

func (s recordSource) incomeView(rec models.Income) encryptable {
	return encryptable{
		category: models.CategoryIncome,
		id:       rec.ID,
		blob:     rec.EncryptedPayload,
		migrated: rec.Migrated(),
		payload:  func() any { return rec.Payload() },
		rewrite: func(ctx context.Context, blob string) error {
			rec.EncryptedPayload = blob
			rec.Redact()
			return s.adapter.UpdateIncome(ctx, rec)
		},
	}
}

func (s recordSource) expenseView(rec models.Expense) encryptable {
	return encryptable{
		category: models.CategoryExpense,
		id:       rec.ID,
		blob:     rec.EncryptedPayload,
		// Expense.Migrated also requires the plaintext amounts to be
		// zeroed; legacy rows with a payload but live amounts get
		// re-written so the plaintext stops leaking.
		migrated: rec.Migrated(),
		payload:  func() any { return rec.Payload() },
		rewrite: func(ctx context.Context, blob string) error {
			rec.EncryptedPayload = blob
			rec.Redact()
			return s.adapter.UpdateExpense(ctx, rec)
		},
	}
}

func (s recordSource) snapshotView(rec models.InvestmentSnapshot) encryptable {
	return encryptable{
		category:    models.CategoryInvestmentSnapshot,
		id:          rec.ID,
		blob:        rec.EncryptedPayload,
		migrated:    rec.Migrated(),
		placeholder: rec.Placeholder(),
		payload:     func() any { return rec.Payload() },
		rewrite: func(ctx context.Context, blob string) error {
			rec.EncryptedPayload = blob
			rec.Redact()
			return s.adapter.UpdateInvestmentSnapshot(ctx, rec)
		},
	}
}

func (s recordSource) movementView(rec models.InvestmentMovement) encryptable {
	return encryptable{
		category: models.CategoryInvestmentMovement,
		id:       rec.ID,
		blob:     rec.EncryptedPayload,
		migrated: rec.Migrated(),
		payload:  func() any { return rec.Payload() },
		rewrite: func(ctx context.Context, blob string) error {
			rec.EncryptedPayload = blob
			rec.Redact()
			return s.adapter.UpdateInvestmentMovement(ctx, rec)
		},
	}
}

func (s recordSource) budgetView(rec models.Budget) encryptable {
	return encryptable{
		category: models.CategoryBudget,
		id:       rec.ID,
		blob:     rec.EncryptedPayload,
		migrated: rec.Migrated(),
		payload:  func() any { return rec.Payload() },
		rewrite: func(ctx context.Context, blob string) error {
			rec.EncryptedPayload = blob
			rec.Redact()
			return s.adapter.UpdateBudget(ctx, rec)
		},
	}
}

func (s recordSource) templateView(rec models.ExpenseTemplate) encryptable {
	return encryptable{
		category: models.CategoryExpenseTemplate,
		id:       rec.ID,
		blob:     rec.EncryptedPayload,
		migrated: rec.Migrated(),
		payload:  func() any { return rec.Payload() },
		rewrite: func(ctx context.Context, blob string) error {
			rec.EncryptedPayload = blob
			rec.Redact()
			return s.adapter.UpdateExpenseTemplate(ctx, rec)
		},
	}
}

func (s recordSource) plannedView(rec models.PlannedExpense) encryptable {
	return encryptable{
		category: models.CategoryPlannedExpense,
		id:       rec.ID,
		blob:     rec.EncryptedPayload,
		migrated: rec.Migrated(),
		payload:  func() any { return rec.Payload() },
		rewrite: func(ctx context.Context, blob string) error {
			rec.EncryptedPayload = blob
			rec.Redact()
			return s.adapter.UpdatePlannedExpense(ctx, rec)
		},
	}
}

func (s recordSource) otherExpensesView(rec models.OtherExpenses) encryptable {
	return encryptable{
		category: models.CategoryOtherExpenses,
		id:       rec.ID,
		blob:     rec.EncryptedPayload,
		migrated: rec.Migrated(),
		payload:  func() any { return rec.Payload() },
		rewrite: func(ctx context.Context, blob string) error {
			rec.EncryptedPayload = blob
			rec.Redact()
			return s.adapter.UpdateOtherExpenses(ctx, rec)
		},
	}
}

func (s recordSource) monthCloseView(rec models.MonthClose) encryptable {
	return encryptable{
		category: models.CategoryMonthClose,
		id:       rec.ID,
		blob:     rec.EncryptedPayload,
		migrated: rec.Migrated(),
		payload:  func() any { return rec.Payload() },
		rewrite: func(ctx context.Context, blob string) error {
			rec.EncryptedPayload = blob
			rec.Redact()
			return s.adapter.UpdateMonthClose(ctx, rec)
		},
	}
}
