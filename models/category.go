package models

// Category identifies one of the record kinds that carry an encrypted
// payload. The string values match the backend endpoint naming.
type Category string

const (
	CategoryIncome             Category = "income"
	CategoryExpense            Category = "expense"
	CategoryInvestmentSnapshot Category = "investment_snapshot"
	CategoryInvestmentMovement Category = "investment_movement"
	CategoryBudget             Category = "budget"
	CategoryExpenseTemplate    Category = "expense_template"
	CategoryPlannedExpense     Category = "planned_expense"
	CategoryOtherExpenses      Category = "other_expenses"
	CategoryMonthClose         Category = "month_close"
)

// CategoryOrder is the fixed order in which the migration and rotation
// engines walk the categories. Every run uses the same order so that
// progress reporting and error attribution stay comparable between runs.
var CategoryOrder = []Category{
	CategoryIncome,
	CategoryExpense,
	CategoryInvestmentSnapshot,
	CategoryInvestmentMovement,
	CategoryBudget,
	CategoryExpenseTemplate,
	CategoryPlannedExpense,
	CategoryOtherExpenses,
	CategoryMonthClose,
}

// YearPartitioned reports whether records of the category are listed per
// calendar year. Unpartitioned categories (budgets, templates, planned
// expenses) are fetched in a single unbounded listing.
func (c Category) YearPartitioned() bool {
	switch c {
	case CategoryBudget, CategoryExpenseTemplate, CategoryPlannedExpense:
		return false
	default:
		return true
	}
}

func (c Category) String() string { return string(c) }
