package models

// Budget is a monthly spending limit for one expense group. Budgets are not
// partitioned by year; the full set is listed in one request.
type Budget struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	MonthlyUsd float64 `json:"monthlyUsd"`

	EncryptedPayload string `json:"encryptedPayload,omitempty"`
}

// BudgetPayload is the plaintext object that gets encrypted into
// [Budget.EncryptedPayload].
type BudgetPayload struct {
	MonthlyUsd float64 `json:"monthlyUsd"`
}

func (b Budget) Migrated() bool { return b.EncryptedPayload != "" }

func (b Budget) Payload() BudgetPayload { return BudgetPayload{MonthlyUsd: b.MonthlyUsd} }

func (b *Budget) Redact() { b.MonthlyUsd = 0 }

// ExpenseTemplate is a recurring expense that gets stamped into a month on
// demand (rent, subscriptions). Unpartitioned.
type ExpenseTemplate struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	DayOfMonth  int    `json:"dayOfMonth,omitempty"`

	AmountUsd float64 `json:"amountUsd"`

	EncryptedPayload string `json:"encryptedPayload,omitempty"`
}

// ExpenseTemplatePayload is the plaintext object that gets encrypted into
// [ExpenseTemplate.EncryptedPayload].
type ExpenseTemplatePayload struct {
	AmountUsd   float64 `json:"amountUsd"`
	Description string  `json:"description,omitempty"`
}

func (t ExpenseTemplate) Migrated() bool { return t.EncryptedPayload != "" }

func (t ExpenseTemplate) Payload() ExpenseTemplatePayload {
	return ExpenseTemplatePayload{AmountUsd: t.AmountUsd, Description: t.Description}
}

func (t *ExpenseTemplate) Redact() {
	t.AmountUsd = 0
	t.Description = ""
}

// PlannedExpense is a future one-off expense used by the projection pages.
// Unpartitioned.
type PlannedExpense struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	TargetYear  int    `json:"targetYear"`
	TargetMonth int    `json:"targetMonth"`

	AmountUsd float64 `json:"amountUsd"`

	EncryptedPayload string `json:"encryptedPayload,omitempty"`
}

// PlannedExpensePayload is the plaintext object that gets encrypted into
// [PlannedExpense.EncryptedPayload].
type PlannedExpensePayload struct {
	AmountUsd   float64 `json:"amountUsd"`
	Description string  `json:"description,omitempty"`
}

func (p PlannedExpense) Migrated() bool { return p.EncryptedPayload != "" }

func (p PlannedExpense) Payload() PlannedExpensePayload {
	return PlannedExpensePayload{AmountUsd: p.AmountUsd, Description: p.Description}
}

func (p *PlannedExpense) Redact() {
	p.AmountUsd = 0
	p.Description = ""
}
