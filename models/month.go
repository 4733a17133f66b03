package models

// OtherExpenses is the monthly aggregate of small expenses that are not
// tracked individually. One row per month, year-partitioned.
type OtherExpenses struct {
	ID    string `json:"id"`
	Year  int    `json:"year"`
	Month int    `json:"month"`

	AmountUsd float64 `json:"amountUsd"`

	EncryptedPayload string `json:"encryptedPayload,omitempty"`
}

// OtherExpensesPayload is the plaintext object that gets encrypted into
// [OtherExpenses.EncryptedPayload].
type OtherExpensesPayload struct {
	AmountUsd float64 `json:"amountUsd"`
}

func (o OtherExpenses) Migrated() bool { return o.EncryptedPayload != "" }

func (o OtherExpenses) Payload() OtherExpensesPayload {
	return OtherExpensesPayload{AmountUsd: o.AmountUsd}
}

func (o *OtherExpenses) Redact() { o.AmountUsd = 0 }

// MonthClose is the frozen summary written when a month is closed: totals
// and the resulting net worth. Year-partitioned.
type MonthClose struct {
	ID    string `json:"id"`
	Year  int    `json:"year"`
	Month int    `json:"month"`

	IncomeUsd   float64 `json:"incomeUsd"`
	ExpensesUsd float64 `json:"expensesUsd"`
	NetWorthUsd float64 `json:"netWorthUsd"`

	EncryptedPayload string `json:"encryptedPayload,omitempty"`
}

// MonthClosePayload is the plaintext object that gets encrypted into
// [MonthClose.EncryptedPayload].
type MonthClosePayload struct {
	IncomeUsd   float64 `json:"incomeUsd"`
	ExpensesUsd float64 `json:"expensesUsd"`
	NetWorthUsd float64 `json:"netWorthUsd"`
}

func (m MonthClose) Migrated() bool { return m.EncryptedPayload != "" }

func (m MonthClose) Payload() MonthClosePayload {
	return MonthClosePayload{
		IncomeUsd:   m.IncomeUsd,
		ExpensesUsd: m.ExpensesUsd,
		NetWorthUsd: m.NetWorthUsd,
	}
}

func (m *MonthClose) Redact() {
	m.IncomeUsd = 0
	m.ExpensesUsd = 0
	m.NetWorthUsd = 0
}
