package models

// Expense is a single expense entry. Expenses may be entered in a foreign
// currency; the backend historically stored both the original amount and a
// USD equivalent, so the plaintext shape is wider than the other categories.
type Expense struct {
	ID    string `json:"id"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Day   int    `json:"day,omitempty"`

	Description string `json:"description"`

	// AmountUsd is the USD equivalent of the expense.
	AmountUsd float64 `json:"amountUsd"`

	// Amount, Currency and ExchangeRate describe the original
	// foreign-currency entry. ExchangeRate is USD per unit of Currency.
	Amount       float64 `json:"amount,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	ExchangeRate float64 `json:"exchangeRate,omitempty"`

	EncryptedPayload string `json:"encryptedPayload,omitempty"`
}

// ExpensePayload is the plaintext object that gets encrypted into
// [Expense.EncryptedPayload].
type ExpensePayload struct {
	AmountUsd    float64 `json:"amountUsd"`
	Amount       float64 `json:"amount,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	ExchangeRate float64 `json:"exchangeRate,omitempty"`
	Description  string  `json:"description,omitempty"`
}

// Migrated reports whether the record is fully migrated: an encrypted
// payload exists and the plaintext amounts have been zeroed. Legacy rows may
// carry a payload while the plaintext amount is still populated; those still
// need a redaction pass.
func (e Expense) Migrated() bool {
	return e.EncryptedPayload != "" && e.AmountUsd == 0 && e.Amount == 0
}

// Payload builds the plaintext payload from the record's current fields.
// When the USD equivalent is missing but a foreign-currency amount and rate
// are present, it is derived as amount times rate.
func (e Expense) Payload() ExpensePayload {
	p := ExpensePayload{
		AmountUsd:    e.AmountUsd,
		Amount:       e.Amount,
		Currency:     e.Currency,
		ExchangeRate: e.ExchangeRate,
		Description:  e.Description,
	}
	if p.AmountUsd == 0 && e.Amount != 0 && e.ExchangeRate > 0 {
		p.AmountUsd = e.Amount * e.ExchangeRate
	}
	return p
}

// Redact zeroes every plaintext value field.
func (e *Expense) Redact() {
	e.AmountUsd = 0
	e.Amount = 0
	e.ExchangeRate = 0
	e.Currency = ""
	e.Description = ""
}
