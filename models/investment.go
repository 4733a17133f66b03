package models

// InvestmentSnapshot is the value of one holding at the end of one month.
// The backend pads snapshot listings with one row per month; months with no
// data come back without an ID. Such placeholder rows must never be written
// back; doing so would materialise a zero-value snapshot for every empty
// month.
type InvestmentSnapshot struct {
	ID        string `json:"id,omitempty"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	HoldingID string `json:"holdingId,omitempty"`

	ValueUsd float64 `json:"valueUsd"`

	EncryptedPayload string `json:"encryptedPayload,omitempty"`
}

// InvestmentSnapshotPayload is the plaintext object that gets encrypted into
// [InvestmentSnapshot.EncryptedPayload].
type InvestmentSnapshotPayload struct {
	ValueUsd float64 `json:"valueUsd"`
}

// Placeholder reports whether the row is a server-side padding row for an
// empty month.
func (s InvestmentSnapshot) Placeholder() bool { return s.ID == "" }

func (s InvestmentSnapshot) Migrated() bool { return s.EncryptedPayload != "" }

func (s InvestmentSnapshot) Payload() InvestmentSnapshotPayload {
	return InvestmentSnapshotPayload{ValueUsd: s.ValueUsd}
}

func (s *InvestmentSnapshot) Redact() { s.ValueUsd = 0 }

// InvestmentMovement is a deposit into or withdrawal from a holding.
type InvestmentMovement struct {
	ID        string `json:"id"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	HoldingID string `json:"holdingId,omitempty"`

	// Kind is "deposit" or "withdrawal". Not sensitive, never encrypted.
	Kind string `json:"kind"`

	Description string `json:"description,omitempty"`

	AmountUsd    float64 `json:"amountUsd"`
	Amount       float64 `json:"amount,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	ExchangeRate float64 `json:"exchangeRate,omitempty"`

	EncryptedPayload string `json:"encryptedPayload,omitempty"`
}

// InvestmentMovementPayload is the plaintext object that gets encrypted into
// [InvestmentMovement.EncryptedPayload].
type InvestmentMovementPayload struct {
	AmountUsd    float64 `json:"amountUsd"`
	Amount       float64 `json:"amount,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	ExchangeRate float64 `json:"exchangeRate,omitempty"`
	Description  string  `json:"description,omitempty"`
}

func (m InvestmentMovement) Migrated() bool { return m.EncryptedPayload != "" }

// Payload builds the plaintext payload, deriving the USD equivalent from the
// foreign-currency amount and rate when it is missing.
func (m InvestmentMovement) Payload() InvestmentMovementPayload {
	p := InvestmentMovementPayload{
		AmountUsd:    m.AmountUsd,
		Amount:       m.Amount,
		Currency:     m.Currency,
		ExchangeRate: m.ExchangeRate,
		Description:  m.Description,
	}
	if p.AmountUsd == 0 && m.Amount != 0 && m.ExchangeRate > 0 {
		p.AmountUsd = m.Amount * m.ExchangeRate
	}
	return p
}

func (m *InvestmentMovement) Redact() {
	m.AmountUsd = 0
	m.Amount = 0
	m.ExchangeRate = 0
	m.Currency = ""
	m.Description = ""
}
