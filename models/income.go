package models

// Income is a single income entry for a given month.
type Income struct {
	// ID is the backend identifier of the record.
	ID string `json:"id"`

	// Year and Month locate the entry in the calendar.
	Year  int `json:"year"`
	Month int `json:"month"`

	// Description is the plaintext label of the income source. Zeroed on
	// the backend once EncryptedPayload becomes authoritative.
	Description string `json:"description"`

	// AmountUsd is the plaintext amount in USD. Zeroed after migration.
	AmountUsd float64 `json:"amountUsd"`

	// EncryptedPayload, when non-empty, is the base64 blob holding the
	// authoritative values of the record.
	EncryptedPayload string `json:"encryptedPayload,omitempty"`
}

// IncomePayload is the plaintext object that gets encrypted into
// [Income.EncryptedPayload].
type IncomePayload struct {
	AmountUsd   float64 `json:"amountUsd"`
	Description string  `json:"description,omitempty"`
}

// Migrated reports whether the record already carries an encrypted payload.
func (i Income) Migrated() bool { return i.EncryptedPayload != "" }

// Payload builds the plaintext payload from the record's current fields.
func (i Income) Payload() IncomePayload {
	return IncomePayload{AmountUsd: i.AmountUsd, Description: i.Description}
}

// Redact zeroes the plaintext fields so that only the encrypted payload can
// leak the real values.
func (i *Income) Redact() {
	i.AmountUsd = 0
	i.Description = ""
}
