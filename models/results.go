package models

// MigrationStatus is a read-only snapshot of how many records still lack an
// encrypted payload, per category and in total. It is derived on demand and
// never persisted.
type MigrationStatus struct {
	// Pending maps each category to the number of records that still need
	// migration.
	Pending map[Category]int `json:"pending"`

	// Total is the sum over all categories.
	Total int `json:"total"`
}

// MigrationResult summarises one migration run.
type MigrationResult struct {
	// OK is true iff no per-record failure occurred.
	OK bool `json:"ok"`

	// ErrorCount is the number of records whose write-back failed.
	ErrorCount int `json:"errorCount"`

	// Errors is a bounded sample of human-readable failure messages.
	Errors []string `json:"errors,omitempty"`

	// Converted maps each category to the number of records actually
	// converted during this run.
	Converted map[Category]int `json:"converted"`
}

// RotationResult summarises one key-rotation run. Unlike migration it only
// reports cumulative numbers.
type RotationResult struct {
	OK         bool     `json:"ok"`
	ErrorCount int      `json:"errorCount"`
	Errors     []string `json:"errors,omitempty"`
}
