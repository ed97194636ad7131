package domain

import "strings"

// Status marks whether a record was reconciled against the other ledger.
type Status string

const (
	StatusFound   Status = "FOUND"
	StatusMissing Status = "MISSING"
)

// recordFields is the fixed shape every normalized record has.
const recordFields = 4

// Record is one normalized ledger row: date, department, amount and
// beneficiary, all held as trimmed strings. The date is only parsed when
// the matching engine needs it, so an unparseable date is data, not an
// error.
type Record struct {
	Date        string `json:"date"`
	Department  string `json:"department"`
	Amount      string `json:"amount"`
	Beneficiary string `json:"beneficiary"`
}

// NormalizeRow coerces a raw row of any length into a Record. Missing
// trailing cells become empty strings, cells beyond the fourth are
// discarded and every kept cell has surrounding whitespace stripped.
// It never fails; a nil row yields the all-empty record.
func NormalizeRow(cells []string) Record {
	padded := make([]string, recordFields)
	for i := 0; i < recordFields && i < len(cells); i++ {
		padded[i] = strings.TrimSpace(cells[i])
	}
	return Record{
		Date:        padded[0],
		Department:  padded[1],
		Amount:      padded[2],
		Beneficiary: padded[3],
	}
}

// Fields returns the record's cells in ledger column order.
func (r Record) Fields() []string {
	return []string{r.Date, r.Department, r.Amount, r.Beneficiary}
}

// IsEmpty reports whether every cell of the record is empty.
func (r Record) IsEmpty() bool {
	return r.Date == "" && r.Department == "" && r.Amount == "" && r.Beneficiary == ""
}

// MatchEntry wraps a Record for the duration of one reconciliation run.
// Status and Matched move together: an entry starts MISSING and flips to
// FOUND exactly once, when the matcher claims it.
type MatchEntry struct {
	Record  Record
	Status  Status
	Matched bool
}

// NewMatchEntry normalizes a raw row into an unmatched entry.
func NewMatchEntry(cells []string) *MatchEntry {
	return &MatchEntry{
		Record: NormalizeRow(cells),
		Status: StatusMissing,
	}
}
