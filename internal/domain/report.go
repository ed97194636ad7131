package domain

// Summary provides high-level statistics of a reconciliation run.
type Summary struct {
	LedgerARecords int `json:"ledger_a_records"`
	LedgerBRecords int `json:"ledger_b_records"`
	MatchedPairs   int `json:"matched_pairs"`
	MissingInA     int `json:"missing_in_a"`
	MissingInB     int `json:"missing_in_b"`
}

// Report is the top-level structure for the final output. Both ledgers
// appear in their original order, each row carrying its four normalized
// fields plus the trailing FOUND/MISSING status column.
type Report struct {
	Summary Summary    `json:"summary"`
	LedgerA [][]string `json:"ledger_a"`
	LedgerB [][]string `json:"ledger_b"`
}
