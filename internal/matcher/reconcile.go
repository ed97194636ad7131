// Package matcher is the reconciliation core: it decides, for every
// record in two independently recorded ledgers, whether a counterpart
// exists in the other ledger.
package matcher

import "ledger-reconciler/internal/domain"

// Reconcile annotates two ledgers against each other. Each raw row is
// normalized to four fields (date, department, amount, beneficiary) and
// returned in its original position with a fifth FOUND/MISSING status
// column appended.
//
// Matching runs in two strictly sequential phases: Phase 1 matches every
// ledger A entry against an index of B, Phase 2 matches the leftover B
// entries against an index of A that already reflects Phase 1's claims.
// Within a bucket the earliest-dated unclaimed candidate wins, so when
// several same-key records compete the outcome depends on list order,
// not on which pairing would be globally closest.
func Reconcile(rowsA, rowsB [][]string) (resultA, resultB [][]string) {
	entriesA := newEntries(rowsA)
	entriesB := newEntries(rowsB)

	idxB := buildIndex(entriesB)
	for _, entry := range entriesA {
		if !entry.Matched {
			findAndMark(entry, idxB, entriesB)
		}
	}

	idxA := buildIndex(entriesA)
	for _, entry := range entriesB {
		if !entry.Matched {
			findAndMark(entry, idxA, entriesA)
		}
	}

	return annotate(entriesA), annotate(entriesB)
}

func newEntries(rows [][]string) []*domain.MatchEntry {
	entries := make([]*domain.MatchEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.NewMatchEntry(row)
	}
	return entries
}

func annotate(entries []*domain.MatchEntry) [][]string {
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = append(entry.Record.Fields(), string(entry.Status))
	}
	return rows
}
