package matcher

import (
	"sort"
	"time"

	"ledger-reconciler/internal/domain"
)

// dateFormat matches the ledgers' ISO date column.
const dateFormat = "2006-01-02"

// parseDate parses a ledger date cell. ok is false for an undated record.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// candidate points at one indexable entry in a ledger's entry list.
type candidate struct {
	date time.Time
	pos  int
}

// index groups one ledger's entries by key. Each bucket holds
// (date, position) pairs sorted by date ascending. Undated entries are
// left out entirely: they can still search for a partner as sources, but
// can never be found as targets.
type index map[key][]candidate

// buildIndex indexes a ledger's entries. The per-bucket sort is stable,
// so candidates sharing a date keep their original list order.
func buildIndex(entries []*domain.MatchEntry) index {
	idx := make(index)
	for pos, entry := range entries {
		date, ok := parseDate(entry.Record.Date)
		if !ok {
			continue
		}
		k := buildKey(entry.Record)
		idx[k] = append(idx[k], candidate{date: date, pos: pos})
	}
	for k := range idx {
		bucket := idx[k]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].date.Before(bucket[j].date)
		})
	}
	return idx
}
