package matcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-reconciler/internal/domain"
)

func entryOf(date, dept, amount, beneficiary string) *domain.MatchEntry {
	return domain.NewMatchEntry([]string{date, dept, amount, beneficiary})
}

func TestBuildIndexGroupsByKey(t *testing.T) {
	entries := []*domain.MatchEntry{
		entryOf("2024-01-05", "Sales", "100", "Alice"),
		entryOf("2024-01-02", "Ops", "50", "Bob"),
		entryOf("2024-01-01", "sales", "100.00", "ALICE"),
	}

	idx := buildIndex(entries)
	require.Len(t, idx, 2)

	salesKey := buildKey(entries[0].Record)
	bucket, ok := idx[salesKey]
	require.True(t, ok)
	require.Len(t, bucket, 2)

	// Sorted by date ascending: position 2 (Jan 1) before position 0 (Jan 5).
	assert.Equal(t, 2, bucket[0].pos)
	assert.Equal(t, 0, bucket[1].pos)
	assert.True(t, bucket[0].date.Before(bucket[1].date))
}

func TestBuildIndexExcludesUndatedEntries(t *testing.T) {
	entries := []*domain.MatchEntry{
		entryOf("not-a-date", "Sales", "100", "Alice"),
		entryOf("", "Sales", "100", "Alice"),
		entryOf("2024-13-40", "Sales", "100", "Alice"),
	}

	idx := buildIndex(entries)
	assert.Empty(t, idx)
}

func TestBuildIndexEqualDatesKeepListOrder(t *testing.T) {
	entries := []*domain.MatchEntry{
		entryOf("2024-01-01", "Sales", "100", "Alice"),
		entryOf("2024-01-01", "Sales", "100", "Alice"),
		entryOf("2024-01-01", "Sales", "100", "Alice"),
	}

	idx := buildIndex(entries)
	bucket := idx[buildKey(entries[0].Record)]
	require.Len(t, bucket, 3)

	assert.Equal(t, []int{bucket[0].pos, bucket[1].pos, bucket[2].pos}, []int{0, 1, 2})
}

func TestParseDate(t *testing.T) {
	date, ok := parseDate("2024-01-31")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), date)

	_, ok = parseDate("31/01/2024")
	assert.False(t, ok)
}
