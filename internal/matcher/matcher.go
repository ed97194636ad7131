package matcher

import (
	"time"

	"ledger-reconciler/internal/domain"
)

// dateTolerance is how far apart two records' dates may be while still
// describing the same transaction. One day absorbs posting-date skew
// between two recording systems without letting unrelated same-key
// transactions days apart collide.
const dateTolerance = 24 * time.Hour

// findAndMark looks for the source entry's counterpart in the target
// ledger and claims it. The source's key bucket is scanned in ascending
// date order; already-claimed targets are skipped and the first remaining
// candidate within the date tolerance wins. Acceptance marks both entries
// FOUND in the same step. Everything else leaves the source MISSING: an
// unparseable source date, an absent key, or an exhausted bucket. The
// index itself is never mutated.
func findAndMark(source *domain.MatchEntry, idx index, targets []*domain.MatchEntry) domain.Status {
	sourceDate, ok := parseDate(source.Record.Date)
	if !ok {
		return domain.StatusMissing
	}

	bucket, ok := idx[buildKey(source.Record)]
	if !ok {
		return domain.StatusMissing
	}

	for _, c := range bucket {
		target := targets[c.pos]
		if target.Matched {
			continue
		}
		if absDuration(sourceDate.Sub(c.date)) <= dateTolerance {
			source.Status = domain.StatusFound
			source.Matched = true
			target.Status = domain.StatusFound
			target.Matched = true
			return domain.StatusFound
		}
	}
	return domain.StatusMissing
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
