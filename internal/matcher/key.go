package matcher

import (
	"strings"

	"github.com/shopspring/decimal"

	"ledger-reconciler/internal/domain"
)

// amountPrecision is the number of decimal places amounts are
// canonicalized to before keys are compared.
const amountPrecision = 6

// key buckets candidate matches: two records must agree on department,
// amount and beneficiary before their dates are even considered.
type key struct {
	department  string
	amount      string
	beneficiary string
}

// buildKey derives the grouping key for a record. Department and
// beneficiary compare case-insensitively. The amount is canonicalized to
// six decimal places so "123.4" and "123.400000" land in the same bucket;
// an amount that does not parse keeps its literal text, so two
// unparseable amounts match only when textually identical.
func buildKey(r domain.Record) key {
	amount := r.Amount
	if d, err := decimal.NewFromString(r.Amount); err == nil {
		amount = d.StringFixed(amountPrecision)
	}
	return key{
		department:  strings.ToLower(r.Department),
		amount:      amount,
		beneficiary: strings.ToLower(r.Beneficiary),
	}
}
