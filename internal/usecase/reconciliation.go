package usecase

import (
	"context"
	"fmt"

	"ledger-reconciler/internal/domain"
	"ledger-reconciler/internal/matcher"
)

// ReconciliationUseCase orchestrates the reconciliation process.
type ReconciliationUseCase struct {
	source RecordSource
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(source RecordSource) *ReconciliationUseCase {
	return &ReconciliationUseCase{source: source}
}

// Reconcile ingests both ledgers, runs the matching engine and assembles
// the final report.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, pathA, pathB string) (*domain.Report, error) {
	// Step 1: Data Ingestion
	rowsA, err := uc.source.GetRecords(ctx, pathA)
	if err != nil {
		return nil, fmt.Errorf("could not get ledger A records: %w", err)
	}

	rowsB, err := uc.source.GetRecords(ctx, pathB)
	if err != nil {
		return nil, fmt.Errorf("could not get ledger B records: %w", err)
	}

	// The engine itself is a bounded in-memory sweep, but very large
	// ledgers can still take a while; honor a caller deadline between
	// ingestion and matching.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 2: Two-pass matching
	resultA, resultB := matcher.Reconcile(rowsA, rowsB)

	// Step 3: Summarize
	report := &domain.Report{
		Summary: domain.Summary{
			LedgerARecords: len(resultA),
			LedgerBRecords: len(resultB),
		},
		LedgerA: resultA,
		LedgerB: resultB,
	}
	for _, row := range resultA {
		if rowStatus(row) == domain.StatusFound {
			// FOUND rows pair one-to-one across ledgers, so counting
			// one side counts the pairs.
			report.Summary.MatchedPairs++
		} else {
			report.Summary.MissingInA++
		}
	}
	for _, row := range resultB {
		if rowStatus(row) != domain.StatusFound {
			report.Summary.MissingInB++
		}
	}

	return report, nil
}

func rowStatus(row []string) domain.Status {
	return domain.Status(row[len(row)-1])
}
