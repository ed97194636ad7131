package usecase

import "context"

// RecordSource defines the interface for fetching raw ledger rows.
// The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_source.go -source=interface.go RecordSource
type RecordSource interface {
	GetRecords(ctx context.Context, path string) ([][]string, error)
}
