package gateway

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"ledger-reconciler/internal/domain"
)

// CSVRecordSource implements the RecordSource interface for delimited
// text files.
type CSVRecordSource struct{}

// NewCSVRecordSource creates a new source instance.
func NewCSVRecordSource() *CSVRecordSource {
	return &CSVRecordSource{}
}

// GetRecords reads one ledger file. Rows whose first cell starts with '#'
// and rows whose normalized four-field form is entirely empty are skipped.
// Rows come back ragged, exactly as the file has them; they take their
// final four-field shape inside the engine.
func (s *CSVRecordSource) GetRecords(ctx context.Context, path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file %s: %w", path, err)
	}
	defer file.Close()

	br := bufio.NewReader(file)
	// Strip a UTF-8 BOM so exports from BOM-writing tools cannot pollute
	// the first cell.
	if r, _, err := br.ReadRune(); err == nil && r != '\ufeff' {
		_ = br.UnreadRune()
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1 // ledgers in the wild have ragged rows
	reader.LazyQuotes = true    // comment lines are free-form text

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		if len(record) > 0 && strings.HasPrefix(strings.TrimSpace(record[0]), "#") {
			continue
		}
		if domain.NormalizeRow(record).IsEmpty() {
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}
