package gateway

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVReportWriter renders annotated ledgers back to disk.
type CSVReportWriter struct{}

// NewCSVReportWriter creates a new writer instance.
func NewCSVReportWriter() *CSVReportWriter {
	return &CSVReportWriter{}
}

// WriteLedger writes one annotated ledger (the four record fields plus
// the status column) to path.
func (w *CSVReportWriter) WriteLedger(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing record to %s: %w", path, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
