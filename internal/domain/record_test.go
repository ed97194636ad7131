package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRow(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  Record
	}{
		{
			name:  "exact four fields",
			cells: []string{"2024-01-01", "Sales", "100.00", "Alice"},
			want:  Record{Date: "2024-01-01", Department: "Sales", Amount: "100.00", Beneficiary: "Alice"},
		},
		{
			name:  "short row padded with empty fields",
			cells: []string{"2024-01-01", "Sales"},
			want:  Record{Date: "2024-01-01", Department: "Sales"},
		},
		{
			name:  "long row truncated to four fields",
			cells: []string{"2024-01-01", "Sales", "100.00", "Alice", "extra", "more"},
			want:  Record{Date: "2024-01-01", Department: "Sales", Amount: "100.00", Beneficiary: "Alice"},
		},
		{
			name:  "surrounding whitespace stripped",
			cells: []string{" 2024-01-01 ", "\tSales", "100.00 ", "  Alice  "},
			want:  Record{Date: "2024-01-01", Department: "Sales", Amount: "100.00", Beneficiary: "Alice"},
		},
		{
			name:  "nil row becomes all-empty record",
			cells: nil,
			want:  Record{},
		},
		{
			name:  "empty row becomes all-empty record",
			cells: []string{},
			want:  Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRow(tt.cells))
		})
	}
}

func TestRecordFields(t *testing.T) {
	r := Record{Date: "2024-01-01", Department: "Sales", Amount: "100.00", Beneficiary: "Alice"}
	assert.Equal(t, []string{"2024-01-01", "Sales", "100.00", "Alice"}, r.Fields())
}

func TestRecordIsEmpty(t *testing.T) {
	assert.True(t, Record{}.IsEmpty())
	assert.False(t, Record{Amount: "1"}.IsEmpty())
}

func TestNewMatchEntry(t *testing.T) {
	entry := NewMatchEntry([]string{"2024-01-01", "Sales", "100.00", "Alice"})

	assert.Equal(t, StatusMissing, entry.Status)
	assert.False(t, entry.Matched)
	assert.Equal(t, "Sales", entry.Record.Department)
}
