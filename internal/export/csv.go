// Package export serializes transaction lists for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
)

// csvHeader is the fixed column order of the export.
var csvHeader = []string{"Date", "Description", "Category", "Type", "Amount"}

// WriteCSV writes the transactions to w as CSV, one row per transaction in
// list order, preceded by a header row. Fields containing delimiters or quotes
// are escaped per RFC 4180.
func WriteCSV(w io.Writer, transactions []domain.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range transactions {
		row := []string{
			t.Date.Format("2006-01-02"),
			t.Description,
			string(t.Category),
			string(t.Type),
			t.Amount.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for transaction %s: %w", t.TransactionID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

// Filename returns the download name for an export generated on the given day.
func Filename(now time.Time) string {
	return fmt.Sprintf("transactions-%s.csv", now.UTC().Format("2006-01-02"))
}
