package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/GustavoCaso/spendwise/internal/expense"
)

const decimalPlaces = 2

var columns = []string{"Date", "Description", "Category", "Amount"}

// WriteCSV writes expenses as RFC 4180 CSV.
// format: Date,Description,Category,Amount
func WriteCSV(writer io.Writer, expenses []expense.Expense) error {
	w := csv.NewWriter(writer)

	records := make([][]string, 0, len(expenses)+1)
	records = append(records, columns)

	for _, ex := range expenses {
		records = append(records, expenseToCSVRecord(ex))
	}

	// WriteAll flushes
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}

// The writer quotes a field only when RFC 4180 needs it (comma, quote,
// newline or leading space) and doubles embedded quotes.
func expenseToCSVRecord(ex expense.Expense) []string {
	return []string{
		ex.Date,
		ex.Description,
		string(ex.Category),
		formatAmount(ex.Amount),
	}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', decimalPlaces, 64)
}
