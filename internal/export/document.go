package export

import (
	"fmt"
	"time"

	"github.com/GustavoCaso/spendwise/internal/expense"
	"github.com/GustavoCaso/spendwise/internal/util"
)

const (
	documentTitle    = "SpendWise"
	documentSubtitle = "Expense Report"
	totalLabel       = "TOTAL"
)

// Row is one rendered table line.
type Row struct {
	Date        string
	Description string
	Category    string
	Amount      string
}

func (r Row) Cells() []string {
	return []string{r.Date, r.Description, r.Category, r.Amount}
}

// Document is the renderer-independent content of a PDF report.
type Document struct {
	Title       string
	Subtitle    string
	GeneratedAt time.Time
	Columns     []string
	Rows        []Row
	Footer      Row
	RecordCount int
	Total       float64
}

func NewDocument(expenses []expense.Expense, generatedAt time.Time) Document {
	total := sum(expenses).InexactFloat64()

	rows := make([]Row, 0, len(expenses))
	for _, ex := range expenses {
		rows = append(rows, Row{
			Date:        util.HumanDate(ex.Date),
			Description: ex.Description,
			Category:    string(ex.Category),
			Amount:      util.FormatCurrency(ex.Amount),
		})
	}

	return Document{
		Title:       documentTitle,
		Subtitle:    documentSubtitle,
		GeneratedAt: generatedAt,
		Columns:     append([]string(nil), columns...),
		Rows:        rows,
		Footer:      Row{Category: totalLabel, Amount: util.FormatCurrency(total)},
		RecordCount: len(expenses),
		Total:       total,
	}
}

func (d Document) Summary() string {
	return fmt.Sprintf("%d Records · Total: %s", d.RecordCount, util.FormatCurrency(d.Total))
}

func (d Document) GeneratedLine() string {
	return "Generated: " + d.GeneratedAt.Format("January 2, 2006 at 3:04 PM")
}
