package export

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/spendwise/internal/expense"
)

//go:embed schema/export.json
var exportSchema []byte

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("export.json", bytes.NewReader(exportSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("export.json")
})

type jsonDocument struct {
	ExportedAt   string            `json:"exportedAt"`
	TotalRecords int               `json:"totalRecords"`
	TotalAmount  float64           `json:"totalAmount"`
	Expenses     []expense.Expense `json:"expenses"`
}

// WriteJSON writes the export envelope with every expense field. The
// document is checked against the export schema before anything is written.
func WriteJSON(w io.Writer, expenses []expense.Expense, exportedAt time.Time) error {
	if expenses == nil {
		expenses = []expense.Expense{}
	}

	doc := jsonDocument{
		ExportedAt:   exportedAt.UTC().Format(time.RFC3339Nano),
		TotalRecords: len(expenses),
		TotalAmount:  sum(expenses).InexactFloat64(),
		Expenses:     expenses,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON export: %w", err)
	}

	if err = validateJSON(data); err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

func validateJSON(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err = json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err = schema.Validate(v); err != nil {
		return fmt.Errorf("export does not match schema: %w", err)
	}
	return nil
}

func sum(expenses []expense.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, ex := range expenses {
		total = total.Add(ex.Decimal())
	}
	return total
}
