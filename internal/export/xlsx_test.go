package export

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	expenses := sampleExpenses()

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, expenses); err != nil {
		t.Fatalf("WriteXLSX() unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Expenses")
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}

	if len(rows) != len(expenses)+2 {
		t.Fatalf("rows = %d, want %d", len(rows), len(expenses)+2)
	}
	if !reflect.DeepEqual(rows[0], columns) {
		t.Errorf("header = %v, want %v", rows[0], columns)
	}
	if rows[3][1] != `He said "hi"` {
		t.Errorf("description = %q, want %q", rows[3][1], `He said "hi"`)
	}

	raw := excelize.Options{RawCellValue: true}
	amount, err := f.GetCellValue("Expenses", "D2", raw)
	if err != nil {
		t.Fatalf("GetCellValue(D2) error: %v", err)
	}
	if amount != "42.5" {
		t.Errorf("D2 = %q, want 42.5", amount)
	}

	label, _ := f.GetCellValue("Expenses", "C6")
	total, _ := f.GetCellValue("Expenses", "D6", raw)
	if label != "TOTAL" || total != "237.75" {
		t.Errorf("total row = %q %q, want TOTAL 237.75", label, total)
	}
}
