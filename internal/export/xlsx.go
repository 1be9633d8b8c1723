package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/GustavoCaso/spendwise/internal/expense"
)

const (
	sheetName       = "Expenses"
	amountNumFmt    = 2 // 0.00
	descriptionCols = 48
)

// WriteXLSX writes a workbook with one "Expenses" sheet and a total row.
func WriteXLSX(w io.Writer, expenses []expense.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: amountNumFmt})
	if err != nil {
		return fmt.Errorf("failed to create amount style: %w", err)
	}

	for i, col := range columns {
		if err = setCell(f, i+1, 1, col, headerStyle); err != nil {
			return err
		}
	}

	for i, ex := range expenses {
		row := i + 2
		values := []any{ex.Date, ex.Description, string(ex.Category), ex.Amount}
		for c, v := range values {
			style := 0
			if c == len(values)-1 {
				style = amountStyle
			}
			if err = setCell(f, c+1, row, v, style); err != nil {
				return err
			}
		}
	}

	totalRow := len(expenses) + 2
	if err = setCell(f, 3, totalRow, totalLabel, headerStyle); err != nil {
		return err
	}
	if err = setCell(f, 4, totalRow, sum(expenses).InexactFloat64(), amountStyle); err != nil {
		return err
	}

	if err = f.SetColWidth(sheetName, "A", "A", 12); err != nil {
		return err
	}
	if err = f.SetColWidth(sheetName, "B", "B", descriptionCols); err != nil {
		return err
	}
	if err = f.SetColWidth(sheetName, "C", "D", 16); err != nil {
		return err
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err = f.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", cell, err)
	}
	if style == 0 {
		return nil
	}
	return f.SetCellStyle(sheetName, cell, cell, style)
}
