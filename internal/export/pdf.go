package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin   = 14.0
	rowHeight    = 8.0
	tableTop     = 72.0
	footerHeight = 10.0
	fontFamily   = "Helvetica"
)

// Date, Description, Category, Amount. Sums to the A4 width minus margins.
var columnWidths = []float64{30, 90, 30, 32}

type rgb struct{ r, g, b int }

var (
	headerFill  = rgb{79, 70, 229}
	altRowFill  = rgb{248, 250, 252}
	footerFill  = rgb{238, 242, 255}
	accentText  = rgb{55, 48, 163}
	mutedText   = rgb{100, 116, 139}
	faintText   = rgb{148, 163, 184}
	bodyText    = rgb{30, 41, 59}
	whiteText   = rgb{255, 255, 255}
	summaryFill = rgb{238, 242, 255}
)

// WritePDF renders doc as an A4 report.
func WritePDF(w io.Writer, doc Document) error {
	pdf := renderPDF(doc)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

func renderPDF(doc Document) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title+" "+doc.Subtitle, true)
	pdf.SetCreator("spendwise", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-footerHeight)
		pdf.SetFont(fontFamily, "I", 8)
		setTextColor(pdf, faintText)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	drawTitle(pdf, doc, tr)

	pdf.SetXY(pageMargin, tableTop)
	drawHeaderRow(pdf, doc.Columns, tr)

	_, pageHeight := pdf.GetPageSize()
	// keep space for the footer row on the last page
	limit := pageHeight - pageMargin - footerHeight - rowHeight

	for i, row := range doc.Rows {
		if pdf.GetY()+rowHeight > limit {
			pdf.AddPage()
			pdf.SetXY(pageMargin, pageMargin)
			drawHeaderRow(pdf, doc.Columns, tr)
		}
		drawBodyRow(pdf, row, i%2 == 1, tr)
	}

	drawFooterRow(pdf, doc.Footer, tr)

	return pdf
}

func drawTitle(pdf *fpdf.Fpdf, doc Document, tr func(string) string) {
	pdf.SetFont(fontFamily, "B", 22)
	setTextColor(pdf, accentText)
	pdf.Text(pageMargin, 24, tr(doc.Title))

	pdf.SetFont(fontFamily, "", 11)
	setTextColor(pdf, mutedText)
	pdf.Text(pageMargin, 32, tr(doc.Subtitle))

	pdf.SetFont(fontFamily, "", 9)
	setTextColor(pdf, faintText)
	pdf.Text(pageMargin, 40, tr(doc.GeneratedLine()))

	setFillColor(pdf, summaryFill)
	pdf.Rect(pageMargin, 46, tableWidth(), 16, "F")
	pdf.SetFont(fontFamily, "B", 10)
	setTextColor(pdf, accentText)
	pdf.Text(pageMargin+6, 56, tr(doc.Summary()))
}

func drawHeaderRow(pdf *fpdf.Fpdf, cols []string, tr func(string) string) {
	pdf.SetFont(fontFamily, "B", 9)
	setFillColor(pdf, headerFill)
	setTextColor(pdf, whiteText)
	for i, col := range cols {
		pdf.CellFormat(columnWidths[i], rowHeight, tr(col), "", 0, alignFor(i), true, 0, "")
	}
	pdf.Ln(-1)
}

func drawBodyRow(pdf *fpdf.Fpdf, row Row, alternate bool, tr func(string) string) {
	pdf.SetFont(fontFamily, "", 9)
	setTextColor(pdf, bodyText)
	setFillColor(pdf, altRowFill)
	for i, cell := range row.Cells() {
		text := fitText(pdf, tr(cell), columnWidths[i]-2)
		pdf.CellFormat(columnWidths[i], rowHeight, text, "", 0, alignFor(i), alternate, 0, "")
	}
	pdf.Ln(-1)
}

func drawFooterRow(pdf *fpdf.Fpdf, row Row, tr func(string) string) {
	pdf.SetFont(fontFamily, "B", 10)
	setFillColor(pdf, footerFill)
	setTextColor(pdf, accentText)
	for i, cell := range row.Cells() {
		pdf.CellFormat(columnWidths[i], rowHeight, tr(cell), "", 0, alignFor(i), true, 0, "")
	}
	pdf.Ln(-1)
}

// fitText truncates text with an ellipsis so it fits in width.
func fitText(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func alignFor(col int) string {
	if col == len(columnWidths)-1 {
		return "R"
	}
	return "L"
}

func tableWidth() float64 {
	var w float64
	for _, c := range columnWidths {
		w += c
	}
	return w
}

func setFillColor(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetFillColor(c.r, c.g, c.b)
}

func setTextColor(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}
