package infra

// pdf.go renders record listings as A4 reports with go-pdf/fpdf:
//   - clinic header with title and generation time
//   - one table row per record, columns sized evenly
//   - record count footer

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Listado is a tabular report: Columnas holds the headers, every Filas entry
// one row with the same number of cells.
type Listado struct {
	Titulo   string
	Columnas []string
	Filas    [][]string
	Generado time.Time
}

// GenerateListadoPDF writes the report to w.
func GenerateListadoPDF(w io.Writer, l Listado) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "VetSoft", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, tr(l.Titulo), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Generado: "+l.Generado.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	if len(l.Columnas) == 0 {
		return fmt.Errorf("pdf: listado %q sin columnas", l.Titulo)
	}
	colW := contentW / float64(len(l.Columnas))
	maxChars := int(colW / 1.9)

	// ── Table ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 236, 240)
	for _, col := range l.Columnas {
		pdf.CellFormat(colW, 7, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, fila := range l.Filas {
		for i := range l.Columnas {
			celda := ""
			if i < len(fila) {
				celda = recortar(fila[i], maxChars)
			}
			pdf.CellFormat(colW, 6, tr(celda), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Total de registros: %d", len(l.Filas)), "", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write: %w", err)
	}
	return nil
}

// recortar truncates s to n runes so long values do not overflow the cell.
func recortar(s string, n int) string {
	r := []rune(s)
	if n < 2 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "..."
}
