package infra

// pdf.go — PDF rendering with go-pdf/fpdf: a receipt-style ticket per sale
// and an A4 low-stock report for restocking rounds.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
)

// GenerarTicketPDF writes a receipt for a registered sale into dir
// (created if needed) and returns the path of the generated file.
func GenerarTicketPDF(venta *model.Venta, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("ticket_%d.pdf", venta.ID))

	// 74mm × 105mm ≈ thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Centro Pinturerias", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comprobante de Venta", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Sale info ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Venta N° %d", venta.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.Fecha.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Line item ─────────────────────────────────────────────────────────────
	col1 := contentW * 0.52
	col2 := contentW * 0.16
	col3 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	nombre := venta.NombreProducto
	if len(nombre) > 22 {
		nombre = nombre[:21] + "…"
	}
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1, 5, nombre, "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", venta.Cantidad), "", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "$"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// ── Total and payment ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.5, 6, "TOTAL", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.5, 6, "$"+venta.Total.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "Pago: "+string(venta.MetodoPago), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("pdf: escribir ticket: %w", err)
	}
	return path, nil
}

// FilaStockBajo is one row of the low-stock report.
type FilaStockBajo struct {
	Tipo      string
	Capacidad string
	Cantidad  int
	Umbral    int
}

// GenerarStockBajoPDF renders the low-stock rows as an A4 table.
func GenerarStockBajoPDF(filas []FilaStockBajo, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("pdf: crear directorio: %w", err)
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Centro Pinturerias — Stock bajo", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, time.Now().Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{70, 30, 30, 30}
	headers := []string{"Tipo", "Capacidad", "Cantidad", "Umbral"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(filas) == 0 {
		pdf.CellFormat(160, 7, "Sin productos con stock bajo", "1", 1, "L", false, 0, "")
	}
	for _, f := range filas {
		pdf.CellFormat(widths[0], 7, f.Tipo, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, f.Capacidad, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, fmt.Sprintf("%d", f.Cantidad), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%d", f.Umbral), "1", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf: escribir reporte: %w", err)
	}
	return nil
}
