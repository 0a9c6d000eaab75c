package cli

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
	"github.com/thrimos616/TPO-AyED1-2025/internal/service"
)

// Grid-style tables, like the tabulate output the system always had.

func renderTabla(w io.Writer, headers []any, rows [][]any) error {
	t := tablewriter.NewTable(w)
	t.Header(headers...)
	for _, row := range rows {
		if err := t.Append(row...); err != nil {
			return err
		}
	}
	return t.Render()
}

// RenderProductos prints one page of catalog entries.
func RenderProductos(w io.Writer, productos []model.Producto) error {
	rows := make([][]any, 0, len(productos))
	for _, p := range productos {
		rows = append(rows, []any{
			strconv.Itoa(p.ID), p.Nombre, string(p.Capacidad),
			string(p.Categoria), "$" + p.Precio.StringFixed(2),
		})
	}
	return renderTabla(w, []any{"ID", "Nombre", "Capacidad", "Categoría", "Precio"}, rows)
}

// RenderCargas prints one page of stock ledger lines.
func RenderCargas(w io.Writer, cargas []model.CargaStock) error {
	rows := make([][]any, 0, len(cargas))
	for _, c := range cargas {
		rows = append(rows, []any{
			strconv.Itoa(c.ID), c.Tipo, string(c.Capacidad),
			strconv.Itoa(c.Cantidad), string(c.Categoria),
		})
	}
	return renderTabla(w, []any{"ID", "Tipo", "Capacidad", "Cantidad", "Categoría"}, rows)
}

// RenderStockBajo prints one page of the low-stock report.
func RenderStockBajo(w io.Writer, bajas []service.CargaBaja) error {
	rows := make([][]any, 0, len(bajas))
	for _, b := range bajas {
		rows = append(rows, []any{
			strconv.Itoa(b.Carga.ID), b.Carga.Tipo, string(b.Carga.Capacidad),
			strconv.Itoa(b.Carga.Cantidad), strconv.Itoa(b.Umbral),
		})
	}
	return renderTabla(w, []any{"ID", "Tipo", "Capacidad", "Cantidad", "Umbral"}, rows)
}
