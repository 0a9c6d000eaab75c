package dto

import (
	"github.com/shopspring/decimal"

	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
)

// RegistrarVentaRequest sells Cantidad units out of one specific carga.
type RegistrarVentaRequest struct {
	ProductoID int              `validate:"gt=0"`
	CargaID    int              `validate:"gt=0"`
	Cantidad   int              `validate:"gt=0"`
	MetodoPago model.MetodoPago `validate:"required"`
}

// ─── Reportes ────────────────────────────────────────────────────────────────

// ResumenVentas aggregates the whole sales log for the reports screen.
type ResumenVentas struct {
	CantidadVentas  int
	UnidadesTotales int
	IngresoTotal    decimal.Decimal
	PorCategoria    map[model.Categoria]TotalGrupo
	PorMetodoPago   map[model.MetodoPago]TotalGrupo
}

// TotalGrupo is one row of a grouped report.
type TotalGrupo struct {
	Unidades int
	Ingreso  decimal.Decimal
}
