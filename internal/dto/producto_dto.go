package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre    string          `validate:"required,min=2,max=120"`
	Capacidad string          `validate:"required"`
	Categoria string          `validate:"required"`
	Precio    decimal.Decimal `validate:"required"`
}

// ModificarProductoRequest carries field-level changes; nil fields are left
// untouched. Renaming a product cascades to its stock cargas and umbral.
type ModificarProductoRequest struct {
	Nombre    *string          `validate:"omitempty,min=2,max=120"`
	Capacidad *string          `validate:"omitempty"`
	Categoria *string          `validate:"omitempty"`
	Precio    *decimal.Decimal `validate:"omitempty"`
}
