package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MetodoPago is the closed set of accepted payment methods.
type MetodoPago string

const (
	PagoEfectivo      MetodoPago = "efectivo"
	PagoDebito        MetodoPago = "debito"
	PagoCredito       MetodoPago = "credito"
	PagoTransferencia MetodoPago = "transferencia"
	// PagoNoEspecificado is recorded when the cashier skips the question.
	PagoNoEspecificado MetodoPago = "no especificado"
)

// MetodosPago lists the selectable payment methods (the unspecified fallback
// is not offered as a menu option).
func MetodosPago() []MetodoPago {
	return []MetodoPago{PagoEfectivo, PagoDebito, PagoCredito, PagoTransferencia}
}

func (m MetodoPago) Valida() bool {
	if m == PagoNoEspecificado {
		return true
	}
	for _, v := range MetodosPago() {
		if m == v {
			return true
		}
	}
	return false
}

// ParseMetodoPago normalizes user input to the canonical token. Empty input
// maps to PagoNoEspecificado.
func ParseMetodoPago(s string) (MetodoPago, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PagoNoEspecificado, nil
	}
	for _, v := range append(MetodosPago(), PagoNoEspecificado) {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("método de pago inválido: %q", s)
}

// FechaVentaLayout is the timestamp layout used in the sales log.
const FechaVentaLayout = "2006-01-02 15:04:05"

// Venta is one line of the append-only sales log. Ventas are never mutated
// or deleted once written.
type Venta struct {
	ID             int             `validate:"gt=0"`
	Fecha          time.Time       `validate:"required"`
	ProductoID     int             `validate:"gt=0"`
	NombreProducto string          `validate:"required"`
	Categoria      Categoria       `validate:"required"`
	Cantidad       int             `validate:"gt=0"`
	PrecioUnitario decimal.Decimal `validate:"required"`
	Total          decimal.Decimal `validate:"required"`
	MetodoPago     MetodoPago      `validate:"required"`
}
