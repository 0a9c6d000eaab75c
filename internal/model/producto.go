package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Categoria is the closed set of product categories the store sells.
type Categoria string

const (
	CategoriaPintura           Categoria = "Pintura"
	CategoriaProtector         Categoria = "Protector"
	CategoriaFijador           Categoria = "Fijador"
	CategoriaImpermeabilizante Categoria = "Impermeabilizante"
)

// Categorias lists every valid Categoria in menu order.
func Categorias() []Categoria {
	return []Categoria{
		CategoriaPintura,
		CategoriaProtector,
		CategoriaFijador,
		CategoriaImpermeabilizante,
	}
}

// Valida reports whether c belongs to the closed set.
func (c Categoria) Valida() bool {
	for _, v := range Categorias() {
		if c == v {
			return true
		}
	}
	return false
}

// ParseCategoria normalizes user input ("pintura", "PROTECTOR") to the
// canonical token.
func ParseCategoria(s string) (Categoria, error) {
	s = strings.TrimSpace(s)
	for _, v := range Categorias() {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("categoría inválida: %q", s)
}

// Capacidad is a magnitude+unit token, e.g. "10L" or "20kg".
// Valid magnitudes are 1, 5, 10 and 20; valid units are "L" and "kg".
type Capacidad string

var capacidadesValidas = []Capacidad{
	"1L", "5L", "10L", "20L",
	"1kg", "5kg", "10kg", "20kg",
}

// Capacidades lists every valid Capacidad token.
func Capacidades() []Capacidad { return capacidadesValidas }

func (c Capacidad) Valida() bool {
	for _, v := range capacidadesValidas {
		if c == v {
			return true
		}
	}
	return false
}

// ParseCapacidad normalizes user input ("10l", "20KG") to the canonical token.
func ParseCapacidad(s string) (Capacidad, error) {
	s = strings.TrimSpace(s)
	for _, v := range capacidadesValidas {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("capacidad inválida: %q", s)
}

// Producto is a catalog entry: what the store sells, independent of how many
// units are on hand (on-hand quantity lives in CargaStock).
type Producto struct {
	ID        int             `validate:"gt=0"`
	Nombre    string          `validate:"required"`
	Capacidad Capacidad       `validate:"required"`
	Categoria Categoria       `validate:"required"`
	Precio    decimal.Decimal `validate:"required"`
}
