// Package apperror provides the standardized errors surfaced to the console
// user. All expected failure paths go through this package so the CLI can
// translate them to messages without leaking internal details (file paths,
// parser errors, etc.).
package apperror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNoEncontrado indicates a lookup by id matched no record. The calling
	// operation aborts with no side effects.
	ErrNoEncontrado = errors.New("registro no encontrado")

	// ErrStockInsuficiente indicates a sale asked for more units than the
	// selected carga holds. No state change occurs.
	ErrStockInsuficiente = errors.New("stock insuficiente")
)

// NoEncontrado wraps ErrNoEncontrado with the entity and id that missed.
func NoEncontrado(entidad string, id int) error {
	return fmt.Errorf("%s con id %d: %w", entidad, id, ErrNoEncontrado)
}

// ValidationError wraps per-field validation failures detected at the file
// boundary.
type ValidationError struct {
	Detail string
	Fields map[string]string
}

func (e *ValidationError) Error() string { return e.Detail }

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validación", Fields: fields}
}

// DesdeValidacion converts a validator error chain into a ValidationError
// with one entry per failing field (field name → violated rule). Errors that
// don't come from the validator pass through unchanged.
func DesdeValidacion(err error) error {
	var faltas validator.ValidationErrors
	if !errors.As(err, &faltas) {
		return err
	}
	fields := make(map[string]string, len(faltas))
	for _, f := range faltas {
		fields[f.Field()] = f.Tag()
	}
	return NewValidation(fields)
}
