package service

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
	"github.com/thrimos616/TPO-AyED1-2025/internal/repository"
)

// Criterio is a filterable product field.
type Criterio string

const (
	CriterioID        Criterio = "id"
	CriterioNombre    Criterio = "nombre"
	CriterioCapacidad Criterio = "capacidad"
	CriterioPrecio    Criterio = "precio"
	CriterioCategoria Criterio = "categoria"
)

// CriteriosBusqueda lists every criterion in menu order.
func CriteriosBusqueda() []Criterio {
	return []Criterio{
		CriterioID, CriterioNombre, CriterioCapacidad, CriterioPrecio, CriterioCategoria,
	}
}

// SesionBusqueda is one interactive search: a working set narrowed by
// successive single-use equality filters.
//
// Each Aplicar consumes its criterion, so no criterion runs twice in one
// session, and — because every filter is an exact-equality predicate — the
// final working set does not depend on the order the criteria were applied.
type SesionBusqueda struct {
	disponibles []Criterio
	usados      []Criterio
	resultados  []model.Producto
}

// NuevaSesion starts a session over the full catalog snapshot.
func NuevaSesion(productos []model.Producto) *SesionBusqueda {
	return &SesionBusqueda{
		disponibles: CriteriosBusqueda(),
		usados:      []Criterio{},
		resultados:  productos,
	}
}

// Disponibles returns the criteria not yet consumed, in menu order.
func (s *SesionBusqueda) Disponibles() []Criterio { return s.disponibles }

// Usados returns the criteria already applied, in application order.
func (s *SesionBusqueda) Usados() []Criterio { return s.usados }

// Resultados returns the current working set.
func (s *SesionBusqueda) Resultados() []model.Producto { return s.resultados }

// Agotada reports whether the session can no longer narrow: either the
// working set is empty or every criterion has been consumed.
func (s *SesionBusqueda) Agotada() bool {
	return len(s.resultados) == 0 || len(s.disponibles) == 0
}

// Aplicar filters the working set by exact equality on the given criterion
// and consumes it. Free-text values match case-sensitively as stored;
// numeric values must parse exactly or an error is returned (the caller's
// prompt loop retries).
func (s *SesionBusqueda) Aplicar(criterio Criterio, valor string) error {
	idx := -1
	for i, c := range s.disponibles {
		if c == criterio {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("criterio %q no disponible", criterio)
	}

	pred, err := predicado(criterio, valor)
	if err != nil {
		return err
	}

	filtrados := []model.Producto{}
	for _, p := range s.resultados {
		if pred(p) {
			filtrados = append(filtrados, p)
		}
	}
	s.resultados = filtrados
	s.disponibles = append(s.disponibles[:idx], s.disponibles[idx+1:]...)
	s.usados = append(s.usados, criterio)
	return nil
}

func predicado(criterio Criterio, valor string) (func(model.Producto) bool, error) {
	switch criterio {
	case CriterioID:
		id, err := strconv.Atoi(valor)
		if err != nil {
			return nil, fmt.Errorf("id inválido: %q", valor)
		}
		return func(p model.Producto) bool { return p.ID == id }, nil
	case CriterioNombre:
		return func(p model.Producto) bool { return p.Nombre == valor }, nil
	case CriterioCapacidad:
		capacidad, err := model.ParseCapacidad(valor)
		if err != nil {
			return nil, err
		}
		return func(p model.Producto) bool { return p.Capacidad == capacidad }, nil
	case CriterioPrecio:
		precio, err := decimal.NewFromString(valor)
		if err != nil {
			return nil, fmt.Errorf("precio inválido: %q", valor)
		}
		return func(p model.Producto) bool { return p.Precio.Equal(precio) }, nil
	case CriterioCategoria:
		categoria, err := model.ParseCategoria(valor)
		if err != nil {
			return nil, err
		}
		return func(p model.Producto) bool { return p.Categoria == categoria }, nil
	default:
		return nil, fmt.Errorf("criterio desconocido: %q", criterio)
	}
}

// Paginar splits items into fixed-size pages; the last page may be short.
// An empty input yields no pages.
func Paginar[T any](items []T, pageSize int) [][]T {
	if pageSize <= 0 {
		pageSize = 5
	}
	paginas := [][]T{}
	for i := 0; i < len(items); i += pageSize {
		fin := i + pageSize
		if fin > len(items) {
			fin = len(items)
		}
		paginas = append(paginas, items[i:fin])
	}
	return paginas
}

// BusquedaService creates search sessions over the current catalog and
// records the action once a session ends.
type BusquedaService interface {
	NuevaSesion() (*SesionBusqueda, error)
	Finalizar() error
}

type busquedaService struct {
	productoRepo repository.ProductoRepository
	historial    repository.HistorialRepository
}

func NewBusquedaService(
	productoRepo repository.ProductoRepository,
	historial repository.HistorialRepository,
) BusquedaService {
	return &busquedaService{productoRepo: productoRepo, historial: historial}
}

func (s *busquedaService) NuevaSesion() (*SesionBusqueda, error) {
	productos, err := s.productoRepo.Load()
	if err != nil {
		return nil, err
	}
	return NuevaSesion(productos), nil
}

func (s *busquedaService) Finalizar() error {
	if err := s.historial.Registrar("buscar_producto"); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el historial")
		return err
	}
	return nil
}
