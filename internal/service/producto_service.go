package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thrimos616/TPO-AyED1-2025/internal/apperror"
	"github.com/thrimos616/TPO-AyED1-2025/internal/dto"
	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
	"github.com/thrimos616/TPO-AyED1-2025/internal/repository"
)

// ProductoService defines the business logic contract for the catalog.
type ProductoService interface {
	Crear(req dto.CrearProductoRequest) (*model.Producto, error)
	ObtenerPorID(id int) (*model.Producto, error)
	Listar() ([]model.Producto, error)
	Modificar(id int, req dto.ModificarProductoRequest) (*model.Producto, error)
	// Eliminar removes the product and cascades: every carga whose tipo
	// matches the product name is dropped, and so is its umbral.
	Eliminar(id int) error
}

type productoService struct {
	repo      repository.ProductoRepository
	stockRepo repository.StockRepository
	historial repository.HistorialRepository
}

func NewProductoService(
	repo repository.ProductoRepository,
	stockRepo repository.StockRepository,
	historial repository.HistorialRepository,
) ProductoService {
	return &productoService{repo: repo, stockRepo: stockRepo, historial: historial}
}

var (
	tituloES    = cases.Title(language.Spanish)
	decimalCero = decimal.Zero
)

// NormalizarNombre case-normalizes a product name ("latex interior" →
// "Latex Interior") so equality filters behave predictably.
func NormalizarNombre(nombre string) string {
	return tituloES.String(nombre)
}

func (s *productoService) Crear(req dto.CrearProductoRequest) (*model.Producto, error) {
	capacidad, err := model.ParseCapacidad(req.Capacidad)
	if err != nil {
		return nil, err
	}
	categoria, err := model.ParseCategoria(req.Categoria)
	if err != nil {
		return nil, err
	}
	if req.Precio.LessThanOrEqual(decimalCero) {
		return nil, fmt.Errorf("el precio debe ser positivo")
	}

	productos, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	p := model.Producto{
		ID:        siguienteIDProducto(productos),
		Nombre:    NormalizarNombre(req.Nombre),
		Capacidad: capacidad,
		Categoria: categoria,
		Precio:    req.Precio,
	}
	productos = append(productos, p)
	if err := s.repo.Save(productos); err != nil {
		return nil, err
	}

	if err := s.historial.Registrar("agregar_producto"); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el historial")
	}
	return &p, nil
}

// siguienteIDProducto assigns max(existing)+1. Ids below the current max are
// never reused, but deleting the record that holds the max frees that id for
// the next add.
func siguienteIDProducto(productos []model.Producto) int {
	max := 0
	for _, p := range productos {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func (s *productoService) ObtenerPorID(id int) (*model.Producto, error) {
	productos, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	for i := range productos {
		if productos[i].ID == id {
			return &productos[i], nil
		}
	}
	return nil, apperror.NoEncontrado("producto", id)
}

func (s *productoService) Listar() ([]model.Producto, error) {
	return s.repo.Load()
}

func (s *productoService) Modificar(id int, req dto.ModificarProductoRequest) (*model.Producto, error) {
	productos, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range productos {
		if productos[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperror.NoEncontrado("producto", id)
	}

	p := &productos[idx]
	nombreAnterior := p.Nombre

	if req.Nombre != nil {
		p.Nombre = NormalizarNombre(*req.Nombre)
	}
	if req.Capacidad != nil {
		capacidad, err := model.ParseCapacidad(*req.Capacidad)
		if err != nil {
			return nil, err
		}
		p.Capacidad = capacidad
	}
	if req.Categoria != nil {
		categoria, err := model.ParseCategoria(*req.Categoria)
		if err != nil {
			return nil, err
		}
		p.Categoria = categoria
	}
	if req.Precio != nil {
		if req.Precio.LessThanOrEqual(decimalCero) {
			return nil, fmt.Errorf("el precio debe ser positivo")
		}
		p.Precio = *req.Precio
	}

	if err := s.repo.Save(productos); err != nil {
		return nil, err
	}

	// A rename leaves the ledger pointing at the old name; cascade it so the
	// denormalized copies and the umbral key stay in sync.
	if p.Nombre != nombreAnterior {
		if err := s.renombrarEnStock(nombreAnterior, p.Nombre); err != nil {
			return nil, err
		}
	}

	if err := s.historial.Registrar("modificar_producto"); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el historial")
	}
	return p, nil
}

func (s *productoService) renombrarEnStock(anterior, nuevo string) error {
	data, err := s.stockRepo.Load()
	if err != nil {
		return err
	}
	cambios := false
	for i := range data.Stock {
		if data.Stock[i].Tipo == anterior {
			data.Stock[i].Tipo = nuevo
			cambios = true
		}
	}
	if umbral, ok := data.Umbrales[anterior]; ok {
		delete(data.Umbrales, anterior)
		data.Umbrales[nuevo] = umbral
		cambios = true
	}
	if !cambios {
		return nil
	}
	return s.stockRepo.Save(data)
}

func (s *productoService) Eliminar(id int) error {
	productos, err := s.repo.Load()
	if err != nil {
		return err
	}

	idx := -1
	for i := range productos {
		if productos[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperror.NoEncontrado("producto", id)
	}
	nombre := productos[idx].Nombre
	productos = append(productos[:idx], productos[idx+1:]...)

	if err := s.repo.Save(productos); err != nil {
		return err
	}

	// Cascade: cargas of the same tipo and the umbral go in the same
	// user-visible operation. The two saves are sequential, not atomic; a
	// failure here leaves the files divergent until the next load.
	data, err := s.stockRepo.Load()
	if err != nil {
		return err
	}
	restantes := data.Stock[:0]
	for _, c := range data.Stock {
		if c.Tipo != nombre {
			restantes = append(restantes, c)
		}
	}
	data.Stock = restantes
	delete(data.Umbrales, nombre)
	if err := s.stockRepo.Save(data); err != nil {
		return fmt.Errorf("el producto se eliminó pero el stock no pudo actualizarse: %w", err)
	}

	if err := s.historial.Registrar("eliminar_producto"); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el historial")
	}
	return nil
}
