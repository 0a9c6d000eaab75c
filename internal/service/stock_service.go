package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/thrimos616/TPO-AyED1-2025/internal/apperror"
	"github.com/thrimos616/TPO-AyED1-2025/internal/dto"
	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
	"github.com/thrimos616/TPO-AyED1-2025/internal/repository"
)

// StockService defines the business logic contract for the stock ledger and
// its thresholds.
type StockService interface {
	// AgregarCarga creates a new carga for an existing product. Re-stocking
	// never increments an existing carga. When the product type has no
	// umbral yet, req.Umbral seeds it (lazy creation).
	AgregarCarga(req dto.AgregarCargaRequest) (*model.CargaStock, error)
	ModificarCarga(req dto.ModificarCargaRequest) (*model.CargaStock, error)
	EliminarCarga(cargaID int) error
	Listar() ([]model.CargaStock, error)
	// TieneUmbral reports whether the product type already has a threshold,
	// so the caller knows whether to prompt for one.
	TieneUmbral(productoID int) (bool, error)
	// StockBajo returns the cargas whose tipo has an umbral and whose
	// cantidad is at or below it. Cargas without an umbral are never low.
	StockBajo() ([]CargaBaja, error)
}

// CargaBaja pairs a low carga with the threshold it violated.
type CargaBaja struct {
	Carga  model.CargaStock
	Umbral int
}

type stockService struct {
	repo         repository.StockRepository
	productoRepo repository.ProductoRepository
	historial    repository.HistorialRepository
}

func NewStockService(
	repo repository.StockRepository,
	productoRepo repository.ProductoRepository,
	historial repository.HistorialRepository,
) StockService {
	return &stockService{repo: repo, productoRepo: productoRepo, historial: historial}
}

func (s *stockService) buscarProducto(id int) (*model.Producto, error) {
	productos, err := s.productoRepo.Load()
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

func (s *stockService) TieneUmbral(productoID int) (bool, error) {
	p, err := s.buscarProducto(productoID)
	if err != nil {
		return false, err
	}
	data, err := s.repo.Load()
	if err != nil {
		return false, err
	}
	_, ok := data.Umbrales[p.Nombre]
	return ok, nil
}

func (s *stockService) AgregarCarga(req dto.AgregarCargaRequest) (*model.CargaStock, error) {
	p, err := s.buscarProducto(req.ProductoID)
	if err != nil {
		return nil, err
	}
	if req.Cantidad < 0 {
		return nil, fmt.Errorf("la cantidad no puede ser negativa")
	}

	data, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	carga := model.CargaStock{
		ID:        siguienteIDCarga(data.Stock),
		Tipo:      p.Nombre,
		Capacidad: p.Capacidad,
		Cantidad:  req.Cantidad,
		Categoria: p.Categoria,
	}
	data.Stock = append(data.Stock, carga)

	if _, ok := data.Umbrales[p.Nombre]; !ok {
		if req.Umbral <= 0 {
			return nil, fmt.Errorf("el tipo %q no tiene umbral: se requiere un umbral positivo", p.Nombre)
		}
		data.Umbrales[p.Nombre] = req.Umbral
	}

	if err := s.repo.Save(data); err != nil {
		return nil, err
	}
	if err := s.historial.Registrar("agregar_carga"); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el historial")
	}
	return &carga, nil
}

// siguienteIDCarga assigns max(existing)+1 over the carga id namespace,
// which is independent from product ids.
func siguienteIDCarga(cargas []model.CargaStock) int {
	max := 0
	for _, c := range cargas {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func (s *stockService) ModificarCarga(req dto.ModificarCargaRequest) (*model.CargaStock, error) {
	if req.Cantidad < 0 {
		return nil, fmt.Errorf("la cantidad no puede ser negativa")
	}
	data, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	for i := range data.Stock {
		if data.Stock[i].ID == req.CargaID {
			data.Stock[i].Cantidad = req.Cantidad
			if err := s.repo.Save(data); err != nil {
				return nil, err
			}
			if err := s.historial.Registrar("modificar_carga"); err != nil {
				log.Warn().Err(err).Msg("no se pudo registrar el historial")
			}
			return &data.Stock[i], nil
		}
	}
	return nil, apperror.NoEncontrado("carga", req.CargaID)
}

func (s *stockService) EliminarCarga(cargaID int) error {
	data, err := s.repo.Load()
	if err != nil {
		return err
	}
	idx := -1
	for i := range data.Stock {
		if data.Stock[i].ID == cargaID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperror.NoEncontrado("carga", cargaID)
	}
	data.Stock = append(data.Stock[:idx], data.Stock[idx+1:]...)
	if err := s.repo.Save(data); err != nil {
		return err
	}
	if err := s.historial.Registrar("eliminar_carga"); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el historial")
	}
	return nil
}

func (s *stockService) Listar() ([]model.CargaStock, error) {
	data, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	return data.Stock, nil
}

func (s *stockService) StockBajo() ([]CargaBaja, error) {
	data, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	bajas := []CargaBaja{}
	for _, c := range data.Stock {
		umbral, ok := data.Umbrales[c.Tipo]
		if !ok {
			continue // sin umbral: nunca se considera baja
		}
		if c.Cantidad <= umbral {
			bajas = append(bajas, CargaBaja{Carga: c, Umbral: umbral})
		}
	}
	if err := s.historial.Registrar("stock_bajo"); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el historial")
	}
	return bajas, nil
}
