package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/thrimos616/TPO-AyED1-2025/internal/apperror"
	"github.com/thrimos616/TPO-AyED1-2025/internal/dto"
	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
	"github.com/thrimos616/TPO-AyED1-2025/internal/repository"
)

// VentaService registers sales against the stock ledger.
type VentaService interface {
	// RegistrarVenta validates the requested quantity against the selected
	// carga, decrements it, and appends the sale to the log. A quantity
	// above the carga's on-hand units is rejected with no state change.
	RegistrarVenta(req dto.RegistrarVentaRequest) (*model.Venta, error)
	// CargasDe lists the cargas available for one product, so the caller
	// can offer them for selection.
	CargasDe(productoID int) ([]model.CargaStock, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	stockRepo    repository.StockRepository
	productoRepo repository.ProductoRepository
	historial    repository.HistorialRepository
	ahora        func() time.Time
}

func NewVentaService(
	repo repository.VentaRepository,
	stockRepo repository.StockRepository,
	productoRepo repository.ProductoRepository,
	historial repository.HistorialRepository,
) VentaService {
	return &ventaService{
		repo:         repo,
		stockRepo:    stockRepo,
		productoRepo: productoRepo,
		historial:    historial,
		ahora:        time.Now,
	}
}

func (s *ventaService) CargasDe(productoID int) ([]model.CargaStock, error) {
	p, err := s.buscarProducto(productoID)
	if err != nil {
		return nil, err
	}
	data, err := s.stockRepo.Load()
	if err != nil {
		return nil, err
	}
	cargas := []model.CargaStock{}
	for _, c := range data.Stock {
		if c.Tipo == p.Nombre {
			cargas = append(cargas, c)
		}
	}
	return cargas, nil
}

func (s *ventaService) buscarProducto(id int) (*model.Producto, error) {
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

func (s *ventaService) RegistrarVenta(req dto.RegistrarVentaRequest) (*model.Venta, error) {
	if req.Cantidad <= 0 {
		return nil, fmt.Errorf("la cantidad debe ser positiva")
	}
	if !req.MetodoPago.Valida() {
		return nil, fmt.Errorf("método de pago inválido: %q", req.MetodoPago)
	}

	p, err := s.buscarProducto(req.ProductoID)
	if err != nil {
		return nil, err
	}

	data, err := s.stockRepo.Load()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range data.Stock {
		if data.Stock[i].ID == req.CargaID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperror.NoEncontrado("carga", req.CargaID)
	}
	carga := &data.Stock[idx]
	if carga.Tipo != p.Nombre {
		return nil, fmt.Errorf("la carga %d no corresponde al producto %q", req.CargaID, p.Nombre)
	}
	if req.Cantidad > carga.Cantidad {
		return nil, fmt.Errorf("%w: la carga %d tiene %d unidades y se pidieron %d",
			apperror.ErrStockInsuficiente, carga.ID, carga.Cantidad, req.Cantidad)
	}

	id, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}

	total := p.Precio.Mul(decimal.NewFromInt(int64(req.Cantidad))).Round(2)
	venta := model.Venta{
		ID:             id,
		Fecha:          s.ahora(),
		ProductoID:     p.ID,
		NombreProducto: p.Nombre,
		Categoria:      p.Categoria,
		Cantidad:       req.Cantidad,
		PrecioUnitario: p.Precio,
		Total:          total,
		MetodoPago:     req.MetodoPago,
	}

	// Decrement first, then append. If the append fails the ledger already
	// moved; memory and disk stay divergent until the next load.
	carga.Cantidad -= req.Cantidad
	if err := s.stockRepo.Save(data); err != nil {
		return nil, err
	}
	if err := s.repo.Append(venta); err != nil {
		return nil, fmt.Errorf("el stock se descontó pero la venta no pudo registrarse: %w", err)
	}

	if err := s.historial.Registrar("registrar_venta"); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el historial")
	}
	return &venta, nil
}
