package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/thrimos616/TPO-AyED1-2025/internal/dto"
	"github.com/thrimos616/TPO-AyED1-2025/internal/infra"
	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
	"github.com/thrimos616/TPO-AyED1-2025/internal/repository"
)

// ReporteService aggregates the sales log and exports ledger snapshots.
type ReporteService interface {
	ResumenVentas() (*dto.ResumenVentas, error)
	// ExportarStockCSV writes the current ledger to path as CSV.
	ExportarStockCSV(path string) error
	// ExportarStockBajoPDF renders the low-stock report to a PDF file.
	ExportarStockBajoPDF(path string) error
	// Historial returns the recorded action log, oldest first, one line per
	// entry as written to disk.
	Historial() ([]string, error)
}

type reporteService struct {
	ventaRepo repository.VentaRepository
	stock     StockService
	stockRepo repository.StockRepository
	historial repository.HistorialRepository
}

func NewReporteService(
	ventaRepo repository.VentaRepository,
	stock StockService,
	stockRepo repository.StockRepository,
	historial repository.HistorialRepository,
) ReporteService {
	return &reporteService{
		ventaRepo: ventaRepo,
		stock:     stock,
		stockRepo: stockRepo,
		historial: historial,
	}
}

func (s *reporteService) ResumenVentas() (*dto.ResumenVentas, error) {
	ventas, err := s.ventaRepo.Load()
	if err != nil {
		return nil, err
	}

	resumen := &dto.ResumenVentas{
		IngresoTotal:  decimal.Zero,
		PorCategoria:  map[model.Categoria]dto.TotalGrupo{},
		PorMetodoPago: map[model.MetodoPago]dto.TotalGrupo{},
	}
	for _, v := range ventas {
		resumen.CantidadVentas++
		resumen.UnidadesTotales += v.Cantidad
		resumen.IngresoTotal = resumen.IngresoTotal.Add(v.Total)

		cat := resumen.PorCategoria[v.Categoria]
		cat.Unidades += v.Cantidad
		cat.Ingreso = cat.Ingreso.Add(v.Total)
		resumen.PorCategoria[v.Categoria] = cat

		pago := resumen.PorMetodoPago[v.MetodoPago]
		pago.Unidades += v.Cantidad
		pago.Ingreso = pago.Ingreso.Add(v.Total)
		resumen.PorMetodoPago[v.MetodoPago] = pago
	}

	if err := s.historial.Registrar("mostrar_reportes"); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el historial")
	}
	return resumen, nil
}

func (s *reporteService) ExportarStockCSV(path string) error {
	data, err := s.stockRepo.Load()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("exportar stock: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "tipo", "capacidad", "cantidad", "categoria", "umbral"}); err != nil {
		return fmt.Errorf("exportar stock: %w", err)
	}
	for _, c := range data.Stock {
		umbral := ""
		if u, ok := data.Umbrales[c.Tipo]; ok {
			umbral = strconv.Itoa(u)
		}
		row := []string{
			strconv.Itoa(c.ID),
			c.Tipo,
			string(c.Capacidad),
			strconv.Itoa(c.Cantidad),
			string(c.Categoria),
			umbral,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("exportar stock: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("exportar stock: %w", err)
	}

	if err := s.historial.Registrar("exportar_csv"); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el historial")
	}
	return nil
}

func (s *reporteService) ExportarStockBajoPDF(path string) error {
	bajas, err := s.stock.StockBajo()
	if err != nil {
		return err
	}

	filas := make([]infra.FilaStockBajo, 0, len(bajas))
	for _, b := range bajas {
		filas = append(filas, infra.FilaStockBajo{
			Tipo:      b.Carga.Tipo,
			Capacidad: string(b.Carga.Capacidad),
			Cantidad:  b.Carga.Cantidad,
			Umbral:    b.Umbral,
		})
	}
	if err := infra.GenerarStockBajoPDF(filas, path); err != nil {
		return err
	}

	if err := s.historial.Registrar("exportar_pdf"); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar el historial")
	}
	return nil
}

// Viewing the historial is not itself recorded: the viewer would otherwise
// grow the file it displays.
func (s *reporteService) Historial() ([]string, error) {
	return s.historial.Load()
}
