package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/thrimos616/TPO-AyED1-2025/internal/apperror"
	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
)

var ventasHeader = []string{
	"id_venta", "fecha_y_hora", "id_producto", "nombre_producto",
	"categoria", "cantidad", "precio_unitario", "total", "metodo_pago",
}

// VentaRepository defines the data access contract for the sales log.
// The log is append-only: sales are never mutated or deleted.
type VentaRepository interface {
	Append(v model.Venta) error
	Load() ([]model.Venta, error)
	// NextID scans the log for its last numeric id and returns last+1
	// (1 when the log is empty or missing).
	NextID() (int, error)
}

type ventaRepo struct {
	path     string
	validate *validator.Validate
}

func NewVentaRepository(path string) VentaRepository {
	return &ventaRepo{path: path, validate: validator.New()}
}

func (r *ventaRepo) Append(v model.Venta) error {
	info, statErr := os.Stat(r.path)
	nuevo := os.IsNotExist(statErr) || (statErr == nil && info.Size() == 0)

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("abrir ventas: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if nuevo {
		if err := w.Write(ventasHeader); err != nil {
			return fmt.Errorf("registrar venta: %w", err)
		}
	}
	row := []string{
		strconv.Itoa(v.ID),
		v.Fecha.Format(model.FechaVentaLayout),
		strconv.Itoa(v.ProductoID),
		v.NombreProducto,
		string(v.Categoria),
		strconv.Itoa(v.Cantidad),
		v.PrecioUnitario.String(),
		v.Total.StringFixed(2),
		string(v.MetodoPago),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("registrar venta: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (r *ventaRepo) Load() ([]model.Venta, error) {
	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return []model.Venta{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("abrir ventas: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer ventas: %w", err)
	}

	ventas := []model.Venta{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		v, err := parseVenta(row)
		if err != nil {
			log.Debug().Err(err).Int("fila", i+1).Msg("fila de ventas descartada")
			continue
		}
		if err := r.validate.Struct(v); err != nil {
			log.Warn().Err(apperror.DesdeValidacion(err)).Int("fila", i+1).Msg("venta inválida descartada")
			continue
		}
		ventas = append(ventas, v)
	}
	return ventas, nil
}

func parseVenta(row []string) (model.Venta, error) {
	if len(row) != len(ventasHeader) {
		return model.Venta{}, fmt.Errorf("cantidad de campos: %d", len(row))
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return model.Venta{}, fmt.Errorf("id_venta: %w", err)
	}
	fecha, err := time.Parse(model.FechaVentaLayout, row[1])
	if err != nil {
		return model.Venta{}, fmt.Errorf("fecha_y_hora: %w", err)
	}
	productoID, err := strconv.Atoi(row[2])
	if err != nil {
		return model.Venta{}, fmt.Errorf("id_producto: %w", err)
	}
	cantidad, err := strconv.Atoi(row[5])
	if err != nil {
		return model.Venta{}, fmt.Errorf("cantidad: %w", err)
	}
	precio, err := decimal.NewFromString(row[6])
	if err != nil {
		return model.Venta{}, fmt.Errorf("precio_unitario: %w", err)
	}
	total, err := decimal.NewFromString(row[7])
	if err != nil {
		return model.Venta{}, fmt.Errorf("total: %w", err)
	}
	return model.Venta{
		ID:             id,
		Fecha:          fecha,
		ProductoID:     productoID,
		NombreProducto: row[3],
		Categoria:      model.Categoria(row[4]),
		Cantidad:       cantidad,
		PrecioUnitario: precio,
		Total:          total,
		MetodoPago:     model.MetodoPago(row[8]),
	}, nil
}

func (r *ventaRepo) NextID() (int, error) {
	ventas, err := r.Load()
	if err != nil {
		return 0, err
	}
	ultimo := 0
	for _, v := range ventas {
		if v.ID > ultimo {
			ultimo = v.ID
		}
	}
	return ultimo + 1, nil
}
