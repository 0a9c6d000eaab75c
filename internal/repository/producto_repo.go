package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/thrimos616/TPO-AyED1-2025/internal/apperror"
	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
)

// productosHeader is the first line of the catalog file.
var productosHeader = []string{"id", "nombre", "capacidad", "categoria", "precio"}

// ProductoRepository defines the data access contract for the product catalog.
// Services depend on this interface, not on the concrete CSV implementation,
// enabling clean unit testing via in-memory stubs.
type ProductoRepository interface {
	Load() ([]model.Producto, error)
	Save(productos []model.Producto) error
}

type productoRepo struct {
	path     string
	validate *validator.Validate
}

func NewProductoRepository(path string) ProductoRepository {
	return &productoRepo{path: path, validate: validator.New()}
}

// Load reads the whole catalog. A missing file means an empty catalog, never
// an error. Rows with the wrong field count or unparseable values are
// skipped, matching the historical tolerance for hand-edited files.
func (r *productoRepo) Load() ([]model.Producto, error) {
	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return []model.Producto{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("abrir catálogo: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer catálogo: %w", err)
	}

	productos := []model.Producto{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		p, err := parseProducto(row)
		if err != nil {
			log.Debug().Err(err).Int("fila", i+1).Msg("fila de catálogo descartada")
			continue
		}
		if err := r.validate.Struct(p); err != nil {
			log.Warn().Err(apperror.DesdeValidacion(err)).Int("fila", i+1).Msg("producto inválido descartado")
			continue
		}
		productos = append(productos, p)
	}
	return productos, nil
}

func parseProducto(row []string) (model.Producto, error) {
	if len(row) != len(productosHeader) {
		return model.Producto{}, fmt.Errorf("cantidad de campos: %d", len(row))
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return model.Producto{}, fmt.Errorf("id: %w", err)
	}
	precio, err := decimal.NewFromString(row[4])
	if err != nil {
		return model.Producto{}, fmt.Errorf("precio: %w", err)
	}
	return model.Producto{
		ID:        id,
		Nombre:    row[1],
		Capacidad: model.Capacidad(row[2]),
		Categoria: model.Categoria(row[3]),
		Precio:    precio,
	}, nil
}

// Save overwrites the whole catalog file. The write goes to a temp file in
// the same directory first, then renames over the target, so a failed write
// never truncates existing data.
func (r *productoRepo) Save(productos []model.Producto) error {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".productos-*.csv")
	if err != nil {
		return fmt.Errorf("guardar catálogo: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(productosHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("guardar catálogo: %w", err)
	}
	for _, p := range productos {
		row := []string{
			strconv.Itoa(p.ID),
			p.Nombre,
			string(p.Capacidad),
			string(p.Categoria),
			p.Precio.String(),
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("guardar catálogo: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("guardar catálogo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("guardar catálogo: %w", err)
	}
	return os.Rename(tmp.Name(), r.path)
}
