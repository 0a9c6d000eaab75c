package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/thrimos616/TPO-AyED1-2025/internal/apperror"
	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
)

// StockRepository defines the data access contract for the stock ledger and
// its per-type thresholds. The two always travel together: they share one
// JSON file.
type StockRepository interface {
	Load() (model.StockData, error)
	Save(data model.StockData) error
}

type stockRepo struct {
	path     string
	validate *validator.Validate
}

func NewStockRepository(path string) StockRepository {
	return &stockRepo{path: path, validate: validator.New()}
}

// Load reads the stock file. A missing file and a corrupt file are treated
// identically: start from an empty ledger. Cargas that fail validation are
// skipped, same tolerance as the CSV stores.
func (r *stockRepo) Load() (model.StockData, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return model.NewStockData(), nil
	}
	if err != nil {
		return model.StockData{}, fmt.Errorf("abrir stock: %w", err)
	}

	var data model.StockData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Warn().Err(err).Str("archivo", r.path).Msg("stock corrupto, se parte de cero")
		return model.NewStockData(), nil
	}
	if data.Stock == nil {
		data.Stock = []model.CargaStock{}
	}
	if data.Umbrales == nil {
		data.Umbrales = map[string]int{}
	}

	validas := data.Stock[:0]
	for _, c := range data.Stock {
		if err := r.validate.Struct(c); err != nil {
			log.Warn().Err(apperror.DesdeValidacion(err)).Int("carga", c.ID).Msg("carga inválida descartada")
			continue
		}
		validas = append(validas, c)
	}
	data.Stock = validas
	return data, nil
}

// Save overwrites the stock file with 4-space indentation and non-ASCII
// characters kept literal, preserving the historical file shape.
func (r *stockRepo) Save(data model.StockData) error {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".stock-*.json")
	if err != nil {
		return fmt.Errorf("guardar stock: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		tmp.Close()
		return fmt.Errorf("guardar stock: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("guardar stock: %w", err)
	}
	return os.Rename(tmp.Name(), r.path)
}
