// Command seeddata writes a small demo dataset (catalog + stock) so the
// application can be exercised without typing everything in by hand.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/thrimos616/TPO-AyED1-2025/internal/config"
	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
	"github.com/thrimos616/TPO-AyED1-2025/internal/repository"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuración")
	}

	productos := []model.Producto{
		{ID: 1, Nombre: "Latex Interior", Capacidad: "10L", Categoria: model.CategoriaPintura, Precio: decimal.NewFromInt(5000)},
		{ID: 2, Nombre: "Latex Exterior", Capacidad: "20L", Categoria: model.CategoriaPintura, Precio: decimal.NewFromInt(9500)},
		{ID: 3, Nombre: "Barniz Marino", Capacidad: "1L", Categoria: model.CategoriaProtector, Precio: decimal.NewFromInt(2200)},
		{ID: 4, Nombre: "Fijador Al Agua", Capacidad: "5L", Categoria: model.CategoriaFijador, Precio: decimal.NewFromInt(3100)},
		{ID: 5, Nombre: "Membrana Liquida", Capacidad: "20kg", Categoria: model.CategoriaImpermeabilizante, Precio: decimal.NewFromInt(12800)},
	}

	stock := model.StockData{
		Stock: []model.CargaStock{
			{ID: 1, Tipo: "Latex Interior", Capacidad: "10L", Cantidad: 24, Categoria: model.CategoriaPintura},
			{ID: 2, Tipo: "Latex Exterior", Capacidad: "20L", Cantidad: 8, Categoria: model.CategoriaPintura},
			{ID: 3, Tipo: "Barniz Marino", Capacidad: "1L", Cantidad: 3, Categoria: model.CategoriaProtector},
			{ID: 4, Tipo: "Fijador Al Agua", Capacidad: "5L", Cantidad: 15, Categoria: model.CategoriaFijador},
			{ID: 5, Tipo: "Membrana Liquida", Capacidad: "20kg", Cantidad: 6, Categoria: model.CategoriaImpermeabilizante},
		},
		Umbrales: map[string]int{
			"Latex Interior":   5,
			"Latex Exterior":   4,
			"Barniz Marino":    5,
			"Fijador Al Agua":  3,
			"Membrana Liquida": 2,
		},
	}

	if err := repository.NewProductoRepository(cfg.ProductosPath()).Save(productos); err != nil {
		log.Fatal().Err(err).Msg("no se pudo escribir el catálogo")
	}
	if err := repository.NewStockRepository(cfg.StockPath()).Save(stock); err != nil {
		log.Fatal().Err(err).Msg("no se pudo escribir el stock")
	}

	log.Info().
		Int("productos", len(productos)).
		Int("cargas", len(stock.Stock)).
		Msg("datos de ejemplo generados")
}
