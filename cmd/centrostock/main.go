package main

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thrimos616/TPO-AyED1-2025/internal/cli"
	"github.com/thrimos616/TPO-AyED1-2025/internal/config"
	"github.com/thrimos616/TPO-AyED1-2025/internal/repository"
	"github.com/thrimos616/TPO-AyED1-2025/internal/service"
)

func main() {
	// Structured diagnostics on stderr; user-facing text goes to stdout
	// through the menu. Every log line carries the session id.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Str("session", uuid.NewString()).Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuración")
	}

	productoRepo := repository.NewProductoRepository(cfg.ProductosPath())
	stockRepo := repository.NewStockRepository(cfg.StockPath())
	ventaRepo := repository.NewVentaRepository(cfg.VentasPath())
	historialRepo := repository.NewHistorialRepository(cfg.HistorialPath())

	productos := service.NewProductoService(productoRepo, stockRepo, historialRepo)
	stock := service.NewStockService(stockRepo, productoRepo, historialRepo)
	ventas := service.NewVentaService(ventaRepo, stockRepo, productoRepo, historialRepo)
	busqueda := service.NewBusquedaService(productoRepo, historialRepo)
	reportes := service.NewReporteService(ventaRepo, stock, stockRepo, historialRepo)

	menu := cli.NewMenu(cfg, os.Stdin, os.Stdout, productos, stock, ventas, busqueda, reportes)
	menu.Run()
}
