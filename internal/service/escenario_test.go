package service

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thrimos616/TPO-AyED1-2025/internal/dto"
	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
	"github.com/thrimos616/TPO-AyED1-2025/internal/repository"
)

// End-to-end over real files: alta de producto, primera carga con umbral,
// venta que deja la carga en el umbral, y el reporte de stock bajo que la
// detecta.
func TestEscenarioCompletoConArchivos(t *testing.T) {
	dir := t.TempDir()
	productoRepo := repository.NewProductoRepository(filepath.Join(dir, "productos.csv"))
	stockRepo := repository.NewStockRepository(filepath.Join(dir, "stock_data.json"))
	ventaRepo := repository.NewVentaRepository(filepath.Join(dir, "ventas.csv"))
	historial := repository.NewHistorialRepository(filepath.Join(dir, "historial.txt"))

	productos := NewProductoService(productoRepo, stockRepo, historial)
	stock := NewStockService(stockRepo, productoRepo, historial)
	ventas := NewVentaService(ventaRepo, stockRepo, productoRepo, historial)

	// Catálogo vacío → primer producto recibe id 1.
	p, err := productos.Crear(dto.CrearProductoRequest{
		Nombre: "Latex", Capacidad: "10L", Categoria: "Pintura", Precio: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)

	// Primera carga del tipo: el umbral se crea en ese momento.
	tiene, err := stock.TieneUmbral(p.ID)
	require.NoError(t, err)
	assert.False(t, tiene, "un tipo nuevo no tiene umbral todavía")

	carga, err := stock.AgregarCarga(dto.AgregarCargaRequest{ProductoID: p.ID, Cantidad: 20, Umbral: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, carga.ID)

	// Con 20 unidades y umbral 5 no hay stock bajo.
	bajas, err := stock.StockBajo()
	require.NoError(t, err)
	assert.Empty(t, bajas)

	// Venta de 15 unidades → quedan 5 == umbral → aparece en el reporte.
	venta, err := ventas.RegistrarVenta(dto.RegistrarVentaRequest{
		ProductoID: p.ID, CargaID: carga.ID, Cantidad: 15, MetodoPago: model.PagoEfectivo,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, venta.ID)
	assert.Equal(t, "75000.00", venta.Total.StringFixed(2))

	bajas, err = stock.StockBajo()
	require.NoError(t, err)
	require.Len(t, bajas, 1)
	assert.Equal(t, 5, bajas[0].Carga.Cantidad)
	assert.Equal(t, 5, bajas[0].Umbral)

	// Todo quedó persistido: una recarga desde disco ve lo mismo.
	data, err := stockRepo.Load()
	require.NoError(t, err)
	require.Len(t, data.Stock, 1)
	assert.Equal(t, 5, data.Stock[0].Cantidad)

	registradas, err := ventaRepo.Load()
	require.NoError(t, err)
	require.Len(t, registradas, 1)
	assert.Equal(t, "Latex", registradas[0].NombreProducto)

	acciones, err := historial.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, acciones)
}
