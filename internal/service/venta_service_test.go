package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thrimos616/TPO-AyED1-2025/internal/apperror"
	"github.com/thrimos616/TPO-AyED1-2025/internal/dto"
	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
)

func nuevoVentaService() (VentaService, *stubVentaRepo, *stubStockRepo) {
	productoRepo := &stubProductoRepo{productos: []model.Producto{
		{ID: 1, Nombre: "Latex Interior", Capacidad: "10L", Categoria: model.CategoriaPintura, Precio: decimal.RequireFromString("5000")},
	}}
	stockRepo := newStubStockRepo()
	stockRepo.data.Stock = []model.CargaStock{
		{ID: 1, Tipo: "Latex Interior", Capacidad: "10L", Cantidad: 20, Categoria: model.CategoriaPintura},
	}
	stockRepo.data.Umbrales = map[string]int{"Latex Interior": 5}
	ventaRepo := &stubVentaRepo{}
	svc := NewVentaService(ventaRepo, stockRepo, productoRepo, &stubHistorialRepo{})
	return svc, ventaRepo, stockRepo
}

func TestRegistrarVentaDescuentaStock(t *testing.T) {
	svc, ventaRepo, stockRepo := nuevoVentaService()

	venta, err := svc.RegistrarVenta(dto.RegistrarVentaRequest{
		ProductoID: 1, CargaID: 1, Cantidad: 15, MetodoPago: model.PagoEfectivo,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, venta.ID)
	assert.Equal(t, "Latex Interior", venta.NombreProducto)
	assert.True(t, venta.Total.Equal(decimal.RequireFromString("75000")),
		"total = precio × cantidad, fue %s", venta.Total)
	assert.Equal(t, 5, stockRepo.data.Stock[0].Cantidad)
	assert.Len(t, ventaRepo.ventas, 1)
}

func TestRegistrarVentaRechazaCantidadMayorAlStock(t *testing.T) {
	svc, ventaRepo, stockRepo := nuevoVentaService()

	_, err := svc.RegistrarVenta(dto.RegistrarVentaRequest{
		ProductoID: 1, CargaID: 1, Cantidad: 21, MetodoPago: model.PagoEfectivo,
	})
	assert.ErrorIs(t, err, apperror.ErrStockInsuficiente)
	assert.Equal(t, 20, stockRepo.data.Stock[0].Cantidad, "sin cambios de estado")
	assert.Empty(t, ventaRepo.ventas)
}

func TestRegistrarVentaCargaInexistente(t *testing.T) {
	svc, _, _ := nuevoVentaService()
	_, err := svc.RegistrarVenta(dto.RegistrarVentaRequest{
		ProductoID: 1, CargaID: 9, Cantidad: 1, MetodoPago: model.PagoDebito,
	})
	assert.ErrorIs(t, err, apperror.ErrNoEncontrado)
}

func TestRegistrarVentaCargaDeOtroProducto(t *testing.T) {
	svc, _, stockRepo := nuevoVentaService()
	stockRepo.data.Stock = append(stockRepo.data.Stock,
		model.CargaStock{ID: 2, Tipo: "Barniz", Capacidad: "1L", Cantidad: 5})

	_, err := svc.RegistrarVenta(dto.RegistrarVentaRequest{
		ProductoID: 1, CargaID: 2, Cantidad: 1, MetodoPago: model.PagoEfectivo,
	})
	assert.Error(t, err)
}

func TestVentaIDIncrementaSegunUltimo(t *testing.T) {
	svc, ventaRepo, _ := nuevoVentaService()
	ventaRepo.ventas = []model.Venta{{ID: 7}}

	venta, err := svc.RegistrarVenta(dto.RegistrarVentaRequest{
		ProductoID: 1, CargaID: 1, Cantidad: 1, MetodoPago: model.PagoTransferencia,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, venta.ID)
}

func TestTotalRedondeadoADosDecimales(t *testing.T) {
	productoRepo := &stubProductoRepo{productos: []model.Producto{
		{ID: 1, Nombre: "Latex", Capacidad: "1L", Categoria: model.CategoriaPintura,
			Precio: decimal.RequireFromString("33.335")},
	}}
	stockRepo := newStubStockRepo()
	stockRepo.data.Stock = []model.CargaStock{{ID: 1, Tipo: "Latex", Capacidad: "1L", Cantidad: 10}}
	svc := NewVentaService(&stubVentaRepo{}, stockRepo, productoRepo, &stubHistorialRepo{})

	venta, err := svc.RegistrarVenta(dto.RegistrarVentaRequest{
		ProductoID: 1, CargaID: 1, Cantidad: 3, MetodoPago: model.PagoEfectivo,
	})
	require.NoError(t, err)
	assert.Equal(t, "100.01", venta.Total.StringFixed(2))
}
