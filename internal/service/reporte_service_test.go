package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoReporteServiceDePrueba(historial *stubHistorialRepo) ReporteService {
	stockRepo := newStubStockRepo()
	productoRepo := &stubProductoRepo{}
	stock := NewStockService(stockRepo, productoRepo, historial)
	return NewReporteService(&stubVentaRepo{}, stock, stockRepo, historial)
}

func TestHistorialDevuelveLasLineasRegistradas(t *testing.T) {
	historial := &stubHistorialRepo{}
	reportes := nuevoReporteServiceDePrueba(historial)

	require.NoError(t, historial.Registrar("agregar_producto"))
	require.NoError(t, historial.Registrar("registrar_venta"))

	lineas, err := reportes.Historial()
	require.NoError(t, err)
	assert.Equal(t, []string{"agregar_producto", "registrar_venta"}, lineas)
}

func TestHistorialNoSeRegistraASiMismo(t *testing.T) {
	historial := &stubHistorialRepo{}
	reportes := nuevoReporteServiceDePrueba(historial)

	_, err := reportes.Historial()
	require.NoError(t, err)
	assert.Empty(t, historial.acciones)
}
