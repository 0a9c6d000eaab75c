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

func nuevoProductoService() (ProductoService, *stubProductoRepo, *stubStockRepo, *stubHistorialRepo) {
	productoRepo := &stubProductoRepo{}
	stockRepo := newStubStockRepo()
	historial := &stubHistorialRepo{}
	return NewProductoService(productoRepo, stockRepo, historial), productoRepo, stockRepo, historial
}

func crearLatex(t *testing.T, svc ProductoService) *model.Producto {
	t.Helper()
	p, err := svc.Crear(dto.CrearProductoRequest{
		Nombre:    "latex interior",
		Capacidad: "10L",
		Categoria: "Pintura",
		Precio:    decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	return p
}

func TestCrearAsignaIDIncremental(t *testing.T) {
	svc, _, _, _ := nuevoProductoService()

	p1 := crearLatex(t, svc)
	assert.Equal(t, 1, p1.ID)
	assert.Equal(t, "Latex Interior", p1.Nombre, "el nombre se normaliza")

	p2, err := svc.Crear(dto.CrearProductoRequest{
		Nombre: "Barniz", Capacidad: "1L", Categoria: "Protector", Precio: decimal.NewFromInt(2000),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, p2.ID)
}

func TestIDsNoSeReutilizanTrasEliminar(t *testing.T) {
	svc, _, _, _ := nuevoProductoService()

	crearLatex(t, svc)
	p2, err := svc.Crear(dto.CrearProductoRequest{
		Nombre: "Barniz", Capacidad: "1L", Categoria: "Protector", Precio: decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(p2.ID))

	p3, err := svc.Crear(dto.CrearProductoRequest{
		Nombre: "Fijador", Capacidad: "5L", Categoria: "Fijador", Precio: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	// max(existing)+1 sobre lo que queda: {1} → 2. El id 2 vuelve a existir
	// recién cuando su dueño anterior ya no está.
	assert.Equal(t, 2, p3.ID)
}

func TestCrearRechazaValoresInvalidos(t *testing.T) {
	svc, repo, _, _ := nuevoProductoService()

	_, err := svc.Crear(dto.CrearProductoRequest{
		Nombre: "Latex", Capacidad: "3L", Categoria: "Pintura", Precio: decimal.NewFromInt(100),
	})
	assert.Error(t, err, "capacidad fuera del conjunto")

	_, err = svc.Crear(dto.CrearProductoRequest{
		Nombre: "Latex", Capacidad: "10L", Categoria: "Comida", Precio: decimal.NewFromInt(100),
	})
	assert.Error(t, err, "categoría fuera del conjunto")

	_, err = svc.Crear(dto.CrearProductoRequest{
		Nombre: "Latex", Capacidad: "10L", Categoria: "Pintura", Precio: decimal.Zero,
	})
	assert.Error(t, err, "precio no positivo")

	assert.Empty(t, repo.productos, "ningún rechazo deja estado")
}

func TestModificarProductoInexistente(t *testing.T) {
	svc, _, _, _ := nuevoProductoService()
	nombre := "Otro"
	_, err := svc.Modificar(99, dto.ModificarProductoRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, apperror.ErrNoEncontrado)
}

func TestModificarRenombraCascadaEnStock(t *testing.T) {
	svc, _, stockRepo, _ := nuevoProductoService()
	p := crearLatex(t, svc)

	stockRepo.data.Stock = []model.CargaStock{
		{ID: 1, Tipo: "Latex Interior", Capacidad: "10L", Cantidad: 20, Categoria: model.CategoriaPintura},
		{ID: 2, Tipo: "Barniz", Capacidad: "1L", Cantidad: 5, Categoria: model.CategoriaProtector},
	}
	stockRepo.data.Umbrales = map[string]int{"Latex Interior": 5, "Barniz": 2}

	nombre := "latex premium"
	_, err := svc.Modificar(p.ID, dto.ModificarProductoRequest{Nombre: &nombre})
	require.NoError(t, err)

	assert.Equal(t, "Latex Premium", stockRepo.data.Stock[0].Tipo)
	assert.Equal(t, "Barniz", stockRepo.data.Stock[1].Tipo, "otros tipos intactos")
	assert.Equal(t, 5, stockRepo.data.Umbrales["Latex Premium"])
	assert.NotContains(t, stockRepo.data.Umbrales, "Latex Interior")
}

func TestEliminarCascadaStockYUmbral(t *testing.T) {
	svc, repo, stockRepo, _ := nuevoProductoService()
	p := crearLatex(t, svc)

	stockRepo.data.Stock = []model.CargaStock{
		{ID: 1, Tipo: "Latex Interior", Capacidad: "10L", Cantidad: 20},
		{ID: 2, Tipo: "Latex Interior", Capacidad: "10L", Cantidad: 7},
		{ID: 3, Tipo: "Barniz", Capacidad: "1L", Cantidad: 5},
	}
	stockRepo.data.Umbrales = map[string]int{"Latex Interior": 5, "Barniz": 2}

	require.NoError(t, svc.Eliminar(p.ID))

	assert.Empty(t, repo.productos)
	require.Len(t, stockRepo.data.Stock, 1)
	assert.Equal(t, "Barniz", stockRepo.data.Stock[0].Tipo)
	assert.Equal(t, map[string]int{"Barniz": 2}, stockRepo.data.Umbrales)
}

func TestEliminarInexistenteSinEfectos(t *testing.T) {
	svc, repo, _, historial := nuevoProductoService()
	crearLatex(t, svc)

	err := svc.Eliminar(42)
	assert.ErrorIs(t, err, apperror.ErrNoEncontrado)
	assert.Len(t, repo.productos, 1)
	assert.NotContains(t, historial.acciones, "eliminar_producto")
}
