package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
)

func catalogoDePrueba() []model.Producto {
	return []model.Producto{
		{ID: 1, Nombre: "Latex Interior", Capacidad: "10L", Categoria: model.CategoriaPintura, Precio: decimal.NewFromInt(5000)},
		{ID: 2, Nombre: "Latex Exterior", Capacidad: "20L", Categoria: model.CategoriaPintura, Precio: decimal.NewFromInt(9500)},
		{ID: 3, Nombre: "Barniz Marino", Capacidad: "10L", Categoria: model.CategoriaProtector, Precio: decimal.NewFromInt(5000)},
		{ID: 4, Nombre: "Fijador Al Agua", Capacidad: "5L", Categoria: model.CategoriaFijador, Precio: decimal.NewFromInt(3100)},
	}
}

func TestAplicarConsumeElCriterio(t *testing.T) {
	s := NuevaSesion(catalogoDePrueba())
	require.Len(t, s.Disponibles(), 5)

	require.NoError(t, s.Aplicar(CriterioCategoria, "Pintura"))
	assert.Len(t, s.Resultados(), 2)
	assert.Equal(t, []Criterio{CriterioCategoria}, s.Usados())
	assert.NotContains(t, s.Disponibles(), CriterioCategoria)

	// Un criterio no puede aplicarse dos veces en la misma sesión.
	err := s.Aplicar(CriterioCategoria, "Protector")
	assert.Error(t, err)
	assert.Len(t, s.Resultados(), 2, "el working set no cambia")
}

func TestFiltrosConmutan(t *testing.T) {
	a := NuevaSesion(catalogoDePrueba())
	require.NoError(t, a.Aplicar(CriterioCapacidad, "10L"))
	require.NoError(t, a.Aplicar(CriterioPrecio, "5000"))

	b := NuevaSesion(catalogoDePrueba())
	require.NoError(t, b.Aplicar(CriterioPrecio, "5000"))
	require.NoError(t, b.Aplicar(CriterioCapacidad, "10L"))

	assert.Equal(t, a.Resultados(), b.Resultados())
	require.Len(t, a.Resultados(), 2)
}

func TestFiltroPorNombreEsExacto(t *testing.T) {
	s := NuevaSesion(catalogoDePrueba())
	require.NoError(t, s.Aplicar(CriterioNombre, "latex interior"))
	assert.Empty(t, s.Resultados(), "la igualdad respeta mayúsculas tal como se almacenó")
}

func TestSesionAgotada(t *testing.T) {
	s := NuevaSesion(catalogoDePrueba())
	require.NoError(t, s.Aplicar(CriterioID, "1"))
	require.Len(t, s.Resultados(), 1)
	assert.False(t, s.Agotada())

	require.NoError(t, s.Aplicar(CriterioNombre, "Latex Exterior"))
	assert.Empty(t, s.Resultados())
	assert.True(t, s.Agotada(), "resultado vacío agota la sesión")

	s2 := NuevaSesion(catalogoDePrueba())
	for _, c := range CriteriosBusqueda() {
		_ = s2.Aplicar(c, valorNeutro(c))
	}
	assert.True(t, s2.Agotada(), "sin criterios restantes la sesión termina")
}

func valorNeutro(c Criterio) string {
	switch c {
	case CriterioID:
		return "1"
	case CriterioNombre:
		return "Latex Interior"
	case CriterioCapacidad:
		return "10L"
	case CriterioPrecio:
		return "5000"
	default:
		return "Pintura"
	}
}

func TestAplicarValorInvalidoNoConsume(t *testing.T) {
	s := NuevaSesion(catalogoDePrueba())
	assert.Error(t, s.Aplicar(CriterioID, "abc"))
	assert.Len(t, s.Disponibles(), 5, "el criterio sigue disponible para reintentar")
	assert.Len(t, s.Resultados(), 4)
}

func TestPaginar(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i + 1
	}

	paginas := Paginar(items, 5)
	require.Len(t, paginas, 3, "ceil(12/5) páginas")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, paginas[0])
	assert.Equal(t, []int{6, 7, 8, 9, 10}, paginas[1])
	assert.Equal(t, []int{11, 12}, paginas[2])

	assert.Empty(t, Paginar([]int{}, 5))
	assert.Len(t, Paginar(items[:5], 5), 1)
}
