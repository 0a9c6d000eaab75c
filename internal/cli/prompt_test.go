package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeerEnteroReintentaHastaValido(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n-2\n7\n"), &out)

	assert.Equal(t, 7, p.LeerEntero("Cantidad: ", 0))
	assert.Contains(t, out.String(), "Ingrese un número entero válido.")
	assert.Contains(t, out.String(), "mayor o igual a 0")
}

func TestLeerTextoRechazaVacio(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n  \nLatex\n"), &out)

	assert.Equal(t, "Latex", p.LeerTexto("Nombre: "))
	assert.Contains(t, out.String(), "no puede estar vacío")
}

func TestLeerDecimalExigePositivo(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("hola\n0\n12.50\n"), &out)

	assert.Equal(t, "12.5", p.LeerDecimal("Precio: ").String())
	assert.Contains(t, out.String(), "Ingrese un número válido.")
	assert.Contains(t, out.String(), "debe ser positivo")
}

func TestLeerOpcionPorNumero(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("9\nx\n2\n"), &out)

	v := p.LeerOpcion("Categoría:", []string{"Pintura", "Protector", "Fijador"})
	assert.Equal(t, "Protector", v)
	assert.Contains(t, out.String(), "Opción inválida.")
}

func TestLeerConfirmacion(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("tal vez\nSi\n"), &out)
	assert.True(t, p.LeerConfirmacion("¿Confirma?"))

	p2 := NewPrompter(strings.NewReader("N\n"), &out)
	assert.False(t, p2.LeerConfirmacion("¿Confirma?"))
}

func TestPrompterEOFCortaLosReintentos(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n"), &out)

	// Entrada agotada: el lazo devuelve el mínimo en lugar de girar.
	assert.Equal(t, 1, p.LeerEntero("ID: ", 1))
	assert.True(t, p.EOF())
	assert.False(t, p.LeerConfirmacion("¿Confirma?"))
}
