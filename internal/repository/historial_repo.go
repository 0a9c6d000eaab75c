package repository

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

// descripciones maps action names to the static line recorded in the history
// file. Unknown actions fall back to a generic description.
var descripciones = map[string]string{
	"agregar_producto":   "Se agregó un producto al catálogo",
	"modificar_producto": "Se modificó un producto del catálogo",
	"eliminar_producto":  "Se eliminó un producto y sus cargas de stock",
	"buscar_producto":    "Se realizó una búsqueda de productos",
	"agregar_carga":      "Se agregó una carga al stock",
	"modificar_carga":    "Se modificó una carga del stock",
	"eliminar_carga":     "Se eliminó una carga del stock",
	"stock_bajo":         "Se consultó el listado de stock bajo",
	"registrar_venta":    "Se registró una venta",
	"mostrar_reportes":   "Se consultaron los reportes de ventas",
	"exportar_csv":       "Se exportó el stock a CSV",
	"exportar_pdf":       "Se exportó el reporte de stock bajo a PDF",
}

// HistorialRepository records one human-readable line per user action in an
// append-only text file: `[YYYY-MM-DD HH:MM:SS] <descripción>`.
type HistorialRepository interface {
	Registrar(accion string) error
	Load() ([]string, error)
}

type historialRepo struct {
	path  string
	ahora func() time.Time
}

func NewHistorialRepository(path string) HistorialRepository {
	return &historialRepo{path: path, ahora: time.Now}
}

func (r *historialRepo) Registrar(accion string) error {
	desc, ok := descripciones[accion]
	if !ok {
		desc = fmt.Sprintf("Se realizó la acción: %s", accion)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("abrir historial: %w", err)
	}
	defer f.Close()

	linea := fmt.Sprintf("[%s] %s\n", r.ahora().Format("2006-01-02 15:04:05"), desc)
	if _, err := f.WriteString(linea); err != nil {
		return fmt.Errorf("registrar historial: %w", err)
	}
	return nil
}

func (r *historialRepo) Load() ([]string, error) {
	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("abrir historial: %w", err)
	}
	defer f.Close()

	lineas := []string{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineas = append(lineas, sc.Text())
	}
	return lineas, sc.Err()
}
