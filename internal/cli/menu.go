package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/thrimos616/TPO-AyED1-2025/internal/config"
	"github.com/thrimos616/TPO-AyED1-2025/internal/dto"
	"github.com/thrimos616/TPO-AyED1-2025/internal/infra"
	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
	"github.com/thrimos616/TPO-AyED1-2025/internal/service"
)

// Menu is the interactive shell: a single numbered menu loop dispatching to
// the services. It owns no business rules; every mutation happens behind a
// service interface.
type Menu struct {
	cfg      *config.Config
	prompter *Prompter
	out      io.Writer

	productos service.ProductoService
	stock     service.StockService
	ventas    service.VentaService
	busqueda  service.BusquedaService
	reportes  service.ReporteService
}

func NewMenu(
	cfg *config.Config,
	in io.Reader,
	out io.Writer,
	productos service.ProductoService,
	stock service.StockService,
	ventas service.VentaService,
	busqueda service.BusquedaService,
	reportes service.ReporteService,
) *Menu {
	return &Menu{
		cfg:       cfg,
		prompter:  NewPrompter(in, out),
		out:       out,
		productos: productos,
		stock:     stock,
		ventas:    ventas,
		busqueda:  busqueda,
		reportes:  reportes,
	}
}

type opcionMenu struct {
	clave  string
	texto  string
	accion func()
}

// Run drives the main loop until the user picks 0 or stdin closes.
func (m *Menu) Run() {
	opciones := []opcionMenu{
		{"1", "Agregar producto", m.agregarProducto},
		{"2", "Modificar producto", m.modificarProducto},
		{"3", "Eliminar producto", m.eliminarProducto},
		{"4", "Buscar producto", m.buscarProducto},
		{"5", "Listar productos", m.listarProductos},
		{"6", "Agregar carga de stock", m.agregarCarga},
		{"7", "Modificar carga de stock", m.modificarCarga},
		{"8", "Eliminar carga de stock", m.eliminarCarga},
		{"9", "Listar productos con bajo stock", m.stockBajo},
		{"10", "Registrar venta", m.registrarVenta},
		{"11", "Mostrar reportes", m.mostrarReportes},
		{"12", "Exportar stock a CSV", m.exportarCSV},
		{"13", "Exportar stock bajo a PDF", m.exportarPDF},
		{"14", "Ver historial", m.verHistorial},
	}

	for {
		fmt.Fprintln(m.out, "===== SISTEMA DE STOCK - CENTRO PINTURERIAS =====")
		for _, o := range opciones {
			fmt.Fprintf(m.out, "%s. %s\n", o.clave, o.texto)
		}
		fmt.Fprintln(m.out, "0. Salir")
		fmt.Fprintln(m.out, "=================================================")

		eleccion := m.prompter.Linea("Seleccione una opción: ")
		if m.prompter.EOF() || eleccion == "0" {
			fmt.Fprintln(m.out, "Saliendo del sistema...")
			return
		}

		encontrada := false
		for _, o := range opciones {
			if eleccion == o.clave {
				o.accion()
				encontrada = true
				break
			}
		}
		if !encontrada {
			fmt.Fprintln(m.out, "Opción inválida.")
		}
	}
}

// repetir wraps a mutating operation in an explicit repeat loop at the call
// site (no self-recursion, so long sessions cannot grow the stack).
func (m *Menu) repetir(nombre string, fn func()) {
	for {
		fn()
		if m.prompter.EOF() || !m.prompter.LeerConfirmacion("¿Desea "+nombre+" nuevamente?") {
			return
		}
	}
}

func (m *Menu) mostrarError(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

// ─── Catálogo ────────────────────────────────────────────────────────────────

func (m *Menu) agregarProducto() {
	m.repetir("agregar un producto", func() {
		req := dto.CrearProductoRequest{
			Nombre:    m.prompter.LeerTexto("Nombre del producto: "),
			Capacidad: m.prompter.LeerOpcion("Capacidad:", capacidadesComoTexto()),
			Categoria: m.prompter.LeerOpcion("Categoría:", categoriasComoTexto()),
			Precio:    m.prompter.LeerDecimal("Precio por unidad: "),
		}
		p, err := m.productos.Crear(req)
		if err != nil {
			m.mostrarError(err)
			return
		}
		fmt.Fprintf(m.out, "Producto agregado con id %d.\n", p.ID)
	})
}

func (m *Menu) modificarProducto() {
	m.repetir("modificar un producto", func() {
		id := m.prompter.LeerEntero("ID del producto a modificar: ", 1)
		if _, err := m.productos.ObtenerPorID(id); err != nil {
			m.mostrarError(err)
			return
		}

		campo := m.prompter.LeerOpcion("Campo a modificar:",
			[]string{"nombre", "capacidad", "categoria", "precio"})
		var req dto.ModificarProductoRequest
		switch campo {
		case "nombre":
			v := m.prompter.LeerTexto("Nuevo nombre: ")
			req.Nombre = &v
		case "capacidad":
			v := m.prompter.LeerOpcion("Nueva capacidad:", capacidadesComoTexto())
			req.Capacidad = &v
		case "categoria":
			v := m.prompter.LeerOpcion("Nueva categoría:", categoriasComoTexto())
			req.Categoria = &v
		case "precio":
			v := m.prompter.LeerDecimal("Nuevo precio: ")
			req.Precio = &v
		}

		if _, err := m.productos.Modificar(id, req); err != nil {
			m.mostrarError(err)
			return
		}
		fmt.Fprintln(m.out, "Producto modificado.")
	})
}

func (m *Menu) eliminarProducto() {
	m.repetir("eliminar un producto", func() {
		id := m.prompter.LeerEntero("ID del producto a eliminar: ", 1)
		p, err := m.productos.ObtenerPorID(id)
		if err != nil {
			m.mostrarError(err)
			return
		}
		if !m.prompter.LeerConfirmacion(
			fmt.Sprintf("Se eliminará %q y todas sus cargas de stock. ¿Confirma?", p.Nombre)) {
			fmt.Fprintln(m.out, "Operación cancelada.")
			return
		}
		if err := m.productos.Eliminar(id); err != nil {
			m.mostrarError(err)
			return
		}
		fmt.Fprintln(m.out, "Producto eliminado.")
	})
}

func (m *Menu) listarProductos() {
	productos, err := m.productos.Listar()
	if err != nil {
		m.mostrarError(err)
		return
	}
	if len(productos) == 0 {
		fmt.Fprintln(m.out, "No hay productos en el catálogo.")
		return
	}
	m.paginarProductos(productos)
}

func (m *Menu) paginarProductos(productos []model.Producto) {
	paginas := service.Paginar(productos, m.cfg.PageSize)
	for i, pag := range paginas {
		if err := RenderProductos(m.out, pag); err != nil {
			log.Warn().Err(err).Msg("error al renderizar la tabla")
		}
		fmt.Fprintf(m.out, "Página %d de %d (%d resultados)\n", i+1, len(paginas), len(productos))
		if i < len(paginas)-1 {
			m.prompter.Linea("Presione Enter para ver la siguiente página...")
			if m.prompter.EOF() {
				return
			}
		}
	}
}

// ─── Búsqueda ────────────────────────────────────────────────────────────────

type continuacion int

const (
	agregarFiltro continuacion = iota
	irAlFinal
)

func (m *Menu) buscarProducto() {
	for {
		sesion, err := m.busqueda.NuevaSesion()
		if err != nil {
			m.mostrarError(err)
			return
		}

		m.ejecutarBusqueda(sesion)
		if err := m.busqueda.Finalizar(); err != nil {
			log.Warn().Err(err).Msg("no se pudo registrar la búsqueda")
		}

		// Menú final: volver o empezar de cero con todos los criterios.
		resp := m.prompter.LeerOpcion("¿Qué desea hacer?",
			[]string{"Volver al menú principal", "Iniciar una nueva búsqueda"})
		if m.prompter.EOF() || resp == "Volver al menú principal" {
			return
		}
	}
}

func (m *Menu) ejecutarBusqueda(sesion *service.SesionBusqueda) {
	for !sesion.Agotada() && !m.prompter.EOF() {
		criterio, salir := m.elegirCriterio(sesion)
		if salir {
			return
		}

		valor := m.leerValorCriterio(criterio)
		if err := sesion.Aplicar(criterio, valor); err != nil {
			m.mostrarError(err)
			continue
		}

		if len(sesion.Resultados()) == 0 {
			fmt.Fprintln(m.out, "No se encontraron productos que coincidan con la búsqueda.")
			return
		}

		if m.paginarBusqueda(sesion) == irAlFinal {
			return
		}
		// agregarFiltro: vuelve a ofrecer los criterios restantes sin
		// resetear los resultados.
	}
}

func (m *Menu) elegirCriterio(sesion *service.SesionBusqueda) (service.Criterio, bool) {
	disponibles := sesion.Disponibles()
	opciones := make([]string, 0, len(disponibles)+1)
	for _, c := range disponibles {
		opciones = append(opciones, string(c))
	}
	opciones = append(opciones, "salir")

	if len(sesion.Usados()) > 0 {
		fmt.Fprintf(m.out, "Filtros aplicados: %v\n", sesion.Usados())
	}
	eleccion := m.prompter.LeerOpcion("Buscar por:", opciones)
	if eleccion == "salir" || m.prompter.EOF() {
		return "", true
	}
	return service.Criterio(eleccion), false
}

func (m *Menu) leerValorCriterio(criterio service.Criterio) string {
	switch criterio {
	case service.CriterioID:
		return fmt.Sprintf("%d", m.prompter.LeerEntero("ID a buscar: ", 1))
	case service.CriterioNombre:
		// Names are stored case-normalized, so normalize the query too.
		return service.NormalizarNombre(m.prompter.LeerTexto("Nombre a buscar: "))
	case service.CriterioCapacidad:
		return m.prompter.LeerOpcion("Capacidad a buscar:", capacidadesComoTexto())
	case service.CriterioPrecio:
		return m.prompter.LeerDecimal("Precio a buscar: ").String()
	case service.CriterioCategoria:
		return m.prompter.LeerOpcion("Categoría a buscar:", categoriasComoTexto())
	}
	return ""
}

// paginarBusqueda shows the working set page by page with the continuation
// menu after each page. A single-result set only offers "continue".
func (m *Menu) paginarBusqueda(sesion *service.SesionBusqueda) continuacion {
	resultados := sesion.Resultados()
	paginas := service.Paginar(resultados, m.cfg.PageSize)

	for i, pag := range paginas {
		if err := RenderProductos(m.out, pag); err != nil {
			log.Warn().Err(err).Msg("error al renderizar la tabla")
		}
		fmt.Fprintf(m.out, "Página %d de %d (%d resultados)\n", i+1, len(paginas), len(resultados))

		if len(resultados) == 1 {
			m.prompter.Linea("Presione Enter para continuar...")
			return irAlFinal
		}

		resp := m.prompter.Linea("1: agregar otro filtro | 2: finalizar búsqueda | Enter: continuar: ")
		if m.prompter.EOF() {
			return irAlFinal
		}
		switch resp {
		case "1":
			if sesion.Agotada() {
				fmt.Fprintln(m.out, "No quedan criterios disponibles.")
				return irAlFinal
			}
			return agregarFiltro
		case "2":
			return irAlFinal
		}
	}
	return irAlFinal
}

// ─── Stock ───────────────────────────────────────────────────────────────────

func (m *Menu) agregarCarga() {
	m.repetir("agregar una carga", func() {
		productoID := m.prompter.LeerEntero("ID del producto: ", 1)
		tiene, err := m.stock.TieneUmbral(productoID)
		if err != nil {
			m.mostrarError(err)
			return
		}

		req := dto.AgregarCargaRequest{
			ProductoID: productoID,
			Cantidad:   m.prompter.LeerEntero("Cantidad: ", 0),
		}
		if !tiene {
			req.Umbral = m.prompter.LeerEntero("Umbral mínimo para este tipo: ", 1)
		}

		carga, err := m.stock.AgregarCarga(req)
		if err != nil {
			m.mostrarError(err)
			return
		}
		fmt.Fprintf(m.out, "Carga agregada con id %d.\n", carga.ID)
	})
}

func (m *Menu) modificarCarga() {
	m.repetir("modificar una carga", func() {
		req := dto.ModificarCargaRequest{
			CargaID:  m.prompter.LeerEntero("ID de la carga: ", 1),
			Cantidad: m.prompter.LeerEntero("Nueva cantidad: ", 0),
		}
		if _, err := m.stock.ModificarCarga(req); err != nil {
			m.mostrarError(err)
			return
		}
		fmt.Fprintln(m.out, "Carga modificada.")
	})
}

func (m *Menu) eliminarCarga() {
	m.repetir("eliminar una carga", func() {
		id := m.prompter.LeerEntero("ID de la carga a eliminar: ", 1)
		if !m.prompter.LeerConfirmacion("¿Confirma la eliminación?") {
			fmt.Fprintln(m.out, "Operación cancelada.")
			return
		}
		if err := m.stock.EliminarCarga(id); err != nil {
			m.mostrarError(err)
			return
		}
		fmt.Fprintln(m.out, "Carga eliminada.")
	})
}

func (m *Menu) stockBajo() {
	bajas, err := m.stock.StockBajo()
	if err != nil {
		m.mostrarError(err)
		return
	}
	if len(bajas) == 0 {
		fmt.Fprintln(m.out, "No hay productos con stock bajo.")
		return
	}

	paginas := service.Paginar(bajas, m.cfg.PageSize)
	for i, pag := range paginas {
		if err := RenderStockBajo(m.out, pag); err != nil {
			log.Warn().Err(err).Msg("error al renderizar la tabla")
		}
		fmt.Fprintf(m.out, "Página %d de %d (%d resultados)\n", i+1, len(paginas), len(bajas))

		resp := m.prompter.Linea("1: volver al menú | Enter: continuar: ")
		if m.prompter.EOF() || resp == "1" {
			return
		}
	}
}

// ─── Ventas y reportes ───────────────────────────────────────────────────────

func (m *Menu) registrarVenta() {
	m.repetir("registrar una venta", func() {
		productoID := m.prompter.LeerEntero("ID del producto vendido: ", 1)
		cargas, err := m.ventas.CargasDe(productoID)
		if err != nil {
			m.mostrarError(err)
			return
		}
		if len(cargas) == 0 {
			fmt.Fprintln(m.out, "El producto no tiene cargas de stock.")
			return
		}
		if err := RenderCargas(m.out, cargas); err != nil {
			log.Warn().Err(err).Msg("error al renderizar la tabla")
		}

		metodos := make([]string, 0, len(model.MetodosPago()))
		for _, mp := range model.MetodosPago() {
			metodos = append(metodos, string(mp))
		}
		req := dto.RegistrarVentaRequest{
			ProductoID: productoID,
			CargaID:    m.prompter.LeerEntero("ID de la carga: ", 1),
			Cantidad:   m.prompter.LeerEntero("Cantidad vendida: ", 1),
			MetodoPago: model.MetodoPago(m.prompter.LeerOpcion("Método de pago:", metodos)),
		}

		venta, err := m.ventas.RegistrarVenta(req)
		if err != nil {
			m.mostrarError(err)
			return
		}
		fmt.Fprintf(m.out, "Venta %d registrada. Total: $%s\n", venta.ID, venta.Total.StringFixed(2))

		if m.cfg.TicketPDF {
			path, err := infra.GenerarTicketPDF(venta, m.cfg.TicketPDFDir)
			if err != nil {
				log.Warn().Err(err).Msg("no se pudo generar el ticket")
			} else {
				fmt.Fprintf(m.out, "Ticket generado: %s\n", path)
			}
		}
	})
}

func (m *Menu) mostrarReportes() {
	resumen, err := m.reportes.ResumenVentas()
	if err != nil {
		m.mostrarError(err)
		return
	}
	if resumen.CantidadVentas == 0 {
		fmt.Fprintln(m.out, "No hay ventas registradas.")
		return
	}

	fmt.Fprintf(m.out, "Ventas registradas: %d\n", resumen.CantidadVentas)
	fmt.Fprintf(m.out, "Unidades vendidas:  %d\n", resumen.UnidadesTotales)
	fmt.Fprintf(m.out, "Ingreso total:      $%s\n", resumen.IngresoTotal.StringFixed(2))

	fmt.Fprintln(m.out, "\nPor categoría:")
	for _, cat := range model.Categorias() {
		if g, ok := resumen.PorCategoria[cat]; ok {
			fmt.Fprintf(m.out, "  %-20s %4d unidades  $%s\n", cat, g.Unidades, g.Ingreso.StringFixed(2))
		}
	}

	fmt.Fprintln(m.out, "\nPor método de pago:")
	for _, mp := range append(model.MetodosPago(), model.PagoNoEspecificado) {
		if g, ok := resumen.PorMetodoPago[mp]; ok {
			fmt.Fprintf(m.out, "  %-20s %4d unidades  $%s\n", mp, g.Unidades, g.Ingreso.StringFixed(2))
		}
	}
}

func (m *Menu) exportarCSV() {
	path := m.prompter.LeerTexto("Archivo de destino (ej: stock_export.csv): ")
	if err := m.reportes.ExportarStockCSV(path); err != nil {
		m.mostrarError(err)
		return
	}
	fmt.Fprintf(m.out, "Stock exportado a %s.\n", path)
}

func (m *Menu) verHistorial() {
	lineas, err := m.reportes.Historial()
	if err != nil {
		m.mostrarError(err)
		return
	}
	if len(lineas) == 0 {
		fmt.Fprintln(m.out, "El historial está vacío.")
		return
	}

	paginas := service.Paginar(lineas, m.cfg.PageSize)
	for i, pag := range paginas {
		for _, linea := range pag {
			fmt.Fprintln(m.out, linea)
		}
		fmt.Fprintf(m.out, "Página %d de %d (%d entradas)\n", i+1, len(paginas), len(lineas))

		resp := m.prompter.Linea("1: volver al menú | Enter: continuar: ")
		if m.prompter.EOF() || resp == "1" {
			return
		}
	}
}

func (m *Menu) exportarPDF() {
	path := m.prompter.LeerTexto("Archivo de destino (ej: stock_bajo.pdf): ")
	if err := m.reportes.ExportarStockBajoPDF(path); err != nil {
		m.mostrarError(err)
		return
	}
	fmt.Fprintf(m.out, "Reporte exportado a %s.\n", path)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func capacidadesComoTexto() []string {
	capacidades := model.Capacidades()
	out := make([]string, 0, len(capacidades))
	for _, c := range capacidades {
		out = append(out, string(c))
	}
	return out
}

func categoriasComoTexto() []string {
	categorias := model.Categorias()
	out := make([]string, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, string(c))
	}
	return out
}
