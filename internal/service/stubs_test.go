package service

import (
	"errors"

	"github.com/thrimos616/TPO-AyED1-2025/internal/model"
	"github.com/thrimos616/TPO-AyED1-2025/internal/repository"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

type stubProductoRepo struct {
	productos []model.Producto
	failSave  bool
}

func (r *stubProductoRepo) Load() ([]model.Producto, error) {
	out := make([]model.Producto, len(r.productos))
	copy(out, r.productos)
	return out, nil
}

func (r *stubProductoRepo) Save(productos []model.Producto) error {
	if r.failSave {
		return errors.New("disco lleno")
	}
	r.productos = make([]model.Producto, len(productos))
	copy(r.productos, productos)
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

type stubStockRepo struct {
	data     model.StockData
	failSave bool
}

func newStubStockRepo() *stubStockRepo {
	return &stubStockRepo{data: model.NewStockData()}
}

func (r *stubStockRepo) Load() (model.StockData, error) {
	out := model.StockData{
		Stock:    make([]model.CargaStock, len(r.data.Stock)),
		Umbrales: make(map[string]int, len(r.data.Umbrales)),
	}
	copy(out.Stock, r.data.Stock)
	for k, v := range r.data.Umbrales {
		out.Umbrales[k] = v
	}
	return out, nil
}

func (r *stubStockRepo) Save(data model.StockData) error {
	if r.failSave {
		return errors.New("disco lleno")
	}
	r.data = data
	return nil
}

var _ repository.StockRepository = (*stubStockRepo)(nil)

type stubVentaRepo struct {
	ventas []model.Venta
}

func (r *stubVentaRepo) Append(v model.Venta) error {
	r.ventas = append(r.ventas, v)
	return nil
}

func (r *stubVentaRepo) Load() ([]model.Venta, error) {
	out := make([]model.Venta, len(r.ventas))
	copy(out, r.ventas)
	return out, nil
}

func (r *stubVentaRepo) NextID() (int, error) {
	ultimo := 0
	for _, v := range r.ventas {
		if v.ID > ultimo {
			ultimo = v.ID
		}
	}
	return ultimo + 1, nil
}

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

type stubHistorialRepo struct {
	acciones []string
}

func (r *stubHistorialRepo) Registrar(accion string) error {
	r.acciones = append(r.acciones, accion)
	return nil
}

func (r *stubHistorialRepo) Load() ([]string, error) { return r.acciones, nil }

var _ repository.HistorialRepository = (*stubHistorialRepo)(nil)
