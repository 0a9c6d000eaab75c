package model

// CargaStock is one line of the stock ledger: a batch ("carga") of a product
// type with its on-hand quantity. Its ID sequence is independent from
// Producto.ID — re-stocking the same product creates a new carga rather than
// incrementing an existing one.
type CargaStock struct {
	ID        int       `json:"id" validate:"gt=0"`
	Tipo      string    `json:"tipo" validate:"required"`
	Capacidad Capacidad `json:"capacidad" validate:"required"`
	Cantidad  int       `json:"cantidad" validate:"gte=0"`
	Categoria Categoria `json:"categoria,omitempty"`
}

// StockData is the on-disk shape of the stock file: the ledger plus the
// per-type minimum-quantity thresholds ("umbrales").
type StockData struct {
	Stock    []CargaStock   `json:"stock"`
	Umbrales map[string]int `json:"umbrales"`
}

// NewStockData returns an empty, fully initialized StockData.
func NewStockData() StockData {
	return StockData{Stock: []CargaStock{}, Umbrales: map[string]int{}}
}
