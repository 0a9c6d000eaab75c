package dto

// AgregarCargaRequest creates a new stock carga for an existing product.
// Umbral is consulted only when the product type has no threshold yet
// (lazy creation); it is ignored otherwise.
type AgregarCargaRequest struct {
	ProductoID int `validate:"gt=0"`
	Cantidad   int `validate:"gte=0"`
	Umbral     int `validate:"gte=0"`
}

// ModificarCargaRequest carries a quantity change for one carga.
type ModificarCargaRequest struct {
	CargaID  int `validate:"gt=0"`
	Cantidad int `validate:"gte=0"`
}
