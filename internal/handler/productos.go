package handler

import (
	"vetsoft/internal/dto"
	"vetsoft/internal/service"
)

type ProductosHandler = EntidadHandler[dto.ProductoRequest, dto.ProductoResponse]

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return newEntidadHandler[dto.ProductoRequest](svc, ficha[dto.ProductoResponse]{
		Titulo:       "Productos",
		Singular:     "Producto",
		Nuevo:        "Nuevo producto",
		NoEncontrado: "Producto no encontrado",
		Prefijo:      "/products/",
		CampoID:      "product_id",
		Columnas:     []string{"Nombre", "Tipo", "Precio"},
		Campos: []campo{
			{Nombre: "name", Etiqueta: "Nombre", Tipo: "text"},
			{Nombre: "type", Etiqueta: "Tipo", Tipo: "text"},
			{Nombre: "price", Etiqueta: "Precio", Tipo: "number", Paso: "0.01"},
		},
		ID: func(r dto.ProductoResponse) uint { return r.ID },
		Fila: func(r dto.ProductoResponse) []string {
			return []string{r.Name, r.Type, "$" + r.Price.StringFixed(2)}
		},
		Valores: func(r dto.ProductoResponse) map[string]string {
			return map[string]string{"name": r.Name, "type": r.Type, "price": r.Price.String()}
		},
	})
}
