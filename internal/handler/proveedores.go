package handler

import (
	"vetsoft/internal/dto"
	"vetsoft/internal/service"
)

type ProveedoresHandler = EntidadHandler[dto.ProveedorRequest, dto.ProveedorResponse]

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return newEntidadHandler[dto.ProveedorRequest](svc, ficha[dto.ProveedorResponse]{
		Titulo:       "Proveedores",
		Singular:     "Proveedor",
		Nuevo:        "Nuevo proveedor",
		NoEncontrado: "Proveedor no encontrado",
		Prefijo:      "/proveedores/",
		CampoID:      "provider_id",
		Columnas:     []string{"Nombre", "Email", "Dirección"},
		Campos: []campo{
			{Nombre: "name", Etiqueta: "Nombre", Tipo: "text"},
			{Nombre: "email", Etiqueta: "Email", Tipo: "email"},
			{Nombre: "address", Etiqueta: "Dirección", Tipo: "text"},
		},
		ID: func(r dto.ProveedorResponse) uint { return r.ID },
		Fila: func(r dto.ProveedorResponse) []string {
			return []string{r.Name, r.Email, r.Address}
		},
		Valores: func(r dto.ProveedorResponse) map[string]string {
			return map[string]string{"name": r.Name, "email": r.Email, "address": r.Address}
		},
	})
}
