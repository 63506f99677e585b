package handler

import (
	"vetsoft/internal/dto"
	"vetsoft/internal/service"
)

type ClientesHandler = EntidadHandler[dto.ClienteRequest, dto.ClienteResponse]

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return newEntidadHandler[dto.ClienteRequest](svc, ficha[dto.ClienteResponse]{
		Titulo:       "Clientes",
		Singular:     "Cliente",
		Nuevo:        "Nuevo cliente",
		NoEncontrado: "Cliente no encontrado",
		Prefijo:      "/clientes/",
		CampoID:      "client_id",
		Columnas:     []string{"Nombre", "Teléfono", "Email", "Ciudad", "Dirección"},
		Campos: []campo{
			{Nombre: "name", Etiqueta: "Nombre", Tipo: "text"},
			{Nombre: "phone", Etiqueta: "Teléfono", Tipo: "tel"},
			{Nombre: "email", Etiqueta: "Email", Tipo: "email"},
			{Nombre: "city", Etiqueta: "Ciudad", Tipo: "select", Opciones: ciudades()},
			{Nombre: "address", Etiqueta: "Dirección", Tipo: "text"},
		},
		ID: func(r dto.ClienteResponse) uint { return r.ID },
		Fila: func(r dto.ClienteResponse) []string {
			return []string{r.Name, r.Phone, r.Email, r.City, r.Address}
		},
		Valores: func(r dto.ClienteResponse) map[string]string {
			return map[string]string{
				"name": r.Name, "phone": r.Phone, "email": r.Email, "city": r.City, "address": r.Address,
			}
		},
	})
}
