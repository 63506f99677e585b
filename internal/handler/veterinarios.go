package handler

import (
	"vetsoft/internal/dto"
	"vetsoft/internal/service"
)

type VeterinariosHandler = EntidadHandler[dto.VeterinarioRequest, dto.VeterinarioResponse]

func NewVeterinariosHandler(svc service.VeterinarioService) *VeterinariosHandler {
	return newEntidadHandler[dto.VeterinarioRequest](svc, ficha[dto.VeterinarioResponse]{
		Titulo:       "Veterinarios",
		Singular:     "Veterinario",
		Nuevo:        "Nuevo veterinario",
		NoEncontrado: "Veterinario no encontrado",
		Prefijo:      "/vet/",
		CampoID:      "vet_id",
		Columnas:     []string{"Nombre", "Email", "Teléfono", "Especialidad"},
		Campos: []campo{
			{Nombre: "name", Etiqueta: "Nombre", Tipo: "text"},
			{Nombre: "email", Etiqueta: "Email", Tipo: "email"},
			{Nombre: "phone", Etiqueta: "Teléfono", Tipo: "tel"},
			{Nombre: "speciality", Etiqueta: "Especialidad", Tipo: "select", Opciones: especialidades()},
		},
		ID: func(r dto.VeterinarioResponse) uint { return r.ID },
		Fila: func(r dto.VeterinarioResponse) []string {
			return []string{r.Name, r.Email, r.Phone, r.Speciality}
		},
		Valores: func(r dto.VeterinarioResponse) map[string]string {
			return map[string]string{
				"name": r.Name, "email": r.Email, "phone": r.Phone, "speciality": r.Speciality,
			}
		},
	})
}
