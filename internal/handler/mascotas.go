package handler

import (
	"vetsoft/internal/dto"
	"vetsoft/internal/service"
)

type MascotasHandler = EntidadHandler[dto.MascotaRequest, dto.MascotaResponse]

func NewMascotasHandler(svc service.MascotaService) *MascotasHandler {
	return newEntidadHandler[dto.MascotaRequest](svc, ficha[dto.MascotaResponse]{
		Titulo:       "Mascotas",
		Singular:     "Mascota",
		Nuevo:        "Nueva mascota",
		NoEncontrado: "Mascota no encontrada",
		Prefijo:      "/pets/",
		CampoID:      "pet_id",
		Columnas:     []string{"Nombre", "Raza", "Fecha de nacimiento", "Peso (kg)"},
		Campos: []campo{
			{Nombre: "name", Etiqueta: "Nombre", Tipo: "text"},
			{Nombre: "breed", Etiqueta: "Raza", Tipo: "text"},
			{Nombre: "birthday", Etiqueta: "Fecha de nacimiento", Tipo: "date"},
			{Nombre: "weight", Etiqueta: "Peso (kg)", Tipo: "number", Paso: "0.001"},
		},
		ID: func(r dto.MascotaResponse) uint { return r.ID },
		Fila: func(r dto.MascotaResponse) []string {
			return []string{r.Name, r.Breed, r.Birthday, r.Weight.String()}
		},
		Valores: func(r dto.MascotaResponse) map[string]string {
			return map[string]string{
				"name": r.Name, "breed": r.Breed, "birthday": r.Birthday, "weight": r.Weight.String(),
			}
		},
	})
}
