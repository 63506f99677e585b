package handler

import (
	"strconv"

	"vetsoft/internal/dto"
	"vetsoft/internal/service"
)

type MedicamentosHandler = EntidadHandler[dto.MedicamentoRequest, dto.MedicamentoResponse]

func NewMedicamentosHandler(svc service.MedicamentoService) *MedicamentosHandler {
	return newEntidadHandler[dto.MedicamentoRequest](svc, ficha[dto.MedicamentoResponse]{
		Titulo:       "Medicamentos",
		Singular:     "Medicamento",
		Nuevo:        "Nuevo medicamento",
		NoEncontrado: "Medicamento no encontrado",
		Prefijo:      "/medicines/",
		CampoID:      "medicine_id",
		Columnas:     []string{"Nombre", "Descripción", "Dosis"},
		Campos: []campo{
			{Nombre: "name", Etiqueta: "Nombre", Tipo: "text"},
			{Nombre: "descripcion", Etiqueta: "Descripción", Tipo: "textarea"},
			{Nombre: "dosis", Etiqueta: "Dosis", Tipo: "number", Paso: "1"},
		},
		ID: func(r dto.MedicamentoResponse) uint { return r.ID },
		Fila: func(r dto.MedicamentoResponse) []string {
			return []string{r.Name, r.Descripcion, strconv.Itoa(r.Dosis)}
		},
		Valores: func(r dto.MedicamentoResponse) map[string]string {
			return map[string]string{
				"name": r.Name, "descripcion": r.Descripcion, "dosis": strconv.Itoa(r.Dosis),
			}
		},
	})
}
