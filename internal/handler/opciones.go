package handler

import (
	"net/http"

	"vetsoft/internal/dto"
	"vetsoft/internal/model"

	"github.com/gin-gonic/gin"
)

// Opciones godoc
// @Summary      Opciones de formularios
// @Description  Ciudades y especialidades aceptadas.
// @Tags         opciones
// @Produce      json
// @Success      200  {object} dto.OpcionesResponse
// @Router       /v1/opciones [get]
func Opciones(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OpcionesResponse{
		Ciudades:       ciudades(),
		Especialidades: especialidades(),
	})
}

func ciudades() []string {
	list := model.Ciudades()
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = string(v)
	}
	return out
}

func especialidades() []string {
	list := model.Especialidades()
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = string(v)
	}
	return out
}
