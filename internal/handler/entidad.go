package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vetsoft/internal/infra"
	"vetsoft/internal/service"
	"vetsoft/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// servicio is the operation set shared by every entity service.
type servicio[Req, Resp any] interface {
	Crear(ctx context.Context, req Req) (*Resp, error)
	ObtenerPorID(ctx context.Context, id uint) (*Resp, error)
	Listar(ctx context.Context) ([]Resp, error)
	Actualizar(ctx context.Context, id uint, req Req) (*Resp, error)
	Eliminar(ctx context.Context, id uint) error
}

// ficha describes how one entity is listed, exported and edited.
type ficha[Resp any] struct {
	Titulo       string // plural, used in headings and the report
	Singular     string
	Nuevo        string // "Nuevo cliente", "Nueva mascota"
	NoEncontrado string
	Prefijo      string // HTML screens live under this path
	CampoID      string // form field carrying the id on delete
	Columnas     []string
	Campos       []campo

	ID      func(Resp) uint
	Fila    func(Resp) []string
	Valores func(Resp) map[string]string
}

// EntidadHandler serves one entity both as JSON API and as HTML screens.
type EntidadHandler[Req, Resp any] struct {
	svc   servicio[Req, Resp]
	ficha ficha[Resp]
}

func newEntidadHandler[Req, Resp any](svc servicio[Req, Resp], f ficha[Resp]) *EntidadHandler[Req, Resp] {
	return &EntidadHandler[Req, Resp]{svc: svc, ficha: f}
}

// Prefijo returns the path under which the HTML screens are mounted.
func (h *EntidadHandler[Req, Resp]) Prefijo() string { return h.ficha.Prefijo }

// ── JSON API ─────────────────────────────────────────────────────────────────

func (h *EntidadHandler[Req, Resp]) Listar(c *gin.Context) {
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EntidadHandler[Req, Resp]) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, h.ficha.NoEncontrado)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EntidadHandler[Req, Resp]) Crear(c *gin.Context) {
	var req Req
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, h.ficha.NoEncontrado)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar applies a partial update: fields absent from the body keep
// their stored value.
func (h *EntidadHandler[Req, Resp]) Actualizar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req Req
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, h.ficha.NoEncontrado)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EntidadHandler[Req, Resp]) Eliminar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err, h.ficha.NoEncontrado)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reporte streams the full listing as a PDF document.
func (h *EntidadHandler[Req, Resp]) Reporte(c *gin.Context) {
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	listado := infra.Listado{
		Titulo:   "Listado de " + h.ficha.Titulo,
		Columnas: append([]string{"ID"}, h.ficha.Columnas...),
		Filas:    make([][]string, 0, len(list)),
		Generado: time.Now(),
	}
	for _, r := range list {
		fila := append([]string{strconv.FormatUint(uint64(h.ficha.ID(r)), 10)}, h.ficha.Fila(r)...)
		listado.Filas = append(listado.Filas, fila)
	}

	var buf bytes.Buffer
	if err := infra.GenerateListadoPDF(&buf, listado); err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", slug(h.ficha.Titulo)+".pdf"))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// ── HTML screens ─────────────────────────────────────────────────────────────

// Pagina renders the listing with edit links and delete buttons.
func (h *EntidadHandler[Req, Resp]) Pagina(c *gin.Context) {
	list, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	filas := make([]filaListado, 0, len(list))
	for _, r := range list {
		filas = append(filas, filaListado{ID: h.ficha.ID(r), Celdas: h.ficha.Fila(r)})
	}
	render(c, http.StatusOK, "listado", gin.H{
		"Titulo":   h.ficha.Titulo,
		"Nuevo":    h.ficha.Nuevo,
		"Prefijo":  h.ficha.Prefijo,
		"CampoID":  h.ficha.CampoID,
		"Columnas": h.ficha.Columnas,
		"Filas":    filas,
	})
}

// FormularioNuevo renders an empty form.
func (h *EntidadHandler[Req, Resp]) FormularioNuevo(c *gin.Context) {
	h.formulario(c, http.StatusOK, 0, map[string]string{}, nil)
}

// GuardarNuevo creates a record, or edits one when a non-empty id is posted.
func (h *EntidadHandler[Req, Resp]) GuardarNuevo(c *gin.Context) {
	raw := c.PostForm("id")
	if raw == "" {
		h.guardar(c, 0)
		return
	}
	id, ok := parseID(raw)
	if !ok {
		paginaError(c, http.StatusBadRequest, "ID invalido")
		return
	}
	h.guardar(c, id)
}

// FormularioEditar renders the form filled with the stored record.
func (h *EntidadHandler[Req, Resp]) FormularioEditar(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		paginaError(c, http.StatusBadRequest, "ID invalido")
		return
	}
	actual, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		h.fallo(c, err)
		return
	}
	h.formulario(c, http.StatusOK, id, h.ficha.Valores(*actual), nil)
}

func (h *EntidadHandler[Req, Resp]) GuardarEditar(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		paginaError(c, http.StatusBadRequest, "ID invalido")
		return
	}
	h.guardar(c, id)
}

// EliminarForm deletes the record whose id arrives in the CampoID form field.
func (h *EntidadHandler[Req, Resp]) EliminarForm(c *gin.Context) {
	id, ok := parseID(c.PostForm(h.ficha.CampoID))
	if !ok {
		paginaError(c, http.StatusBadRequest, "ID invalido")
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		h.fallo(c, err)
		return
	}
	c.Redirect(http.StatusFound, h.ficha.Prefijo)
}

func (h *EntidadHandler[Req, Resp]) guardar(c *gin.Context, id uint) {
	var req Req
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		paginaError(c, http.StatusBadRequest, "Formulario invalido")
		return
	}

	ctx := c.Request.Context()
	var err error
	if id == 0 {
		_, err = h.svc.Crear(ctx, req)
	} else {
		_, err = h.svc.Actualizar(ctx, id, req)
	}

	var fields validator.Errors
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, h.ficha.Prefijo)
	case errors.As(err, &fields):
		valores := map[string]string{}
		if id != 0 {
			if actual, err := h.svc.ObtenerPorID(ctx, id); err == nil {
				valores = h.ficha.Valores(*actual)
			}
		}
		for k := range c.Request.PostForm {
			valores[k] = c.Request.PostForm.Get(k)
		}
		h.formulario(c, http.StatusUnprocessableEntity, id, valores, fields)
	default:
		h.fallo(c, err)
	}
}

// fallo renders a 404 page for unknown ids and defers anything else to the
// ErrorHandler middleware.
func (h *EntidadHandler[Req, Resp]) fallo(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		paginaError(c, http.StatusNotFound, h.ficha.NoEncontrado)
		return
	}
	_ = c.Error(err)
}

func (h *EntidadHandler[Req, Resp]) formulario(c *gin.Context, status int, id uint, valores, errs map[string]string) {
	accion := h.ficha.Prefijo + "nuevo/"
	titulo := h.ficha.Nuevo
	idValor := ""
	if id != 0 {
		idValor = strconv.FormatUint(uint64(id), 10)
		accion = h.ficha.Prefijo + "editar/" + idValor + "/"
		titulo = "Editar " + strings.ToLower(h.ficha.Singular)
	}

	campos := make([]campoFormulario, 0, len(h.ficha.Campos))
	for _, cp := range h.ficha.Campos {
		campos = append(campos, campoFormulario{
			Nombre:   cp.Nombre,
			Etiqueta: cp.Etiqueta,
			Tipo:     cp.Tipo,
			Paso:     cp.Paso,
			Opciones: cp.Opciones,
			Valor:    valores[cp.Nombre],
			Error:    errs[cp.Nombre],
		})
	}
	render(c, status, "formulario", gin.H{
		"Titulo":  titulo,
		"Accion":  accion,
		"Volver":  h.ficha.Prefijo,
		"ID":      idValor,
		"Campos":  campos,
		"Errores": len(errs) > 0,
	})
}
