package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vetsoft/internal/apierror"
	"vetsoft/internal/service"
	"vetsoft/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindJSON binds the JSON body into req. Returns false and writes a 400 when
// the body is malformed; the caller should return immediately.
// Numbers are accepted for any field and passed on as their literal text, so
// "price": 100 and "price": "100" reach the validator alike.
func bindJSON(c *gin.Context, req any) bool {
	body, err := textoPlano(c)
	if err == nil {
		err = binding.JSON.BindBody(body, req)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return true
}

// textoPlano rewrites the numeric members of a JSON object as strings.
func textoPlano(c *gin.Context) ([]byte, error) {
	var campos map[string]any
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&campos); err != nil {
		return nil, err
	}
	for k, v := range campos {
		if n, ok := v.(json.Number); ok {
			campos[k] = n.String()
		}
	}
	return json.Marshal(campos)
}

// parseID reads a positive record id. ok is false for anything else.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// paramID parses the :id path parameter, answering 400 when it is malformed.
func paramID(c *gin.Context) (uint, bool) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
	}
	return id, ok
}

// respondError maps service errors onto the JSON API: field errors are 422,
// unknown ids 404, anything else goes to the ErrorHandler middleware.
func respondError(c *gin.Context, err error, notFound string) {
	var fields validator.Errors
	switch {
	case errors.As(err, &fields):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(notFound))
	default:
		_ = c.Error(err)
	}
}
