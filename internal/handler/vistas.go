package handler

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var plantillasFS embed.FS

// Plantillas parses the embedded HTML templates for gin's SetHTMLTemplate.
func Plantillas() *template.Template {
	return template.Must(template.New("").ParseFS(plantillasFS, "templates/*.html"))
}

// campo is one input of an entity form.
type campo struct {
	Nombre   string // form key, also the error-map key
	Etiqueta string
	Tipo     string // text, email, tel, number, date, select, textarea
	Paso     string // step attribute for number inputs
	Opciones []string
}

// campoFormulario is a campo as rendered: with the value shown and its error.
type campoFormulario struct {
	Nombre, Etiqueta, Tipo, Paso string
	Opciones                     []string
	Valor                        string
	Error                        string
}

type filaListado struct {
	ID     uint
	Celdas []string
}

type enlace struct {
	Texto  string
	URL    string
	Activo bool
}

var secciones = []enlace{
	{Texto: "Clientes", URL: "/clientes/"},
	{Texto: "Mascotas", URL: "/pets/"},
	{Texto: "Medicamentos", URL: "/medicines/"},
	{Texto: "Proveedores", URL: "/proveedores/"},
	{Texto: "Productos", URL: "/products/"},
	{Texto: "Veterinarios", URL: "/vet/"},
}

// navegacion marks the section whose prefix matches path as active.
func navegacion(path string) []enlace {
	nav := make([]enlace, len(secciones))
	for i, s := range secciones {
		s.Activo = strings.HasPrefix(path, s.URL)
		nav[i] = s
	}
	return nav
}

func render(c *gin.Context, status int, nombre string, data gin.H) {
	data["Nav"] = navegacion(c.Request.URL.Path)
	data["Inicio"] = c.Request.URL.Path == "/"
	c.HTML(status, nombre, data)
}

func paginaError(c *gin.Context, status int, mensaje string) {
	render(c, status, "error", gin.H{
		"Titulo":  http.StatusText(status),
		"Mensaje": mensaje,
	})
}

// Inicio renders the home page.
func Inicio(c *gin.Context) {
	render(c, http.StatusOK, "inicio", gin.H{
		"Titulo":    "Inicio",
		"Secciones": secciones,
	})
}

func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}
