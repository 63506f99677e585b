package router

import (
	"time"

	"vetsoft/internal/config"
	"vetsoft/internal/handler"
	"vetsoft/internal/middleware"
	"vetsoft/internal/service"

	_ "vetsoft/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps are the collaborators built by the caller. DB and Redis may be nil
// (in-memory mode, no shared rate limiting); they only feed /health.
type Deps struct {
	Services  *service.Services
	DB        *gorm.DB
	Redis     *redis.Client
	RateStore middleware.RateStore
	Registry  *prometheus.Registry
}

// entidad is the handler surface mounted for every record type.
type entidad interface {
	Prefijo() string

	Listar(c *gin.Context)
	ObtenerPorID(c *gin.Context)
	Crear(c *gin.Context)
	Actualizar(c *gin.Context)
	Eliminar(c *gin.Context)
	Reporte(c *gin.Context)

	Pagina(c *gin.Context)
	FormularioNuevo(c *gin.Context)
	GuardarNuevo(c *gin.Context)
	FormularioEditar(c *gin.Context)
	GuardarEditar(c *gin.Context)
	EliminarForm(c *gin.Context)
}

// New wires all handlers and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.SetHTMLTemplate(handler.Plantillas())

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics(deps.Registry))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(deps.RateStore, cfg.RateLimitPerMinute, time.Minute))

	// ── Handlers ─────────────────────────────────────────────────────────────
	svcs := deps.Services
	api := map[string]entidad{
		"clientes":     handler.NewClientesHandler(svcs.Clientes),
		"mascotas":     handler.NewMascotasHandler(svcs.Mascotas),
		"medicamentos": handler.NewMedicamentosHandler(svcs.Medicamentos),
		"proveedores":  handler.NewProveedoresHandler(svcs.Proveedores),
		"productos":    handler.NewProductosHandler(svcs.Productos),
		"veterinarios": handler.NewVeterinariosHandler(svcs.Veterinarios),
	}

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(deps.DB, deps.Redis))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	// HTML screens
	r.GET("/", handler.Inicio)
	for _, h := range api {
		p := h.Prefijo()
		r.GET(p, h.Pagina)
		r.GET(p+"nuevo/", h.FormularioNuevo)
		r.POST(p+"nuevo/", h.GuardarNuevo)
		r.GET(p+"editar/:id/", h.FormularioEditar)
		r.POST(p+"editar/:id/", h.GuardarEditar)
		r.POST(p+"eliminar/", h.EliminarForm)
	}

	// JSON API
	v1 := r.Group("/v1", middleware.CORS(cfg.CORSOrigin))
	{
		v1.GET("/opciones", handler.Opciones)
		for nombre, h := range api {
			g := v1.Group("/" + nombre)
			g.GET("", h.Listar)
			g.POST("", h.Crear)
			g.GET("/reporte.pdf", h.Reporte)
			g.GET("/:id", h.ObtenerPorID)
			g.PUT("/:id", h.Actualizar)
			g.DELETE("/:id", h.Eliminar)
			g.OPTIONS("", func(*gin.Context) {})
			g.OPTIONS("/:id", func(*gin.Context) {})
		}
	}

	// Swagger UI outside production only
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
