package routes

import (
	"time"

	"prenderia/internal/adapters/http/handlers"
	"prenderia/internal/adapters/http/middleware"
	"prenderia/internal/adapters/persistence/repositories"
	"prenderia/internal/config"
	"prenderia/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services groups the business services behind the HTTP API
type Services struct {
	Auth     *services.AuthService
	Usuario  *services.UsuarioService
	Empeno   *services.EmpenoService
	Prestamo *services.PrestamoService
	Reporte  *services.ReporteService
}

// NewServices wires repositories and services on top of db
func NewServices(db *gorm.DB, cfg *config.Config, log *zap.Logger) *Services {
	usuarioRepo := repositories.NewUsuarioRepository(db)
	empenoRepo := repositories.NewEmpenoRepository(db)
	prestamoRepo := repositories.NewPrestamoRepository(db)

	return &Services{
		Auth:     services.NewAuthService(usuarioRepo, cfg.JWT, log),
		Usuario:  services.NewUsuarioService(usuarioRepo),
		Empeno:   services.NewEmpenoService(empenoRepo, usuarioRepo),
		Prestamo: services.NewPrestamoService(prestamoRepo, empenoRepo, log),
		Reporte:  services.NewReporteService(db),
	}
}

// Setup configures all routes for the application
func Setup(app *fiber.App, svc *Services, cfg *config.Config, ping func() error) {
	healthHandler := handlers.NewHealthHandler(cfg.AppMode, ping)
	authHandler := handlers.NewAuthHandler(svc.Auth)
	usuarioHandler := handlers.NewUsuarioHandler(svc.Usuario)
	empenoHandler := handlers.NewEmpenoHandler(svc.Empeno)
	prestamoHandler := handlers.NewPrestamoHandler(svc.Prestamo)
	reporteHandler := handlers.NewReporteHandler(svc.Reporte)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/health", healthHandler.HealthCheck)

	// Public
	api.Post("/auth/login", middleware.AuthRateLimiter(), authHandler.Login)

	// Authenticated
	auth := middleware.AuthMiddleware(svc.Auth)
	admin := middleware.AdminOnly()
	noCache := middleware.NoCacheHeaders()

	api.Get("/me", auth, noCache, usuarioHandler.GetMe)
	api.Put("/me", auth, usuarioHandler.UpdateMe)

	setupUsuarioRoutes(api, usuarioHandler, auth, admin)
	setupEmpenoRoutes(api, empenoHandler, auth, admin)
	setupPrestamoRoutes(api, prestamoHandler, auth, admin, noCache)
	setupReporteRoutes(api, reporteHandler, auth, admin, noCache)
}

func setupUsuarioRoutes(api fiber.Router, h *handlers.UsuarioHandler, auth, admin fiber.Handler) {
	usuarios := api.Group("/usuarios", auth, admin)
	usuarios.Get("/", h.List)
	usuarios.Post("/", h.Create)
	usuarios.Put("/:id", h.Update)
	usuarios.Delete("/:id", h.Delete)
}

func setupEmpenoRoutes(api fiber.Router, h *handlers.EmpenoHandler, auth, admin fiber.Handler) {
	api.Get("/tipos-articulos", auth, admin, middleware.CacheControl(5*time.Minute), h.ListTipos)
	api.Post("/tipos-articulos", auth, admin, h.CreateTipo)

	api.Get("/empenos", auth, admin, h.ListEmpenos)
	api.Post("/empenos", auth, admin, h.CreateEmpeno)
	api.Put("/empenos/:id", auth, admin, h.UpdateEmpeno)

	api.Get("/articulos", auth, admin, h.ListArticulos)
	api.Post("/articulos", auth, admin, h.CreateArticulo)
}

func setupPrestamoRoutes(api fiber.Router, h *handlers.PrestamoHandler, auth, admin, noCache fiber.Handler) {
	// "mios" must be registered before ":id"
	api.Get("/prestamos/mios", auth, noCache, h.ListMine)
	api.Get("/prestamos", auth, admin, noCache, h.List)
	api.Post("/prestamos", auth, admin, h.Create)
	api.Get("/prestamos/:id", auth, noCache, h.Get)
	api.Put("/prestamos/:id/estado", auth, admin, h.UpdateEstado)

	api.Get("/intereses/prestamo/:id", auth, noCache, h.ListIntereses)
	api.Put("/intereses/:id/estado", auth, admin, h.UpdateInteresEstado)
}

func setupReporteRoutes(api fiber.Router, h *handlers.ReporteHandler, auth, admin, noCache fiber.Handler) {
	api.Get("/stats-resumen", auth, admin, noCache, h.StatsResumen)
	api.Get("/intereses-mensuales", auth, admin, noCache, h.InteresesMensuales)
	api.Get("/empenos-por-tipo", auth, admin, noCache, h.EmpenosPorTipo)
	api.Get("/historial-empenos", auth, admin, noCache, h.HistorialEmpenos)
}
