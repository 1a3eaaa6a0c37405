package router

import (
	"time"

	"aratrack/internal/config"
	"aratrack/internal/handler"
	"aratrack/internal/infra"
	"aratrack/internal/middleware"
	"aratrack/internal/repository"
	"aratrack/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil; revoked tokens are then kept in process memory.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	smtpCB := infra.NewCircuitBreaker(infra.DefaultSMTPBreakerConfig())
	mailer := infra.NewMailer(cfg, smtpCB)
	var denylist infra.TokenDenylist
	if rdb != nil {
		denylist = infra.NewRedisDenylist(rdb)
	} else {
		denylist = infra.NewMemoriaDenylist()
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	viajeRepo := repository.NewViajeRepository(db)
	centroRepo := repository.NewCentroCostoRepository(db)
	choferRepo := repository.NewChoferRepository(db)
	adminRepo := repository.NewAdministrativoRepository(db)
	rendicionRepo := repository.NewRendicionRepository(db)
	reporteRepo, err := repository.NewReporteRepository(db)
	if err != nil {
		return nil, err
	}

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, denylist, cfg)
	viajeSvc := service.NewViajeService(viajeRepo, centroRepo)
	maestrasSvc := service.NewMaestrasService(centroRepo, choferRepo, adminRepo)
	despachoSvc := service.NewDespachoService(viajeRepo, mailer, cfg.PDFStoragePath, cfg.DespachoEmailDestino)
	reporteSvc := service.NewReporteService(reporteRepo, cfg.ExcelStoragePath)
	rendicionSvc := service.NewRendicionService(rendicionRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	viajesH := handler.NewViajesHandler(viajeSvc)
	maestrasH := handler.NewMaestrasHandler(maestrasSvc)
	despachoH := handler.NewDespachoHandler(despachoSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	rendicionesH := handler.NewRendicionesHandler(rendicionSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))
	r.POST("/v1/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, denylist)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/logout", authH.Logout)
		v1.GET("/auth/me", authH.Me)

		usuarios := v1.Group("/usuarios", middleware.RequireAdmin(cfg.AdminUsername))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id/password", usuariosH.CambiarPassword)
			usuarios.PATCH("/:id/activo", usuariosH.ToggleActivo)
			usuarios.DELETE("/:id", usuariosH.Eliminar)
		}

		viajes := v1.Group("/viajes")
		{
			viajes.POST("", viajesH.Crear)
			viajes.GET("", viajesH.Buscar)
			viajes.GET("/unicos", viajesH.ListarUnicos)
			viajes.GET("/estadisticas", viajesH.Estadisticas)
			viajes.GET("/patentes", viajesH.ListarPatentes)
			viajes.GET("/:numero", viajesH.ObtenerUltimo)
			viajes.GET("/:numero/centros", viajesH.ListarCentros)
			viajes.GET("/:numero/centros/:centro", viajesH.Obtener)
			viajes.PUT("/:numero/centros/:centro", viajesH.Actualizar)
			viajes.DELETE("/:numero/centros/:centro", viajesH.Eliminar)

			viajes.POST("/:numero/pdf", despachoH.GenerarViaje)
			viajes.POST("/:numero/pdf/enviar", despachoH.EnviarViaje)
			viajes.POST("/:numero/centros/:centro/pdf", despachoH.GenerarPlanilla)
		}
		v1.GET("/pdfs/:archivo", despachoH.Descargar)

		v1.GET("/centros-costo", maestrasH.ListarCentrosCosto)
		v1.POST("/centros-costo", maestrasH.CrearCentroCosto)
		v1.GET("/centros-costo/:codigo", maestrasH.ObtenerCentroCosto)
		v1.PUT("/centros-costo/:codigo", maestrasH.ActualizarCentroCosto)

		v1.GET("/choferes", maestrasH.ListarChoferes)
		v1.POST("/choferes", maestrasH.CrearChofer)
		v1.PUT("/choferes/:nombre", maestrasH.ActualizarChofer)

		v1.GET("/administrativos", maestrasH.ListarAdministrativos)
		v1.POST("/administrativos", maestrasH.CrearAdministrativo)
		v1.PUT("/administrativos/:nombre", maestrasH.RenombrarAdministrativo)

		v1.GET("/reportes", reportesH.Listar)
		v1.GET("/reportes/:nombre", reportesH.Exportar)

		v1.POST("/rendiciones/importar", rendicionesH.Importar)
		v1.GET("/rendiciones", rendicionesH.Listar)
		v1.PATCH("/rendiciones/:nro_viaje/estado", rendicionesH.ActualizarEstado)
	}

	// Swagger UI, only outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, nil
}
