package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/repositories"
	"hotel-backoffice/internal/services"
	"hotel-backoffice/pkg/config"
	"hotel-backoffice/pkg/middleware"
	"hotel-backoffice/pkg/service"
)

type Loggers struct {
	Main      *zap.Logger
	Auth      *zap.Logger
	Finance   *zap.Logger
	Inventory *zap.Logger
	POS       *zap.Logger
	Public    *zap.Logger
}

// NewLoggers раздаёт всем подсистемам один логгер с разными именами.
func NewLoggers(base *zap.Logger) *Loggers {
	return &Loggers{
		Main:      base,
		Auth:      base.Named("auth"),
		Finance:   base.Named("finance"),
		Inventory: base.Named("inventory"),
		POS:       base.Named("pos"),
		Public:    base.Named("public"),
	}
}

// InitRouter собирает репозитории, сервисы и контроллеры. dbConn — пул pgx
// (в тестах pgxmock), cacheRepo — Redis.
func InitRouter(
	e *echo.Echo,
	dbConn repositories.Querier,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	loggers *Loggers,
	cfg *config.Config,
) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	userRepo := repositories.NewUserRepository(dbConn, loggers.Auth)
	sessionService := services.NewSessionService(userRepo, cacheRepo, loggers.Auth, cfg.Session.CacheTTL)
	authMW := middleware.NewAuthMiddleware(jwtSvc, sessionService, loggers.Auth)

	runHealthRouter(e)

	api := e.Group("/api")

	// --- 1. ПУБЛИЧНЫЕ ---
	runAuthRouter(api, userRepo, jwtSvc, loggers.Auth, authMW)
	runPublicRouter(api, dbConn, loggers.Public, cfg.CORS.PublicAllowedOrigin)

	// --- 2. ЗАЩИЩЁННЫЕ: /api/:businessUnitId/... ---
	secureGroup := api.Group("/:businessUnitId", authMW.Auth)

	runARInvoiceRouter(secureGroup, dbConn, loggers.Finance)
	runInventoryCategoryRouter(secureGroup, dbConn, loggers.Inventory)
	runUoMRouter(secureGroup, dbConn, loggers.Inventory)
	runPOSRouter(secureGroup, dbConn, loggers.POS)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}
