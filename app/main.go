// Файл: main.go

package main

import (
	"context"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"hotel-backoffice/internal/infrastructure/bd"
	"hotel-backoffice/internal/repositories"
	"hotel-backoffice/internal/routes"
	"hotel-backoffice/pkg/config"
	"hotel-backoffice/pkg/database/postgresql"
	apperrors "hotel-backoffice/pkg/errors"
	applogger "hotel-backoffice/pkg/logger"
	"hotel-backoffice/pkg/middleware"
	"hotel-backoffice/pkg/service"
	"hotel-backoffice/pkg/utils"
	"hotel-backoffice/pkg/validation"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Server.LogLevel, cfg.Server.LogFile)
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	// 2. Middleware
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.RequestLogger(logger.Named("http")))

	// CORS админки. Публичные эндпоинты отвечают своими заголовками.
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		Skipper: func(c echo.Context) bool {
			return routes.IsPublicPath(c.Request().URL.Path)
		},
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "x-business-unit-id"},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition, echo.HeaderXRequestID},
	}))

	e.Validator = validation.New()

	// 3. Postgres + миграции
	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	if cfg.Postgres.AutoMigrate {
		if err := bd.RunMigrations(context.Background(), cfg.Postgres.DSN, logger); err != nil {
			logger.Fatal("Ошибка применения миграций", zap.Error(err))
		}
	}

	// 4. Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	defer redisClient.Close()

	// 5. Сервисы и роуты
	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	routes.InitRouter(e, dbConn, cacheRepo, jwtSvc, routes.NewLoggers(logger), cfg)

	// 6. Запуск
	logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
