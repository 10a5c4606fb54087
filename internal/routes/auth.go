package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/controllers"
	"hotel-backoffice/internal/repositories"
	"hotel-backoffice/internal/services"
	"hotel-backoffice/pkg/middleware"
	"hotel-backoffice/pkg/service"
)

func runAuthRouter(api *echo.Group, userRepo repositories.UserRepositoryInterface, jwtSvc service.JWTService, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	authCtrl := controllers.NewAuthController(authService, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
