package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/controllers"
	"hotel-backoffice/internal/repositories"
	"hotel-backoffice/internal/services"
)

func runPOSRouter(secureGroup *echo.Group, dbConn repositories.Querier, logger *zap.Logger) {
	var (
		menuRepository = repositories.NewMenuRepository(dbConn, logger)
		posService     = services.NewPOSService(menuRepository, logger)
		posCtrl        = controllers.NewPOSController(posService, logger)
	)

	secureGroup.GET("/pos/menu-items", posCtrl.GetMenuItems)
}
