package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/controllers"
	"hotel-backoffice/internal/repositories"
	"hotel-backoffice/internal/services"
)

func runInventoryCategoryRouter(secureGroup *echo.Group, dbConn repositories.Querier, logger *zap.Logger) {
	var (
		categoryRepository = repositories.NewInventoryCategoryRepository(dbConn, logger)
		categoryService    = services.NewInventoryCategoryService(categoryRepository, logger)
		categoryCtrl       = controllers.NewInventoryCategoryController(categoryService, logger)
	)

	group := secureGroup.Group("/inventory-categories-management")
	group.GET("", categoryCtrl.GetCategories)
	group.GET("/export", categoryCtrl.ExportCategories)
}

func runUoMRouter(secureGroup *echo.Group, dbConn repositories.Querier, logger *zap.Logger) {
	var (
		uomRepository = repositories.NewUoMRepository(dbConn, logger)
		uomService    = services.NewUoMService(uomRepository, logger)
		uomCtrl       = controllers.NewUoMController(uomService, logger)
	)

	group := secureGroup.Group("/uoms-management")
	group.GET("", uomCtrl.GetUoMs)
	group.DELETE("/:uomId", uomCtrl.DeleteUoM)
}
