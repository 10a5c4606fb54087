package routes

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/controllers"
	"hotel-backoffice/internal/repositories"
	"hotel-backoffice/internal/services"
	"hotel-backoffice/pkg/middleware"
)

// PublicPaths — маршруты маркетингового сайта. Глобальный CORS админки их пропускает.
var PublicPaths = []string{
	"/api/accommodations",
	"/api/public/business-units",
	"/api/services",
}

func IsPublicPath(path string) bool {
	path = strings.TrimSuffix(path, "/")
	for _, p := range PublicPaths {
		if path == p {
			return true
		}
	}
	return false
}

func runPublicRouter(api *echo.Group, dbConn repositories.Querier, logger *zap.Logger, allowedOrigin string) {
	var (
		businessUnitRepository = repositories.NewBusinessUnitRepository(dbConn, logger)
		catalogRepository      = repositories.NewCatalogRepository(dbConn, logger)
		catalogService         = services.NewPublicCatalogService(businessUnitRepository, catalogRepository, logger)
		publicCtrl             = controllers.NewPublicController(catalogService, logger)
	)

	cors := middleware.PublicCORS(allowedOrigin)
	methods := []string{http.MethodGet, http.MethodOptions}

	api.Match(methods, "/accommodations", publicCtrl.GetAccommodations, cors)
	api.Match(methods, "/public/business-units", publicCtrl.GetBusinessUnits, cors)
	api.Match(methods, "/services", publicCtrl.GetServices, cors)
}
