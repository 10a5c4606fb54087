package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

var (
	publicAllowMethods = strings.Join([]string{http.MethodGet, http.MethodOptions}, ", ")
	publicAllowHeaders = strings.Join([]string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept}, ", ")
)

// PublicCORS - заголовки для публичных эндпоинтов маркетингового сайта.
// Ставятся ДО вызова обработчика, поэтому попадают и в ответы с ошибкой.
// Preflight (OPTIONS) отвечаем сами, 204.
func PublicCORS(allowedOrigin string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, allowedOrigin)
			h.Set(echo.HeaderAccessControlAllowMethods, publicAllowMethods)
			h.Set(echo.HeaderAccessControlAllowHeaders, publicAllowHeaders)
			h.Add(echo.HeaderVary, echo.HeaderOrigin)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
