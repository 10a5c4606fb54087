package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	apperrors "hotel-backoffice/pkg/errors"
	"hotel-backoffice/pkg/service"
	"hotel-backoffice/pkg/utils"
)

// SessionResolver достаёт Identity (назначения + роль) по id пользователя из токена.
type SessionResolver interface {
	ResolveIdentity(ctx context.Context, userID string) (*entities.Identity, error)
}

type AuthMiddleware struct {
	jwtService service.JWTService
	sessions   SessionResolver
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, sessions SessionResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		sessions:   sessions,
		logger:     logger,
	}
}

// Auth - это основная функция middleware. Без валидной сессии обработчик не вызывается вообще.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// 1. Извлекаем токен из заголовка
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			m.logger.Debug("AuthMiddleware: Пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		// 2. Проверяем формат заголовка "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			m.logger.Debug("AuthMiddleware: Неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		// 3. Валидируем токен
		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Debug("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		// 4. Поднимаем сессию: назначения и роль
		ctx := c.Request().Context()
		identity, err := m.sessions.ResolveIdentity(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrUnauthorized) {
				m.logger.Warn("AuthMiddleware: Пользователь из токена не найден или отключён", zap.String("userID", claims.UserID))
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}
			return utils.ErrorResponse(c, err, m.logger)
		}

		// 5. Кладём Identity в контекст запроса
		c.SetRequest(c.Request().WithContext(utils.WithIdentity(ctx, identity)))

		return next(c)
	}
}
