package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/internal/dto"
	"hotel-backoffice/internal/services"
	apperrors "hotel-backoffice/pkg/errors"
	"hotel-backoffice/pkg/utils"
)

type AuthController struct {
	authService *services.AuthService
	logger      *zap.Logger
}

func NewAuthController(authService *services.AuthService, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger.With(zap.String("handler", "AUTH")),
	}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginDTO
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Invalid request body"), c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	token, err := c.authService.Login(ctx.Request().Context(), req)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, token)
}

// Me возвращает текущую сессию: кто я, какая роль, куда назначен.
func (c *AuthController) Me(ctx echo.Context) error {
	identity, err := utils.GetIdentityFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	session := dto.SessionDTO{
		UserID:      identity.UserID,
		Username:    identity.Username,
		Assignments: make([]dto.AssignmentDTO, 0, len(identity.Assignments)),
	}
	if identity.Role != nil {
		role := identity.Role.Role
		session.Role = &role
	}
	for _, a := range identity.Assignments {
		session.Assignments = append(session.Assignments, dto.AssignmentDTO{BusinessUnitID: a.BusinessUnitID})
	}

	return ctx.JSON(http.StatusOK, session)
}
