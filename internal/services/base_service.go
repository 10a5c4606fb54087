package services

import (
	"context"

	"go.uber.org/zap"

	"hotel-backoffice/internal/authz"
	"hotel-backoffice/internal/entities"
	apperrors "hotel-backoffice/pkg/errors"
	"hotel-backoffice/pkg/utils"
)

var denyMessages = map[authz.DenyReason]string{
	authz.ReasonBusinessUnitNotAssigned: "Forbidden: no access to this business unit",
	authz.ReasonRoleNotPermitted:        "Forbidden: role is not permitted for this resource",
}

type BaseService struct {
	logger *zap.Logger
}

func NewBaseService(logger *zap.Logger) BaseService {
	return BaseService{logger: logger}
}

// Authorize берёт Identity из контекста и прогоняет её через authz.Authorize.
// Отказ — 403 с причиной в сообщении.
func (s *BaseService) Authorize(ctx context.Context, businessUnitID string, policy authz.Policy) (*entities.Identity, error) {
	identity, err := utils.GetIdentityFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	decision := authz.Authorize(identity, businessUnitID, policy)
	if !decision.Allowed {
		s.logger.Warn("Отказано в доступе",
			zap.String("userID", identity.UserID),
			zap.String("businessUnitID", businessUnitID),
			zap.String("policy", policy.Name),
			zap.String("reason", string(decision.Reason)),
		)
		return nil, apperrors.NewForbiddenError(denyMessages[decision.Reason])
	}
	return identity, nil
}
