package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"hotel-backoffice/internal/dto"
	"hotel-backoffice/internal/repositories"
	apperrors "hotel-backoffice/pkg/errors"
	"hotel-backoffice/pkg/service"
	"hotel-backoffice/pkg/utils"
)

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
	jwtSvc   service.JWTService
	logger   *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepositoryInterface, jwtSvc service.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSvc: jwtSvc, logger: logger}
}

// Login не различает "нет такого пользователя" и "неверный пароль".
func (s *AuthService) Login(ctx context.Context, req dto.LoginDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		s.logger.Warn("Попытка входа отключённого пользователя", zap.String("username", req.Username))
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtSvc.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Пользователь вошёл в систему", zap.String("userID", user.ID))
	return &dto.TokenDTO{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtSvc.GetAccessTokenTTL().Seconds()),
	}, nil
}
