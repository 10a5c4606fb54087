package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	"hotel-backoffice/internal/repositories"
	apperrors "hotel-backoffice/pkg/errors"
)

type SessionServiceInterface interface {
	ResolveIdentity(ctx context.Context, userID string) (*entities.Identity, error)
	InvalidateIdentity(ctx context.Context, userID string) error
}

type SessionService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewSessionService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) SessionServiceInterface {
	return &SessionService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func identityCacheKey(userID string) string {
	return fmt.Sprintf("auth:identity:user:%s", userID)
}

// ResolveIdentity: сначала Redis, потом БД. Отключённый пользователь — ErrUnauthorized.
// Недоступный кеш не ломает запрос, только пишет в лог.
func (s *SessionService) ResolveIdentity(ctx context.Context, userID string) (*entities.Identity, error) {
	cacheKey := identityCacheKey(userID)

	// 1. Попытка получить данные из Redis-кеша
	cached, errGet := s.cacheRepo.Get(ctx, cacheKey)
	if errGet == nil {
		var identity entities.Identity
		if err := json.Unmarshal([]byte(cached), &identity); err == nil {
			s.logger.Debug("SessionService: Сессия найдена в кеше", zap.String("userID", userID))
			return &identity, nil
		} else {
			s.logger.Warn("SessionService: Ошибка при десериализации сессии из кеша", zap.Error(err), zap.String("key", cacheKey))
		}
	} else if !errors.Is(errGet, repositories.ErrCacheMiss) {
		s.logger.Warn("SessionService: Кеш недоступен, идём в БД", zap.Error(errGet))
	}

	// 2. Собираем Identity из БД
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}

	assignments, err := s.userRepo.GetAssignments(ctx, userID)
	if err != nil {
		s.logger.Error("SessionService: Не удалось получить назначения пользователя", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	identity := &entities.Identity{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
		Assignments: assignments,
	}

	// 3. Кешируем
	payload, errMarshal := json.Marshal(identity)
	if errMarshal != nil {
		s.logger.Error("SessionService: Не удалось сериализовать сессию", zap.Error(errMarshal))
		return identity, nil
	}
	if errSet := s.cacheRepo.Set(ctx, cacheKey, string(payload), s.cacheTTL); errSet != nil {
		s.logger.Warn("SessionService: Не удалось сохранить сессию в кеш", zap.String("userID", userID), zap.Error(errSet))
	}

	return identity, nil
}

func (s *SessionService) InvalidateIdentity(ctx context.Context, userID string) error {
	if err := s.cacheRepo.Del(ctx, identityCacheKey(userID)); err != nil {
		s.logger.Error("SessionService: Ошибка инвалидации кеша сессии", zap.String("userID", userID), zap.Error(err))
		return err
	}
	s.logger.Info("SessionService: Кеш сессии инвалидирован", zap.String("userID", userID))
	return nil
}
