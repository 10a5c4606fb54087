package service

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "hotel-backoffice/pkg/errors"
)

type JwtCustomClaim struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateAccessToken(userID string) (string, error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	GetAccessTokenTTL() time.Duration
}

type jwtService struct {
	secretKey      string
	accessTokenExp time.Duration
	logger         *zap.Logger
	now            func() time.Time
}

func NewJWTService(secretKey string, accessTokenExp time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{
		secretKey:      secretKey,
		accessTokenExp: accessTokenExp,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *jwtService) GenerateAccessToken(userID string) (string, error) {
	now := s.now()
	claims := &JwtCustomClaim{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenExp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *jwtService) GetAccessTokenTTL() time.Duration {
	return s.accessTokenExp
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.secretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})
	if err != nil {
		s.logger.Debug("Ошибка парсинга или проверки подписи токена", zap.Error(err))
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperrors.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, apperrors.ErrTokenNotYetValid
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid || claims.UserID == "" {
		s.logger.Warn("Токен невалиден или не удалось извлечь claims")
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
