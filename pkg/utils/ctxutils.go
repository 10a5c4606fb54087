package utils

import (
	"context"

	"hotel-backoffice/internal/entities"
	"hotel-backoffice/pkg/contextkeys"
	apperrors "hotel-backoffice/pkg/errors"
)

func WithIdentity(ctx context.Context, identity *entities.Identity) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, identity.UserID)
	return context.WithValue(ctx, contextkeys.SessionKey, identity)
}

func GetIdentityFromCtx(ctx context.Context) (*entities.Identity, error) {
	identity, ok := ctx.Value(contextkeys.SessionKey).(*entities.Identity)
	if !ok || identity == nil {
		return nil, apperrors.ErrSessionNotFoundInContext
	}
	return identity, nil
}

func GetUserIDFromCtx(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(string)
	if !ok || userID == "" {
		return "", apperrors.ErrSessionNotFoundInContext
	}
	return userID, nil
}

func GetRequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.RequestIDKey).(string)
	return id
}
