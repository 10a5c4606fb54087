package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	apperrors "hotel-backoffice/pkg/errors"
)

func TestUoMService_DeleteUoM(t *testing.T) {
	dbDown := errors.New("db down")

	tests := []struct {
		name     string
		repoErr  error
		wantCode int
		wantMsg  string
		wantErr  error
	}{
		{name: "успех"},
		{name: "используется", repoErr: apperrors.ErrConflict, wantCode: http.StatusConflict, wantMsg: UoMInUseMessage},
		{name: "не найдена", repoErr: apperrors.ErrNotFound, wantCode: http.StatusNotFound, wantMsg: "UoM not found"},
		{name: "ошибка БД пробрасывается", repoErr: dbDown, wantErr: dbDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUoMRepo)
			repo.On("DeleteUoM", mock.Anything, "uom-1").Return(tt.repoErr)
			svc := NewUoMService(repo, zap.NewNop())

			err := svc.DeleteUoM(ctxAs(staffIn("Manager", "bu-1")), "bu-1", "uom-1")

			switch {
			case tt.wantCode != 0:
				var httpErr *apperrors.HttpError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, tt.wantCode, httpErr.Code)
				assert.Equal(t, tt.wantMsg, httpErr.Message)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestUoMService_DeleteUoM_Forbidden(t *testing.T) {
	repo := new(mockUoMRepo)
	svc := NewUoMService(repo, zap.NewNop())

	err := svc.DeleteUoM(ctxAs(staffIn("Admin", "bu-1")), "bu-2", "uom-1")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	repo.AssertNotCalled(t, "DeleteUoM", mock.Anything, mock.Anything)
}

func TestUoMService_GetUoMs_Global(t *testing.T) {
	repo := new(mockUoMRepo)
	repo.On("ListUoMs", mock.Anything).Return([]entities.UoM{
		{ID: "u-1", Name: "Bottle", Symbol: "btl"},
		{ID: "u-2", Name: "Kilogram", Symbol: "kg"},
	}, nil)
	svc := NewUoMService(repo, zap.NewNop())

	list, err := svc.GetUoMs(ctxAs(staffIn("Staff", "bu-1")), "bu-1")

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bottle", list[0].Name)
	repo.AssertExpectations(t)
}
