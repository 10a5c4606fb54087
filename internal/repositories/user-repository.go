package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"hotel-backoffice/internal/entities"
	"hotel-backoffice/internal/infrastructure/bd"
)

type UserRepositoryInterface interface {
	FindUserByUsername(ctx context.Context, username string) (*entities.User, error)
	FindUserByID(ctx context.Context, id string) (*entities.User, error)
	GetAssignments(ctx context.Context, userID string) ([]entities.Assignment, error)
}

type UserRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewUserRepository(storage Querier, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	var roleID *uint64
	var roleName *string

	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt,
		&roleID, &roleName,
	)
	if err != nil {
		return nil, err
	}

	if roleID != nil && roleName != nil {
		u.RoleID = roleID
		u.Role = &entities.Role{ID: *roleID, Role: *roleName}
	}
	return &u, nil
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Eq) (*entities.User, error) {
	query, args, err := bd.Psql().
		Select(
			"u.id", "u.username", "u.password_hash", "u.is_active",
			"u.created_at", "u.updated_at",
			"r.id", "r.role",
		).
		From("users AS u").
		LeftJoin("roles r ON u.role_id = r.id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	user, err := r.findOne(ctx, sq.Eq{"u.username": username})
	if err != nil {
		return nil, ClassifyError(err, "user", username)
	}
	return user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := r.findOne(ctx, sq.Eq{"u.id": id})
	if err != nil {
		return nil, ClassifyError(err, "user", id)
	}
	return user, nil
}

func (r *UserRepository) GetAssignments(ctx context.Context, userID string) ([]entities.Assignment, error) {
	query, args, err := bd.Psql().
		Select("a.user_id", "a.business_unit_id").
		From("user_business_unit_assignments AS a").
		Where(sq.Eq{"a.user_id": userID}).
		OrderBy("a.business_unit_id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, ClassifyError(err, "assignments", userID)
	}
	defer rows.Close()

	assignments := make([]entities.Assignment, 0)
	for rows.Next() {
		var a entities.Assignment
		if err := rows.Scan(&a.UserID, &a.BusinessUnitID); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
