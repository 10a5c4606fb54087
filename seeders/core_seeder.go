package seeders

import (
	"context"
	"errors"
	"log"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"

	"hotel-backoffice/internal/authz"
	"hotel-backoffice/pkg/config"
	"hotel-backoffice/pkg/utils"
)

func seedRoles(ctx context.Context, tx pgx.Tx) error {
	log.Println("  - Наполнение таблицы 'roles'...")
	for _, role := range rolesData {
		if _, err := tx.Exec(ctx, `INSERT INTO roles (role) VALUES ($1) ON CONFLICT (role) DO NOTHING`, string(role)); err != nil {
			return err
		}
	}
	return nil
}

func seedBusinessUnits(ctx context.Context, tx pgx.Tx) error {
	log.Println("  - Наполнение таблицы 'business_units'...")
	query := `INSERT INTO business_units (id, name, location) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, location = EXCLUDED.location`
	for _, bu := range businessUnitsData {
		location := null.NewString(bu.Location, bu.Location != "")
		if _, err := tx.Exec(ctx, query, seedID("business_unit", bu.Name), bu.Name, location); err != nil {
			return err
		}
	}
	return nil
}

// upsertUser создаёт пользователя или обновляет роль/пароль существующего. Возвращает id.
func upsertUser(ctx context.Context, tx pgx.Tx, username, password string, role authz.RoleName) (string, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO users (id, username, password_hash, role_id, is_active)
		VALUES ($1, $2, $3, (SELECT id FROM roles WHERE role = $4), TRUE)
		ON CONFLICT (username) DO UPDATE
			SET password_hash = EXCLUDED.password_hash,
			    role_id = EXCLUDED.role_id,
			    is_active = TRUE,
			    updated_at = NOW()
		RETURNING id::text`,
		seedID("user", username), username, hash, string(role),
	).Scan(&id)
	return id, err
}

func assignUser(ctx context.Context, tx pgx.Tx, userID string, units []string) error {
	for _, unit := range units {
		_, err := tx.Exec(ctx,
			`INSERT INTO user_business_unit_assignments (user_id, business_unit_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, seedID("business_unit", unit),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, tx pgx.Tx, cfg config.SeedConfig) (string, error) {
	log.Printf("  - Создание администратора '%s'...", cfg.AdminUsername)
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return "", errors.New("не заданы SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD")
	}

	adminID, err := upsertUser(ctx, tx, cfg.AdminUsername, cfg.AdminPassword, authz.RoleAdmin)
	if err != nil {
		return "", err
	}

	units := make([]string, 0, len(businessUnitsData))
	for _, bu := range businessUnitsData {
		units = append(units, bu.Name)
	}
	if err := assignUser(ctx, tx, adminID, units); err != nil {
		return "", err
	}
	return adminID, nil
}
