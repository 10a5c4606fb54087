package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"hotel-backoffice/internal/repositories"
	"hotel-backoffice/pkg/config"
)

// SeedCore — роли, бизнес-юниты и администратор, назначенный на все юниты.
// Возвращает id пользователей, чьи сессии надо сбросить в кеше.
func SeedCore(ctx context.Context, txManager repositories.TxManagerInterface, cfg *config.Config) ([]string, error) {
	log.Println("▶️  Запуск наполнения базовых справочников...")

	var userIDs []string
	err := txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := seedRoles(ctx, tx); err != nil {
			return fmt.Errorf("роли: %w", err)
		}
		if err := seedBusinessUnits(ctx, tx); err != nil {
			return fmt.Errorf("бизнес-юниты: %w", err)
		}
		adminID, err := seedAdmin(ctx, tx, cfg.Seed)
		if err != nil {
			return fmt.Errorf("администратор: %w", err)
		}
		userIDs = append(userIDs, adminID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Println("✅ Наполнение базовых справочников завершено!")
	return userIDs, nil
}

// SeedDemo — демо-данные: сотрудники, склад, меню, каталог, счета. Требует SeedCore.
func SeedDemo(ctx context.Context, txManager repositories.TxManagerInterface) ([]string, error) {
	log.Println("▶️  Запуск наполнения демо-данных...")

	var userIDs []string
	err := txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		ids, err := seedDemoUsers(ctx, tx)
		if err != nil {
			return fmt.Errorf("пользователи: %w", err)
		}
		userIDs = ids

		steps := []struct {
			name string
			fn   func(context.Context, pgx.Tx) error
		}{
			{"единицы измерения", seedUoMs},
			{"склад", seedInventory},
			{"меню", seedMenu},
			{"каталог", seedCatalog},
			{"счета", seedInvoices},
		}
		for _, step := range steps {
			log.Printf("  - %s...", step.name)
			if err := step.fn(ctx, tx); err != nil {
				return fmt.Errorf("%s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Println("✅ Наполнение демо-данных завершено!")
	return userIDs, nil
}
