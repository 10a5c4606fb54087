package main

import (
	"context"
	"flag"
	"log"

	"github.com/go-redis/redis/v8"

	"hotel-backoffice/internal/infrastructure/bd"
	"hotel-backoffice/internal/repositories"
	"hotel-backoffice/internal/services"
	"hotel-backoffice/pkg/config"
	"hotel-backoffice/pkg/database/postgresql"
	applogger "hotel-backoffice/pkg/logger"
	"hotel-backoffice/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	// --- Определяем флаги ---
	runCore := flag.Bool("core", false, "Роли, бизнес-юниты и администратор")
	runDemo := flag.Bool("demo", false, "Демо-данные: сотрудники, склад, меню, каталог, счета")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -core -demo)")

	flag.Parse()

	if !*runCore && !*runDemo && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -core")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	ctx := context.Background()
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Server.LogLevel, cfg.Server.LogFile)
	defer logger.Sync()

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if err := bd.RunMigrations(ctx, cfg.Postgres.DSN, logger); err != nil {
		log.Fatalf("❌ Ошибка применения миграций: %v", err)
	}

	txManager := repositories.NewTxManager(dbPool)
	var touchedUsers []string

	log.Println("======================================================")

	if *runAll || *runCore {
		ids, err := seeders.SeedCore(ctx, txManager, cfg)
		if err != nil {
			log.Fatalf("❌ Ошибка наполнения базовых справочников: %v", err)
		}
		touchedUsers = append(touchedUsers, ids...)
		log.Println("======================================================")
	}

	if *runAll || *runDemo {
		ids, err := seeders.SeedDemo(ctx, txManager)
		if err != nil {
			log.Fatalf("❌ Ошибка наполнения демо-данных: %v", err)
		}
		touchedUsers = append(touchedUsers, ids...)
		log.Println("======================================================")
	}

	// Роли и назначения могли поменяться: сбрасываем закешированные сессии.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	sessionService := services.NewSessionService(
		repositories.NewUserRepository(dbPool, logger),
		repositories.NewRedisCacheRepository(redisClient),
		logger,
		cfg.Session.CacheTTL,
	)
	for _, userID := range touchedUsers {
		if err := sessionService.InvalidateIdentity(ctx, userID); err != nil {
			log.Printf("⚠️  Не удалось сбросить кеш сессии %s: %v", userID, err)
		}
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
