package config

import (
	"contacts-web-server/migrations"
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

type Database struct {
	*sqlx.DB
}

func NewDatabaseConnection(dbDriver string, dbConnectionStr string) (*Database, error) {
	database, err := sqlx.Connect(dbDriver, dbConnectionStr)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("ошибка пинга БД: %w", err)
	}

	zap.L().Info("подключение к БД успешно выполнено")
	return &Database{
		database,
	}, nil
}

// MigrateDatabase : накатывает встроенные миграции goose
func MigrateDatabase(db *Database) error {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("ошибка установки диалекта миграций: %w", err)
	}

	if err := goose.Up(db.DB.DB, "."); err != nil {
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}

	zap.L().Info("миграции применены")
	return nil
}

// HealthCheck : проверяет, что БД отвечает на запросы
func (db *Database) HealthCheck(ctx context.Context) error {
	var result int
	if err := db.GetContext(ctx, &result, "SELECT 1"); err != nil {
		return fmt.Errorf("ошибка проверки БД: %w", err)
	}
	return nil
}

func (db *Database) Close() error {
	err := db.DB.Close()
	if err != nil {
		return fmt.Errorf("ошибка закрытия соединения с БД: %w", err)
	}

	return nil
}
