package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/users-service/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const driverName = "pgx"

// NewPostgres открывает соединение и проверяет его через Ping.
// Закрывать *sql.DB должен тот, кто его создал.
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	return open(ctx, driverName, cfg.DSN())
}

func open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func MustLoad(ctx context.Context, cfg config.DatabaseConfig) *sql.DB {
	db, err := NewPostgres(ctx, cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database: %v", err))
	}
	return db
}
