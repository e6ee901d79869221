package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/yusufkecer/wellness-backend/internal/config"
)

const (
	pingAttempts = 5
	pingBackoff  = 2 * time.Second
)

// Connect opens the MySQL pool and waits for the server to answer, retrying
// a few times so the API can start alongside a database container.
func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			break
		}
		if attempt == pingAttempts {
			db.Close()
			return nil, fmt.Errorf("ping mysql after %d attempts: %w", attempt, err)
		}
		logger.Warn("mysql not ready", zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(pingBackoff):
		}
	}

	logger.Info("mysql connected", zap.String("host", cfg.DBHost), zap.String("database", cfg.DBName))
	return db, nil
}
