package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "000_create_accounts",
		sql: `
			CREATE TABLE IF NOT EXISTS accounts (
				id            CHAR(36) PRIMARY KEY,
				email         VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				created_at    DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at    DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
			)`,
	},
	{
		version: "001_create_check_ins",
		sql: `
			CREATE TABLE IF NOT EXISTS check_ins (
				id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				uuid       CHAR(36) NOT NULL UNIQUE,
				user_id    CHAR(36) NOT NULL,
				mood       VARCHAR(30) NOT NULL,
				symptoms   JSON NOT NULL,
				journal    TEXT NOT NULL,
				created_at DATETIME(6) NOT NULL,
				UNIQUE KEY uq_check_ins_user_created (user_id, created_at),
				FOREIGN KEY (user_id) REFERENCES accounts(id) ON DELETE CASCADE
			)`,
	},
	{
		version: "002_create_metric_snapshots",
		sql: `
			CREATE TABLE IF NOT EXISTS metric_snapshots (
				id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				user_id     CHAR(36) NOT NULL,
				weight_kg   DOUBLE NOT NULL,
				bmi         DOUBLE NOT NULL,
				bfp         DOUBLE NOT NULL,
				computed_at DATETIME(6) NOT NULL,
				INDEX idx_metric_snapshots_user (user_id, computed_at),
				FOREIGN KEY (user_id) REFERENCES accounts(id) ON DELETE CASCADE
			)`,
	},
	{
		version: "003_create_user_preferences",
		sql: `
			CREATE TABLE IF NOT EXISTS user_preferences (
				user_id    CHAR(36) PRIMARY KEY,
				data       JSON NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES accounts(id) ON DELETE CASCADE
			)`,
	},
}

// RunMigrations applies every migration not yet listed in schema_migrations,
// in declaration order. Each migration and its bookkeeping row commit together.
func RunMigrations(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	pending := 0
	for _, m := range migrations {
		var applied int
		if err := db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.version,
		).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %s: %w", m.version, err)
		}
		if applied > 0 {
			logger.Debug("migration already applied", zap.String("version", m.version))
			continue
		}

		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("migration %s: %w", m.version, err)
		}
		pending++
		logger.Info("applied migration", zap.String("version", m.version))
	}

	logger.Info("schema up to date", zap.Int("applied", pending), zap.Int("known", len(migrations)))
	return nil
}

func apply(ctx context.Context, db *sql.DB, m migration) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, stmt := range strings.Split(m.sql, ";") {
		if stmt = strings.TrimSpace(stmt); stmt == "" {
			continue
		}
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if _, err = tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
		return err
	}
	return tx.Commit()
}
