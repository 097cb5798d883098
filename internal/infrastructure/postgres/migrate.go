package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/rjfoods/storefront-api/pkg/config"
)

// Migrate applies pending migrations from cfg.MigrationsPath. A database that is
// already up to date is not an error.
func Migrate(cfg config.DBConfig) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, migrateDSN(cfg))
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// migrateDSN rewrites the connection string for the migrate pgx/v5 driver.
// Only that driver is registered, so a postgres:// or postgresql:// URL must
// have its scheme replaced with pgx5://.
func migrateDSN(cfg config.DBConfig) string {
	if cfg.DatabaseURL != "" {
		if rest, ok := strings.CutPrefix(cfg.DatabaseURL, "postgresql://"); ok {
			return "pgx5://" + rest
		}
		if rest, ok := strings.CutPrefix(cfg.DatabaseURL, "postgres://"); ok {
			return "pgx5://" + rest
		}
		return cfg.DatabaseURL
	}
	return fmt.Sprintf("pgx5://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)
}
