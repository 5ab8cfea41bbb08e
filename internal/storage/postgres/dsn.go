package postgres

import (
	"fmt"

	"github.com/GoSim-25-26J-441/supplynet-backend/config"
)

// DSN is the lib/pq connection string for the supply_networks store. DB_DSN
// wins; otherwise the DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME parts are
// joined with TLS off for local databases.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)
}
