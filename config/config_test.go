package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"STORE_DRIVER", "AUTOSAVE_DEBOUNCE", "DB_DSN", "SIM_ENGINE_RPS", "CORS_ALLOWED_ORIGINS",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "AUTOSAVE_ERROR_RESET"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, StorePostgres, cfg.Store.Driver)
	assert.Equal(t, 3*time.Second, cfg.Autosave.Debounce)
	assert.Equal(t, 3*time.Second, cfg.Autosave.ErrorReset)
	assert.Equal(t, 2.0, cfg.Engine.RPS)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "supplynet", cfg.Database.Name)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/nets.db")
	t.Setenv("AUTOSAVE_DEBOUNCE", "5")
	t.Setenv("SESSION_IDLE_TTL", "90m")
	t.Setenv("SIM_ENGINE_RPS", "oops")
	t.Setenv("REDIS_DB", "x")
	t.Setenv("DB_DSN", "postgres://u@db/supplynet")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/nets.db", cfg.Store.SQLitePath)
	assert.Equal(t, 5*time.Second, cfg.Autosave.Debounce)
	assert.Equal(t, 90*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, 2.0, cfg.Engine.RPS, "invalid number falls back")
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, "postgres://u@db/supplynet", cfg.Database.DSN)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		t.Setenv("STORE_DRIVER", "")
		return FromEnv()
	}

	cfg := base()
	cfg.Store.Driver = "mongo"
	assert.ErrorContains(t, cfg.Validate(), "STORE_DRIVER")

	cfg = base()
	cfg.Store.Driver = StoreRedis
	cfg.Redis.Addr = ""
	assert.ErrorContains(t, cfg.Validate(), "REDIS_ADDR")

	cfg = base()
	cfg.Engine.URL = ""
	assert.ErrorContains(t, cfg.Validate(), "SIM_ENGINE_URL")

	cfg = base()
	cfg.Server.Port = ""
	assert.ErrorContains(t, cfg.Validate(), "PORT")

	cfg = base()
	cfg.Autosave.Debounce = 0
	assert.Error(t, cfg.Validate())
}
