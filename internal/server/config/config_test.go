package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "stocktake.db", cfg.DSN)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 120, cfg.WriteRateLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.ShowVersion)
}

func TestLoad_EnvAndFlags(t *testing.T) {
	env := envMap(map[string]string{
		"STOCKTAKE_ADDR":       ":9000",
		"STOCKTAKE_DB_DRIVER":  "mysql",
		"STOCKTAKE_DB_DSN":     "root:root@tcp(db:3306)/stocktake",
		"STOCKTAKE_REDIS_ADDR": "redis:6379",
		"STOCKTAKE_API_KEY":    "env-key",
		"STOCKTAKE_WRITE_RATE": "30",
	})

	cfg, err := Load([]string{"--api-key", "flag-key"}, env)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, DriverMySQL, cfg.Driver)
	assert.Equal(t, "root:root@tcp(db:3306)/stocktake", cfg.DSN)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	// флаг имеет приоритет над переменной окружения
	assert.Equal(t, "flag-key", cfg.APIKey)
	assert.Equal(t, 30, cfg.WriteRateLimit)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		env  map[string]string
		name string
		args []string
	}{
		{name: "unknown driver", args: []string{"--driver", "postgres"}},
		{name: "empty dsn", args: []string{"--dsn", ""}},
		{name: "bad rate env", env: map[string]string{"STOCKTAKE_WRITE_RATE": "many"}},
		{name: "zero rate flag", args: []string{"--write-rate", "0"}},
		{name: "unknown flag", args: []string{"--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, envMap(tt.env))
			assert.Error(t, err)
		})
	}

	_, err := Load([]string{"--driver", "postgres"}, envMap(nil))
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
