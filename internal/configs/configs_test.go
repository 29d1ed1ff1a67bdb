package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"warung-pos/internal/configs"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := configs.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "warung.db", cfg.DBPath)
	require.Equal(t, time.Duration(0), cfg.CacheTTL)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("POS_DB_PATH", "/tmp/kasir.db")
	t.Setenv("POS_CACHE_TTL", "5m")

	cfg, err := configs.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "/tmp/kasir.db", cfg.DBPath)
	require.Equal(t, 5*time.Minute, cfg.CacheTTL)
}
