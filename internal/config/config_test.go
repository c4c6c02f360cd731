package config

import (
	"path/filepath"
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ModePrefixedSettings(t *testing.T) {
	t.Setenv("APP_MODE", " prod ")
	t.Setenv("PROD_DB_NAME", "prenderia_prod")
	t.Setenv("DEV_DB_NAME", "ignored")
	t.Setenv("PROD_JWT_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_MINUTES", "-5")
	t.Setenv("RECONCILE_ENABLED", "false")
	t.Setenv("RECONCILE_CRON", "@hourly")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "prenderia_prod", cfg.Database.DBName)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 480, cfg.JWT.AccessTokenMins)
	assert.False(t, cfg.Reconcile.Enabled)
	assert.Equal(t, "@hourly", cfg.Reconcile.Schedule)
}

func TestLoad_PoolSettings(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("DB_MAX_OPEN_CONNS", "40")
	t.Setenv("DB_MAX_IDLE_CONNS", "zero")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Database.MaxOpenConns)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(DatabaseConfig{
		Host:     "db.local",
		Port:     "3307",
		User:     "prenderia",
		Password: "p@ss:w/rd",
		DBName:   "prenderia",
	})

	mc, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "prenderia", mc.User)
	assert.Equal(t, "p@ss:w/rd", mc.Passwd)
	assert.Equal(t, "tcp", mc.Net)
	assert.Equal(t, "db.local:3307", mc.Addr)
	assert.Equal(t, "prenderia", mc.DBName)
	assert.True(t, mc.ParseTime)
	assert.Equal(t, "utf8mb4", mc.Params["charset"])
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("APP_MODE", "staging")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadClient(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "tok")
	t.Setenv("APP_MODE", "dev")
	t.Setenv("API_BASE_URL", "https://prenderia.example/api/")
	t.Setenv("API_TIMEOUT", "15s")
	t.Setenv("PRENDERIA_TOKEN_FILE", tokenFile)

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "https://prenderia.example/api", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, tokenFile, cfg.TokenFile)
}

func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("PRENDERIA_TOKEN_FILE", filepath.Join(t.TempDir(), "tok"))

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Zero(t, cfg.Timeout)
}

func TestLoadClient_BadTimeout(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("API_TIMEOUT", "soon")
	_, err := LoadClient()
	assert.Error(t, err)
}
