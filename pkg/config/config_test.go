package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "orphanage-service", cfg.ServiceName)
	assert.Equal(t, "3333", cfg.Server.Port)
	assert.Equal(t, "http://localhost:3333", cfg.App.URL)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, "orphanage", cfg.Metrics.Prefix)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("APP_URL", "https://happy.example.com")
	t.Setenv("UPLOAD_DIR", "/var/lib/orphanage/uploads")
	t.Setenv("DB_MAX_IDLE_CONNS", "5")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")
	t.Setenv("DB_LOG_LEVEL", "silent")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "https://happy.example.com", cfg.App.URL)
	assert.Equal(t, "/var/lib/orphanage/uploads", cfg.Upload.Dir)
	assert.Equal(t, 5, cfg.DB.MaxIdleConns)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, logger.Silent, cfg.DB.LogLevel)
}

func TestAppURLFollowsPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	// Unless APP_URL is set explicitly, image links point at the listen port.
	assert.Equal(t, "http://localhost:9090", cfg.App.URL)
}

func TestGetDSN(t *testing.T) {
	db := DBConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "happy",
		Password: "secret",
		DBName:   "orphanages",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=happy password=secret dbname=orphanages sslmode=require",
		db.GetDSN())
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("DB_LOG_LEVEL", "chatty")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.DB.MaxIdleConns)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, logger.Info, cfg.DB.LogLevel)
}
