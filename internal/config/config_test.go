package config

import (
	"path/filepath"
	"testing"
	"time"

	"homecare-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("JWT_SECRET", "test-secret-0123456789")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "homecare-tracker", cfg.JWTIssuer)
	assert.Equal(t, "homecare-tracker", cfg.JWTAudience)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsDev())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoad_RequiresSecretsAndDatabase(t *testing.T) {
	t.Run("database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("JWT_SECRET", "test-secret-0123456789")
		_, err := Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("short secret", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "file:test.db")
		t.Setenv("JWT_SECRET", "short")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("driver", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DB_DRIVER", "oracle")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})
}

func TestConnectDB_SQLiteMigrateSeedsStatuses(t *testing.T) {
	cfg := &Config{
		Env:         "test",
		DBDriver:    "sqlite",
		DatabaseURL: filepath.Join(t.TempDir(), "config.db"),
	}

	db, err := ConnectDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	// migrate kedua kali tidak boleh gagal atau menduplikasi seed
	require.NoError(t, Migrate(db))

	var statuses []models.AppointmentStatus
	require.NoError(t, db.Order("id").Find(&statuses).Error)
	assert.Equal(t, models.DefaultAppointmentStatuses, statuses)
}
