package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "procurement-system", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "procurement", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 4, cfg.Approval.MaxChainDepth)
		assert.True(t, decimal.NewFromInt(100000).Equal(cfg.Spend.Threshold))
		assert.Equal(t, "UTC", cfg.Spend.TimeZone)
		assert.Equal(t, 15*time.Minute, cfg.Storage.PresignExpiry)
		assert.False(t, cfg.Mail.Configured())
		assert.Equal(t, "", cfg.Redis.Host)
	})

	t.Run("loads values from environment variables with PROC prefix", func(t *testing.T) {
		t.Setenv("PROC_APP_NAME", "test-app")
		t.Setenv("PROC_APP_ENV", "testing")
		t.Setenv("PROC_DATABASE_HOST", "testdb.local")
		t.Setenv("PROC_DATABASE_PORT", "5433")
		t.Setenv("PROC_DATABASE_MAX_OPEN_CONNS", "50")
		t.Setenv("PROC_DATABASE_MAX_IDLE_CONNS", "10")
		t.Setenv("PROC_APPROVAL_MAX_CHAIN_DEPTH", "6")
		t.Setenv("PROC_SPEND_THRESHOLD", "250000.50")
		t.Setenv("PROC_SPEND_TIME_ZONE", "Asia/Tokyo")
		t.Setenv("PROC_MAIL_HOST", "smtp.example.com")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.Equal(t, 6, cfg.Approval.MaxChainDepth)
		assert.Equal(t, "250000.5", cfg.Spend.Threshold.String())
		assert.Equal(t, "Asia/Tokyo", cfg.Spend.Location().String())
		assert.True(t, cfg.Mail.Configured())
	})

	t.Run("rejects a non-numeric spend threshold", func(t *testing.T) {
		t.Setenv("PROC_SPEND_THRESHOLD", "lots")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spend.threshold")
	})

	t.Run("rejects an unknown time zone", func(t *testing.T) {
		t.Setenv("PROC_SPEND_TIME_ZONE", "Mars/Olympus")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spend.time_zone")
	})

	t.Run("rejects an unknown database driver", func(t *testing.T) {
		t.Setenv("PROC_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		t.Setenv("PROC_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("PROC_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		t.Setenv("PROC_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	setValidProductionBase := func(t *testing.T) {
		t.Setenv("PROC_APP_ENV", "production")
		t.Setenv("PROC_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		t.Setenv("PROC_DATABASE_PASSWORD", "secure-password")
		t.Setenv("PROC_DATABASE_SSLMODE", "require")
		t.Setenv("PROC_SWAGGER_ENABLED", "false")
	}

	t.Run("passes validation with valid production config", func(t *testing.T) {
		setValidProductionBase(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})

	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"requires jwt.secret", map[string]string{"PROC_JWT_SECRET": ""}, "jwt.secret is required in production"},
		{"requires a long jwt.secret", map[string]string{"PROC_JWT_SECRET": "short"}, "at least 32 characters"},
		{"requires database.password", map[string]string{"PROC_DATABASE_PASSWORD": ""}, "database.password is required"},
		{"requires SSL", map[string]string{"PROC_DATABASE_SSLMODE": "disable"}, "sslmode cannot be 'disable'"},
		{"refuses sqlite", map[string]string{"PROC_DATABASE_DRIVER": "sqlite"}, "must be postgres in production"},
		{"refuses unprotected swagger", map[string]string{"PROC_SWAGGER_ENABLED": "true"}, "swagger endpoint must be disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setValidProductionBase(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid postgres DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost:5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{Host: "localhost", Port: 5432, User: "user", Password: "pass@word#123", DBName: "db", SSLMode: "disable"}
		assert.Contains(t, cfg.DSN(), "pass%40word%23123")
	})

	t.Run("sqlite uses the database name as file", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: "sqlite", DBName: ":memory:"}
		assert.Equal(t, ":memory:", cfg.DSN())
	})
}

func TestSpendConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, SpendConfig{}.Location())
	assert.Equal(t, time.UTC, SpendConfig{TimeZone: "nowhere"}.Location())
	assert.Equal(t, "Europe/Berlin", SpendConfig{TimeZone: "Europe/Berlin"}.Location().String())
}
