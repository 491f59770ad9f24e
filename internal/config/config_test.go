package config

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIsolation(t *testing.T) {
	tests := []struct {
		in      string
		want    sql.IsolationLevel
		wantErr bool
	}{
		{in: "", want: sql.LevelRepeatableRead},
		{in: "repeatable-read", want: sql.LevelRepeatableRead},
		{in: "READ-COMMITTED", want: sql.LevelReadCommitted},
		{in: " serializable ", want: sql.LevelSerializable},
		{in: "snapshot", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseIsolation(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_TX_ISOLATION", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Asia/Jakarta", cfg.DefaultTimezone)
	assert.Equal(t, sql.LevelRepeatableRead, cfg.DB.TxIsolation)
	assert.NotEmpty(t, cfg.Auth.Secret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_TX_ISOLATION", "serializable")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("JWT_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 7, cfg.DB.MaxOpenConns)
	assert.Equal(t, sql.LevelSerializable, cfg.DB.TxIsolation)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TTL)
}

func TestLoadRejects(t *testing.T) {
	t.Run("isolation tidak dikenal", func(t *testing.T) {
		t.Setenv("DB_TX_ISOLATION", "chaos")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production tanpa secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "")
		t.Setenv("AUTH_ENABLED", "true")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("timezone salah", func(t *testing.T) {
		t.Setenv("DEFAULT_TIMEZONE", "Bumi/Datar")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("timezone Local", func(t *testing.T) {
		t.Setenv("DEFAULT_TIMEZONE", "Local")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestGetDSN(t *testing.T) {
	c := DBConfig{User: "u", Password: "p", Host: "db", Port: "3306", Name: "clinic"}
	assert.Equal(t, "u:p@tcp(db:3306)/clinic?charset=utf8mb4&parseTime=True&loc=UTC", c.GetDSN())

	c.DSN = "custom"
	assert.Equal(t, "custom", c.GetDSN())
}
