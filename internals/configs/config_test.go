package configs

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "sqlite:///./hrms.db", cfg.DatabaseURL)
	assert.Equal(t, 5*time.Second, cfg.App.RequestTimeout)
	assert.Equal(t, "*", cfg.App.CorsOrigins)
	assert.Equal(t, 100, cfg.App.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.App.RateLimitWindow)
	assert.Empty(t, cfg.App.JWTSecret)
	assert.Equal(t, 20, cfg.Pool.MaxOpenConns)
	assert.Equal(t, 10, cfg.Pool.MaxIdleConns)
	assert.Equal(t, 200*time.Millisecond, cfg.Pool.SlowThreshold)

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":                 "9090",
		"DATABASE_URL":         "postgres://u:p@localhost:5432/hrms",
		"HRMS_TIMEZONE":        "Asia/Jakarta",
		"HRMS_RATE_LIMIT_MAX":  "0",
		"HRMS_JWT_SECRET":      "s3cret",
		"DB_MAX_OPEN_CONNS":    "5",
		"DB_CONN_MAX_LIFETIME": "1h",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost:5432/hrms", cfg.DatabaseURL)
	assert.Equal(t, 0, cfg.App.RateLimitMax)
	assert.Equal(t, "s3cret", cfg.App.JWTSecret)
	assert.Equal(t, 5, cfg.Pool.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.Pool.ConnMaxLifetime)

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"HRMS_TIMEZONE": "Mars/Olympus_Mons",
	}))
	assert.Error(t, err)
}

func TestParseGormLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want gormLogger.LogLevel
	}{
		{"silent", gormLogger.Silent},
		{"ERROR", gormLogger.Error},
		{" info ", gormLogger.Info},
		{"warn", gormLogger.Warn},
		{"", gormLogger.Warn},
		{"verbose", gormLogger.Warn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGormLogLevel(tt.in))
		})
	}
}

func TestGormLoggerLogModeCopies(t *testing.T) {
	base := NewGormLogger(PoolConfig{LogLevel: "warn"}).(*GormLogger)
	quiet := base.LogMode(gormLogger.Silent).(*GormLogger)

	assert.Equal(t, gormLogger.Warn, base.LogLevel)
	assert.Equal(t, gormLogger.Silent, quiet.LogLevel)
	assert.Equal(t, 200*time.Millisecond, quiet.SlowThreshold)
}
