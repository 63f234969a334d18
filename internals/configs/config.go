package configs

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// =======================
// TYPED CONFIG
// =======================

type AppConfig struct {
	Timezone        string        `env:"TIMEZONE"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT, default=5s"`
	CorsOrigins     string        `env:"CORS_ORIGINS, default=*"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX, default=100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW, default=1m"`
	JWTSecret       string        `env:"JWT_SECRET"`
}

type PoolConfig struct {
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS, default=20"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS, default=10"`
	ConnMaxIdleTime time.Duration `env:"CONN_MAX_IDLE_TIME, default=60s"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME, default=10m"`
	SlowThreshold   time.Duration `env:"SLOW_THRESHOLD, default=200ms"`
	LogLevel        string        `env:"LOG_LEVEL, default=warn"`
}

type Config struct {
	Port        string     `env:"PORT, default=8000"`
	DatabaseURL string     `env:"DATABASE_URL, default=sqlite:///./hrms.db"`
	App         AppConfig  `env:",prefix=HRMS_"`
	Pool        PoolConfig `env:",prefix=DB_"`
}

// Location resolves HRMS_TIMEZONE. Empty means the process local zone.
func (c AppConfig) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid HRMS_TIMEZONE %q: %w", tz, err)
	}
	return loc, nil
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[INFO] no .env file found, using system environment")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] running on Railway, using system environment")
	}
}

// Load decodes the process environment into Config.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if _, err := cfg.App.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
