package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr          string        `env:"HTTP_ADDR" envDefault:":8080"`
	GinMode           string        `env:"GIN_MODE" envDefault:"release"`
	StrictStatusCodes bool          `env:"STRICT_STATUS_CODES" envDefault:"false"`
	AutoMigrate       bool          `env:"AUTO_MIGRATE" envDefault:"true"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Log               Log
	Postgres          Postgres
}

type Log struct {
	Level    string `env:"LOG_LEVEL" envDefault:"info"`
	Encoding string `env:"LOG_ENCODING" envDefault:"json"`
}

type Postgres struct {
	DSN             string        `env:"DB_DSN"`
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            int           `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD"`
	DbName          string        `env:"DB_NAME" envDefault:"stocks"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	TimeZone        string        `env:"DB_TIMEZONE" envDefault:"Asia/Kolkata"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"30m"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// ConnString returns DB_DSN when set, otherwise a keyword/value DSN built
// from the individual DB_* settings.
func (p Postgres) ConnString() string {
	if p.DSN != "" {
		return p.DSN
	}
	dsn := fmt.Sprintf("host=%s user=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		p.Host,
		p.User,
		p.DbName,
		p.Port,
		p.SSLMode,
		p.TimeZone,
	)
	if p.Password != "" {
		dsn += " password=" + p.Password
	}
	return dsn
}

// Load reads envFile (if it exists) into the process environment and then
// parses the environment. A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
