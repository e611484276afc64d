package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.StrictStatusCodes)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 30*time.Minute, cfg.Postgres.ConnMaxLifetime)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STRICT_STATUS_CODES", "true")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("PG_MAX_OPEN_CONNS", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.True(t, cfg.StrictStatusCodes)
	assert.Equal(t, 6543, cfg.Postgres.Port)
	assert.Equal(t, 3, cfg.Postgres.MaxOpenConns)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	_, err := Load("")
	assert.Error(t, err)
}

func TestPostgres_ConnString(t *testing.T) {
	tests := []struct {
		name string
		pg   Postgres
		want string
	}{
		{
			name: "Composed",
			pg: Postgres{
				Host: "db", User: "u", DbName: "stocks", Port: 5432,
				SSLMode: "disable", TimeZone: "UTC",
			},
			want: "host=db user=u dbname=stocks port=5432 sslmode=disable TimeZone=UTC",
		},
		{
			name: "WithPassword",
			pg: Postgres{
				Host: "db", User: "u", Password: "secret", DbName: "stocks", Port: 5432,
				SSLMode: "disable", TimeZone: "UTC",
			},
			want: "host=db user=u dbname=stocks port=5432 sslmode=disable TimeZone=UTC password=secret",
		},
		{
			name: "ExplicitDSN",
			pg:   Postgres{DSN: "postgres://u:p@db:5432/stocks", Host: "ignored"},
			want: "postgres://u:p@db:5432/stocks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pg.ConnString())
		})
	}
}
