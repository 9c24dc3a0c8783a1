package config

import (
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_PostgresWithEnvSecrets(t *testing.T) {
	t.Setenv(EnvDBPassword, "s3cret")
	t.Setenv(EnvSupabaseJWTSecret, "jwt-secret")

	path := writeConfig(t, `
backend = "postgres"

[server]
http_port = 9090

[database]
host = "db"
user = "console"
dbname = "venues"

[venue]
timezone = "America/Santiago"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout, "defaults are kept")
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "jwt-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "host=db port=5432 user=console password=s3cret dbname=venues sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "postgres://console:s3cret@db:5432/venues?sslmode=disable", cfg.Database.MigrateURL())

	loc, err := cfg.Venue.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Santiago", loc.String())
}

func TestLoad_SupabaseRequiresKey(t *testing.T) {
	t.Setenv(EnvSupabaseServiceKey, "")
	t.Setenv(EnvSupabaseJWTSecret, "jwt-secret")

	path := writeConfig(t, `
backend = "supabase"

[supabase]
url = "https://x.supabase.co"
`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "supabase.service_key")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Backend = "mysql"
	cfg.Venue.Timezone = "Mars/Olympus"
	cfg.Gate.SessionTTL = 0

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "backend must be")
	assert.Contains(t, err.Error(), "auth.jwt_secret")
	assert.Contains(t, err.Error(), "venue.timezone")
	assert.Contains(t, err.Error(), "gate.session_ttl")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
