package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "tours"
password = "secret"
dbname = "tours"
sslmode = "disable"

[admin]
username = "admin"
password = "admin123"

[session]
secret = "file-secret"

[catalog]
states = ["Karnataka", "Kerala"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	// значения по умолчанию сохраняются для незаданных ключей
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, []string{"Karnataka", "Kerala"}, cfg.Catalog.States)
	assert.Equal(t, "host=db port=5433 user=tours password=secret dbname=tours sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("DB_PORT", "6000")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Session.Secret)
	assert.Equal(t, 6000, cfg.Database.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Session.Secret = "s"
	cfg.Admin.Username = "admin"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Admin.PasswordHash = "$2a$10$hash"
	assert.NoError(t, cfg.Validate())
}
