package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "9090"
  mode: production
jwt:
  secret: file-secret
admin:
  emails:
    - root@club.test
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ADMIN_EMAILS", "a@club.test, b@club.test")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	// environment wins over the file
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, []string{"a@club.test", "b@club.test"}, cfg.Admin.Emails)
	// defaults survive for untouched fields
	assert.Equal(t, "clubhub", cfg.Database.DBName)
	assert.Equal(t, "clubhub.app", cfg.JWT.Issuer)
}

func TestLoadConfigMissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "only-env")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "only-env", cfg.JWT.Secret)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "club"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "clubhub"

	assert.Equal(t, "postgres://club:pw@db.internal:5433/clubhub?sslmode=disable", cfg.GetPostgresConnectionString())
}
