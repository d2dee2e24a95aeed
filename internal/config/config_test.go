package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  port: "9090"
  mode: debug
database:
  driver: sqlite
  path: test.db
jwt:
  secret: dev-secret
  expire_hours: 2
review:
  default_page_size: 20
  max_page_size: 50
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, sampleConfig)
	t.Chdir(dir)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 20, cfg.Review.DefaultPageSize)
	assert.Equal(t, 50, cfg.Review.MaxPageSize)
	assert.Equal(t, 60*time.Second, cfg.Review.CacheTTL())
	assert.Equal(t, "local", cfg.Storage.Type)
}

func TestLoadConfigReleaseRequiresLongSecret(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
database:
  driver: mysql
jwt:
  secret: short
`)
	t.Chdir(dir)

	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "JWT secret is too short")
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Mode: "debug"},
		Database: DatabaseConfig{Driver: "oracle"},
		Review:   ReviewConfig{DefaultPageSize: 10, MaxPageSize: 100},
	}
	assert.ErrorContains(t, cfg.Validate(), "unsupported database driver")
}
