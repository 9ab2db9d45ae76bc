package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestGetDefaultsWithoutFile(t *testing.T) {
	c, err := Get("")
	require.NoError(t, err)
	assert.Equal(t, "8080", c.ApiPort)
	assert.Equal(t, "sqlite3", c.Database)
	assert.Equal(t, 7, c.Security.ResetCodeLen)
	assert.Equal(t, 10, c.Security.ResetCodeTTLMinutes)
	assert.Equal(t, []string{"*"}, c.CorsOrigins)
}

func TestGetMissingFileIsNotAnError(t *testing.T) {
	c, err := Get(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, "8080", c.ApiPort)
}

func TestGetJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"api_port": "9000",
		"database": "postgres",
		"db_host": "localhost",
		"security": {"jwt_secret": "s3cret", "reset_code_len": 8}
	}`)
	c, err := Get(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", c.ApiPort)
	assert.Equal(t, "postgres", c.Database)
	assert.Equal(t, "s3cret", c.Security.JwtSecret)
	assert.Equal(t, 8, c.Security.ResetCodeLen)
	assert.Equal(t, 12, c.Security.BcryptCost)
}

func TestGetYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
api_port: "7000"
cors_origins:
  - https://renthub.example
redis:
  addr: localhost:6379
  reset_request_limit: 3
images:
  bucket: renthub-images
`)
	c, err := Get(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", c.ApiPort)
	assert.Equal(t, []string{"https://renthub.example"}, c.CorsOrigins)
	assert.Equal(t, "localhost:6379", c.Redis.Addr)
	assert.Equal(t, 3, c.Redis.ResetRequestLimit)
	assert.Equal(t, "renthub-images", c.Images.Bucket)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"api_port": "9000"}`)
	t.Setenv("PORT", "9100")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("AUTOMIGRATE", "1")

	c, err := Get(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", c.ApiPort)
	assert.Equal(t, "from-env", c.Security.JwtSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CorsOrigins)
	assert.True(t, c.AutoMigrate)
}

func TestGetMalformedFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"api_port": `)
	_, err := Get(path)
	assert.Error(t, err)
}
