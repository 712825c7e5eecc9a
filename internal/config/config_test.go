package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
api:
  environment: test
  port: "8080"
  base_url: localhost:8080
  allowed_cors_domains:
    - http://localhost:3000

gin:
  mode: test

postgres:
  host: localhost
  port: "5432"
  user: tcg
  password: secret
  db: tcg_tournament
  max_open_conns: 20
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, &APIConfig{
		Environment:        "test",
		Port:               "8080",
		BaseURL:            "localhost:8080",
		AllowedCORSDomains: []string{"http://localhost:3000"},
	}, conf.API)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, 20, conf.Postgres.MaxOpenConns)
	assert.Equal(t, 0, conf.Postgres.MaxIdleConns)
	assert.Equal(t, "host=localhost port=5432 user=tcg password=secret dbname=tcg_tournament sslmode=disable", conf.Postgres.DSN())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("API_PORT", "9090")

	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", conf.Postgres.Host)
	assert.Equal(t, "9090", conf.API.Port)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "api:\n  environment: test\n"))
	assert.ErrorIs(t, err, errMissingPort)

	conf, err := Load(writeConfig(t, "api:\n  port: \"8080\"\n"))
	require.NoError(t, err)
	assert.NotNil(t, conf.Gin)
	assert.NotNil(t, conf.Postgres)
}
