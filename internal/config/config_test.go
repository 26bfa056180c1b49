package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5432/api", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, models.DefaultRoles, cfg.Roles)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("LIBADMIN_BASE_URL", "http://library.test/api")
	t.Setenv("LIBADMIN_TIMEOUT", "5s")
	t.Setenv("LIBADMIN_ROLES", "admin,librarian")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://library.test/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"admin", "librarian"}, cfg.Roles)

	apiCfg := cfg.API()
	assert.Equal(t, "http://library.test/api", apiCfg.BaseURL)
	assert.Equal(t, 5*time.Second, apiCfg.Timeout)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libadmin.yml")
	content := "base_url: http://file.test/api\ntimeout: 10s\noutput: json\nroles:\n  - admin\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://file.test/api", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, []string{"admin"}, cfg.Roles)

	t.Setenv("LIBADMIN_BASE_URL", "http://env.test/api")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.test/api", cfg.BaseURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestUsage(t *testing.T) {
	assert.Contains(t, Usage(), "LIBADMIN_BASE_URL")
}
