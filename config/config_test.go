package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigPoolDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 25, cfg.DBMaxConns)
	assert.Equal(t, 5, cfg.DBMinConns)
}

func TestLoadConfigPoolFromEnv(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_MIN_CONNS", "10")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 50, cfg.DBMaxConns)
	assert.Equal(t, 10, cfg.DBMinConns)
}

func TestGetEnvIntIgnoresInvalid(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 25, cfg.DBMaxConns)
}
