package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port    int      `env:"TEST_PORT" envDefault:"8080"`
	Name    string   `env:"TEST_NAME" envDefault:"storefront"`
	Tags    []string `env:"TEST_TAGS" envDefault:"a,b" envSeparator:","`
	Enabled bool     `env:"TEST_ENABLED" envDefault:"false"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "storefront", cfg.Name)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	assert.False(t, cfg.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_PORT", "9090")
	t.Setenv("TEST_TAGS", "x,y,z")
	t.Setenv("TEST_ENABLED", "true")

	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"x", "y", "z"}, cfg.Tags)
	assert.True(t, cfg.Enabled)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("TEST_PORT", "not-a-number")

	var cfg testConfig
	err := Load(&cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
