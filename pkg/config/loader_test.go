package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/config"
)

type formConfig struct {
	Name        string        `env:"CFGTEST_FORM_NAME" envDefault:"todolistform"`
	Persist     bool          `env:"CFGTEST_FORM_PERSIST" envDefault:"false"`
	SubmitDelay time.Duration `env:"CFGTEST_SUBMIT_DELAY" envDefault:"3s"`
}

type requiredConfig struct {
	URL string `env:"CFGTEST_REQUIRED_URL,required"`
}

type prefixedConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
}

func noEnvFile(t *testing.T) config.Option {
	t.Helper()
	return config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_Defaults(t *testing.T) {
	var cfg formConfig
	require.NoError(t, config.Load(&cfg, noEnvFile(t)))

	assert.Equal(t, "todolistform", cfg.Name)
	assert.False(t, cfg.Persist)
	assert.Equal(t, 3*time.Second, cfg.SubmitDelay)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFGTEST_FORM_NAME", "other")
	t.Setenv("CFGTEST_FORM_PERSIST", "true")
	t.Setenv("CFGTEST_SUBMIT_DELAY", "250ms")

	var cfg formConfig
	require.NoError(t, config.Load(&cfg, noEnvFile(t)))

	assert.Equal(t, "other", cfg.Name)
	assert.True(t, cfg.Persist)
	assert.Equal(t, 250*time.Millisecond, cfg.SubmitDelay)
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg, noEnvFile(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFGTEST_REQUIRED_URL=redis://localhost:6379/1\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CFGTEST_REQUIRED_URL") })

	var cfg requiredConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
	assert.Equal(t, "redis://localhost:6379/1", cfg.URL)
}

func TestLoad_EnvFileDoesNotOverride(t *testing.T) {
	t.Setenv("CFGTEST_FORM_NAME", "from-env")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFGTEST_FORM_NAME=from-file\n"), 0o600))

	var cfg formConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
	assert.Equal(t, "from-env", cfg.Name)
}

func TestLoad_Prefix(t *testing.T) {
	t.Setenv("TODOFORM_HTTP_ADDR", ":9090")

	var cfg prefixedConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("TODOFORM_"), noEnvFile(t)))
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[formConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, noEnvFile(t))
	})
	assert.NotPanics(t, func() {
		var cfg formConfig
		config.MustLoad(&cfg, noEnvFile(t))
	})
}
