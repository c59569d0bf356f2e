package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gelaxyai/gelaxy/internal/errors"
)

// isolate points every file lookup at an empty temp dir and clears the
// environment variables Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{
		"GELAXY_BACKEND", "GELAXY_ENDPOINT", "GELAXY_LANGUAGE", "GELAXY_LOCALE",
		"GELAXY_TIMEOUT", "GELAXY_OPENAI_API_KEY", "OPENAI_API_KEY",
		"GELAXY_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY", "GELAXY_SIDEBAR",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(NewViper(), LoadOptions{EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, BackendEndpoint, cfg.Backend)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, "javascript", cfg.Language)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.True(t, cfg.SidebarOpen)
	assert.False(t, cfg.Notifications)
	assert.Equal(t, DefaultMaxTokens, cfg.Sampling.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Sampling.Temperature, 0.0001)
	assert.Equal(t, "gpt-4", cfg.OpenAI.Model)
	assert.Empty(t, cfg.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DefaultConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "gelaxy", "config.yaml")
	writeFile(t, path, `
backend: demo
language: python
locale: ru
timeout: 30s
sidebar: false
openai:
  model: gpt-4o
`)

	cfg, err := Load(NewViper(), LoadOptions{EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, BackendDemo, cfg.Backend)
	assert.Equal(t, "python", cfg.Language)
	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.SidebarOpen)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(NewViper(), LoadOptions{
		ConfigFile: filepath.Join(dir, "nope.yaml"),
		EnvFile:    filepath.Join(dir, "missing.env"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "backend: [unterminated\n")

	_, err := Load(NewViper(), LoadOptions{ConfigFile: path, EnvFile: filepath.Join(dir, "missing.env")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindConfig))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "backend: demo\nlanguage: python\n")
	t.Setenv("GELAXY_LANGUAGE", "rust")

	cfg, err := Load(NewViper(), LoadOptions{ConfigFile: path, EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, BackendDemo, cfg.Backend)
	assert.Equal(t, "rust", cfg.Language)
}

func TestLoad_NestedEnvKeys(t *testing.T) {
	dir := isolate(t)
	t.Setenv("GELAXY_BACKEND", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load(NewViper(), LoadOptions{EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, BackendAnthropic, cfg.Backend)
	assert.Equal(t, "sk-ant-test", cfg.Anthropic.APIKey)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "GELAXY_BACKEND=openai\nGELAXY_OPENAI_API_KEY=sk-from-dotenv\n")
	t.Cleanup(func() {
		os.Unsetenv("GELAXY_BACKEND")
		os.Unsetenv("GELAXY_OPENAI_API_KEY")
	})

	cfg, err := Load(NewViper(), LoadOptions{EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, BackendOpenAI, cfg.Backend)
	assert.Equal(t, "sk-from-dotenv", cfg.OpenAI.APIKey)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("GELAXY_LANGUAGE", "rust")

	v := NewViper()
	v.Set(KeyLanguage, "go")

	cfg, err := Load(v, LoadOptions{EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, "go", cfg.Language)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"demo backend", func(c *Config) { c.Backend = BackendDemo }, false},
		{"unknown backend", func(c *Config) { c.Backend = "carrier-pigeon" }, true},
		{"empty endpoint", func(c *Config) { c.Endpoint = "" }, true},
		{"relative endpoint", func(c *Config) { c.Endpoint = "/api/generate" }, true},
		{"ftp endpoint", func(c *Config) { c.Endpoint = "ftp://example.com/gen" }, true},
		{"https endpoint", func(c *Config) { c.Endpoint = "https://example.com/gen" }, false},
		{"openai without key", func(c *Config) { c.Backend = BackendOpenAI }, true},
		{"openai with key", func(c *Config) {
			c.Backend = BackendOpenAI
			c.OpenAI.APIKey = "sk"
		}, false},
		{"anthropic without key", func(c *Config) { c.Backend = BackendAnthropic }, true},
		{"unknown language", func(c *Config) { c.Language = "cobol" }, true},
		{"unknown locale", func(c *Config) { c.Locale = "de" }, true},
		{"ru locale", func(c *Config) { c.Locale = "ru" }, false},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, false},
		{"zero max tokens", func(c *Config) { c.Sampling.MaxTokens = 0 }, true},
		{"temperature too high", func(c *Config) { c.Sampling.Temperature = 3 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.KindConfig), "want KindConfig, got %v", errors.GetKind(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "gelaxy", "config.yaml"), path)
}
