package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// isolate keeps the user's real config directories and environment out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"NAME", "HOST", "PORT", "USERNAME", "PASSWORD", "FORMAT", "CONFIG", "OUTPUT_DIR", "NO_PROMPT"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}
}

func load(t *testing.T, args ...string) Config {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	cfg, err := Load(fs)
	require.NoError(t, err)
	return cfg
}

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validConfig() Config {
	return Config{
		Name:           "Jane Admin",
		Host:           "10.0.0.5",
		Port:           DefaultPort,
		Username:       "admin",
		Password:       "nutanix/4u",
		Timeout:        DefaultTimeout,
		ConnectTimeout: DefaultConnectTimeout,
		Format:         FormatPDF,
		OutputDir:      ".",
		PageSize:       PageA4,
		Font:           DefaultFont,
		FontSize:       DefaultFontSize,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg := load(t)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, FormatPDF, cfg.Format)
	assert.Equal(t, PageA4, cfg.PageSize)
	assert.Equal(t, "Helvetica", cfg.Font)
	assert.Equal(t, 12.0, cfg.FontSize)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.NoPrompt)
	assert.Empty(t, cfg.ConfigFile)
	assert.Equal(t, []string{FlagName, FlagHost, FlagUsername, FlagPassword}, cfg.Missing())
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	xdg := os.Getenv("XDG_CONFIG_HOME")
	path := writeConfigFile(t, filepath.Join(xdg, appName), `
host: file-host
username: file-user
port: 9441
format: html
page-size: letter
`)

	t.Setenv(EnvPrefix+"_HOST", "env-host")
	t.Setenv(EnvPrefix+"_PORT", "9442")

	cfg := load(t, "--port", "9443")

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, 9443, cfg.Port, "flag beats env and file")
	assert.Equal(t, "env-host", cfg.Host, "env beats file")
	assert.Equal(t, "file-user", cfg.Username, "file beats default")
	assert.Equal(t, FormatHTML, cfg.Format)
	assert.Equal(t, PageLetter, cfg.PageSize)
	assert.Equal(t, DefaultFont, cfg.Font, "default when nothing else is set")
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	isolate(t)

	path := writeConfigFile(t, t.TempDir(), "name: From File\ntimeout: 45s\nno-prompt: true\n")

	cfg := load(t, "--config", path)
	assert.Equal(t, "From File", cfg.Name)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.True(t, cfg.NoPrompt)
}

func TestLoad_ConfigFileFromEnv(t *testing.T) {
	isolate(t)

	path := writeConfigFile(t, t.TempDir(), "host: env-named-file\n")
	t.Setenv(EnvPrefix+"_CONFIG", path)

	cfg := load(t)
	assert.Equal(t, "env-named-file", cfg.Host)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	isolate(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))

	_, err := Load(fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "upper-case format", mutate: func(c *Config) { c.Format = "HTML" }},
		{name: "missing name", mutate: func(c *Config) { c.Name = " " }, wantErr: "missing name"},
		{name: "missing credentials", mutate: func(c *Config) { c.Username = ""; c.Password = "" }, wantErr: "missing username, password"},
		{name: "bad port", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "port 70000 out of range"},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: "timeout must be positive"},
		{name: "bad format", mutate: func(c *Config) { c.Format = "docx" }, wantErr: `format "docx"`},
		{name: "bad page size", mutate: func(c *Config) { c.PageSize = "a3" }, wantErr: `page size "a3"`},
		{name: "bad font size", mutate: func(c *Config) { c.FontSize = 0 }, wantErr: "font size must be positive"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_NormalizesEnums(t *testing.T) {
	cfg := validConfig()
	cfg.Format = " Html "
	cfg.PageSize = "LETTER"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatHTML, cfg.Format)
	assert.Equal(t, PageLetter, cfg.PageSize)
}

func TestString_RedactsPassword(t *testing.T) {
	cfg := validConfig()

	s := cfg.String()
	assert.NotContains(t, s, cfg.Password)
	assert.Contains(t, s, redacted)
	assert.Contains(t, s, `host="10.0.0.5"`)
}

func TestMarshalLogObject_RedactsPassword(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	cfg := validConfig()
	logger.Info("effective configuration", zap.Object("config", cfg))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()["config"].(map[string]interface{})
	assert.Equal(t, redacted, fields["password"])
	assert.Equal(t, "admin", fields["username"])
	assert.Equal(t, "10.0.0.5", fields["host"])
}

func TestSearchDirs(t *testing.T) {
	home := t.TempDir()
	xdg := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", xdg)

	assert.Equal(t, []string{
		filepath.Join(xdg, appName),
		filepath.Join(home, ".config", appName),
		".",
	}, SearchDirs())
}
