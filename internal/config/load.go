package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. CLUSTERINFO_HOST.
// CLUSTERINFO_CONFIG names the config file like --config does.
const EnvPrefix = "CLUSTERINFO"

// appName names the config directory under the user's config home.
const appName = "clusterinfo"

// Flag names. They double as config file keys and, upper-cased with
// dashes replaced, as environment variable suffixes.
const (
	FlagConfig          = "config"
	FlagName            = "name"
	FlagHost            = "host"
	FlagPort            = "port"
	FlagUsername        = "username"
	FlagPassword        = "password"
	FlagTimeout         = "timeout"
	FlagConnectTimeout  = "connect-timeout"
	FlagFormat          = "format"
	FlagOutputDir       = "output-dir"
	FlagTemplate        = "template"
	FlagPageSize        = "page-size"
	FlagFont            = "font"
	FlagFontSize        = "font-size"
	FlagLogLevel        = "log-level"
	FlagLogFormat       = "log-format"
	FlagMetricsTextfile = "metrics-textfile"
	FlagNoPrompt        = "no-prompt"
)

// Defaults.
const (
	DefaultPort           = 9440
	DefaultFormat         = FormatPDF
	DefaultOutputDir      = "."
	DefaultPageSize       = PageA4
	DefaultFont           = "Helvetica"
	DefaultFontSize       = 12
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "console"
	DefaultTimeout        = 30 * time.Second
	DefaultConnectTimeout = 5 * time.Second
)

// RegisterFlags adds every configuration flag to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "Path to a YAML config file (default: search "+strings.Join(SearchDirs(), ", ")+")")
	fs.StringP(FlagName, "n", "", "Your name, printed on the report")
	fs.StringP(FlagHost, "H", "", "Cluster virtual IP, CVM IP or hostname")
	fs.IntP(FlagPort, "P", DefaultPort, "Prism gateway port")
	fs.StringP(FlagUsername, "u", "", "Prism username")
	fs.StringP(FlagPassword, "p", "", "Prism password (prefer the prompt or "+EnvPrefix+"_PASSWORD)")
	fs.Duration(FlagTimeout, DefaultTimeout, "Per-request timeout")
	fs.Duration(FlagConnectTimeout, DefaultConnectTimeout, "TCP connect and TLS handshake timeout")
	fs.StringP(FlagFormat, "f", DefaultFormat, "Report format: pdf or html")
	fs.StringP(FlagOutputDir, "o", DefaultOutputDir, "Directory the report is written to")
	fs.String(FlagTemplate, "", "HTML template overriding the built-in one")
	fs.String(FlagPageSize, DefaultPageSize, "PDF page size: a4 or letter")
	fs.String(FlagFont, DefaultFont, "PDF font family")
	fs.Float64(FlagFontSize, DefaultFontSize, "PDF base font size in points")
	fs.String(FlagLogLevel, DefaultLogLevel, "Log level: debug, info, warn or error")
	fs.String(FlagLogFormat, DefaultLogFormat, "Log format: console or json")
	fs.String(FlagMetricsTextfile, "", "Write Prometheus metrics for the run to this file")
	fs.Bool(FlagNoPrompt, false, "Never prompt; fail when required values are missing")
}

// Load resolves the configuration from fs, the environment and the config file.
// The result is not validated; call Validate after prompting for missing values.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	explicit := v.GetString(FlagConfig)
	configureConfigFile(v, explicit)
	found, err := readConfigFile(v, explicit != "")
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{
		Name:            v.GetString(FlagName),
		Host:            v.GetString(FlagHost),
		Port:            v.GetInt(FlagPort),
		Username:        v.GetString(FlagUsername),
		Password:        v.GetString(FlagPassword),
		Timeout:         v.GetDuration(FlagTimeout),
		ConnectTimeout:  v.GetDuration(FlagConnectTimeout),
		Format:          v.GetString(FlagFormat),
		OutputDir:       v.GetString(FlagOutputDir),
		TemplatePath:    v.GetString(FlagTemplate),
		PageSize:        v.GetString(FlagPageSize),
		Font:            v.GetString(FlagFont),
		FontSize:        v.GetFloat64(FlagFontSize),
		LogLevel:        v.GetString(FlagLogLevel),
		LogFormat:       v.GetString(FlagLogFormat),
		MetricsTextfile: v.GetString(FlagMetricsTextfile),
		NoPrompt:        v.GetBool(FlagNoPrompt),
	}
	if found {
		cfg.ConfigFile = v.ConfigFileUsed()
	}
	return cfg, nil
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range SearchDirs() {
		v.AddConfigPath(dir)
	}
}

// readConfigFile reads the configured file. A missing file is only an error
// when it was named explicitly.
func readConfigFile(v *viper.Viper, strict bool) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && !strict {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SearchDirs lists the directories searched for config.yaml, most specific first.
func SearchDirs() []string {
	added := make(map[string]struct{})
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := added[path]; ok {
			return
		}
		added[path] = struct{}{}
		dirs = append(dirs, path)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		add(filepath.Join(xdg, appName))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		add(filepath.Join(home, ".config", appName))
	}
	add(".")
	return dirs
}
