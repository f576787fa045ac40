// Package config holds the effective run configuration of the clusterinfo CLI.
//
// Values come from command-line flags, CLUSTERINFO_* environment variables,
// an optional YAML config file and built-in defaults, in that order of
// precedence. Anything still missing after loading is asked for
// interactively by the prompt package unless prompting is disabled.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/Orkogithub/nutanix-cluster-info/internal/logging"
)

// Report formats.
const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// Page sizes accepted by the PDF renderer.
const (
	PageA4     = "a4"
	PageLetter = "letter"
)

// redacted replaces secrets in String and log output.
const redacted = "[redacted]"

// ErrInvalid is returned by Validate for every rejected configuration.
var ErrInvalid = errors.New("invalid configuration")

// Config is the effective configuration of one run. It is passed by value.
type Config struct {
	// Name is the person the report is generated by.
	Name string

	// Host is the Prism address: cluster VIP, CVM IP or hostname.
	Host string
	Port int

	Username string
	Password string

	Timeout        time.Duration
	ConnectTimeout time.Duration

	// Format is the report format, pdf or html.
	Format string

	// OutputDir is where the report is written.
	OutputDir string

	// TemplatePath overrides the built-in HTML template when set.
	TemplatePath string

	PageSize string
	Font     string
	FontSize float64

	LogLevel  string
	LogFormat string

	// MetricsTextfile, when set, receives Prometheus metrics for the run.
	MetricsTextfile string

	// NoPrompt disables interactive prompting for missing values.
	NoPrompt bool

	// ConfigFile is the config file that was read, empty when none was found.
	ConfigFile string
}

// Missing returns the flag names of required values that are still empty,
// in the order they should be asked for.
func (c Config) Missing() []string {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, FlagName)
	}
	if strings.TrimSpace(c.Host) == "" {
		missing = append(missing, FlagHost)
	}
	if strings.TrimSpace(c.Username) == "" {
		missing = append(missing, FlagUsername)
	}
	if c.Password == "" {
		missing = append(missing, FlagPassword)
	}
	return missing
}

// Validate rejects incomplete configurations and unknown enum values.
// Formats and page sizes are lower-cased in place.
func (c *Config) Validate() error {
	if missing := c.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalid, strings.Join(missing, ", "))
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalid, c.Port)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalid, c.Timeout)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: connect timeout must be positive, got %s", ErrInvalid, c.ConnectTimeout)
	}

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatPDF, FormatHTML:
	default:
		return fmt.Errorf("%w: format %q (expected pdf or html)", ErrInvalid, c.Format)
	}

	c.PageSize = strings.ToLower(strings.TrimSpace(c.PageSize))
	switch c.PageSize {
	case PageA4, PageLetter:
	default:
		return fmt.Errorf("%w: page size %q (expected a4 or letter)", ErrInvalid, c.PageSize)
	}

	if c.FontSize <= 0 {
		return fmt.Errorf("%w: font size must be positive, got %g", ErrInvalid, c.FontSize)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// String renders the configuration with the password redacted.
func (c Config) String() string {
	return fmt.Sprintf(
		"name=%q host=%q port=%d username=%q password=%s timeout=%s connect_timeout=%s format=%s output_dir=%q template=%q page_size=%s font=%s font_size=%g",
		c.Name, c.Host, c.Port, c.Username, c.redactedPassword(),
		c.Timeout, c.ConnectTimeout, c.Format, c.OutputDir, c.TemplatePath,
		c.PageSize, c.Font, c.FontSize,
	)
}

// MarshalLogObject implements zapcore.ObjectMarshaler. The password is never logged.
func (c Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", c.Name)
	enc.AddString("host", c.Host)
	enc.AddInt("port", c.Port)
	enc.AddString("username", c.Username)
	enc.AddString("password", c.redactedPassword())
	enc.AddDuration("timeout", c.Timeout)
	enc.AddDuration("connect_timeout", c.ConnectTimeout)
	enc.AddString("format", c.Format)
	enc.AddString("output_dir", c.OutputDir)
	if c.TemplatePath != "" {
		enc.AddString("template", c.TemplatePath)
	}
	enc.AddString("page_size", c.PageSize)
	enc.AddString("font", c.Font)
	enc.AddFloat64("font_size", c.FontSize)
	if c.MetricsTextfile != "" {
		enc.AddString("metrics_textfile", c.MetricsTextfile)
	}
	enc.AddBool("no_prompt", c.NoPrompt)
	if c.ConfigFile != "" {
		enc.AddString("config_file", c.ConfigFile)
	}
	return nil
}

func (c Config) redactedPassword() string {
	if c.Password == "" {
		return `""`
	}
	return redacted
}
