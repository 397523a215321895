package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"workday/internal/timeutil"
)

const (
	KeyLingerMinutes  = "report.linger_minutes"
	KeyWorkdayHours   = "report.workday_hours"
	KeyWorkdayEndHour = "report.workday_end_hour"
	KeyTimezone       = "report.timezone"
	KeyOutputFormat   = "output.format"
	KeyOutputColor    = "output.color"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyLogFile        = "log.file"
	KeyLogMaxSizeMB   = "log.max_size_mb"
	KeyLogMaxBackups  = "log.max_backups"
	KeyLogMaxAgeDays  = "log.max_age_days"

	EnvPrefix = "WORKDAY"
)

type Config struct {
	Report ReportConfig `mapstructure:"report"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

type ReportConfig struct {
	LingerMinutes  int    `mapstructure:"linger_minutes" validate:"gte=0,lte=65535"`
	WorkdayHours   int    `mapstructure:"workday_hours" validate:"gte=0,lte=24"`
	WorkdayEndHour int    `mapstructure:"workday_end_hour" validate:"gte=0,lte=23"`
	Timezone       string `mapstructure:"timezone"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json yaml csv excel"`
	Color  string `mapstructure:"color" validate:"oneof=auto always never"`
}

type LogConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=text json"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"gte=0"`
}

// Linger is the idle gap at which a span counts as a break.
func (c ReportConfig) Linger() time.Duration {
	return time.Duration(c.LingerMinutes) * time.Minute
}

// Quota is the target amount of work per day.
func (c ReportConfig) Quota() time.Duration {
	return time.Duration(c.WorkdayHours) * time.Hour
}

func (c ReportConfig) Location() (*time.Location, error) {
	return timeutil.LoadLocation(c.Timezone)
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# workday configuration
report:
  # Gap between two commands, in minutes, from which on the gap is a break.
  linger_minutes: 30
  # Target amount of work per day.
  workday_hours: 8
  # Commands after this hour at the head of the history are not counted yet.
  workday_end_hour: 17
  # Zone used for "today", the end hour and printed times (Local, UTC, Europe/Berlin, ...).
  timezone: "Local"

output:
  # text | json | yaml | csv | excel
  format: "text"
  # auto | always | never
  color: "auto"

log:
  # debug | info | warn | error
  level: "warn"
  # text | json
  format: "text"
  # Optional rotating log file; logs go to stderr when empty.
  file: ""
  max_size_mb: 10
  max_backups: 3
  max_age_days: 28
`
}

// ConfigureEnv makes WORKDAY_REPORT_LINGER_MINUTES and friends override file values.
func ConfigureEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := cfg.Report.Location(); err != nil {
		return nil, fmt.Errorf("validation failed: report.timezone: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLingerMinutes, 30)
	v.SetDefault(KeyWorkdayHours, 8)
	v.SetDefault(KeyWorkdayEndHour, 17)
	v.SetDefault(KeyTimezone, "Local")
	v.SetDefault(KeyOutputFormat, "text")
	v.SetDefault(KeyOutputColor, "auto")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogMaxSizeMB, 10)
	v.SetDefault(KeyLogMaxBackups, 3)
	v.SetDefault(KeyLogMaxAgeDays, 28)
}
