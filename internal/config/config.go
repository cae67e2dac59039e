package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gookit/validate"
	"github.com/spf13/viper"
)

// Config holds application-level settings: where state lives and how
// long the recycle bin keeps deleted sessions. User-facing tracker
// settings (weekly goal, daily minimum) are not here; they live in the
// store next to the data they describe.
type Config struct {
	DataDir       string `mapstructure:"dataDir" validate:"required"`
	LogLevel      string `mapstructure:"logLevel" validate:"required|in:trace,debug,info,warn,error"`
	RetentionDays int    `mapstructure:"retentionDays" validate:"required|min:1"`
}

// Load reads configuration from ~/.studylog/config.yaml and STUDYLOG_*
// environment variables. A missing config file is fine; defaults apply.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	defaultDir := filepath.Join(home, ".studylog")

	v := viper.New()
	v.SetDefault("dataDir", defaultDir)
	v.SetDefault("logLevel", "warn")
	v.SetDefault("retentionDays", 7)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultDir)

	v.BindEnv("dataDir", "STUDYLOG_DATA_DIR")
	v.BindEnv("logLevel", "STUDYLOG_LOG_LEVEL")
	v.BindEnv("retentionDays", "STUDYLOG_RETENTION_DAYS")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if vd := validate.Struct(&conf); !vd.Validate() {
		return nil, vd.Errors.OneError()
	}

	return &conf, nil
}

// StorePath returns the path of the SQLite file holding the documents.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "studylog.db")
}

// Retention returns the recycle bin retention window.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}
