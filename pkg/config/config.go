// Package config loads runtime configuration from defaults, an optional
// YAML file and DATAVIS_* environment variables, in rising precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Steps configures the synthetic step-count pipeline.
type Steps struct {
	Seed         uint64 `mapstructure:"seed"`
	Participants int    `mapstructure:"participants"`
	Days         int    `mapstructure:"days"`
}

// Income configures the income dataset pipeline.
type Income struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
}

// Salary configures the experience/salary pipeline.
type Salary struct {
	Output string `mapstructure:"output"`
}

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Steps     Steps  `mapstructure:"steps"`
	Income    Income `mapstructure:"income"`
	Salary    Salary `mapstructure:"salary"`
}

// Load reads configuration. An explicit cfgFile must exist; otherwise a
// datavis.yaml in the working directory is used when present.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DATAVIS")
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("steps.seed", 42)
	v.SetDefault("steps.participants", 15)
	v.SetDefault("steps.days", 14)
	v.SetDefault("income.input", "adult.csv")
	v.SetDefault("income.output", "income_analysis.png")
	v.SetDefault("salary.output", "experience_salary.png")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("datavis")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// The default config file is optional.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
