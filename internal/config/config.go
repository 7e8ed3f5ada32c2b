package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level campwatch configuration.
type Config struct {
	DataDir    string     `mapstructure:"data_dir"`
	Scorer     string     `mapstructure:"scorer"`
	Thresholds Thresholds `mapstructure:"thresholds"`
	Output     Output     `mapstructure:"output"`
}

// Thresholds are the tunable analyzer limits.
type Thresholds struct {
	StreakLimit             int     `mapstructure:"streak_limit"`
	CoverageMinimum         float64 `mapstructure:"coverage_minimum"`
	HistoryTolerance        int     `mapstructure:"history_tolerance"`
	LeagueGameSpread        int     `mapstructure:"league_game_spread"`
	LeagueRematchLimit      int     `mapstructure:"league_rematch_limit"`
	DistributionSpread      int     `mapstructure:"distribution_spread"`
	RotationDisallowedShare float64 `mapstructure:"rotation_disallowed_share"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	JSON  bool `mapstructure:"json"`
	Width int  `mapstructure:"width"`
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. Environment variables
// prefixed CAMPWATCH_ override file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetEnvPrefix("CAMPWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(ConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// A missing config file is fine: defaults and environment cover it.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.DataDir = expandPath(cfg.DataDir)
	return &cfg, nil
}

// DBPath returns the full path to the SQLite run database.
func DBPath() string {
	return filepath.Join(ConfigDir(), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}

// expandPath resolves a leading ~/ against the user's home directory.
func expandPath(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
