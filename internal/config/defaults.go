// Package config provides configuration loading and defaults for campwatch.
package config

import "github.com/spf13/viper"

// DefaultDataDir is the default location of the scheduler's export directory.
const DefaultDataDir = "~/.campsched"

// DefaultScorer disables the rotation audit until a scorer is chosen.
const DefaultScorer = "none"

// DefaultConfigDir is the default location for campwatch configuration.
const DefaultConfigDir = "~/.config/campwatch"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "campwatch.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultThresholds holds the stock analyzer limits.
var DefaultThresholds = Thresholds{
	StreakLimit:             2,
	CoverageMinimum:         0.5,
	HistoryTolerance:        2,
	LeagueGameSpread:        2,
	LeagueRematchLimit:      2,
	DistributionSpread:      3,
	RotationDisallowedShare: 0.5,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// applyDefaults registers the stock value for every viper key.
func applyDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("scorer", DefaultScorer)
	v.SetDefault("thresholds.streak_limit", DefaultThresholds.StreakLimit)
	v.SetDefault("thresholds.coverage_minimum", DefaultThresholds.CoverageMinimum)
	v.SetDefault("thresholds.history_tolerance", DefaultThresholds.HistoryTolerance)
	v.SetDefault("thresholds.league_game_spread", DefaultThresholds.LeagueGameSpread)
	v.SetDefault("thresholds.league_rematch_limit", DefaultThresholds.LeagueRematchLimit)
	v.SetDefault("thresholds.distribution_spread", DefaultThresholds.DistributionSpread)
	v.SetDefault("thresholds.rotation_disallowed_share", DefaultThresholds.RotationDisallowedShare)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.json", DefaultOutput.JSON)
	v.SetDefault("output.width", DefaultOutput.Width)
}
