// Package app contains the Cobra command tree for campwatch.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion records the build version that main injects via ldflags.
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagData    string
)

var rootCmd = &cobra.Command{
	Use:   "campwatch",
	Short: "Diagnostics and validation for camp schedule exports",
	Long: `campwatch validates a camp scheduler's exported data directory. It loads
daily schedules, the division table, activity configuration, and the
history cache, runs a battery of diagnostic checks (capacity, conflicts,
weather eligibility, fairness, streaks, coverage, time windows), and can
track schedule quality over time.

Run 'campwatch' with no arguments to see the available subcommands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("campwatch", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  validate  Run all diagnostics and print the report")
		fmt.Println("  days      List loaded days or inspect a single date")
		fmt.Println("  track     Persist a run and compare against the previous one")
		fmt.Println("  watch     Re-validate on an interval and alert on changes")
		fmt.Println("  suggest   Generate ranked schedule improvement suggestions")
		fmt.Println("  doctor    Check whether the campwatch setup is healthy")
		return nil
	},
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/campwatch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "Schedule export directory (overrides config data_dir)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Show sections with no findings")
}
