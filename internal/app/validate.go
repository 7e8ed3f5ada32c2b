package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/analyzer"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/config"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/output"
)

var (
	validateStart     string
	validateEnd       string
	validateDivisions []string
	validateParallel  bool
	validateStrict    bool
	validateScorer    string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run all diagnostics and print the report",
	Long: `Load the schedule export, run every diagnostic section, and render the
findings: rule violations as errors, fairness and quality concerns as
warnings, summaries as info lines.

The exit code is 1 when the schedule has violations, 0 otherwise;
--strict also fails on warnings.

Examples:
  campwatch validate                              # whole export
  campwatch validate --start 2024-07-01 --end 2024-07-14
  campwatch validate --division Juniors           # one division only
  campwatch validate --parallel                   # concurrent sections
  campwatch validate --scorer frequency           # enable rotation audit
  campwatch validate --json                       # raw report`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateStart, "start", "", "Start of the date range (YYYY-MM-DD, inclusive)")
	validateCmd.Flags().StringVar(&validateEnd, "end", "", "End of the date range (YYYY-MM-DD, inclusive)")
	validateCmd.Flags().StringSliceVar(&validateDivisions, "division", nil, "Restrict checks to the named divisions (repeatable)")
	validateCmd.Flags().BoolVar(&validateParallel, "parallel", false, "Run diagnostic sections concurrently")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Exit non-zero on warnings as well as errors")
	validateCmd.Flags().StringVar(&validateScorer, "scorer", "", "Rotation scorer: none or frequency (overrides config)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyOutputConfig(cfg)

	bundle, err := loadBundle(cfg)
	if err != nil {
		return err
	}

	scorerName := cfg.Scorer
	if validateScorer != "" {
		scorerName = validateScorer
	}
	scorer, err := resolveScorer(scorerName, bundle.History)
	if err != nil {
		return err
	}

	rep := analyzer.Run(bundle, analyzer.Options{
		Start:      validateStart,
		End:        validateEnd,
		Divisions:  validateDivisions,
		Scorer:     scorer,
		Thresholds: pipelineThresholds(cfg),
		Parallel:   validateParallel,
	})

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		renderReport(rep)
	}

	return validationVerdict(rep, validateStrict)
}

// applyOutputConfig applies the config file's output preferences. Flags
// only tighten: --no-color can disable color the config left on, and
// output.json makes JSON the default that --json would select anyway.
func applyOutputConfig(cfg *config.Config) {
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}
	if cfg.Output.JSON {
		flagJSON = true
	}
}

// loadBundle reads the schedule export, honoring the --data override.
func loadBundle(cfg *config.Config) (*camp.Bundle, error) {
	bundle, err := camp.LoadBundle(resolvedDataDir(cfg))
	if err != nil {
		return nil, fmt.Errorf("loading schedule data: %w", err)
	}
	return bundle, nil
}

// resolvedDataDir returns the export directory in effect: the --data flag
// wins over the configured data_dir.
func resolvedDataDir(cfg *config.Config) string {
	if flagData != "" {
		return flagData
	}
	return cfg.DataDir
}

// resolveScorer maps a scorer name to its implementation. "none" and the
// empty string leave the rotation audit disabled.
func resolveScorer(name string, history camp.HistoryCounts) (analyzer.ScoreFunc, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "frequency":
		return analyzer.NewFrequencyScorer(history), nil
	default:
		return nil, fmt.Errorf("unknown scorer %q (want none or frequency)", name)
	}
}

// pipelineThresholds copies the configured limits into analyzer options.
func pipelineThresholds(cfg *config.Config) analyzer.Thresholds {
	return analyzer.Thresholds{
		StreakLimit:             cfg.Thresholds.StreakLimit,
		CoverageMinimum:         cfg.Thresholds.CoverageMinimum,
		HistoryTolerance:        cfg.Thresholds.HistoryTolerance,
		LeagueGameSpread:        cfg.Thresholds.LeagueGameSpread,
		LeagueRematchLimit:      cfg.Thresholds.LeagueRematchLimit,
		DistributionSpread:      cfg.Thresholds.DistributionSpread,
		RotationDisallowedShare: cfg.Thresholds.RotationDisallowedShare,
	}
}

// validationVerdict converts report totals into the command outcome:
// violations always fail, warnings only under strict.
func validationVerdict(rep *analyzer.Report, strict bool) error {
	if rep.Error != "" {
		return fmt.Errorf("validation incomplete: %s", rep.Error)
	}
	if rep.Summary.Errors > 0 {
		return fmt.Errorf("schedule has %d violation(s)", rep.Summary.Errors)
	}
	if strict && rep.Summary.Warnings > 0 {
		return fmt.Errorf("schedule has %d warning(s) (strict mode)", rep.Summary.Warnings)
	}
	return nil
}

func renderReport(rep *analyzer.Report) {
	renderSummary(rep)

	for _, section := range analyzer.SectionOrder {
		res, ok := rep.Sections[section]
		if !ok {
			continue
		}
		renderSectionResult(section, res)
	}

	if rep.Error != "" {
		fmt.Printf(" %s %s\n\n",
			output.StyleError.Render("✗"),
			fmt.Sprintf("run aborted: %s", rep.Error))
	}
}

func renderSummary(rep *analyzer.Report) {
	fmt.Println(output.Section("Validation Summary"))
	fmt.Println()

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Quality score"),
		output.ScoreBar(analyzer.QualityScore(rep), 20))

	errs := fmt.Sprintf("%d", rep.Summary.Errors)
	if rep.Summary.Errors > 0 {
		errs = output.StyleError.Render(errs)
	}
	warns := fmt.Sprintf("%d", rep.Summary.Warnings)
	if rep.Summary.Warnings > 0 {
		warns = output.StyleWarning.Render(warns)
	}

	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Errors"), errs)
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Warnings"), warns)
	fmt.Printf(" %s %d\n", output.StyleLabel.Render("Info"), rep.Summary.Info)
	fmt.Println()
}

// renderSectionResult prints one section block. Sections with no findings
// are skipped unless --verbose asks for them.
func renderSectionResult(section string, res analyzer.Result) {
	empty := len(res.Errors) == 0 && len(res.Warnings) == 0 && len(res.Info) == 0
	if empty && !flagVerbose {
		return
	}

	fmt.Println(output.Section(analyzer.SectionTitles[section]))
	fmt.Println()

	if empty {
		fmt.Printf(" %s %s\n", output.StyleSuccess.Render("✓"), output.StyleMuted.Render("no findings"))
	}
	for _, msg := range res.Errors {
		fmt.Printf(" %s %s\n", output.StyleError.Render("✗"), msg)
	}
	for _, msg := range res.Warnings {
		fmt.Printf(" %s %s\n", output.StyleWarning.Render("!"), msg)
	}
	for _, msg := range res.Info {
		fmt.Printf(" %s %s\n", output.StyleMuted.Render("·"), output.StyleMuted.Render(msg))
	}

	fmt.Println()
}
