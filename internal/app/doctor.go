package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/config"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/output"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the campwatch setup is healthy",
	Long: `Run a series of health checks against your campwatch configuration and
the schedule export directory. Prints a pass/fail line for each check and
a summary of how many checks passed. Exits non-zero if any check fails.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck is one health check outcome.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is what doctor emits under --json.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, cfgErr := config.Load(flagConfig)
	if cfgErr == nil {
		applyOutputConfig(cfg)
	} else if flagNoColor {
		output.SetNoColor(true)
	}

	var checks []doctorCheck

	// 1. Config file loads (a missing file is fine, defaults apply).
	checks = append(checks, checkConfig(cfgErr))

	if cfgErr == nil {
		dir := resolvedDataDir(cfg)

		// 2. Data directory exists and is a directory.
		checks = append(checks, checkDataDir(dir))

		// 3-5. Export files parse: divisions, activities, history.
		checks = append(checks, checkDivisions(dir))
		checks = append(checks, checkActivities(dir))
		checks = append(checks, checkHistory(dir))

		// 6. Day files load, reporting skipped filenames.
		checks = append(checks, checkDayFiles(dir))

		// 7. Scorer setting is a recognized name.
		checks = append(checks, checkScorer(cfg.Scorer))
	}

	// 8. Run store opens when present.
	checks = append(checks, checkStore())

	// Count passes.
	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	if flagJSON {
		out := doctorOutput{
			Checks:      checks,
			PassedCount: passed,
			TotalCount:  len(checks),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		fmt.Println(output.Section("Doctor"))
		fmt.Println()

		for _, c := range checks {
			renderDoctorCheck(c)
		}

		fmt.Println()
		summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
		if passed == len(checks) {
			fmt.Printf(" %s\n\n", output.StyleSuccess.Render(summary))
		} else {
			fmt.Printf(" %s\n\n", output.StyleWarning.Render(summary))
		}
	}

	if passed < len(checks) {
		return fmt.Errorf("%d of %d checks failed", len(checks)-passed, len(checks))
	}
	return nil
}

// renderDoctorCheck prints a single check result line.
func renderDoctorCheck(c doctorCheck) {
	var indicator string
	if c.Passed {
		indicator = output.StyleSuccess.Render("✓")
	} else {
		indicator = output.StyleWarning.Render("✗")
	}
	label := output.StyleBold.Render(c.Name)
	detail := output.StyleMuted.Render(c.Message)
	fmt.Printf("  %s  %-30s %s\n", indicator, label, detail)
}

// checkConfig reports whether the config file loaded and which path was
// consulted.
func checkConfig(cfgErr error) doctorCheck {
	path := flagConfig
	if path == "" {
		path = filepath.Join(config.ConfigDir(), config.DefaultConfigFile)
	}
	if cfgErr != nil {
		return doctorCheck{
			Name:    "Config file",
			Passed:  false,
			Message: fmt.Sprintf("%s failed to load: %v", path, cfgErr),
		}
	}
	if _, err := os.Stat(path); err != nil {
		return doctorCheck{
			Name:    "Config file",
			Passed:  true,
			Message: fmt.Sprintf("%s not present, defaults apply", path),
		}
	}
	return doctorCheck{
		Name:    "Config file",
		Passed:  true,
		Message: path,
	}
}

// checkDataDir verifies that the schedule export directory exists.
func checkDataDir(dir string) doctorCheck {
	info, err := os.Stat(dir)
	if err != nil {
		return doctorCheck{
			Name:    "Data directory",
			Passed:  false,
			Message: fmt.Sprintf("not found: %s", dir),
		}
	}
	if !info.IsDir() {
		return doctorCheck{
			Name:    "Data directory",
			Passed:  false,
			Message: fmt.Sprintf("path exists but is not a directory: %s", dir),
		}
	}
	return doctorCheck{
		Name:    "Data directory",
		Passed:  true,
		Message: dir,
	}
}

// checkExportFile verifies that one export file is absent or parses into v.
// Missing files pass: the loader tolerates them.
func checkExportFile(dir, name string, v any) doctorCheck {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return doctorCheck{
			Name:    name,
			Passed:  true,
			Message: "not present (treated as empty)",
		}
	}
	if err != nil {
		return doctorCheck{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("unreadable: %v", err),
		}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return doctorCheck{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("parse error: %v", err),
		}
	}
	return doctorCheck{
		Name:    name,
		Passed:  true,
		Message: "parses",
	}
}

func checkDivisions(dir string) doctorCheck {
	var divisions []camp.Division
	c := checkExportFile(dir, "divisions.json", &divisions)
	if c.Passed && len(divisions) > 0 {
		c.Message = fmt.Sprintf("%d divisions", len(divisions))
	}
	return c
}

func checkActivities(dir string) doctorCheck {
	var activities map[string]camp.ActivityProperties
	c := checkExportFile(dir, "activities.json", &activities)
	if c.Passed && len(activities) > 0 {
		c.Message = fmt.Sprintf("%d activities configured", len(activities))
	}
	return c
}

func checkHistory(dir string) doctorCheck {
	var history camp.HistoryCounts
	c := checkExportFile(dir, "history.json", &history)
	if c.Passed && len(history) > 0 {
		c.Message = fmt.Sprintf("counts for %d bunks", len(history))
	}
	return c
}

// checkDayFiles loads the whole bundle and reports day files that were
// skipped for bad filenames or unparseable JSON.
func checkDayFiles(dir string) doctorCheck {
	bundle, err := camp.LoadBundle(dir)
	if err != nil {
		return doctorCheck{
			Name:    "Day files",
			Passed:  false,
			Message: fmt.Sprintf("load failed: %v", err),
		}
	}
	if len(bundle.Days) == 0 && len(bundle.SkippedDays) == 0 {
		return doctorCheck{
			Name:    "Day files",
			Passed:  false,
			Message: "no day files found in days/",
		}
	}
	if len(bundle.SkippedDays) > 0 {
		names := bundle.SkippedDays
		if len(names) > 3 {
			names = names[:3]
		}
		return doctorCheck{
			Name:   "Day files",
			Passed: false,
			Message: fmt.Sprintf("%d loaded, %d skipped (%s)",
				len(bundle.Days), len(bundle.SkippedDays), strings.Join(names, ", ")),
		}
	}
	return doctorCheck{
		Name:    "Day files",
		Passed:  true,
		Message: fmt.Sprintf("%d day files loaded", len(bundle.Days)),
	}
}

// checkScorer verifies the configured scorer name is recognized.
func checkScorer(name string) doctorCheck {
	switch name {
	case "", "none", "frequency":
		label := name
		if label == "" {
			label = "none"
		}
		return doctorCheck{
			Name:    "Scorer setting",
			Passed:  true,
			Message: label,
		}
	default:
		return doctorCheck{
			Name:    "Scorer setting",
			Passed:  false,
			Message: fmt.Sprintf("unknown scorer %q (want none or frequency)", name),
		}
	}
}

// checkStore verifies the run database opens when it exists. A missing
// database is reported but track will create it.
func checkStore() doctorCheck {
	dbPath := config.DBPath()
	if _, err := os.Stat(dbPath); err != nil {
		return doctorCheck{
			Name:    "Run database",
			Passed:  false,
			Message: fmt.Sprintf("not found at %s (run 'campwatch track' to create)", dbPath),
		}
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return doctorCheck{
			Name:    "Run database",
			Passed:  false,
			Message: fmt.Sprintf("cannot open: %v", err),
		}
	}
	_ = db.Close()
	return doctorCheck{
		Name:    "Run database",
		Passed:  true,
		Message: dbPath,
	}
}
