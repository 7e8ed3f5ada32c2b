package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/analyzer"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/config"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/output"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/store"
)

var (
	trackStart     string
	trackEnd       string
	trackDivisions []string
	trackParallel  bool
	trackHistory   int
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Record a validation run and compare against the previous one",
	Long: `Run the full diagnostic pipeline, persist the result to the local
database, and show how the schedule moved since the last recorded run.

Use --history to review stored runs without recording a new one.

Examples:
  campwatch track                         # validate, store, compare
  campwatch track --start 2024-07-01     # bounded range
  campwatch track --history 10           # timeline of the last 10 runs
  campwatch track --json                 # run, previous, and deltas`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().StringVar(&trackStart, "start", "", "Start of the date range (YYYY-MM-DD, inclusive)")
	trackCmd.Flags().StringVar(&trackEnd, "end", "", "End of the date range (YYYY-MM-DD, inclusive)")
	trackCmd.Flags().StringSliceVar(&trackDivisions, "division", nil, "Restrict checks to the named divisions (repeatable)")
	trackCmd.Flags().BoolVar(&trackParallel, "parallel", false, "Run diagnostic sections concurrently")
	trackCmd.Flags().IntVar(&trackHistory, "history", 0, "Show a timeline of the N most recent stored runs")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyOutputConfig(cfg)

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer db.Close()

	if trackHistory > 0 {
		return renderRunHistory(db, trackHistory)
	}

	bundle, err := loadBundle(cfg)
	if err != nil {
		return err
	}

	scorer, err := resolveScorer(cfg.Scorer, bundle.History)
	if err != nil {
		return err
	}

	started := time.Now()
	rep := analyzer.Run(bundle, analyzer.Options{
		Start:      trackStart,
		End:        trackEnd,
		Divisions:  trackDivisions,
		Scorer:     scorer,
		Thresholds: pipelineThresholds(cfg),
		Parallel:   trackParallel,
	})
	elapsed := time.Since(started)

	run := &store.Run{
		StartDate:  trackStart,
		EndDate:    trackEnd,
		Divisions:  strings.Join(trackDivisions, ","),
		Errors:     rep.Summary.Errors,
		Warnings:   rep.Summary.Warnings,
		Infos:      rep.Summary.Info,
		Score:      analyzer.QualityScore(rep),
		DurationMs: elapsed.Milliseconds(),
	}
	sections, issues := storableFindings(rep)
	if _, err := db.CreateRun(run, sections, issues); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	curr, err := db.GetRunN(0)
	if err != nil {
		return err
	}
	prev, err := db.GetRunN(1)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"run":      curr,
			"previous": prev,
			"deltas":   runDeltas(prev, curr),
		})
	}

	renderTrack(curr, prev)
	return nil
}

// storableFindings flattens a report into store rows. Info lines are
// counted per section but not stored individually.
func storableFindings(rep *analyzer.Report) ([]store.SectionCount, []store.Issue) {
	var sections []store.SectionCount
	var issues []store.Issue
	for _, name := range analyzer.SectionOrder {
		res, ok := rep.Sections[name]
		if !ok {
			continue
		}
		sections = append(sections, store.SectionCount{
			Section:  name,
			Errors:   len(res.Errors),
			Warnings: len(res.Warnings),
			Infos:    len(res.Info),
		})
		for _, msg := range res.Errors {
			issues = append(issues, store.Issue{Section: name, Severity: "error", Message: msg})
		}
		for _, msg := range res.Warnings {
			issues = append(issues, store.Issue{Section: name, Severity: "warning", Message: msg})
		}
	}
	return sections, issues
}

// runDelta is one metric's movement between two stored runs.
type runDelta struct {
	Name     string `json:"name"`
	Previous int    `json:"previous"`
	Current  int    `json:"current"`
	Delta    int    `json:"delta"`
}

// deltaDirection records whether an increase in the metric is good.
var deltaDirection = map[string]bool{
	"errors":   false,
	"warnings": false,
	"score":    true,
}

func runDeltas(prev, curr *store.Run) []runDelta {
	if prev == nil || curr == nil {
		return nil
	}
	return []runDelta{
		{Name: "errors", Previous: prev.Errors, Current: curr.Errors, Delta: curr.Errors - prev.Errors},
		{Name: "warnings", Previous: prev.Warnings, Current: curr.Warnings, Delta: curr.Warnings - prev.Warnings},
		{Name: "score", Previous: prev.Score, Current: curr.Score, Delta: curr.Score - prev.Score},
	}
}

func renderTrack(curr, prev *store.Run) {
	fmt.Println(output.Section("Run Recorded"))
	fmt.Println()

	fmt.Printf(" Run #%d at %s\n", curr.ID, curr.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	if r := formatRunRange(*curr); r != "all" {
		fmt.Printf(" %s %s\n", output.StyleLabel.Render("Range"), r)
	}
	if curr.Divisions != "" {
		fmt.Printf(" %s %s\n", output.StyleLabel.Render("Divisions"), curr.Divisions)
	}
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Quality score"), output.ScoreBar(curr.Score, 20))
	fmt.Println()

	if prev == nil {
		fmt.Println(output.StyleMuted.Render(" First run recorded. Run 'campwatch track' again later to see trends."))
		fmt.Println()
		return
	}

	fmt.Printf(" Comparing against run #%d (%s)\n", prev.ID, prev.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Println()

	table := output.NewTable("Metric", "Previous", "Current", "Delta", "Trend")
	for _, d := range runDeltas(prev, curr) {
		table.AddRow(
			d.Name,
			strconv.Itoa(d.Previous),
			strconv.Itoa(d.Current),
			fmt.Sprintf("%+d", d.Delta),
			output.TrendArrow(d.Delta, deltaDirection[d.Name]),
		)
	}
	table.Print()
	fmt.Println()
}

func renderRunHistory(db *store.DB, n int) error {
	runs, err := db.GetRecentRuns(n)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"history": runs})
	}

	if len(runs) == 0 {
		fmt.Println("No stored runs. Run 'campwatch track' to create one.")
		return nil
	}

	// GetRecentRuns is newest-first; the timeline reads oldest-first.
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}

	fmt.Println(output.Section("Run History"))
	fmt.Println()

	table := output.NewTable("Run", "Recorded", "Range", "Errors", "Warnings", "Info", "Score", "Duration")
	for _, r := range runs {
		table.AddRow(
			fmt.Sprintf("#%d", r.ID),
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			formatRunRange(r),
			strconv.Itoa(r.Errors),
			strconv.Itoa(r.Warnings),
			strconv.Itoa(r.Infos),
			strconv.Itoa(r.Score),
			fmt.Sprintf("%dms", r.DurationMs),
		)
	}
	table.Print()
	fmt.Println()

	if len(runs) >= 2 {
		first, last := runs[0], runs[len(runs)-1]
		fmt.Printf(" Score %d %s %d over %d runs\n",
			first.Score,
			output.TrendArrow(last.Score-first.Score, true),
			last.Score,
			len(runs))
		fmt.Println()
	}
	return nil
}

// formatRunRange renders a run's date bounds, "all" when unbounded.
func formatRunRange(r store.Run) string {
	switch {
	case r.StartDate == "" && r.EndDate == "":
		return "all"
	case r.EndDate == "":
		return r.StartDate + ".."
	case r.StartDate == "":
		return ".." + r.EndDate
	default:
		return r.StartDate + ".." + r.EndDate
	}
}
