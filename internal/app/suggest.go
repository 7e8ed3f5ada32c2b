package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/analyzer"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/config"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/output"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/suggest"
)

var (
	suggestLimit    int
	suggestCategory string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate ranked schedule improvement recommendations",
	Long: `Validate the schedule export and turn the findings into actionable,
ranked recommendations. Suggestions are scored by impact and sorted from
highest to lowest.

Examples:
  campwatch suggest                        # top 10 recommendations
  campwatch suggest --limit 3              # just the top 3
  campwatch suggest --category capacity    # one concern only
  campwatch suggest --json                 # machine-readable`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 10, "Maximum number of suggestions to show")
	suggestCmd.Flags().StringVar(&suggestCategory, "category", "", "Filter by category (capacity, conflicts, weather, structure, windows, history, league, variety, coverage, fairness)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyOutputConfig(cfg)

	bundle, err := loadBundle(cfg)
	if err != nil {
		return err
	}

	scorer, err := resolveScorer(cfg.Scorer, bundle.History)
	if err != nil {
		return err
	}

	rep := analyzer.Run(bundle, analyzer.Options{
		Scorer:     scorer,
		Thresholds: pipelineThresholds(cfg),
	})

	engine := suggest.NewEngine()
	suggestions := engine.Run(rep)

	if suggestCategory != "" {
		suggestions = filterByCategory(suggestions, suggestCategory)
	}

	if suggestLimit > 0 && len(suggestions) > suggestLimit {
		suggestions = suggestions[:suggestLimit]
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestions)
	}

	renderSuggestions(suggestions)
	return nil
}

func filterByCategory(suggestions []suggest.Suggestion, category string) []suggest.Suggestion {
	kept := suggestions[:0]
	for _, s := range suggestions {
		if s.Category == category {
			kept = append(kept, s)
		}
	}
	return kept
}

func renderSuggestions(suggestions []suggest.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Println(output.Section("Suggestions"))
		fmt.Println()
		fmt.Println(" No suggestions. The schedule looks healthy!")
		return
	}

	fmt.Println(output.Section("Schedule Suggestions"))
	fmt.Println()

	for i, s := range suggestions {
		detail := fmt.Sprintf("%s  |  impact %.1f", s.Category, s.ImpactScore)
		fmt.Printf(" #%d %s %s\n", i+1, renderPriority(s.Priority), output.StyleBold.Render(s.Title))
		fmt.Printf("    %s\n", output.StyleMuted.Render(detail))
		fmt.Printf("    %s\n", s.Description)
		fmt.Println()
	}
}

// renderPriority returns the bracketed priority tag styled by severity.
func renderPriority(priority int) string {
	var label string
	switch priority {
	case suggest.PriorityCritical:
		label = "[CRITICAL]"
	case suggest.PriorityHigh:
		label = "[HIGH]"
	case suggest.PriorityMedium:
		label = "[MEDIUM]"
	case suggest.PriorityLow:
		label = "[LOW]"
	default:
		label = "[UNKNOWN]"
	}

	switch priority {
	case suggest.PriorityCritical, suggest.PriorityHigh:
		return output.StyleError.Render(label)
	case suggest.PriorityMedium:
		return output.StyleWarning.Render(label)
	default:
		return output.StyleMuted.Render(label)
	}
}
