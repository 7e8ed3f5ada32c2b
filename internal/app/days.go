package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/config"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/output"
)

var daysCmd = &cobra.Command{
	Use:   "days [date]",
	Short: "List loaded days or inspect one day's schedule",
	Long: `Without arguments, list every loaded day with fill counts. With a date,
print that day's full schedule grid: every bunk's slot assignments with
resolved time windows, plus league matchups.

Examples:
  campwatch days                   # one line per loaded day
  campwatch days 2024-07-04       # full grid for July 4th
  campwatch days --json           # machine-readable summaries`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDays,
}

func init() {
	rootCmd.AddCommand(daysCmd)
}

func runDays(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyOutputConfig(cfg)

	bundle, err := loadBundle(cfg)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return inspectDay(bundle, args[0])
	}
	return listDays(bundle)
}

// daySummary is one row of the day listing.
type daySummary struct {
	Date    string `json:"date"`
	Rainy   bool   `json:"rainy"`
	Bunks   int    `json:"bunks"`
	Filled  int    `json:"filledSlots"`
	Empty   int    `json:"emptySlots"`
	Leagues int    `json:"leagueSlots"`
}

func summarizeDay(day camp.Day) daySummary {
	s := daySummary{Date: day.Date, Rainy: day.Rainy}
	s.Bunks = len(day.Assignments)
	for _, records := range day.Assignments {
		for _, rec := range records {
			if strings.TrimSpace(rec.Activity) == "" {
				s.Empty++
			} else {
				s.Filled++
			}
		}
	}
	for _, slots := range day.Leagues {
		s.Leagues += len(slots)
	}
	return s
}

func listDays(bundle *camp.Bundle) error {
	summaries := make([]daySummary, 0, len(bundle.Days))
	for _, day := range bundle.Days {
		summaries = append(summaries, summarizeDay(day))
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	if len(summaries) == 0 {
		fmt.Println("No days loaded. Check the data directory with 'campwatch doctor'.")
		return nil
	}

	fmt.Println(output.Section("Loaded Days"))
	fmt.Println()

	table := output.NewTable("Date", "Rainy", "Bunks", "Filled", "Empty", "League slots")
	for _, s := range summaries {
		rainy := ""
		if s.Rainy {
			rainy = "yes"
		}
		table.AddRow(
			s.Date,
			rainy,
			strconv.Itoa(s.Bunks),
			strconv.Itoa(s.Filled),
			strconv.Itoa(s.Empty),
			strconv.Itoa(s.Leagues),
		)
	}
	table.Print()

	fmt.Println()
	fmt.Println(output.StyleMuted.Render(fmt.Sprintf(" %d day(s) loaded. Use 'campwatch days <date>' to inspect one.", len(summaries))))
	fmt.Println()
	return nil
}

func inspectDay(bundle *camp.Bundle, date string) error {
	if !camp.ValidDate(date) {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
	}

	for _, day := range bundle.Days {
		if day.Date == date {
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(day)
			}
			renderDay(bundle, day)
			return nil
		}
	}
	return fmt.Errorf("no schedule loaded for %s", date)
}

func renderDay(bundle *camp.Bundle, day camp.Day) {
	title := "Schedule for " + day.Date
	if day.Rainy {
		title += " (rainy)"
	}
	fmt.Println(output.Section(title))
	fmt.Println()

	bunks := make([]string, 0, len(day.Assignments))
	for bunk := range day.Assignments {
		bunks = append(bunks, bunk)
	}
	sort.Strings(bunks)

	table := output.NewTable("Bunk", "Division", "Slot", "Time", "Activity")
	for _, bunk := range bunks {
		division := ""
		var times []camp.TimeSlot
		if div := bundle.DivisionOf(bunk); div != nil {
			division = div.Name
			times = bundle.TimesFor(day, div.Name)
		}
		for idx, rec := range day.Assignments[bunk] {
			table.AddRow(
				bunk,
				division,
				strconv.Itoa(idx),
				slotWindow(times, idx, rec),
				describeSlot(rec),
			)
		}
	}
	table.Print()
	fmt.Println()

	renderLeagues(day)
}

// slotWindow resolves the time window rendered for one slot: an explicit
// record override wins, then the indexed slot definition.
func slotWindow(times []camp.TimeSlot, idx int, rec camp.SlotRecord) string {
	if rec.StartMin != nil && rec.EndMin != nil {
		return camp.FormatRange(*rec.StartMin, *rec.EndMin)
	}
	if idx < len(times) {
		slot := times[idx]
		if slot.StartMin != nil && slot.EndMin != nil {
			return camp.FormatRange(*slot.StartMin, *slot.EndMin)
		}
	}
	return "-"
}

func describeSlot(rec camp.SlotRecord) string {
	activity := strings.TrimSpace(rec.Activity)
	if activity == "" {
		activity = output.StyleMuted.Render("(empty)")
	}
	var marks []string
	if rec.Continuation {
		marks = append(marks, "cont.")
	}
	if rec.IsTransition {
		marks = append(marks, "transition")
	}
	if rec.IsLeague {
		marks = append(marks, "league")
	}
	if len(marks) > 0 {
		activity += " " + output.StyleMuted.Render("["+strings.Join(marks, ", ")+"]")
	}
	return activity
}

func renderLeagues(day camp.Day) {
	if len(day.Leagues) == 0 {
		return
	}

	fmt.Println(output.Section("League Matchups"))
	fmt.Println()

	divisions := make([]string, 0, len(day.Leagues))
	for name := range day.Leagues {
		divisions = append(divisions, name)
	}
	sort.Strings(divisions)

	table := output.NewTable("Division", "Slot", "League", "Matchup")
	for _, division := range divisions {
		slots := day.Leagues[division]
		indexes := make([]int, 0, len(slots))
		for idx := range slots {
			indexes = append(indexes, idx)
		}
		sort.Ints(indexes)
		for _, idx := range indexes {
			slot := slots[idx]
			for _, m := range slot.Matchups {
				table.AddRow(
					division,
					strconv.Itoa(idx),
					slot.LeagueName,
					fmt.Sprintf("%s vs %s @ %s", m.TeamA, m.TeamB, m.Field),
				)
			}
		}
	}
	table.Print()
	fmt.Println()
}
