package analyzer

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// Thresholds are the tunable limits of the threshold-driven sections.
type Thresholds struct {
	// StreakLimit is the longest tolerated run of consecutive days a bunk
	// repeats one activity.
	StreakLimit int

	// CoverageMinimum is the smallest acceptable fraction of known
	// activities a bunk has tried.
	CoverageMinimum float64

	// HistoryTolerance is the largest ignored gap between a stored
	// occurrence count and the recomputed one.
	HistoryTolerance int

	// LeagueGameSpread is the largest tolerated games-played gap between
	// teams in one league.
	LeagueGameSpread int

	// LeagueRematchLimit is how often a pair may meet before rematches are
	// worth noting.
	LeagueRematchLimit int

	// DistributionSpread is the largest tolerated occurrence gap for one
	// activity across a division's bunks.
	DistributionSpread int

	// RotationDisallowedShare is the fraction of activities that may be
	// disallowed for a bunk before the rotation audit flags it.
	RotationDisallowedShare float64
}

// DefaultThresholds returns the stock limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StreakLimit:             2,
		CoverageMinimum:         0.5,
		HistoryTolerance:        2,
		LeagueGameSpread:        2,
		LeagueRematchLimit:      2,
		DistributionSpread:      3,
		RotationDisallowedShare: 0.5,
	}
}

// Options configures one pipeline run. Start and End bound the date range
// inclusively (empty leaves that side open), Divisions is an optional
// allow-list, Scorer enables the rotation audit, and a zero Thresholds
// value selects the defaults.
type Options struct {
	Start      string
	End        string
	Divisions  []string
	Scorer     ScoreFunc
	Thresholds Thresholds

	// Parallel runs the sections concurrently. Section results and the
	// summary are identical either way.
	Parallel bool
}

// Run filters the bundle once and executes every diagnostic section
// against the filtered snapshot. A panic inside a section is recovered
// and recorded as Report.Error; sections that completed are still
// returned.
func Run(bundle *camp.Bundle, opts Options) *Report {
	if opts.Thresholds == (Thresholds{}) {
		opts.Thresholds = DefaultThresholds()
	}

	b := bundle.Filter(opts.Start, opts.End, opts.Divisions)
	runners := sectionRunners(b, opts)

	report := &Report{
		Sections:    make(map[string]Result, len(SectionOrder)),
		GeneratedAt: time.Now(),
	}

	if opts.Parallel {
		runParallel(report, runners)
	} else {
		runSequential(report, runners)
	}

	for _, section := range SectionOrder {
		res, ok := report.Sections[section]
		if !ok {
			continue
		}
		report.Summary.Errors += len(res.Errors)
		report.Summary.Warnings += len(res.Warnings)
		report.Summary.Info += len(res.Info)
	}
	return report
}

// sectionRunners binds each section to its analyzer over one filtered
// snapshot.
func sectionRunners(b *camp.Bundle, opts Options) map[string]func() Result {
	t := opts.Thresholds
	return map[string]func() Result{
		SectionDistribution:  func() Result { return AnalyzeDistribution(b, t.DistributionSpread) },
		SectionCapacity:      func() Result { return AnalyzeCapacity(b) },
		SectionCrossDivision: func() Result { return AnalyzeCrossDivision(b) },
		SectionWeather:       func() Result { return AnalyzeWeather(b) },
		SectionRotation:      func() Result { return AnalyzeRotation(b, opts.Scorer, t.RotationDisallowedShare) },
		SectionLeague:        func() Result { return AnalyzeLeague(b, t.LeagueGameSpread, t.LeagueRematchLimit) },
		SectionHistory:       func() Result { return AnalyzeHistory(b, t.HistoryTolerance) },
		SectionStreaks:       func() Result { return AnalyzeStreaks(b, t.StreakLimit) },
		SectionCoverage:      func() Result { return AnalyzeCoverage(b, t.CoverageMinimum) },
		SectionTimeWindows:   func() Result { return AnalyzeTimeWindows(b) },
		SectionTimeSlots:     func() Result { return AnalyzeTimeSlots(b) },
	}
}

// runSequential executes sections in order, stopping at the first panic.
func runSequential(report *Report, runners map[string]func() Result) {
	for _, section := range SectionOrder {
		res, err := runSection(section, runners[section])
		if err != nil {
			report.Error = err.Error()
			return
		}
		report.Sections[section] = res
	}
}

// runParallel executes every section concurrently. Panicked sections are
// dropped; completed ones are merged back in fixed order.
func runParallel(report *Report, runners map[string]func() Result) {
	results := make([]Result, len(SectionOrder))
	done := make([]bool, len(SectionOrder))

	var g errgroup.Group
	for i, section := range SectionOrder {
		i, section := i, section
		g.Go(func() error {
			res, err := runSection(section, runners[section])
			if err != nil {
				return err
			}
			results[i] = res
			done[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		report.Error = err.Error()
	}

	for i, section := range SectionOrder {
		if done[i] {
			report.Sections[section] = results[i]
		}
	}
}

// runSection converts a section panic into an error.
func runSection(section string, run func() Result) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", section, r)
		}
	}()
	return run(), nil
}
