package camp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadBundle reads a scheduler export directory into a Bundle. The expected
// layout is divisions.json, activities.json, history.json, and days/*.json
// (one file per date, named YYYY-MM-DD.json). Missing files yield empty
// sections; a day file with a bad name or unparseable JSON is skipped and
// recorded in SkippedDays.
func LoadBundle(dir string) (*Bundle, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("data directory %s: %w", dir, err)
	}

	b := &Bundle{
		Activities: make(map[string]ActivityProperties),
		History:    make(HistoryCounts),
	}

	if err := parseJSONFile(filepath.Join(dir, "divisions.json"), &b.Divisions); err != nil {
		return nil, fmt.Errorf("parsing divisions.json: %w", err)
	}

	// Activity keys are normalized at load so every later lookup can use
	// NormalizeName without re-checking raw spellings.
	raw := make(map[string]ActivityProperties)
	if err := parseJSONFile(filepath.Join(dir, "activities.json"), &raw); err != nil {
		return nil, fmt.Errorf("parsing activities.json: %w", err)
	}
	for name, props := range raw {
		key := NormalizeName(name)
		if key == "" {
			continue
		}
		b.Activities[key] = props
	}

	if err := parseJSONFile(filepath.Join(dir, "history.json"), &b.History); err != nil {
		return nil, fmt.Errorf("parsing history.json: %w", err)
	}

	days, skipped, err := loadDays(filepath.Join(dir, "days"))
	if err != nil {
		return nil, fmt.Errorf("reading days: %w", err)
	}
	b.Days = days
	b.SkippedDays = skipped

	return b, nil
}

// parseJSONFile unmarshals one JSON file into v. A missing file is not an
// error; the destination is left untouched.
func parseJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// loadDays reads all day snapshots from the days/ directory, skipping files
// whose name is not a valid ISO date or whose contents fail to parse. The
// filename is authoritative for the date: a disagreeing date field inside
// the file is overwritten.
func loadDays(dir string) ([]Day, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var days []Day
	var skipped []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		date := strings.TrimSuffix(entry.Name(), ".json")
		if !ValidDate(date) {
			skipped = append(skipped, entry.Name())
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			skipped = append(skipped, entry.Name())
			continue
		}
		var day Day
		if err := json.Unmarshal(data, &day); err != nil {
			skipped = append(skipped, entry.Name())
			continue
		}
		day.Date = date
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, skipped, nil
}
