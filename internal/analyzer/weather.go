package analyzer

import (
	"fmt"
	"sort"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// WeatherStats summarizes weather configuration and the dates checked.
type WeatherStats struct {
	IndoorFields  int      `json:"indoor_fields"`
	OutdoorFields int      `json:"outdoor_fields"`
	RainyOnly     int      `json:"rainy_only"`
	RainyDates    []string `json:"rainy_dates,omitempty"`
}

// AnalyzeWeather checks weather eligibility for every date. On a rainy day,
// use of an outdoor field (not marked rainy-day-available) is an error. On
// a dry day, use of a rainy-day-only activity is a warning. Unconfigured
// fields count as outdoor. One info line always reports the configured
// indoor/outdoor/rainy-only totals.
func AnalyzeWeather(b *camp.Bundle) Result {
	var res Result
	var stats WeatherStats

	for _, props := range b.Activities {
		if props.Indoor {
			stats.IndoorFields++
		} else {
			stats.OutdoorFields++
		}
		if props.RainyDayOnly {
			stats.RainyOnly++
		}
	}

	for _, day := range b.Days {
		if day.Rainy {
			stats.RainyDates = append(stats.RainyDates, day.Date)
		}

		for _, field := range usedFields(day) {
			props, ok := b.Activities[field]
			if day.Rainy {
				outdoor := !ok || !props.Indoor
				if outdoor && !(ok && props.RainyDayAvailable) {
					res.Errors = append(res.Errors, fmt.Sprintf(
						"outdoor field %q used on rainy day %s", field, day.Date))
				}
				continue
			}
			if ok && props.RainyDayOnly {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"rainy-day activity %q scheduled on %s, which is not marked rainy", field, day.Date))
			}
		}
	}

	res.Info = append(res.Info, fmt.Sprintf(
		"%d indoor fields, %d outdoor fields, %d rainy-day-only activities configured",
		stats.IndoorFields, stats.OutdoorFields, stats.RainyOnly))
	res.Data = stats
	return res
}

// usedFields returns the sorted distinct normalized field names appearing
// in a day's slot records. Continuations still count as use of the field;
// transitions and non-activity labels do not.
func usedFields(day camp.Day) []string {
	seen := make(map[string]bool)
	for _, records := range day.Assignments {
		for _, rec := range records {
			if rec.IsTransition || camp.IsIgnored(rec.Activity) {
				continue
			}
			seen[camp.NormalizeName(rec.Activity)] = true
		}
	}
	fields := make([]string, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
