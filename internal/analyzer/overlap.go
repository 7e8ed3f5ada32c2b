package analyzer

import "github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"

// Usage is one bunk's claim on a field during a time window.
type Usage struct {
	Bunk     string `json:"bunk"`
	Division string `json:"division"`
	Field    string `json:"field"`
	Date     string `json:"date"`
	StartMin int    `json:"start_min"`
	EndMin   int    `json:"end_min"`
}

// GroupOverlapping partitions usages into clusters of concurrent use.
//
// The grouping is seed-based: scanning in input order, each unclaimed usage
// seeds a new group and absorbs every later unclaimed usage whose interval
// overlaps the seed's. This is not a transitive closure: in a chain A-B-C
// where A and C overlap only B, the result depends on which usage seeds
// first. Capacity and conflict checks are calibrated to this exact
// behavior; do not "fix" it without revisiting both.
//
// Every input usage appears in exactly one output group, and iteration is
// stable, so identical input order yields identical groups.
func GroupOverlapping(usages []Usage) [][]Usage {
	claimed := make([]bool, len(usages))
	var groups [][]Usage

	for i := range usages {
		if claimed[i] {
			continue
		}
		claimed[i] = true
		group := []Usage{usages[i]}

		for j := i + 1; j < len(usages); j++ {
			if claimed[j] {
				continue
			}
			if camp.Overlaps(usages[i].StartMin, usages[i].EndMin, usages[j].StartMin, usages[j].EndMin) {
				claimed[j] = true
				group = append(group, usages[j])
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// groupWindow returns the overall [start,end) window spanned by a group.
func groupWindow(group []Usage) (int, int) {
	if len(group) == 0 {
		return 0, 0
	}
	start, end := group[0].StartMin, group[0].EndMin
	for _, u := range group[1:] {
		if u.StartMin < start {
			start = u.StartMin
		}
		if u.EndMin > end {
			end = u.EndMin
		}
	}
	return start, end
}
