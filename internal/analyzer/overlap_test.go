package analyzer

import (
	"reflect"
	"testing"
)

func usage(bunk string, start, end int) Usage {
	return Usage{Bunk: bunk, StartMin: start, EndMin: end}
}

func groupBunks(groups [][]Usage) [][]string {
	out := make([][]string, 0, len(groups))
	for _, g := range groups {
		bunks := make([]string, 0, len(g))
		for _, u := range g {
			bunks = append(bunks, u.Bunk)
		}
		out = append(out, bunks)
	}
	return out
}

func TestGroupOverlapping_SeedAbsorbsOverlaps(t *testing.T) {
	groups := GroupOverlapping([]Usage{
		usage("A", 540, 600),
		usage("B", 570, 630),
		usage("C", 545, 555),
	})
	got := groupBunks(groups)
	want := [][]string{{"A", "B", "C"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("groups = %v, want %v", got, want)
	}
}

func TestGroupOverlapping_SeedBasedNotTransitive(t *testing.T) {
	// A overlaps B and B overlaps C, but A and C are disjoint. Seeded from
	// A, the group takes B only; C starts its own group.
	groups := GroupOverlapping([]Usage{
		usage("A", 540, 600),
		usage("B", 590, 650),
		usage("C", 640, 700),
	})
	got := groupBunks(groups)
	want := [][]string{{"A", "B"}, {"C"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("groups = %v, want %v", got, want)
	}
}

func TestGroupOverlapping_MiddleSeedMergesChain(t *testing.T) {
	// The same chain seeded from B absorbs both ends.
	groups := GroupOverlapping([]Usage{
		usage("B", 590, 650),
		usage("A", 540, 600),
		usage("C", 640, 700),
	})
	got := groupBunks(groups)
	want := [][]string{{"B", "A", "C"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("groups = %v, want %v", got, want)
	}
}

func TestGroupOverlapping_BoundaryTouchDoesNotOverlap(t *testing.T) {
	groups := GroupOverlapping([]Usage{
		usage("A", 540, 600),
		usage("B", 600, 660),
	})
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2: a shared boundary is not an overlap", len(groups))
	}
}

func TestGroupOverlapping_EveryUsageInExactlyOneGroup(t *testing.T) {
	usages := []Usage{
		usage("A", 0, 10),
		usage("B", 5, 15),
		usage("C", 20, 30),
		usage("D", 25, 35),
		usage("E", 8, 22),
	}
	groups := GroupOverlapping(usages)

	seen := make(map[string]int)
	total := 0
	for _, g := range groups {
		for _, u := range g {
			seen[u.Bunk]++
			total++
		}
	}
	if total != len(usages) {
		t.Fatalf("grouped %d usages, want %d", total, len(usages))
	}
	for bunk, n := range seen {
		if n != 1 {
			t.Errorf("usage %s appears in %d groups", bunk, n)
		}
	}
}

func TestGroupOverlapping_Empty(t *testing.T) {
	if groups := GroupOverlapping(nil); len(groups) != 0 {
		t.Errorf("got %d groups for no usages", len(groups))
	}
}

func TestGroupWindow(t *testing.T) {
	start, end := groupWindow([]Usage{
		usage("A", 540, 600),
		usage("B", 530, 590),
		usage("C", 550, 620),
	})
	if start != 530 || end != 620 {
		t.Errorf("window = %d-%d, want 530-620", start, end)
	}

	if start, end := groupWindow(nil); start != 0 || end != 0 {
		t.Errorf("empty group window = %d-%d, want 0-0", start, end)
	}
}
