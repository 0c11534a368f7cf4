package picker

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/hungryops/lunchpick/pkg/catalog"
	"github.com/hungryops/lunchpick/pkg/history"
)

func intPtr(n int) *int { return &n }

func names(items []catalog.Item) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func logWith(entries ...history.Entry) *history.Log {
	l := history.NewLog()
	l.Replace(entries)
	return l
}

var now = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func TestEligiblePredicates(t *testing.T) {
	items := []catalog.Item{
		{ID: "1", Name: "A", Price: intPtr(9000), Weight: 1},
		{ID: "2", Name: "B", Price: intPtr(20000), Weight: 3, Tags: []string{"fancy"}},
		{ID: "3", Name: "C", Weight: 2, Tags: []string{"quick", "cheap"}},
	}

	tests := []struct {
		name string
		log  *history.Log
		c    Constraints
		want []string
	}{
		{
			name: "no constraints keeps input order",
			log:  logWith(),
			c:    Constraints{},
			want: []string{"A", "B", "C"},
		},
		{
			name: "budget excludes known prices above the ceiling",
			log:  logWith(),
			c:    Constraints{Budget: intPtr(10000)},
			want: []string{"A", "C"},
		},
		{
			name: "unknown price always passes the budget test",
			log:  logWith(),
			c:    Constraints{Budget: intPtr(1)},
			want: []string{"C"},
		},
		{
			name: "excluded tags",
			log:  logWith(),
			c:    Constraints{ExcludedTags: []string{"fancy", "cheap"}},
			want: []string{"A"},
		},
		{
			name: "recency excludes by name within the window",
			log:  logWith(history.Entry{Name: "A", Timestamp: now.Add(-48 * time.Hour)}),
			c:    Constraints{AvoidRecent: true, WindowDays: 5},
			want: []string{"B", "C"},
		},
		{
			name: "recency disabled ignores history",
			log:  logWith(history.Entry{Name: "A", Timestamp: now.Add(-48 * time.Hour)}),
			c:    Constraints{AvoidRecent: false, WindowDays: 5},
			want: []string{"A", "B", "C"},
		},
		{
			name: "zero-day window excludes nothing in the past",
			log:  logWith(history.Entry{Name: "A", Timestamp: now.Add(-time.Second)}),
			c:    Constraints{AvoidRecent: true, WindowDays: 0},
			want: []string{"A", "B", "C"},
		},
		{
			name: "window days clamp to the maximum",
			log:  logWith(history.Entry{Name: "A", Timestamp: now.Add(-15 * 24 * time.Hour)}),
			c:    Constraints{AvoidRecent: true, WindowDays: 99},
			want: []string{"B", "C"},
		},
		{
			name: "all predicates conjoin",
			log:  logWith(history.Entry{Name: "A", Timestamp: now.Add(-time.Hour)}),
			c: Constraints{
				Budget:       intPtr(10000),
				ExcludedTags: []string{"quick"},
				AvoidRecent:  true,
				WindowDays:   5,
			},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Eligible(items, tt.log, tt.c, now))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected eligible set.\nwant: %#v\ngot:  %#v", tt.want, got)
			}
		})
	}
}

func TestEligibleRecencyWindowBoundary(t *testing.T) {
	// Picked at t0, avoided with a 5 day window: excluded through day 5,
	// eligible again on day 6.
	picked := now
	items := []catalog.Item{{ID: "1", Name: "A", Weight: 1}}
	log := logWith(history.Entry{Name: "A", Timestamp: picked})
	c := Constraints{AvoidRecent: true, WindowDays: 5}

	for day := 1; day <= 5; day++ {
		at := picked.Add(time.Duration(day) * 24 * time.Hour)
		if got := Eligible(items, log, c, at); len(got) != 0 {
			t.Fatalf("expected A excluded on day %d, got %#v", day, names(got))
		}
	}
	at := picked.Add(6 * 24 * time.Hour)
	if got := names(Eligible(items, log, c, at)); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("expected A eligible again on day 6, got %#v", got)
	}
}

// seqRand replays a scripted sequence of uniform samples.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestPickEmptySet(t *testing.T) {
	if _, err := Pick(nil, &seqRand{vals: []float64{0.5}}); err != ErrNoCandidates {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestPickScriptedSequence(t *testing.T) {
	// A has weight 1, B has weight 3, total 4: samples below 0.25 land on A.
	eligible := []catalog.Item{
		{ID: "1", Name: "A", Weight: 1},
		{ID: "2", Name: "B", Weight: 3},
	}
	rng := &seqRand{vals: []float64{0.0, 0.2, 0.25, 0.26, 0.99}}

	want := []string{"A", "A", "A", "B", "B"}
	for n, expected := range want {
		got, err := Pick(eligible, rng)
		if err != nil {
			t.Fatalf("draw %d: unexpected error: %v", n, err)
		}
		if got.Name != expected {
			t.Fatalf("draw %d: want %q, got %q", n, expected, got.Name)
		}
	}
}

func TestPickClampsZeroWeights(t *testing.T) {
	// A stored weight of 0 is read as 1, so A must still be reachable.
	eligible := []catalog.Item{
		{ID: "1", Name: "A", Weight: 0},
		{ID: "2", Name: "B", Weight: 1},
	}
	got, err := Pick(eligible, &seqRand{vals: []float64{0.1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "A" {
		t.Fatalf("expected A for a low sample, got %q", got.Name)
	}
}

func TestPickProportionality(t *testing.T) {
	eligible := []catalog.Item{
		{ID: "1", Name: "A", Weight: 1},
		{ID: "2", Name: "B", Weight: 3},
	}
	rng := rand.New(rand.NewSource(1))

	const trials = 20000
	counts := map[string]int{}
	for n := 0; n < trials; n++ {
		it, err := Pick(eligible, rng)
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", n, err)
		}
		counts[it.Name]++
	}

	gotB := float64(counts["B"]) / trials
	if gotB < 0.72 || gotB > 0.78 {
		t.Fatalf("expected B frequency near 0.75, got %.3f (counts %v)", gotB, counts)
	}
}

func TestBudgetScenarioAlwaysReturnsA(t *testing.T) {
	items := []catalog.Item{
		{ID: "1", Name: "A", Price: intPtr(9000), Weight: 1},
		{ID: "2", Name: "B", Price: intPtr(20000), Weight: 3},
	}
	eligible := Eligible(items, logWith(), Constraints{Budget: intPtr(10000)}, now)
	if got := names(eligible); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("expected only A eligible, got %#v", got)
	}

	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 100; n++ {
		it, err := Pick(eligible, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.Name != "A" {
			t.Fatalf("expected every draw to return A, got %q", it.Name)
		}
	}
}
