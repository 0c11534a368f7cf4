// Package picker filters the catalog down to the eligible subset and draws
// one item from it, weighted.
package picker

import (
	"errors"
	"time"

	"github.com/hungryops/lunchpick/pkg/catalog"
	"github.com/hungryops/lunchpick/pkg/history"
)

// ErrNoCandidates is returned by Pick when the eligible set is empty. It is
// not fatal: the caller reports "no result" and nothing is recorded.
var ErrNoCandidates = errors.New("no eligible candidates")

const (
	MinWindowDays = 0
	MaxWindowDays = 14
)

// Constraints are the per-pick filter parameters.
//
// A WindowDays of 0 keeps AvoidRecent degenerate rather than off: the cutoff
// is exactly now, so only entries stamped at or after the current instant
// would exclude, which in practice is none.
type Constraints struct {
	Budget       *int
	ExcludedTags []string
	AvoidRecent  bool
	WindowDays   int
}

// Eligible returns the items that pass every active constraint, preserving
// input order. It is a pure function of its inputs and is recomputed on each
// call rather than cached.
func Eligible(items []catalog.Item, log *history.Log, c Constraints, now time.Time) []catalog.Item {
	days := c.WindowDays
	if days < MinWindowDays {
		days = MinWindowDays
	} else if days > MaxWindowDays {
		days = MaxWindowDays
	}

	var recentNames map[string]bool
	if c.AvoidRecent {
		cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
		recentNames = make(map[string]bool)
		for _, e := range log.Recent(cutoff) {
			recentNames[e.Name] = true
		}
	}

	out := []catalog.Item{}
	for _, it := range items {
		if c.Budget != nil && it.Price != nil && *it.Price > *c.Budget {
			continue
		}
		if hasExcludedTag(it, c.ExcludedTags) {
			continue
		}
		if recentNames[it.Name] {
			continue
		}
		out = append(out, it)
	}
	return out
}

func hasExcludedTag(it catalog.Item, excluded []string) bool {
	for _, tag := range excluded {
		if it.HasTag(tag) {
			return true
		}
	}
	return false
}

// RandSource supplies uniform reals in [0, 1). *rand.Rand satisfies it;
// tests inject scripted sequences.
type RandSource interface {
	Float64() float64
}

// Pick draws one item from eligible with probability weight/total, where each
// weight is read as max(1, Weight). The draw walks the candidates in input
// order subtracting weights from a single uniform sample, so a scripted rand
// source yields a reproducible sequence of results.
func Pick(eligible []catalog.Item, rng RandSource) (catalog.Item, error) {
	if len(eligible) == 0 {
		return catalog.Item{}, ErrNoCandidates
	}
	total := 0
	for _, it := range eligible {
		total += effectiveWeight(it)
	}
	r := rng.Float64() * float64(total)
	for _, it := range eligible {
		r -= float64(effectiveWeight(it))
		if r <= 0 {
			return it, nil
		}
	}
	// Unreachable unless float rounding leaves a sliver; the last candidate
	// owns the tail of the interval either way.
	return eligible[len(eligible)-1], nil
}

func effectiveWeight(it catalog.Item) int {
	if it.Weight < catalog.MinWeight {
		return catalog.MinWeight
	}
	return it.Weight
}
