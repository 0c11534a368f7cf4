// Package session ties the catalog, history and persisted state together and
// enforces the write-through and single-pick rules.
package session

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hungryops/lunchpick/internal/utils"
	"github.com/hungryops/lunchpick/pkg/catalog"
	"github.com/hungryops/lunchpick/pkg/history"
	"github.com/hungryops/lunchpick/pkg/picker"
	"github.com/hungryops/lunchpick/pkg/storage"
)

// ErrPickInFlight is returned when a pick is requested while another one is
// still running. The second request is rejected rather than queued so a
// single user action can never append history twice.
var ErrPickInFlight = errors.New("another pick is already in flight")

// Session owns the live state for one process. All mutations write the
// combined blob back immediately; there is no batching.
//
// Methods are safe for concurrent use: the HTTP server runs each request on
// its own goroutine, so every operation serializes on one mutex and runs to
// completion before the next is admitted.
type Session struct {
	mu      sync.Mutex
	catalog *catalog.Store
	history *history.Log
	db      *storage.DB
	rng     picker.RandSource
	now     func() time.Time
	picking atomic.Bool
}

// Open loads persisted state from db. On the first run, or when the stored
// blob is unreadable, it seeds the default catalog with an empty history and
// persists that instead.
func Open(ctx context.Context, db *storage.DB) (*Session, error) {
	s := &Session{
		catalog: catalog.NewStore(),
		history: history.NewLog(),
		db:      db,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
	st, err := db.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		utils.Log.Debug("No usable persisted state, seeding the default catalog")
		seedCatalog(s.catalog)
		if err := s.save(ctx); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		s.catalog.Replace(st.Items)
		s.history.Replace(st.History)
	}
	return s, nil
}

// seedCatalog fills an empty store with a starter list. Add prepends, so the
// entries go in bottom-up.
func seedCatalog(c *catalog.Store) {
	price := func(n int) *int { return &n }
	c.Add("Salad bowl", price(1100), []string{"healthy", "light"})
	c.Add("Taco truck", price(900), []string{"quick"})
	c.Add("Sushi train", price(1500), []string{"japanese"})
	c.Add("Ramen bar", price(1000), []string{"japanese", "noodles"})
	c.Add("Pizza corner", price(1200), []string{"italian"})
}

func (s *Session) save(ctx context.Context) error {
	return s.db.Save(ctx, storage.State{
		Items:   s.catalog.List(),
		History: s.history.Entries(),
	})
}

// Items returns the catalog in display order, most recently added first.
func (s *Session) Items() []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.List()
}

// Item returns a single catalog entry by id.
func (s *Session) Item(id string) (catalog.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Get(id)
}

// History returns the pick log, most recent first.
func (s *Session) History() []history.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// Add creates a new catalog item. A blank name is a no-op: added is false and
// nothing is persisted.
func (s *Session) Add(ctx context.Context, name string, priceMinor *int, tags []string) (catalog.Item, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, added := s.catalog.Add(name, priceMinor, tags)
	if !added {
		return catalog.Item{}, false, nil
	}
	return item, true, s.save(ctx)
}

// Remove deletes an item by id. Unknown ids are a no-op and do not save.
func (s *Session) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.catalog.Remove(id) {
		return false, nil
	}
	return true, s.save(ctx)
}

// SetWeight updates an item's selection weight, clamped into the valid range.
func (s *Session) SetWeight(ctx context.Context, id string, weight int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.catalog.SetWeight(id, weight) {
		return false, nil
	}
	return true, s.save(ctx)
}

// ClearHistory empties the pick log.
func (s *Session) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Clear()
	return s.save(ctx)
}

// Eligible returns the subset of the catalog passing the given constraints
// right now.
func (s *Session) Eligible(c picker.Constraints) []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eligible(c)
}

func (s *Session) eligible(c picker.Constraints) []catalog.Item {
	return picker.Eligible(s.catalog.List(), s.history, c, s.now())
}

// Pick draws one item from the eligible subset, records it in the history and
// persists the result. Only one pick may run at a time; an overlapping
// request gets ErrPickInFlight instead of queueing behind the mutex. A failed
// draw records nothing, and a failed save rolls the recorded entry back so an
// errored pick leaves no trace.
func (s *Session) Pick(ctx context.Context, c picker.Constraints) (catalog.Item, error) {
	if !s.picking.CompareAndSwap(false, true) {
		return catalog.Item{}, ErrPickInFlight
	}
	defer s.picking.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := picker.Pick(s.eligible(c), s.rng)
	if err != nil {
		return catalog.Item{}, err
	}
	prev := s.history.Entries()
	s.history.Record(item.Name)
	if err := s.save(ctx); err != nil {
		s.history.Replace(prev)
		return catalog.Item{}, err
	}
	return item, nil
}

// TagCount pairs a tag with the number of items carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Stats summarizes the catalog and history for display.
type Stats struct {
	Items       int        `json:"items"`
	TotalWeight int        `json:"total_weight"`
	HistoryLen  int        `json:"history_len"`
	Tags        []TagCount `json:"tags"`
}

// Stats computes the current summary. Tags are sorted by count, then name.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{HistoryLen: s.history.Len()}
	counts := map[string]int{}
	for _, it := range s.catalog.List() {
		st.Items++
		st.TotalWeight += catalog.ClampWeight(it.Weight)
		for _, tag := range it.Tags {
			counts[tag]++
		}
	}
	for tag, n := range counts {
		st.Tags = append(st.Tags, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(st.Tags, func(i, j int) bool {
		if st.Tags[i].Count != st.Tags[j].Count {
			return st.Tags[i].Count > st.Tags[j].Count
		}
		return st.Tags[i].Tag < st.Tags[j].Tag
	})
	return st
}
