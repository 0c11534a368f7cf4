package history

import (
	"fmt"
	"testing"
	"time"
)

// newTestLog returns a log whose clock advances one minute per Record call.
func newTestLog(start time.Time) *Log {
	n := 0
	return &Log{
		now: func() time.Time {
			n++
			return start.Add(time.Duration(n) * time.Minute)
		},
		newID: func() string { return fmt.Sprintf("h-%d", n) },
	}
}

func TestRecordBoundsTheLog(t *testing.T) {
	l := newTestLog(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	for i := 1; i <= MaxEntries+1; i++ {
		l.Record(fmt.Sprintf("entry-%d", i))
	}

	entries := l.Entries()
	if len(entries) != MaxEntries {
		t.Fatalf("expected exactly %d entries, got %d", MaxEntries, len(entries))
	}
	if entries[0].Name != fmt.Sprintf("entry-%d", MaxEntries+1) {
		t.Fatalf("expected newest entry first, got %q", entries[0].Name)
	}
	for _, e := range entries {
		if e.Name == "entry-1" {
			t.Fatal("expected the oldest entry to be dropped")
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Fatalf("expected most-recent-first ordering, %q after %q", entries[i].Name, entries[i-1].Name)
		}
	}
}

func TestRecentFiltersByWindowStart(t *testing.T) {
	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	l := newTestLog(start)
	l.Record("old")    // +1m
	l.Record("middle") // +2m
	l.Record("new")    // +3m

	got := l.Recent(start.Add(2 * time.Minute))
	if len(got) != 2 || got[0].Name != "new" || got[1].Name != "middle" {
		t.Fatalf("expected [new middle], got %#v", got)
	}

	// Boundary: an entry stamped exactly at windowStart is included.
	got = l.Recent(start.Add(3 * time.Minute))
	if len(got) != 1 || got[0].Name != "new" {
		t.Fatalf("expected [new], got %#v", got)
	}

	if got = l.Recent(start.Add(time.Hour)); len(got) != 0 {
		t.Fatalf("expected no entries after the window, got %#v", got)
	}
}

func TestClear(t *testing.T) {
	l := newTestLog(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	l.Record("a")
	l.Record("b")
	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("expected empty log after Clear, got %d entries", l.Len())
	}
}

func TestReplaceReappliesBound(t *testing.T) {
	var entries []Entry
	base := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	for i := 0; i < MaxEntries+5; i++ {
		entries = append(entries, Entry{
			ID:        fmt.Sprintf("h-%d", i),
			Name:      fmt.Sprintf("entry-%d", i),
			Timestamp: base.Add(-time.Duration(i) * time.Hour),
		})
	}

	l := NewLog()
	l.Replace(entries)
	if l.Len() != MaxEntries {
		t.Fatalf("expected Replace to truncate to %d entries, got %d", MaxEntries, l.Len())
	}
	if got := l.Entries()[0].Name; got != "entry-0" {
		t.Fatalf("expected the most recent entries kept, head is %q", got)
	}
}
