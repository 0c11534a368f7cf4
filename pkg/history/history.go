// Package history keeps a bounded record of past picks.
package history

import (
	"time"

	"github.com/google/uuid"
)

// MaxEntries bounds the log; the oldest entry is dropped on overflow.
const MaxEntries = 30

// Entry is a snapshot of one pick. Name is copied from the item at pick time,
// so deleting the item later leaves the entry intact. Matching against the
// log is by name only: two items that share a name are indistinguishable here.
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// Log is the append-only pick record, most recent first.
type Log struct {
	entries []Entry
	now     func() time.Time
	newID   func() string
}

func NewLog() *Log {
	return &Log{now: time.Now, newID: uuid.NewString}
}

// Record prepends a new entry stamped with the current time and truncates the
// log to MaxEntries.
func (l *Log) Record(name string) Entry {
	e := Entry{
		ID:        l.newID(),
		Name:      name,
		Timestamp: l.now(),
	}
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
	return e
}

// Recent returns the entries stamped at or after windowStart, most recent
// first.
func (l *Log) Recent(windowStart time.Time) []Entry {
	out := []Entry{}
	for _, e := range l.entries {
		if !e.Timestamp.Before(windowStart) {
			out = append(out, e)
		}
	}
	return out
}

// Clear empties the log unconditionally.
func (l *Log) Clear() {
	l.entries = nil
}

// Entries returns a copy of the full log, most recent first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}

// Replace swaps in a previously persisted log, re-applying the bound in case
// the blob predates it.
func (l *Log) Replace(entries []Entry) {
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	l.entries = make([]Entry, len(entries))
	copy(l.entries, entries)
}
