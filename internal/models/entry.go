// ABOUTME: Entry model and EventKind enum for infant-care events.
// ABOUTME: One entry holds the milk/pee/poop flags for one baby at one timestamp.
package models

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies one of the three tracked event series.
type EventKind string

const (
	EventMilk EventKind = "milk"
	EventPee  EventKind = "pee"
	EventPoop EventKind = "poop"
)

// AllEventKinds returns the event kinds in display order.
var AllEventKinds = []EventKind{EventMilk, EventPee, EventPoop}

// IsValidEventKind checks if a string is a valid event kind.
func IsValidEventKind(s string) bool {
	for _, k := range AllEventKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// Entry represents the state of the three event flags for one baby at one
// timestamp. Identity for upsert purposes is (BabyID, Ts); ID is the row key.
// A single entry can contribute to all three event series at once.
type Entry struct {
	ID        uuid.UUID
	BabyID    int64
	Ts        time.Time
	Milk      bool
	Pee       bool
	Poop      bool
	CreatedAt time.Time
}

// NewEntry creates an Entry with a generated row ID. The timestamp is
// truncated to whole minutes; finer alignment (half-hour slots) is up to
// the caller.
func NewEntry(babyID int64, ts time.Time, milk, pee, poop bool) *Entry {
	return &Entry{
		ID:        uuid.New(),
		BabyID:    babyID,
		Ts:        ts.Truncate(time.Minute),
		Milk:      milk,
		Pee:       pee,
		Poop:      poop,
		CreatedAt: time.Now(),
	}
}

// Has reports whether the flag for the given event kind is set.
func (e *Entry) Has(kind EventKind) bool {
	switch kind {
	case EventMilk:
		return e.Milk
	case EventPee:
		return e.Pee
	case EventPoop:
		return e.Poop
	}
	return false
}
