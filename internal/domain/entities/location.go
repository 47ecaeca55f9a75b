package entities

import "fmt"

// Rand is the source of uniform random indexes used to draw events.
type Rand interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// Location is a pool of events. Drawing does not consume: the same event
// definition may be drawn any number of times.
type Location struct {
	Name   string
	events []*Event
}

// NewLocation creates a location owning the given events.
func NewLocation(name string, events []*Event) *Location {
	return &Location{
		Name:   name,
		events: append([]*Event(nil), events...),
	}
}

// Len returns the number of event definitions in the pool.
func (l *Location) Len() int {
	return len(l.events)
}

// IsEmpty reports whether the pool holds no events.
func (l *Location) IsEmpty() bool {
	return len(l.events) == 0
}

// PickEvent draws an event uniformly at random, with replacement.
// The returned event is a fresh, unresolved execution of the definition.
func (l *Location) PickEvent(rng Rand) (*Event, error) {
	if len(l.events) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyLocation, l.Name)
	}
	return l.events[rng.Intn(len(l.events))].Fresh(), nil
}
