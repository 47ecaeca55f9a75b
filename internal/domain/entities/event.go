package entities

import (
	"fmt"
	"strings"
)

// EventStatus is the result of resolving an event.
type EventStatus int

const (
	StatusUnknown EventStatus = iota
	StatusPass
	StatusFail
	StatusPartialPass
)

func (s EventStatus) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusPartialPass:
		return "partial_pass"
	default:
		return fmt.Sprintf("EventStatus(%d)", int(s))
	}
}

// DefaultChoices are offered when a record carries no choices of its own.
var DefaultChoices = []string{"Default Option 1", "Default Option 2"}

// DefaultPartialPassMessage is used when an event has a secondary attribute
// but no partial-pass message.
const DefaultPartialPassMessage = "You only partly succeed."

// Effect is a single statistic delta applied by an outcome.
type Effect struct {
	Attribute string `json:"attribute" yaml:"attribute"`
	Delta     int    `json:"delta" yaml:"delta"`
}

// Outcome is the message and effects of one resolution branch.
type Outcome struct {
	Message string
	Effects []Effect
}

// AppliedEffect records what an effect did to a statistic.
type AppliedEffect struct {
	Attribute string
	Delta     int
	Before    int
	After     int
}

// Resolution is the result of Event.Resolve.
type Resolution struct {
	Status  EventStatus
	Message string
	Applied []AppliedEffect
}

// Event is a narrative encounter resolved by matching the attribute the
// player applies against the event's primary and secondary attributes.
//
// Everything but the status is immutable once constructed. The status moves
// from StatusUnknown to a terminal value exactly once.
type Event struct {
	Prompt      string
	Primary     string
	Secondary   string // Empty when the event is strictly pass/fail
	Choices     []string
	Pass        Outcome
	PartialPass *Outcome
	Fail        Outcome

	status EventStatus
}

// Status returns the event's resolution status.
func (e *Event) Status() EventStatus {
	return e.status
}

// Fresh returns an unresolved execution of the same event definition.
func (e *Event) Fresh() *Event {
	cp := *e
	cp.status = StatusUnknown
	return &cp
}

// Classify returns the status a chosen attribute would produce.
// It depends only on the attribute name, never on statistic values.
func (e *Event) Classify(chosen string) EventStatus {
	chosen = strings.TrimSpace(chosen)
	switch {
	case strings.EqualFold(chosen, e.Primary):
		return StatusPass
	case e.Secondary != "" && strings.EqualFold(chosen, e.Secondary):
		return StatusPartialPass
	default:
		return StatusFail
	}
}

// Resolve classifies the chosen attribute, applies the matching outcome's
// effects to c and records the status. An effect on an attribute c does not
// have fails with ErrInvalidField before any effect is applied, leaving the
// event unresolved.
func (e *Event) Resolve(c *Character, chosen string) (Resolution, error) {
	if e.status != StatusUnknown {
		return Resolution{}, fmt.Errorf("%w: status is %s", ErrEventResolved, e.status)
	}
	if c == nil {
		return Resolution{}, ErrNoActiveCharacter
	}

	status := e.Classify(chosen)
	outcome := e.outcome(status)

	stats := make([]*Statistic, len(outcome.Effects))
	for i, eff := range outcome.Effects {
		stat, ok := c.Statistic(eff.Attribute)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: effect attribute %q", ErrInvalidField, eff.Attribute)
		}
		stats[i] = stat
	}

	applied := make([]AppliedEffect, 0, len(outcome.Effects))
	for i, eff := range outcome.Effects {
		stat := stats[i]
		before := stat.Value
		stat.Modify(eff.Delta)
		applied = append(applied, AppliedEffect{
			Attribute: stat.Name,
			Delta:     eff.Delta,
			Before:    before,
			After:     stat.Value,
		})
	}

	e.status = status
	return Resolution{Status: status, Message: outcome.Message, Applied: applied}, nil
}

func (e *Event) outcome(status EventStatus) Outcome {
	switch status {
	case StatusPass:
		return e.Pass
	case StatusPartialPass:
		if e.PartialPass != nil {
			return *e.PartialPass
		}
		return Outcome{Message: DefaultPartialPassMessage}
	default:
		return e.Fail
	}
}
