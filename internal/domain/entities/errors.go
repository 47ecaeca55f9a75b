package entities

import (
	"errors"
	"fmt"
)

// Content errors. A source carrying any of these is rejected as a whole.
var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidField = errors.New("invalid field")
)

// Invariant violations. These indicate a programming error and abort the game.
var (
	ErrEmptyLocation     = errors.New("location has no events")
	ErrEventResolved     = errors.New("event already resolved")
	ErrNoActiveCharacter = errors.New("no active character")
)

// ErrInvalidSelection is returned for a menu index outside the offered range.
var ErrInvalidSelection = errors.New("selection out of range")

// ErrGameOver is returned when a turn is requested after the game has ended.
var ErrGameOver = errors.New("game is over")

// IsInvariantViolation reports whether err belongs to the programming-error class.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrEmptyLocation) ||
		errors.Is(err, ErrEventResolved) ||
		errors.Is(err, ErrNoActiveCharacter)
}

// ContentError describes a problem with one record of a content source.
type ContentError struct {
	Source string // File or location name, empty if unknown
	Record int    // 1-indexed record position, 0 if unknown
	Field  string // Offending field, in content-file notation
	Value  string // Offending value, if any
	Err    error  // ErrMissingField or ErrInvalidField
}

func (e *ContentError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Err, e.Field)
	if e.Value != "" {
		msg += fmt.Sprintf(" (%q)", e.Value)
	}
	if e.Record > 0 {
		msg = fmt.Sprintf("record %d: %s", e.Record, msg)
	}
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	return msg
}

// Unwrap returns the content sentinel.
func (e *ContentError) Unwrap() error {
	return e.Err
}
