package entities

import "fmt"

// Default bounds for a Statistic.
const (
	DefaultStatMin = 0
	DefaultStatMax = 100
)

// Statistic is a bounded numeric attribute of a Character.
//
// Min <= Value <= Max holds after any call to Modify. Constructors store the
// value they are given without clamping.
type Statistic struct {
	Name        string `json:"name" yaml:"name"`
	Value       int    `json:"value" yaml:"value"`
	Min         int    `json:"min" yaml:"min"`
	Max         int    `json:"max" yaml:"max"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewStatistic creates a statistic with the default 0..100 bounds.
func NewStatistic(name string, value int, description string) *Statistic {
	return NewBoundedStatistic(name, value, DefaultStatMin, DefaultStatMax, description)
}

// NewBoundedStatistic creates a statistic with explicit bounds.
func NewBoundedStatistic(name string, value, min, max int, description string) *Statistic {
	return &Statistic{
		Name:        name,
		Value:       value,
		Min:         min,
		Max:         max,
		Description: description,
	}
}

// Modify adds amount to the value and clamps the result to [Min, Max].
// Deltas of any size saturate instead of overflowing.
func (s *Statistic) Modify(amount int) {
	sum := s.Value + amount
	switch {
	case amount > 0 && sum < s.Value:
		sum = s.Max
	case amount < 0 && sum > s.Value:
		sum = s.Min
	}
	s.Value = max(s.Min, min(s.Max, sum))
}

// String returns "Name: value".
func (s *Statistic) String() string {
	return fmt.Sprintf("%s: %d", s.Name, s.Value)
}
