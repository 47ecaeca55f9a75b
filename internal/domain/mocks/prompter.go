// Package mocks provides mock implementations for testing.
package mocks

import (
	"errors"
	"fmt"

	"github.com/ersonp/survive-core/internal/domain/entities"
)

// ErrScriptExhausted is returned when a scripted prompter runs out of answers.
var ErrScriptExhausted = errors.New("script exhausted")

// Prompter is a mock implementation of ports.Prompter that replays scripted
// answers in order.
type Prompter struct {
	Indexes    []int
	Statistics []string
	Err        error

	IndexCalls     int
	StatisticCalls int
	Prompts        []string
}

// ChooseIndex returns the next scripted index.
func (m *Prompter) ChooseIndex(prompt string, count int) (int, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return 0, m.Err
	}
	if m.IndexCalls >= len(m.Indexes) {
		return 0, fmt.Errorf("choose index: %w", ErrScriptExhausted)
	}
	idx := m.Indexes[m.IndexCalls]
	m.IndexCalls++
	return idx, nil
}

// ChooseStatistic returns the character's statistic named by the next
// scripted answer.
func (m *Prompter) ChooseStatistic(c *entities.Character) (*entities.Statistic, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.StatisticCalls >= len(m.Statistics) {
		return nil, fmt.Errorf("choose statistic: %w", ErrScriptExhausted)
	}
	name := m.Statistics[m.StatisticCalls]
	m.StatisticCalls++

	stat, ok := c.Statistic(name)
	if !ok {
		return nil, fmt.Errorf("choose statistic: unknown %q", name)
	}
	return stat, nil
}

// Narrator is a mock implementation of ports.Narrator that records lines.
type Narrator struct {
	Lines []string
}

// Say records the formatted line.
func (m *Narrator) Say(format string, args ...any) {
	m.Lines = append(m.Lines, fmt.Sprintf(format, args...))
}

// Random is a mock implementation of ports.RandomSource. It replays Values
// modulo n, then returns 0 once they run out.
type Random struct {
	Values []int
	Calls  int
}

// Intn returns the next scripted value.
func (m *Random) Intn(n int) int {
	if m.Calls >= len(m.Values) {
		m.Calls++
		return 0
	}
	v := m.Values[m.Calls] % n
	m.Calls++
	return v
}
