package mocks

import (
	"context"
	"sort"

	"github.com/ersonp/survive-core/internal/domain/ports"
)

// Journal is a mock implementation of ports.Journal.
type Journal struct {
	Games  map[string]*ports.GameRecord
	Turns  map[string][]ports.TurnRecord
	Err    error
	// TurnsErr fails SaveGame as a failed turn write would: nothing is stored.
	TurnsErr error
	Closed   bool
}

// NewJournal creates a new mock Journal.
func NewJournal() *Journal {
	return &Journal{
		Games: make(map[string]*ports.GameRecord),
		Turns: make(map[string][]ports.TurnRecord),
	}
}

// EnsureSchema creates the database schema if it doesn't exist.
func (m *Journal) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the journal.
func (m *Journal) Close() error {
	m.Closed = true
	return nil
}

// SaveGame stores a finished game and its turns.
func (m *Journal) SaveGame(_ context.Context, game *ports.GameRecord, turns []ports.TurnRecord) error {
	if m.Err != nil {
		return m.Err
	}
	if len(turns) > 0 && m.TurnsErr != nil {
		return m.TurnsErr
	}
	m.Games[game.ID] = game
	for _, t := range turns {
		m.Turns[t.GameID] = append(m.Turns[t.GameID], t)
	}
	return nil
}

// FindGame finds a game by ID.
func (m *Journal) FindGame(_ context.Context, id string) (*ports.GameRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Games[id], nil
}

// ListGames lists the most recent games first.
func (m *Journal) ListGames(_ context.Context, limit int) ([]ports.GameRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]ports.GameRecord, 0, len(m.Games))
	for _, g := range m.Games {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EndedAt.After(result[j].EndedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// FindTurns finds the turns of a game.
func (m *Journal) FindTurns(_ context.Context, gameID string) ([]ports.TurnRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Turns[gameID], nil
}

// CountGames returns the number of games grouped by outcome.
func (m *Journal) CountGames(_ context.Context) (map[string]int, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	counts := make(map[string]int)
	for _, g := range m.Games {
		counts[g.Outcome]++
	}
	return counts, nil
}
