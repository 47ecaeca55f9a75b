package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/survive-core/internal/domain/ports"
)

// DefaultHistoryLimit is the number of games listed when no limit is given.
const DefaultHistoryLimit = 20

// GameDetail is a journaled game with its turns.
type GameDetail struct {
	Game  ports.GameRecord
	Turns []ports.TurnRecord
}

// HistoryService records finished games and reads them back.
type HistoryService struct {
	journal ports.Journal
	now     func() time.Time
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(journal ports.Journal) *HistoryService {
	return &HistoryService{
		journal: journal,
		now:     time.Now,
	}
}

// Record stores a finished game and its turns under a new ID, in a single
// journal write.
func (s *HistoryService) Record(ctx context.Context, summary *Summary, seed int64, startedAt time.Time) (*ports.GameRecord, error) {
	if summary == nil {
		return nil, errors.New("summary is required")
	}
	if !summary.Phase.IsTerminal() {
		return nil, fmt.Errorf("recording game: game is still %s", summary.Phase)
	}

	game := &ports.GameRecord{
		ID:        uuid.NewString(),
		Character: summary.Character,
		Weapon:    summary.Weapon,
		Seed:      seed,
		Outcome:   summary.Phase.String(),
		Turns:     len(summary.Turns),
		StartedAt: startedAt.UTC(),
		EndedAt:   s.now().UTC(),
	}
	turns := make([]ports.TurnRecord, len(summary.Turns))
	for i, t := range summary.Turns {
		turns[i] = ports.TurnRecord{
			GameID:      game.ID,
			Turn:        t.Turn,
			Location:    t.Location,
			Prompt:      t.Prompt,
			Choice:      t.Choice,
			Attribute:   t.Attribute,
			Status:      t.Resolution.Status.String(),
			HealthAfter: t.HealthLeft,
		}
	}
	if err := s.journal.SaveGame(ctx, game, turns); err != nil {
		return nil, fmt.Errorf("saving game: %w", err)
	}
	return game, nil
}

// Recent lists the most recent games.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]ports.GameRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	games, err := s.journal.ListGames(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	return games, nil
}

// Show returns a game with its turns.
func (s *HistoryService) Show(ctx context.Context, id string) (*GameDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid game id %q: %w", id, err)
	}

	game, err := s.journal.FindGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding game: %w", err)
	}
	if game == nil {
		return nil, fmt.Errorf("game %s not found", id)
	}

	turns, err := s.journal.FindTurns(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding turns: %w", err)
	}
	return &GameDetail{Game: *game, Turns: turns}, nil
}

// Stats returns the number of recorded games per outcome.
func (s *HistoryService) Stats(ctx context.Context) (map[string]int, error) {
	counts, err := s.journal.CountGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting games: %w", err)
	}
	return counts, nil
}
