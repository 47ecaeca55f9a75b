package ports

import (
	"context"
	"time"
)

// GameRecord is a finished game as stored in the journal.
type GameRecord struct {
	ID        string    `json:"id"`
	Character string    `json:"character"`
	Weapon    string    `json:"weapon"`
	Seed      int64     `json:"seed"`
	Outcome   string    `json:"outcome"`
	Turns     int       `json:"turns"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// TurnRecord is one resolved event of a game.
type TurnRecord struct {
	GameID      string `json:"game_id"`
	Turn        int    `json:"turn"`
	Location    string `json:"location"`
	Prompt      string `json:"prompt"`
	Choice      string `json:"choice"`
	Attribute   string `json:"attribute"`
	Status      string `json:"status"`
	HealthAfter int    `json:"health_after"`
}

// Journal stores the history of finished games. It is an append-only record
// for the history command; games are never resumed from it.
type Journal interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error

	// SaveGame stores a finished game and its turns atomically: either the
	// game and every turn are written, or nothing is.
	SaveGame(ctx context.Context, game *GameRecord, turns []TurnRecord) error

	// FindGame finds a game by ID. Returns nil if not found.
	FindGame(ctx context.Context, id string) (*GameRecord, error)

	// ListGames lists the most recent games first.
	ListGames(ctx context.Context, limit int) ([]GameRecord, error)

	// FindTurns finds the turns of a game in play order.
	FindTurns(ctx context.Context, gameID string) ([]TurnRecord, error)

	// CountGames returns the number of games, grouped by outcome.
	CountGames(ctx context.Context) (map[string]int, error)
}
