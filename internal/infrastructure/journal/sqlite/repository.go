// Package sqlite provides a SQLite implementation of the Journal interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/survive-core/internal/domain/ports"
	"github.com/ersonp/survive-core/internal/infrastructure/config"
)

// Repository implements ports.Journal using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository. cfg.Path must already be
// resolved; ":memory:" opens a private in-memory database.
func NewRepository(cfg config.JournalConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// One connection: the journal is written by a single game at a time and
	// an in-memory database only exists per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Finished games
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		character TEXT NOT NULL,
		weapon TEXT,
		seed INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		turns INTEGER NOT NULL,
		started_at TIMESTAMP NOT NULL,
		ended_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_games_ended ON games(ended_at);
	CREATE INDEX IF NOT EXISTS idx_games_outcome ON games(outcome);

	-- Resolved events of each game
	CREATE TABLE IF NOT EXISTS turns (
		game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
		turn INTEGER NOT NULL,
		location TEXT NOT NULL,
		prompt TEXT NOT NULL,
		choice TEXT,
		attribute TEXT NOT NULL,
		status TEXT NOT NULL,
		health_after INTEGER NOT NULL,
		PRIMARY KEY (game_id, turn)
	);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveGame stores a finished game and its turns in a single transaction.
func (r *Repository) SaveGame(ctx context.Context, game *ports.GameRecord, turns []ports.TurnRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO games (id, character, weapon, seed, outcome, turns, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		game.ID,
		game.Character,
		nullString(game.Weapon),
		game.Seed,
		game.Outcome,
		game.Turns,
		game.StartedAt.UTC(),
		game.EndedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving game: %w", err)
	}

	if err := saveTurns(ctx, tx, game.ID, turns); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing game: %w", err)
	}
	return nil
}

// saveTurns inserts the turns of gameID inside tx.
func saveTurns(ctx context.Context, tx *sql.Tx, gameID string, turns []ports.TurnRecord) error {
	if len(turns) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO turns (game_id, turn, location, prompt, choice, attribute, status, health_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing turn insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range turns {
		if t.GameID != gameID {
			return fmt.Errorf("saving turn %d: belongs to game %q, not %q", t.Turn, t.GameID, gameID)
		}
		if _, err := stmt.ExecContext(ctx,
			t.GameID,
			t.Turn,
			t.Location,
			t.Prompt,
			nullString(t.Choice),
			t.Attribute,
			t.Status,
			t.HealthAfter,
		); err != nil {
			return fmt.Errorf("saving turn %d: %w", t.Turn, err)
		}
	}
	return nil
}

// FindGame finds a game by ID. Returns nil if not found.
func (r *Repository) FindGame(ctx context.Context, id string) (*ports.GameRecord, error) {
	query := `
		SELECT id, character, weapon, seed, outcome, turns, started_at, ended_at
		FROM games
		WHERE id = ?
	`
	game, err := scanGame(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning game: %w", err)
	}
	return game, nil
}

// ListGames lists the most recent games first.
func (r *Repository) ListGames(ctx context.Context, limit int) ([]ports.GameRecord, error) {
	query := `
		SELECT id, character, weapon, seed, outcome, turns, started_at, ended_at
		FROM games
		ORDER BY ended_at DESC, id
		LIMIT ?
	`
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	var games []ports.GameRecord
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, *game)
	}
	return games, rows.Err()
}

// FindTurns finds the turns of a game in play order.
func (r *Repository) FindTurns(ctx context.Context, gameID string) ([]ports.TurnRecord, error) {
	query := `
		SELECT game_id, turn, location, prompt, choice, attribute, status, health_after
		FROM turns
		WHERE game_id = ?
		ORDER BY turn
	`
	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying turns: %w", err)
	}
	defer rows.Close()

	var turns []ports.TurnRecord
	for rows.Next() {
		var t ports.TurnRecord
		var choice sql.NullString
		if err := rows.Scan(
			&t.GameID,
			&t.Turn,
			&t.Location,
			&t.Prompt,
			&choice,
			&t.Attribute,
			&t.Status,
			&t.HealthAfter,
		); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		t.Choice = choice.String
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// CountGames returns the number of games, grouped by outcome.
func (r *Repository) CountGames(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM games GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("counting games: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGame(s scanner) (*ports.GameRecord, error) {
	var game ports.GameRecord
	var weapon sql.NullString
	err := s.Scan(
		&game.ID,
		&game.Character,
		&weapon,
		&game.Seed,
		&game.Outcome,
		&game.Turns,
		&game.StartedAt,
		&game.EndedAt,
	)
	if err != nil {
		return nil, err
	}
	game.Weapon = weapon.String
	return &game, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
