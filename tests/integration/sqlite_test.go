package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/survive-core/internal/domain/ports"
	"github.com/ersonp/survive-core/internal/infrastructure/config"
	"github.com/ersonp/survive-core/internal/infrastructure/journal/sqlite"
)

func TestSQLiteIntegration_FileDatabase(t *testing.T) {
	skipShort(t)

	dbPath := filepath.Join(t.TempDir(), "journal.db")
	repo := openJournal(t, dbPath)

	_, err := os.Stat(dbPath)
	require.NoError(t, err, "database file should exist")

	ctx := context.Background()
	started := time.Now().UTC().Truncate(time.Second)
	game := &ports.GameRecord{
		ID:        "game-1",
		Character: "Sally",
		Weapon:    "Axe",
		Seed:      42,
		Outcome:   "won",
		Turns:     2,
		StartedAt: started,
		EndedAt:   started.Add(time.Minute),
	}
	require.NoError(t, repo.SaveGame(ctx, game, []ports.TurnRecord{
		{GameID: "game-1", Turn: 1, Location: "farm", Prompt: "A gate.", Choice: "Lift", Attribute: "Strength", Status: "pass", HealthAfter: 90},
		{GameID: "game-1", Turn: 2, Location: "farm", Prompt: "A dog.", Choice: "Run", Attribute: "Agility", Status: "fail", HealthAfter: 70},
	}))
	require.NoError(t, repo.Close())

	repo2 := openJournal(t, dbPath)

	found, err := repo2.FindGame(ctx, "game-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Sally", found.Character)
	assert.Equal(t, int64(42), found.Seed)
	assert.True(t, started.Equal(found.StartedAt))

	turns, err := repo2.FindTurns(ctx, "game-1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, 70, turns[1].HealthAfter)
}

func TestSQLiteIntegration_ConcurrentReads(t *testing.T) {
	skipShort(t)

	repo := openJournal(t, filepath.Join(t.TempDir(), "concurrent.db"))

	ctx := context.Background()
	now := time.Now().UTC()
	for i := 0; i < 50; i++ {
		outcome := "won"
		if i%2 == 1 {
			outcome = "lost"
		}
		err := repo.SaveGame(ctx, &ports.GameRecord{
			ID:        fmt.Sprintf("game-%d", i),
			Character: "Kirk",
			Outcome:   outcome,
			StartedAt: now,
			EndedAt:   now.Add(time.Duration(i) * time.Second),
		}, nil)
		require.NoError(t, err)
	}

	errCh := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			games, err := repo.ListGames(context.Background(), 0)
			if err != nil {
				errCh <- err
				return
			}
			if len(games) != 50 {
				errCh <- fmt.Errorf("expected 50 games, got %d", len(games))
				return
			}
			errCh <- nil
		}()
	}

	for i := 0; i < 10; i++ {
		require.NoError(t, <-errCh)
	}

	counts, err := repo.CountGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"won": 25, "lost": 25}, counts)
}

func TestSQLiteIntegration_NestedDirectory(t *testing.T) {
	skipShort(t)

	dir := filepath.Join(t.TempDir(), ".survive", "journals")
	require.NoError(t, os.MkdirAll(dir, 0755))

	repo, err := sqlite.NewRepository(config.JournalConfig{Enabled: true, Path: filepath.Join(dir, "journal.db")})
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, repo.EnsureSchema(context.Background()), "schema creation should be idempotent")
}
