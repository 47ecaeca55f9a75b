package a

import "context"

type Game struct {
	ID    string
	Turns int
}

type Journal interface {
	FindGame(ctx context.Context, id string) (*Game, error)
	ListGames(ctx context.Context, limit int) ([]Game, error)
	FindTurns(ctx context.Context, gameID string) ([]int, error)
	CountGames(ctx context.Context) (map[string]int, error)
}

func bad(ctx context.Context, ids []string, j Journal) {
	for i := 0; i < len(ids); i++ {
		j.FindGame(ctx, ids[i]) // want "potential N\\+1: FindGame called inside loop - use ListGames"
	}
	for _, id := range ids {
		j.FindTurns(ctx, id) // want "potential N\\+1: FindTurns called inside loop - use FindTurns once, for the game being shown"
		j.CountGames(ctx)    // want "potential N\\+1: CountGames called inside loop - use CountGames once, outside the loop"
	}
}

func good(ctx context.Context, j Journal) {
	games, _ := j.ListGames(ctx, 0)
	for _, g := range games {
		_ = g.Turns
	}
	if len(games) > 0 {
		j.FindTurns(ctx, games[0].ID)
	}
}
