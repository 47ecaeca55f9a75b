// Package ports defines interfaces for external service communication.
package ports

import "github.com/ersonp/survive-core/internal/domain/entities"

// Prompter supplies the player's decisions. Implementations block until the
// player answers and handle invalid entries themselves.
type Prompter interface {
	// ChooseIndex asks the player to pick one of count options and returns
	// an index in [0, count). It only fails when input is exhausted.
	ChooseIndex(prompt string, count int) (int, error)

	// ChooseStatistic asks the player which statistic to apply and returns
	// one of c.Statistics().
	ChooseStatistic(c *entities.Character) (*entities.Statistic, error)
}

// Narrator is a line-oriented sink for human-readable game text.
type Narrator interface {
	// Say writes one formatted line.
	Say(format string, args ...any)
}

// RandomSource is the single source of randomness for a game.
type RandomSource interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}
