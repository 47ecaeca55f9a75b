package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ersonp/survive-core/internal/domain/entities"
	"github.com/ersonp/survive-core/internal/domain/ports"
)

// Phase is the state of a game.
type Phase int

const (
	PhaseSelectingCharacter Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseSelectingCharacter:
		return "selecting_character"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// IsTerminal reports whether no further turns can be played.
func (p Phase) IsTerminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// DefaultMaxTurns is the number of events survived to win.
const DefaultMaxTurns = 10

// GameOptions configures a new game.
type GameOptions struct {
	Title     string
	Party     []*entities.Character
	Locations []*entities.Location
	Catalog   entities.Catalog
	Prompter  ports.Prompter
	Narrator  ports.Narrator
	Random    ports.RandomSource

	// MaxTurns ends the game with a win once that many events were resolved.
	// Zero means the game only ends on death or when no location has events.
	MaxTurns int
}

// TurnResult describes one resolved event.
type TurnResult struct {
	Turn       int
	Character  string
	Location   string
	Prompt     string
	Choice     string
	Attribute  string
	Resolution entities.Resolution
	HealthLeft int
}

// Summary describes a game once it has ended.
type Summary struct {
	Phase     Phase
	Character string
	Weapon    string
	Turns     []TurnResult
}

// Game drives character selection, the turn loop and termination.
// It is not safe for concurrent use.
type Game struct {
	title     string
	party     []*entities.Character
	locations []*entities.Location
	catalog   entities.Catalog
	prompter  ports.Prompter
	narrator  ports.Narrator
	random    ports.RandomSource
	maxTurns  int

	phase   Phase
	active  *entities.Character
	results []TurnResult
}

// NewGame creates a game in the character selection phase.
func NewGame(opts GameOptions) (*Game, error) {
	switch {
	case len(opts.Party) == 0:
		return nil, errors.New("party must have at least one character")
	case opts.Catalog.Len() == 0:
		return nil, errors.New("weapon catalog is empty")
	case opts.Prompter == nil:
		return nil, errors.New("prompter is required")
	case opts.Narrator == nil:
		return nil, errors.New("narrator is required")
	case opts.Random == nil:
		return nil, errors.New("random source is required")
	case opts.MaxTurns < 0:
		return nil, errors.New("max turns must not be negative")
	}

	return &Game{
		title:     opts.Title,
		party:     append([]*entities.Character(nil), opts.Party...),
		locations: append([]*entities.Location(nil), opts.Locations...),
		catalog:   opts.Catalog,
		prompter:  opts.Prompter,
		narrator:  opts.Narrator,
		random:    opts.Random,
		maxTurns:  opts.MaxTurns,
		phase:     PhaseSelectingCharacter,
	}, nil
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Active returns the character being played, or nil before selection.
func (g *Game) Active() *entities.Character {
	return g.active
}

// Party returns the party members.
func (g *Game) Party() []*entities.Character {
	return append([]*entities.Character(nil), g.party...)
}

// Turns returns the number of events resolved so far.
func (g *Game) Turns() int {
	return len(g.results)
}

// Run plays a whole game: character selection, then turns until the game is
// won or lost. Context cancellation is honoured between turns.
func (g *Game) Run(ctx context.Context) (*Summary, error) {
	if g.title != "" {
		g.narrator.Say("------ %s ------", g.title)
	}

	if g.phase == PhaseSelectingCharacter {
		if err := g.SelectCharacter(); err != nil {
			return nil, err
		}
	}

	for !g.phase.IsTerminal() {
		if err := g.PlayTurn(ctx); err != nil {
			return nil, err
		}
	}

	g.narrator.Say("End of Game.")
	return g.Summary(), nil
}

// SelectCharacter asks the player for a party member and a weapon, then
// starts play. Out-of-range answers are re-prompted.
func (g *Game) SelectCharacter() error {
	if g.phase != PhaseSelectingCharacter {
		return fmt.Errorf("selecting character: game is %s", g.phase)
	}

	for i, c := range g.party {
		g.narrator.Say("%d. %s", i+1, c)
	}
	idx, err := g.choose("Enter the number of the character you want to play: ", len(g.party))
	if err != nil {
		return fmt.Errorf("choosing character: %w", err)
	}
	c := g.party[idx]
	g.narrator.Say("You have chosen to play as %s!", c.Name)

	weapon, err := g.chooseWeapon(c)
	if err != nil {
		return fmt.Errorf("choosing weapon: %w", err)
	}
	c.Equip(weapon)
	g.narrator.Say("%s has chosen the %s!", c.Name, weapon.Name)

	g.active = c
	g.phase = PhasePlaying
	return nil
}

func (g *Game) chooseWeapon(c *entities.Character) (entities.Weapon, error) {
	g.narrator.Say("%s, choose your weapon:", c.Name)
	weapons := g.catalog.Weapons()
	for i, w := range weapons {
		g.narrator.Say("%d. %s (Damage: %d)", i+1, w.Name, w.Damage)
	}

	idx, err := g.choose("Enter the number of the weapon you want: ", len(weapons))
	if err != nil {
		return entities.Weapon{}, err
	}
	return g.catalog.At(idx)
}

// CheckTermination moves a playing game to Lost when every party member is
// dead, or to Won when the content is exhausted. Loss is checked first.
func (g *Game) CheckTermination() Phase {
	if g.phase != PhasePlaying {
		return g.phase
	}

	switch {
	case g.allDead():
		g.phase = PhaseLost
		g.narrator.Say("All characters have died. Game Over!")
	case g.exhausted():
		g.phase = PhaseWon
		g.narrator.Say("Game Won. You have successfully survived.")
	}
	return g.phase
}

func (g *Game) allDead() bool {
	for _, c := range g.party {
		if c.IsAlive() {
			return false
		}
	}
	return true
}

func (g *Game) exhausted() bool {
	if g.maxTurns > 0 && len(g.results) >= g.maxTurns {
		return true
	}
	return len(g.playable()) == 0
}

// playable returns the locations that still hold events.
func (g *Game) playable() []*entities.Location {
	var out []*entities.Location
	for _, l := range g.locations {
		if !l.IsEmpty() {
			out = append(out, l)
		}
	}
	return out
}

// PlayTurn checks termination and, if the game goes on, draws one event and
// resolves it against the active character. It returns nil without drawing
// when the check ends the game.
func (g *Game) PlayTurn(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch g.phase {
	case PhaseSelectingCharacter:
		return fmt.Errorf("playing turn: %w", entities.ErrNoActiveCharacter)
	case PhaseWon, PhaseLost:
		return entities.ErrGameOver
	}

	if g.CheckTermination().IsTerminal() {
		return nil
	}

	if !g.active.IsAlive() {
		if err := g.handOff(); err != nil {
			return fmt.Errorf("handing off: %w", err)
		}
	}

	locations := g.playable()
	loc := locations[g.random.Intn(len(locations))]

	event, err := loc.PickEvent(g.random)
	if err != nil {
		return fmt.Errorf("drawing event: %w", err)
	}

	g.narrator.Say("")
	g.narrator.Say("%s", event.Prompt)
	g.narrator.Say("Available choices:")
	for i, choice := range event.Choices {
		g.narrator.Say("%d. %s", i+1, choice)
	}

	idx, err := g.choose("Make a choice: ", len(event.Choices))
	if err != nil {
		return fmt.Errorf("choosing action: %w", err)
	}
	choice := event.Choices[idx]

	stat, err := g.prompter.ChooseStatistic(g.active)
	if err != nil {
		return fmt.Errorf("choosing statistic: %w", err)
	}
	if stat == nil {
		return fmt.Errorf("choosing statistic: %w: no statistic returned", entities.ErrInvalidSelection)
	}
	if !slices.Contains(g.active.Statistics(), stat) {
		return fmt.Errorf("choosing statistic: %w: %s does not belong to %s",
			entities.ErrInvalidSelection, stat.Name, g.active.Name)
	}
	g.narrator.Say("You chose the action: %s with %s", choice, stat.Name)

	res, err := event.Resolve(g.active, stat.Name)
	if err != nil {
		return fmt.Errorf("resolving event: %w", err)
	}

	g.narrator.Say("%s", res.Message)
	for _, a := range res.Applied {
		g.narrator.Say("  %s %+d (%d -> %d)", a.Attribute, a.Delta, a.Before, a.After)
	}

	g.results = append(g.results, TurnResult{
		Turn:       len(g.results) + 1,
		Character:  g.active.Name,
		Location:   loc.Name,
		Prompt:     event.Prompt,
		Choice:     choice,
		Attribute:  stat.Name,
		Resolution: res,
		HealthLeft: g.active.Health.Value,
	})
	return nil
}

// handOff passes play to a surviving party member, who picks up the fallen
// character's weapon.
func (g *Game) handOff() error {
	var survivors []*entities.Character
	for _, c := range g.party {
		if c.IsAlive() {
			survivors = append(survivors, c)
		}
	}

	g.narrator.Say("%s has fallen. Who carries on?", g.active.Name)
	for i, c := range survivors {
		g.narrator.Say("%d. %s", i+1, c)
	}
	idx, err := g.choose("Enter the number of the character to continue with: ", len(survivors))
	if err != nil {
		return err
	}

	next := survivors[idx]
	if g.active.Weapon != nil {
		next.Equip(*g.active.Weapon)
	}
	g.narrator.Say("%s takes over.", next.Name)
	g.active = next
	return nil
}

// choose asks for an index until the answer is within [0, count).
func (g *Game) choose(prompt string, count int) (int, error) {
	for {
		idx, err := g.prompter.ChooseIndex(prompt, count)
		if err != nil {
			return 0, err
		}
		if idx >= 0 && idx < count {
			return idx, nil
		}
		g.narrator.Say("Invalid choice. Please select a valid number.")
	}
}

// Summary returns the game's outcome and turn history.
func (g *Game) Summary() *Summary {
	s := &Summary{
		Phase: g.phase,
		Turns: append([]TurnResult(nil), g.results...),
	}
	if g.active != nil {
		s.Character = g.active.Name
		if g.active.Weapon != nil {
			s.Weapon = g.active.Weapon.Name
		}
	}
	return s
}
