package entities

import (
	"errors"
	"fmt"
)

// Weapon is an immutable catalog entry.
type Weapon struct {
	Name   string `json:"name" yaml:"name"`
	Damage int    `json:"damage" yaml:"damage"`
}

// Description returns the flavour line shown in the weapon menu.
func (w Weapon) Description() string {
	return fmt.Sprintf("A %s that deals %d damage.", w.Name, w.Damage)
}

// Catalog is an immutable, ordered set of weapons offered to the player.
// The zero value is an empty catalog.
type Catalog struct {
	weapons []Weapon
}

// DefaultWeapons are the stock weapons used when no catalog is configured.
var DefaultWeapons = []Weapon{
	{Name: "Sword", Damage: 10},
	{Name: "Gun", Damage: 5},
	{Name: "Axe", Damage: 8},
	{Name: "Knife", Damage: 10},
	{Name: "Crowbar", Damage: 6},
}

// DefaultCatalog returns a catalog holding DefaultWeapons.
func DefaultCatalog() Catalog {
	c, _ := NewCatalog(DefaultWeapons...)
	return c
}

// NewCatalog builds a catalog, copying the given weapons.
func NewCatalog(weapons ...Weapon) (Catalog, error) {
	if len(weapons) == 0 {
		return Catalog{}, errors.New("catalog must hold at least one weapon")
	}

	seen := make(map[string]bool, len(weapons))
	for i, w := range weapons {
		if w.Name == "" {
			return Catalog{}, fmt.Errorf("weapon %d: %w: name", i+1, ErrMissingField)
		}
		if w.Damage < 0 {
			return Catalog{}, fmt.Errorf("weapon %q: %w: damage must not be negative", w.Name, ErrInvalidField)
		}
		if seen[w.Name] {
			return Catalog{}, fmt.Errorf("weapon %q: %w: duplicate name", w.Name, ErrInvalidField)
		}
		seen[w.Name] = true
	}

	return Catalog{weapons: append([]Weapon(nil), weapons...)}, nil
}

// Len returns the number of weapons in the catalog.
func (c Catalog) Len() int {
	return len(c.weapons)
}

// At returns the weapon at index i.
func (c Catalog) At(i int) (Weapon, error) {
	if i < 0 || i >= len(c.weapons) {
		return Weapon{}, fmt.Errorf("%w: weapon %d of %d", ErrInvalidSelection, i, len(c.weapons))
	}
	return c.weapons[i], nil
}

// Weapons returns a copy of the catalog entries.
func (c Catalog) Weapons() []Weapon {
	return append([]Weapon(nil), c.weapons...)
}
