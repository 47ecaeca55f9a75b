// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"strings"
)

// Attribute names a Character statistic.
const (
	AttributeStrength     = "Strength"
	AttributeHealth       = "Health"
	AttributeAgility      = "Agility"
	AttributeIntelligence = "Intelligence"
)

// attributeNames lists the attributes in the order Statistics returns them.
var attributeNames = []string{
	AttributeStrength,
	AttributeHealth,
	AttributeAgility,
	AttributeIntelligence,
}

// AttributeNames returns the four attribute names in statistic order.
func AttributeNames() []string {
	return append([]string(nil), attributeNames...)
}

// CanonicalAttribute maps an attribute name in any casing to its canonical
// spelling.
func CanonicalAttribute(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, a := range attributeNames {
		if strings.EqualFold(a, name) {
			return a, true
		}
	}
	return "", false
}

// CharacterConfig holds the starting values for a Character.
// Empty descriptions fall back to the generic attribute descriptions.
type CharacterConfig struct {
	Name         string `yaml:"name" json:"name"`
	Strength     int    `yaml:"strength" json:"strength"`
	Health       int    `yaml:"health" json:"health"`
	Agility      int    `yaml:"agility" json:"agility"`
	Intelligence int    `yaml:"intelligence" json:"intelligence"`

	Descriptions map[string]string `yaml:"descriptions,omitempty" json:"descriptions,omitempty"`
}

// Character is a named entity owning four statistics and an optional weapon.
type Character struct {
	Name         string
	Strength     *Statistic
	Health       *Statistic
	Agility      *Statistic
	Intelligence *Statistic

	// Weapon is a non-owning reference into the catalog the player chose from.
	Weapon *Weapon
}

var defaultDescriptions = map[string]string{
	AttributeStrength:     "Strength is a measure of physical power.",
	AttributeHealth:       "Health is a measure of lifespan.",
	AttributeAgility:      "Agility measures a character's reflexes to attacks.",
	AttributeIntelligence: "Intelligence measures a character's chances of persuasion.",
}

// NewCharacter builds a character from its configuration.
func NewCharacter(cfg CharacterConfig) *Character {
	describe := func(attr string) string {
		if d := cfg.Descriptions[attr]; d != "" {
			return d
		}
		return defaultDescriptions[attr]
	}

	return &Character{
		Name:         cfg.Name,
		Strength:     NewStatistic(AttributeStrength, cfg.Strength, describe(AttributeStrength)),
		Health:       NewStatistic(AttributeHealth, cfg.Health, describe(AttributeHealth)),
		Agility:      NewStatistic(AttributeAgility, cfg.Agility, describe(AttributeAgility)),
		Intelligence: NewStatistic(AttributeIntelligence, cfg.Intelligence, describe(AttributeIntelligence)),
	}
}

// Equip replaces the equipped weapon. Statistics are not affected.
func (c *Character) Equip(w Weapon) {
	c.Weapon = &w
}

// IsAlive reports whether the character's health is above zero.
func (c *Character) IsAlive() bool {
	return c.Health.Value > 0
}

// Statistics returns strength, health, agility and intelligence, in that order.
func (c *Character) Statistics() []*Statistic {
	return []*Statistic{c.Strength, c.Health, c.Agility, c.Intelligence}
}

// Statistic looks up a statistic by attribute name, ignoring case.
func (c *Character) Statistic(name string) (*Statistic, bool) {
	for _, s := range c.Statistics() {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return s, true
		}
	}
	return nil, false
}

// String returns a one-line summary of the character.
func (c *Character) String() string {
	return fmt.Sprintf("%s (Strength: %d, Health: %d, Agility: %d, Intelligence: %d)",
		c.Name, c.Strength.Value, c.Health.Value, c.Agility.Value, c.Intelligence.Value)
}
