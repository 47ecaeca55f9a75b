package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCharacter(t *testing.T) {
	c := NewCharacter(CharacterConfig{Name: "Hero", Strength: 1, Health: 2, Agility: 3, Intelligence: 4})

	assert.Equal(t, "Hero", c.Name)
	assert.Equal(t, "Strength", c.Strength.Name)
	assert.Equal(t, "Health", c.Health.Name)
	assert.Equal(t, "Agility", c.Agility.Name)
	assert.Equal(t, "Intelligence", c.Intelligence.Name)
	assert.Equal(t, 1, c.Strength.Value)
	assert.Equal(t, 4, c.Intelligence.Value)
	assert.Equal(t, "Health is a measure of lifespan.", c.Health.Description)
	assert.Nil(t, c.Weapon)
}

func TestNewCharacter_Presets(t *testing.T) {
	party := NewParty(DefaultPresets)
	require.Len(t, party, 2)

	sally := party[0]
	assert.Equal(t, "Sally", sally.Name)
	assert.Equal(t, 90, sally.Health.Value)
	assert.Equal(t, "Sally is very fast.", sally.Agility.Description)

	kirk := party[1]
	assert.Equal(t, "Kirk", kirk.Name)
	assert.Equal(t, 100, kirk.Health.Value)
	assert.Equal(t, 10, kirk.Intelligence.Value)
}

func TestCharacter_Equip_HasNoStatEffects(t *testing.T) {
	c := NewCharacter(DefaultPresets[0])
	before := []int{c.Strength.Value, c.Health.Value, c.Agility.Value, c.Intelligence.Value}

	c.Equip(Weapon{Name: "Axe", Damage: 8})
	c.Equip(Weapon{Name: "Gun", Damage: 5})

	require.NotNil(t, c.Weapon)
	assert.Equal(t, "Gun", c.Weapon.Name)
	assert.Equal(t, before, []int{c.Strength.Value, c.Health.Value, c.Agility.Value, c.Intelligence.Value})
}

func TestCharacter_IsAlive(t *testing.T) {
	c := NewCharacter(CharacterConfig{Name: "Hero", Health: 1})
	assert.True(t, c.IsAlive())

	c.Health.Modify(-1)
	assert.False(t, c.IsAlive())
	assert.Equal(t, 0, c.Health.Value)
}

func TestCharacter_Statistics_Order(t *testing.T) {
	c := NewCharacter(CharacterConfig{Name: "Hero"})
	stats := c.Statistics()

	require.Len(t, stats, 4)
	names := make([]string, len(stats))
	for i, s := range stats {
		names[i] = s.Name
	}
	assert.Equal(t, AttributeNames(), names)
	assert.Same(t, c.Health, stats[1])
}

func TestCharacter_Statistic(t *testing.T) {
	c := NewCharacter(CharacterConfig{Name: "Hero"})

	s, ok := c.Statistic("agility")
	require.True(t, ok)
	assert.Same(t, c.Agility, s)

	_, ok = c.Statistic("Luck")
	assert.False(t, ok)
}

func TestCanonicalAttribute(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{input: "Strength", expected: "Strength", ok: true},
		{input: "intelligence", expected: "Intelligence", ok: true},
		{input: "  AGILITY ", expected: "Agility", ok: true},
		{input: "Luck", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := CanonicalAttribute(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCharacter_String(t *testing.T) {
	c := NewCharacter(DefaultPresets[1])
	assert.Equal(t, "Kirk (Strength: 20, Health: 100, Agility: 10, Intelligence: 10)", c.String())
}
