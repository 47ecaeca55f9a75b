package a

import "entities"

type Score struct {
	Value int
}

func bad(c *entities.Character, s *entities.Statistic) {
	c.Health.Value = 0 // want "direct write to Statistic.Value"
	s.Value += 5       // want "direct write to Statistic.Value"
	s.Value++          // want "direct write to Statistic.Value"
	(c.Health).Value-- // want "direct write to Statistic.Value"
}

func good(c *entities.Character, sc *Score) {
	c.Health.Modify(-20)
	sc.Value = 3
	v := c.Health.Value
	_ = entities.Statistic{Name: "Health", Value: v}
}
