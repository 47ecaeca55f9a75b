package entities

type Statistic struct {
	Name  string
	Value int
	Min   int
	Max   int
}

func (s *Statistic) Modify(amount int) {
	s.Value = max(s.Min, min(s.Max, s.Value+amount))
}

type Character struct {
	Health Statistic
}
