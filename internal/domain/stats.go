package domain

// Stats is the six-attribute block shared by classes and characters.
type Stats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Constitution int `json:"constitution"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Capped returns a copy with every stat clamped to MaxStat. There is no lower bound.
func (s Stats) Capped() Stats {
	return Stats{
		Strength:     min(s.Strength, MaxStat),
		Dexterity:    min(s.Dexterity, MaxStat),
		Intelligence: min(s.Intelligence, MaxStat),
		Constitution: min(s.Constitution, MaxStat),
		Wisdom:       min(s.Wisdom, MaxStat),
		Charisma:     min(s.Charisma, MaxStat),
	}
}
