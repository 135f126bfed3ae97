package teams

// Team is a league team as published in team-kind records.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Lookup maps team identifiers to display names.
type Lookup map[string]string

// Name resolves id to a non-empty display name.
func (l Lookup) Name(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	name, ok := l[id]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Team resolves id into a Team when the lookup knows it.
func (l Lookup) Team(id string) (Team, bool) {
	name, ok := l.Name(id)
	if !ok {
		return Team{}, false
	}
	return Team{ID: id, Name: name}, true
}
