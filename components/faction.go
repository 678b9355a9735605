package components

import (
	"fmt"
	"strings"
)

// Faction is the side a character fights for. An attack's damage group is
// always the faction opposing its owner.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) Opposite() Faction {
	if f == FactionPlayer {
		return FactionEnemy
	}
	return FactionPlayer
}

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	}
	return fmt.Sprintf("faction(%d)", int(f))
}

// ParseFaction reads the faction names used in arena files.
func ParseFaction(s string) (Faction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "player":
		return FactionPlayer, nil
	case "enemy":
		return FactionEnemy, nil
	}
	return 0, fmt.Errorf("unknown faction %q: %w", s, ErrInvalidConfiguration)
}
