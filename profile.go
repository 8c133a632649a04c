package normalform

import (
	"strings"
)

// Strategy is an opaque label drawn from one player's strategy set.
type Strategy string

// Profile holds one strategy per player, in player order. It is the key
// into a Game's payoff table.
type Profile []Strategy

func (p Profile) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = string(s)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p Profile) Equal(other Profile) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Profile) Clone() Profile {
	return append(Profile(nil), p...)
}

// Without returns the strategies of every player except the given one,
// in player order. It panics unless 0 <= player < len(p).
func (p Profile) Without(player int) Profile {
	result := make(Profile, 0, len(p)-1)
	result = append(result, p[:player]...)
	return append(result, p[player+1:]...)
}

// Insert returns the full profile obtained by placing s at the given
// player's position among the opponents' strategies. It panics unless
// 0 <= player <= len(p).
func (p Profile) Insert(player int, s Strategy) Profile {
	result := make(Profile, 0, len(p)+1)
	result = append(result, p[:player]...)
	result = append(result, s)
	return append(result, p[player:]...)
}
