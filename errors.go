package normalform

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrTooFewPlayers    = errors.New("a game needs at least two players")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrUnknownStrategy  = errors.New("unknown strategy")
	ErrProfileArity     = errors.New("profile has the wrong number of strategies")
	ErrDuplicateProfile = errors.New("duplicate payoff entry")
	ErrInvalidPayoff    = errors.New("invalid payoff")
	ErrNotTwoPlayer     = errors.New("mixed equilibria can only be solved for 2-player games")
)

// IncompleteTableError is returned when a strategy profile has no entry
// in the payoff table.
type IncompleteTableError struct {
	Profile Profile
}

func (e *IncompleteTableError) Error() string {
	return fmt.Sprintf("incomplete payoff table: no entry for profile %v", e.Profile)
}

// InvalidDistributionError is returned when a mixed strategy is not a
// probability distribution over the player's strategy set.
type InvalidDistributionError struct {
	Player int
	Reason string
}

func (e *InvalidDistributionError) Error() string {
	return fmt.Sprintf("invalid mixed strategy for player %d: %s", e.Player, e.Reason)
}

// IsIncompleteTable reports whether err was caused by a missing payoff entry.
func IsIncompleteTable(err error) bool {
	_, ok := errors.Cause(err).(*IncompleteTableError)
	return ok
}

// IsInvalidDistribution reports whether err was caused by a malformed
// mixed strategy.
func IsInvalidDistribution(err error) bool {
	_, ok := errors.Cause(err).(*InvalidDistributionError)
	return ok
}
