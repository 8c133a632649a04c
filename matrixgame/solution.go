package matrixgame

import (
	"fmt"
)

type Method int

const (
	ClosedForm Method = iota
	LinearProgram
)

func (m Method) String() string {
	switch m {
	case ClosedForm:
		return "closed_form"
	case LinearProgram:
		return "linear_program"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Policy names a fallback applied when a solver cannot produce a proper
// equilibrium strategy for a player.
type Policy int

const (
	// DegenerateIndifference: the 2x2 indifference equation has a zero
	// denominator, so the player mixes 50/50.
	DegenerateIndifference Policy = iota
	// ClampedIndifference: the 2x2 indifference solution fell outside
	// [0, 1] and was clamped to the nearest pure strategy.
	ClampedIndifference
	// UniformDistribution: the linear program failed, so the player mixes
	// uniformly over all strategies.
	UniformDistribution
)

func (p Policy) String() string {
	switch p {
	case DegenerateIndifference:
		return "degenerate_indifference"
	case ClampedIndifference:
		return "clamped_indifference"
	case UniformDistribution:
		return "uniform_distribution"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Fallback records that a policy was applied to one player's strategy.
// Player is 0 for the row player and 1 for the column player.
type Fallback struct {
	Player int    `yaml:"player"`
	Policy Policy `yaml:"policy"`
}

// Solution is a mixed-strategy profile for a Bimatrix game.
type Solution struct {
	Row       []float64
	Col       []float64
	Method    Method
	Fallbacks []Fallback
}

// Options configures Solve.
type Options struct {
	// LP solves the linear programs for games larger than 2x2. Defaults to
	// SimplexSolver.
	LP LinearProgramSolver
}

// Solve finds a mixed-strategy equilibrium. 2x2 games use the closed-form
// indifference solution; everything else uses the maximin linear program.
func Solve(m Bimatrix, opts Options) Solution {
	if m.Rows() == 2 && m.Cols() == 2 {
		return SolveClosedForm(m)
	}
	lp := opts.LP
	if lp == nil {
		lp = SimplexSolver{}
	}
	return SolveLP(m, lp)
}
