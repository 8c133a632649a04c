package matrixgame

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"
)

// stage is the depth of a node in the game tree.
type stage uint8

const (
	rowTurn stage = iota
	colTurn
	payoff
)

var stageStr = [...]string{
	"row player's turn",
	"column player's turn",
	"payoff",
}

func (s stage) String() string {
	return stageStr[s]
}

// simultaneousNode implements cfr.GameTreeNode for a bimatrix game played
// as a two-level tree: the row player picks a row, then the column player
// picks a column without seeing it. All column nodes share one InfoSet,
// which is what makes the moves simultaneous.
type simultaneousNode struct {
	m     *Bimatrix
	stage stage
	row   int
	col   int

	children []simultaneousNode
	parent   *simultaneousNode
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &simultaneousNode{}

func newSimultaneousGame(m *Bimatrix) *simultaneousNode {
	return &simultaneousNode{m: m, stage: rowTurn}
}

// Type implements cfr.GameTreeNode.
func (n *simultaneousNode) Type() cfr.NodeType {
	if n.stage == payoff {
		return cfr.TerminalNodeType
	}
	return cfr.PlayerNodeType
}

// Player implements cfr.GameTreeNode.
func (n *simultaneousNode) Player() int {
	if n.stage == colTurn {
		return 1
	}
	return 0
}

// InfoSet implements cfr.GameTreeNode. Neither player observes anything
// before moving, so each has exactly one information set.
func (n *simultaneousNode) InfoSet(player int) cfr.InfoSet {
	return bimatrixInfoSet{player: player, nActions: n.NumChildren()}
}

// Utility implements cfr.GameTreeNode.
func (n *simultaneousNode) Utility(player int) float64 {
	if n.stage != payoff {
		panic("cannot get the utility of a non-terminal node")
	}

	if player == 0 {
		return n.m.A[n.row][n.col]
	}
	return n.m.B[n.row][n.col]
}

func (n *simultaneousNode) NumChildren() int {
	switch n.stage {
	case rowTurn:
		return n.m.Rows()
	case colTurn:
		return n.m.Cols()
	default:
		return 0
	}
}

func (n *simultaneousNode) buildChildren() {
	if len(n.children) > 0 || n.stage == payoff {
		return
	}

	n.children = make([]simultaneousNode, n.NumChildren())
	for i := range n.children {
		child := simultaneousNode{
			m:      n.m,
			stage:  n.stage + 1,
			row:    n.row,
			col:    n.col,
			parent: n,
		}
		if n.stage == rowTurn {
			child.row = i
		} else {
			child.col = i
		}
		n.children[i] = child
	}
}

// GetChild implements cfr.GameTreeNode.
func (n *simultaneousNode) GetChild(i int) cfr.GameTreeNode {
	n.buildChildren()
	return &n.children[i]
}

func (n *simultaneousNode) Parent() cfr.GameTreeNode {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// GetChildProbability implements cfr.GameTreeNode.
func (n *simultaneousNode) GetChildProbability(i int) float64 {
	panic("cannot get the probability of a non-chance node")
}

// SampleChild implements cfr.GameTreeNode.
func (n *simultaneousNode) SampleChild() (cfr.GameTreeNode, float64) {
	panic("cannot sample a child of a non-chance node")
}

// Close implements cfr.GameTreeNode.
func (n *simultaneousNode) Close() {
	n.children = nil
}

// String implements fmt.Stringer.
func (n *simultaneousNode) String() string {
	switch n.stage {
	case rowTurn:
		return n.stage.String()
	case colTurn:
		return fmt.Sprintf("%v after row %d", n.stage, n.row)
	default:
		return fmt.Sprintf("%v at (%d, %d)", n.stage, n.row, n.col)
	}
}

type bimatrixInfoSet struct {
	player   int
	nActions int
}

// Key implements cfr.InfoSet.
func (is bimatrixInfoSet) Key() string {
	return fmt.Sprintf("p%d/%d", is.player, is.nActions)
}

// CFRValue runs nIter iterations of vanilla counterfactual regret
// minimization on m and returns the row player's expected payoff averaged
// over the iterations. For zero-sum games this approaches the value of
// the game; for general-sum games it is a heuristic cross-check.
func CFRValue(m Bimatrix, nIter int) float64 {
	if nIter <= 0 {
		return 0
	}

	root := newSimultaneousGame(&m)
	nodes := 0
	tree.Visit(root, func(node cfr.GameTreeNode) {
		nodes++
	})
	glog.V(2).Infof("Running CFR on a %dx%d game (%d nodes)", m.Rows(), m.Cols(), nodes)

	vanillaCFR := cfr.NewVanilla()
	logEvery := nIter / 10
	total := 0.0
	for i := 1; i <= nIter; i++ {
		total += float64(vanillaCFR.Run(root))
		if logEvery > 0 && i%logEvery == 0 {
			glog.V(1).Infof("After %d CFR iterations, average value: %v", i, total/float64(i))
		}
	}

	return total / float64(nIter)
}
