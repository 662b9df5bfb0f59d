package mcts

import (
	"math"

	"hugo/internal/chess"
)

// Node is one position in the search tree. Wins are counted from the point
// of view of the side that played Move.
type Node struct {
	Move      chess.Move
	Parent    *Node
	Children  []*Node
	Wins      float64
	Visits    int
	JustMoved chess.Side

	untried []chess.Move
}

// newNode builds a node for the current state of pos. Terminal positions get
// no untried moves, so they are never expanded.
func newNode(mv chess.Move, parent *Node, pos *chess.Position) *Node {
	n := &Node{
		Move:      mv,
		Parent:    parent,
		JustMoved: pos.SideToMove().Opponent(),
	}
	if !pos.Result().IsOver() {
		n.untried = pos.GenerateLegalMoves()
	}
	return n
}

func (n *Node) Untried() int { return len(n.untried) }

// ucb1 scores a visited child for selection.
func (n *Node) ucb1(c float64) float64 {
	v := float64(n.Visits)
	return n.Wins/v + c*math.Sqrt(2*math.Log(float64(n.Parent.Visits))/v)
}

// selectChild returns the child with the highest UCB1 value; the first one
// wins ties.
func (n *Node) selectChild(c float64) *Node {
	var best *Node
	bestScore := math.Inf(-1)
	for _, ch := range n.Children {
		if s := ch.ucb1(c); s > bestScore {
			best, bestScore = ch, s
		}
	}
	return best
}

// takeUntried removes and returns the i-th untried move.
func (n *Node) takeUntried(i int) chess.Move {
	mv := n.untried[i]
	last := len(n.untried) - 1
	n.untried[i] = n.untried[last]
	n.untried = n.untried[:last]
	return mv
}

func (n *Node) addChild(mv chess.Move, pos *chess.Position) *Node {
	ch := newNode(mv, n, pos)
	n.Children = append(n.Children, ch)
	return ch
}

func (n *Node) update(score float64) {
	n.Visits++
	n.Wins += score
}

// MostVisited returns the child with the most visits, earliest-added first
// on ties, or nil for a leaf.
func (n *Node) MostVisited() *Node {
	var best *Node
	for _, ch := range n.Children {
		if best == nil || ch.Visits > best.Visits {
			best = ch
		}
	}
	return best
}
