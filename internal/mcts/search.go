package mcts

import (
	"math/rand/v2"
	"time"

	"hugo/internal/chess"
)

// SearchResult describes the most visited reply at the root.
type SearchResult struct {
	BestMove   chess.Move
	Wins       float64 // of the best child, from the replying side's view
	Visits     int
	Iterations int
	Nodes      int64 // moves made, including rollouts
	TimeUsed   time.Duration
	Root       *Node
}

// Searcher runs UCT on a single goroutine. It mutates the position it is
// given through make/unmake and leaves it as it found it.
type Searcher struct {
	params Params
	rng    *rand.Rand
	nodes  int64
}

func NewSearcher(params Params, rng *rand.Rand) *Searcher {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Searcher{params: params.withDefaults(), rng: rng}
}

var rolloutDraw = chess.Result{Outcome: chess.Draw}

func (s *Searcher) Search(pos *chess.Position) SearchResult {
	start := time.Now()
	s.nodes = 0
	root := newNode(chess.NoMove, nil, pos)

	for i := 0; i < s.params.Iterations; i++ {
		s.iterate(root, pos)
	}

	res := SearchResult{
		Iterations: s.params.Iterations,
		Nodes:      s.nodes,
		TimeUsed:   time.Since(start),
		Root:       root,
	}
	if best := root.MostVisited(); best != nil {
		res.BestMove = best.Move
		res.Wins = best.Wins
		res.Visits = best.Visits
	}
	return res
}

func (s *Searcher) iterate(root *Node, pos *chess.Position) {
	node := root
	made := 0
	defer func() {
		for ; made > 0; made-- {
			pos.UnmakeMove()
		}
	}()

	// Select.
	for node.Untried() == 0 && len(node.Children) > 0 {
		node = node.selectChild(s.params.Exploration)
		s.play(pos, node.Move)
		made++
		if r := pos.Result(); r.IsOver() {
			backpropagate(node, r)
			return
		}
	}

	// Expand.
	if node.Untried() > 0 {
		mv := node.takeUntried(s.rng.IntN(node.Untried()))
		s.play(pos, mv)
		made++
		node = node.addChild(mv, pos)
	}

	// Rollout.
	r := pos.Result()
	for plies := 0; !r.IsOver(); plies++ {
		if plies >= s.params.MaxRolloutPlies {
			r = rolloutDraw
			break
		}
		moves := pos.GenerateLegalMoves()
		s.play(pos, moves[s.rng.IntN(len(moves))])
		made++
		r = pos.Result()
	}

	backpropagate(node, r)
}

func (s *Searcher) play(pos *chess.Position, mv chess.Move) {
	if !pos.MakeMove(mv) {
		panic("mcts: tree move " + mv.String() + " is not legal")
	}
	s.nodes++
}

func backpropagate(node *Node, r chess.Result) {
	for n := node; n != nil; n = n.Parent {
		n.update(r.ScoreFor(n.JustMoved))
	}
}
