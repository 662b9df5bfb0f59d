package engine

import (
	"math/rand/v2"

	"hugo/internal/chess"
)

// playout is the exhaustive random-playout estimator. It walks the legal
// move tree depth first in a shuffled order, counting finished games from
// rootSide's view (+1 win, -1 loss, 0 draw). Every frame stops once its
// own total passes budget.
type playout struct {
	pos      *chess.Position
	rootSide chess.Side
	budget   int
	maxDepth int
	rng      *rand.Rand
	nodes    int64
}

type playoutFrame struct {
	moves []chess.Move
	next  int
	wins  int
	total int
}

func newPlayout(pos *chess.Position, rootSide chess.Side, budget, maxDepth int, rng *rand.Rand) *playout {
	return &playout{
		pos:      pos,
		rootSide: rootSide,
		budget:   budget,
		maxDepth: maxDepth,
		rng:      rng,
	}
}

func (s *playout) outcome(r chess.Result) int {
	switch r.Winner() {
	case s.rootSide:
		return 1
	case chess.NoSide:
		return 0
	}
	return -1
}

// killer looks for a reply that ends the game at once. A mating reply is
// preferred over a drawing one. The legal moves are returned for reuse.
func (s *playout) killer() (score int, found bool, legal []chess.Move) {
	legal = s.pos.GenerateLegalMoves()
	mover := s.pos.SideToMove()
	for _, mv := range legal {
		s.make(mv)
		r := s.pos.Result()
		s.pos.UnmakeMove()
		if !r.IsOver() {
			continue
		}
		if r.Winner() == mover {
			return s.outcome(r), true, legal
		}
		if !found {
			score, found = s.outcome(r), true
		}
	}
	return score, found, legal
}

func (s *playout) make(mv chess.Move) {
	if !s.pos.MakeMove(mv) {
		panic("engine: playout move " + mv.String() + " is not legal")
	}
	s.nodes++
}

func (s *playout) shuffle(moves []chess.Move) {
	s.rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
}

// run estimates the current position, which must not be terminal, and
// returns the accumulated (wins, total). The position is restored.
func (s *playout) run() (wins, total int) {
	score, found, legal := s.killer()
	if found {
		return score, 1
	}
	s.shuffle(legal)
	stack := []playoutFrame{{moves: legal}}

	for {
		f := &stack[len(stack)-1]
		if f.next == len(f.moves) || f.total > s.budget {
			w, t := f.wins, f.total
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return w, t
			}
			s.pos.UnmakeMove()
			parent := &stack[len(stack)-1]
			parent.wins += w
			parent.total += t
			continue
		}

		mv := f.moves[f.next]
		f.next++
		s.make(mv)

		if r := s.pos.Result(); r.IsOver() {
			s.pos.UnmakeMove()
			f.wins += s.outcome(r)
			f.total++
			continue
		}
		if len(stack) >= s.maxDepth {
			// Too deep to finish: count a draw.
			s.pos.UnmakeMove()
			f.total++
			continue
		}
		score, found, legal := s.killer()
		if found {
			s.pos.UnmakeMove()
			f.wins += score
			f.total++
			continue
		}
		s.shuffle(legal)
		stack = append(stack, playoutFrame{moves: legal})
	}
}

// winRate maps (wins, total) onto [0, 1].
func winRate(wins, total int) float64 {
	if total == 0 {
		return 0.5
	}
	return (float64(wins)/float64(total) + 1) / 2
}
