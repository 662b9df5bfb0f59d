package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"hugo/internal/chess"
	"hugo/internal/mcts"
)

var ErrNoLegalMoves = errors.New("engine: no legal moves")

type Strategy int

const (
	StrategyPlayout Strategy = iota // exhaustive random playout with killer probe
	StrategyMCTS                    // UCT tree search
)

func (s Strategy) String() string {
	switch s {
	case StrategyPlayout:
		return "playout"
	case StrategyMCTS:
		return "mcts"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "playout":
		return StrategyPlayout, nil
	case "mcts", "uct":
		return StrategyMCTS, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

// SearchConfig controls one search. The budget is shared evenly among the
// root moves.
type SearchConfig struct {
	Strategy    Strategy
	Simulations int     // total playouts / UCT iterations
	Workers     int     // root tasks run at once (0: GOMAXPROCS)
	Exploration float64 // UCB1 constant
	Seed        uint64  // root task i draws from PCG(Seed, i)
	MaxDepth    int     // playout depth / rollout length bound, in plies
}

func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Strategy:    StrategyMCTS,
		Simulations: 5000,
		Exploration: 1.0,
		MaxDepth:    400,
	}
}

func (c SearchConfig) withDefaults() SearchConfig {
	d := DefaultSearchConfig()
	if c.Simulations <= 0 {
		c.Simulations = d.Simulations
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Exploration <= 0 {
		c.Exploration = d.Exploration
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = d.MaxDepth
	}
	return c
}

// RootScore is the estimate for one root move, as the probability in [0, 1]
// that the side to move at the root wins after playing it.
type RootScore struct {
	Move        chess.Move
	Score       float64
	Simulations int
	Nodes       int64
	Immediate   bool // the move ends the game; Score is exact
}

type SearchResult struct {
	BestMove chess.Move
	Score    float64
	Nodes    int64
	TimeUsed time.Duration
	Scores   []RootScore // in root move generation order
}

// Search picks a move for the side to move. Every legal root move runs as
// its own task on a private copy of pos; at most cfg.Workers tasks run at
// once. pos itself is only read. The result depends only on pos and cfg.
func (e *Engine) Search(pos *chess.Position, cfg SearchConfig) (SearchResult, error) {
	start := time.Now()
	cfg = cfg.withDefaults()

	legal := pos.GenerateLegalMoves()
	if len(legal) == 0 {
		return SearchResult{}, fmt.Errorf("%w: %s", ErrNoLegalMoves, pos.FEN())
	}
	rootSide := pos.SideToMove()

	if len(legal) == 1 {
		score := e.immediate(pos, legal[0], rootSide)
		e.log.Info().Str("move", legal[0].String()).Msg("single legal move")
		return SearchResult{
			BestMove: legal[0],
			Score:    score.Score,
			TimeUsed: time.Since(start),
			Scores:   []RootScore{score},
		}, nil
	}

	budget := max(1, cfg.Simulations/len(legal))
	scores := make([]RootScore, len(legal))

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, mv := range legal {
		g.Go(func() error {
			scores[i] = e.searchRoot(pos.Copy(), mv, rootSide, budget, cfg, i)
			return nil
		})
	}
	_ = g.Wait()

	best := 0
	var nodes int64
	for i, s := range scores {
		nodes += s.Nodes
		e.log.Debug().
			Str("move", s.Move.String()).
			Float64("score", s.Score).
			Int("simulations", s.Simulations).
			Bool("immediate", s.Immediate).
			Msg("root move")
		if better(s, scores[best]) {
			best = i
		}
	}

	res := SearchResult{
		BestMove: scores[best].Move,
		Score:    scores[best].Score,
		Nodes:    nodes,
		TimeUsed: time.Since(start),
		Scores:   scores,
	}
	e.totalNodes.Add(nodes)
	e.log.Info().
		Str("strategy", cfg.Strategy.String()).
		Str("best", res.BestMove.String()).
		Float64("score", res.Score).
		Int("root_moves", len(legal)).
		Int64("nodes", res.Nodes).
		Dur("elapsed", res.TimeUsed).
		Msg("search done")
	return res, nil
}

// better orders root scores: higher score first, then an exact result over
// an estimate. Remaining ties keep the earlier move.
func better(a, b RootScore) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Immediate && !b.Immediate
}

// immediate scores mv exactly if it ends the game. Otherwise the returned
// score is an uninformed 0.5.
func (e *Engine) immediate(pos *chess.Position, mv chess.Move, rootSide chess.Side) RootScore {
	cp := pos.Copy()
	if !cp.MakeMove(mv) {
		panic("engine: root move " + mv.String() + " is not legal")
	}
	rs := RootScore{Move: mv, Score: 0.5}
	if r := cp.Result(); r.IsOver() {
		rs.Score = r.ScoreFor(rootSide)
		rs.Immediate = true
	}
	return rs
}

// searchRoot runs one root task. pos is owned by the task.
func (e *Engine) searchRoot(pos *chess.Position, mv chess.Move, rootSide chess.Side, budget int, cfg SearchConfig, idx int) RootScore {
	if !pos.MakeMove(mv) {
		panic("engine: root move " + mv.String() + " is not legal")
	}
	if r := pos.Result(); r.IsOver() {
		return RootScore{Move: mv, Score: r.ScoreFor(rootSide), Immediate: true}
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, uint64(idx)))
	switch cfg.Strategy {
	case StrategyMCTS:
		s := mcts.NewSearcher(mcts.Params{
			Iterations:      budget,
			Exploration:     cfg.Exploration,
			MaxRolloutPlies: cfg.MaxDepth,
		}, rng)
		res := s.Search(pos)
		score := 0.5
		if res.Visits > 0 {
			// Child wins are the opponent's; the root side gets the rest.
			score = 1 - res.Wins/float64(res.Visits)
		}
		return RootScore{Move: mv, Score: score, Simulations: res.Iterations, Nodes: res.Nodes}
	default:
		p := newPlayout(pos, rootSide, budget, cfg.MaxDepth, rng)
		wins, total := p.run()
		return RootScore{Move: mv, Score: winRate(wins, total), Simulations: total, Nodes: p.nodes}
	}
}
