package mcts

// Params configures one UCT search.
type Params struct {
	Iterations      int     // select/expand/rollout/backprop cycles
	Exploration     float64 // UCB1 constant C
	MaxRolloutPlies int     // rollouts longer than this are scored as draws
}

func DefaultParams() Params {
	return Params{
		Iterations:      1000,
		Exploration:     1.0,
		MaxRolloutPlies: 400,
	}
}

// withDefaults fills zero fields from DefaultParams.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.Iterations <= 0 {
		p.Iterations = d.Iterations
	}
	if p.Exploration <= 0 {
		p.Exploration = d.Exploration
	}
	if p.MaxRolloutPlies <= 0 {
		p.MaxRolloutPlies = d.MaxRolloutPlies
	}
	return p
}
