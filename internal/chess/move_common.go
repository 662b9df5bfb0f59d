package chess

var (
	knightDeltas = [8]Square{-8, -19, -21, -12, 8, 19, 21, 12}
	rookDeltas   = [4]Square{-1, -10, 1, 10}
	bishopDeltas = [4]Square{-9, -11, 11, 9}
	kingDeltas   = [8]Square{-1, -10, 1, 10, -9, -11, 11, 9}
)

// Sliders walk each ray until the first occupied square.
func genSlidingMoves(p *Position, from Square, deltas []Square, moves *[]Move) {
	side := p.sideToMove
	for _, d := range deltas {
		to := from + d
		for {
			pc := p.board.Squares[to]
			if pc == OffBoard {
				break
			}
			if pc != Empty {
				if pc.Side() != side {
					*moves = append(*moves, NewMove(from, to, pc, Empty, 0))
				}
				break
			}
			*moves = append(*moves, NewMove(from, to, Empty, Empty, 0))
			to += d
		}
	}
}

// Knight and king: one step per delta.
func genStepMoves(p *Position, from Square, deltas []Square, moves *[]Move) {
	side := p.sideToMove
	for _, d := range deltas {
		to := from + d
		pc := p.board.Squares[to]
		switch {
		case pc == OffBoard:
		case pc == Empty:
			*moves = append(*moves, NewMove(from, to, Empty, Empty, 0))
		case pc.Side() != side:
			*moves = append(*moves, NewMove(from, to, pc, Empty, 0))
		}
	}
}
