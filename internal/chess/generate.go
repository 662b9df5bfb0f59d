package chess

// AppendPseudoMoves appends every pseudo-legal move for the side to move:
// castling first, then per piece in square order.
func (p *Position) AppendPseudoMoves(moves []Move) []Move {
	side := p.sideToMove
	invariant(side == White || side == Black, "generate with side %d", side)

	genCastlingMoves(p, &moves)
	for _, sq := range sq64To120 {
		pc := p.board.Squares[sq]
		if pc.Side() != side {
			continue
		}
		switch pc.Type() {
		case Pawn:
			genPawnMoves(p, sq, &moves)
		case Knight:
			genStepMoves(p, sq, knightDeltas[:], &moves)
		case Bishop:
			genSlidingMoves(p, sq, bishopDeltas[:], &moves)
		case Rook:
			genSlidingMoves(p, sq, rookDeltas[:], &moves)
		case Queen:
			genSlidingMoves(p, sq, kingDeltas[:], &moves)
		case King:
			genStepMoves(p, sq, kingDeltas[:], &moves)
		}
	}
	return moves
}

// GeneratePseudoMoves does not check whether the mover is left in check.
func (p *Position) GeneratePseudoMoves() []Move {
	return p.AppendPseudoMoves(make([]Move, 0, 48))
}

// GenerateLegalMoves filters the pseudo-legal moves through MakeMove.
// The position is unchanged on return.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.GeneratePseudoMoves()
	out := pseudo[:0]
	for _, mv := range pseudo {
		if !p.MakeMove(mv) {
			continue
		}
		p.UnmakeMove()
		out = append(out, mv)
	}
	return out
}

// HasLegalMove stops at the first move that survives the legality filter.
func (p *Position) HasLegalMove() bool {
	var buf [64]Move
	for _, mv := range p.AppendPseudoMoves(buf[:0]) {
		if p.MakeMove(mv) {
			p.UnmakeMove()
			return true
		}
	}
	return false
}

// IsPseudoLegal reports whether m is among the current pseudo-legal moves.
func (p *Position) IsPseudoLegal(m Move) bool {
	var buf [64]Move
	for _, mv := range p.AppendPseudoMoves(buf[:0]) {
		if mv == m {
			return true
		}
	}
	return false
}

// Perft counts leaf nodes of the legal move tree to the given depth.
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, mv := range p.GeneratePseudoMoves() {
		if !p.MakeMove(mv) {
			continue
		}
		if depth == 1 {
			nodes++
		} else {
			nodes += p.Perft(depth - 1)
		}
		p.UnmakeMove()
	}
	return nodes
}
