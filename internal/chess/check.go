package chess

// IsAttacked reports whether sq is attacked by bySide, probing outward from
// sq for each attacker kind.
func (p *Position) IsAttacked(sq Square, bySide Side) bool {
	invariant(sq.OnBoard(), "attack query on square %d", sq)
	invariant(bySide == White || bySide == Black, "attack query by side %d", bySide)

	sqs := &p.board.Squares

	// Pawns attack diagonally forward, so look one rank behind sq from
	// the attacker's point of view.
	if bySide == White {
		if sqs[sq-11] == WhitePawn || sqs[sq-9] == WhitePawn {
			return true
		}
	} else if sqs[sq+11] == BlackPawn || sqs[sq+9] == BlackPawn {
		return true
	}

	knight := MakePiece(bySide, Knight)
	for _, d := range knightDeltas {
		if sqs[sq+d] == knight {
			return true
		}
	}

	king := MakePiece(bySide, King)
	for _, d := range kingDeltas {
		if sqs[sq+d] == king {
			return true
		}
	}

	rook, bishop, queen := MakePiece(bySide, Rook), MakePiece(bySide, Bishop), MakePiece(bySide, Queen)
	for _, d := range rookDeltas {
		if pc := firstOnRay(sqs, sq, d); pc == rook || pc == queen {
			return true
		}
	}
	for _, d := range bishopDeltas {
		if pc := firstOnRay(sqs, sq, d); pc == bishop || pc == queen {
			return true
		}
	}
	return false
}

// firstOnRay returns the first non-empty square's content along d, which is
// OffBoard when the ray leaves the board.
func firstOnRay(sqs *[NumSquares]Piece, from, d Square) Piece {
	to := from + d
	for sqs[to] == Empty {
		to += d
	}
	return sqs[to]
}

// IsInCheck reports whether side's king is attacked.
func (p *Position) IsInCheck(side Side) bool {
	ksq := p.kingSquare[side]
	if ksq == NoSquare {
		return false
	}
	return p.IsAttacked(ksq, side.Opponent())
}
