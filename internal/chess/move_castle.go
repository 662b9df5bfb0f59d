package chess

type castleRule struct {
	right    CastlingRights
	side     Side
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	empty    []Square // strictly between king and rook
	safe     []Square // king origin and the square it crosses
}

var castleRules = [4]castleRule{
	{WhiteKingSide, White, E1, G1, H1, F1, []Square{F1, G1}, []Square{E1, F1}},
	{WhiteQueenSide, White, E1, C1, A1, D1, []Square{D1, C1, B1}, []Square{E1, D1}},
	{BlackKingSide, Black, E8, G8, H8, F8, []Square{F8, G8}, []Square{E8, F8}},
	{BlackQueenSide, Black, E8, C8, A8, D8, []Square{D8, C8, B8}, []Square{E8, D8}},
}

// rookCastleMove maps the king's castling destination to the rook's move.
func rookCastleMove(kingTo Square) (from, to Square) {
	for i := range castleRules {
		if castleRules[i].kingTo == kingTo {
			return castleRules[i].rookFrom, castleRules[i].rookTo
		}
	}
	invariant(false, "castle to %s", kingTo)
	return NoSquare, NoSquare
}

// castlingMask[sq] is ANDed into the rights whenever a move leaves or lands
// on sq: moving the king or a rook, or capturing a rook, revokes the
// matching rights.
var castlingMask = buildCastlingMask()

func buildCastlingMask() (m [NumSquares]CastlingRights) {
	for i := range m {
		m[i] = AllCastling
	}
	m[E1] &^= WhiteKingSide | WhiteQueenSide
	m[H1] &^= WhiteKingSide
	m[A1] &^= WhiteQueenSide
	m[E8] &^= BlackKingSide | BlackQueenSide
	m[H8] &^= BlackKingSide
	m[A8] &^= BlackQueenSide
	return m
}

// The destination square is not tested for attack here; a king landing in
// check is rejected by MakeMove like any other move.
func genCastlingMoves(p *Position, moves *[]Move) {
	side := p.sideToMove
	opp := side.Opponent()
	king := MakePiece(side, King)
	rook := MakePiece(side, Rook)
	for i := range castleRules {
		r := &castleRules[i]
		if r.side != side || p.castling&r.right == 0 {
			continue
		}
		if p.board.Squares[r.kingFrom] != king || p.board.Squares[r.rookFrom] != rook {
			continue
		}
		if !p.allEmpty(r.empty) || p.anyAttacked(r.safe, opp) {
			continue
		}
		*moves = append(*moves, NewMove(r.kingFrom, r.kingTo, Empty, Empty, FlagCastle))
	}
}

func (p *Position) allEmpty(squares []Square) bool {
	for _, sq := range squares {
		if p.board.Squares[sq] != Empty {
			return false
		}
	}
	return true
}

func (p *Position) anyAttacked(squares []Square, by Side) bool {
	for _, sq := range squares {
		if p.IsAttacked(sq, by) {
			return true
		}
	}
	return false
}
