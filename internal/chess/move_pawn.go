package chess

type pawnRules struct {
	push       Square
	captures   [2]Square
	startRank  int
	promoRank  int // rank the pawn stands on before promoting
	promotions [4]Piece
}

var pawnRulesBySide = [2]pawnRules{
	White: {
		push:       10,
		captures:   [2]Square{9, 11},
		startRank:  1,
		promoRank:  6,
		promotions: [4]Piece{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight},
	},
	Black: {
		push:       -10,
		captures:   [2]Square{-9, -11},
		startRank:  6,
		promoRank:  1,
		promotions: [4]Piece{BlackQueen, BlackRook, BlackBishop, BlackKnight},
	},
}

func addPawnMove(r *pawnRules, from, to Square, captured Piece, moves *[]Move) {
	if from.Rank() == r.promoRank {
		for _, promo := range r.promotions {
			*moves = append(*moves, NewMove(from, to, captured, promo, 0))
		}
		return
	}
	*moves = append(*moves, NewMove(from, to, captured, Empty, 0))
}

func genPawnMoves(p *Position, from Square, moves *[]Move) {
	side := p.sideToMove
	r := &pawnRulesBySide[side]

	one := from + r.push
	if p.board.Squares[one] == Empty {
		addPawnMove(r, from, one, Empty, moves)
		two := one + r.push
		if from.Rank() == r.startRank && p.board.Squares[two] == Empty {
			*moves = append(*moves, NewMove(from, two, Empty, Empty, FlagPawnStart))
		}
	}

	for _, d := range r.captures {
		to := from + d
		pc := p.board.Squares[to]
		if pc.IsValid() && pc.Side() != side {
			addPawnMove(r, from, to, pc, moves)
		}
		if to == p.enPassant && p.enPassant != NoSquare {
			*moves = append(*moves, NewMove(from, to, Empty, Empty, FlagEnPassant))
		}
	}
}
