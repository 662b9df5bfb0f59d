package chess

import "fmt"

// MakeMove applies a pseudo-legal move. If the move leaves the mover's king
// attacked it is taken back and MakeMove returns false with the position
// exactly as before the call.
func (p *Position) MakeMove(m Move) bool {
	from, to := m.From(), m.To()
	side := p.sideToMove
	invariant(from.OnBoard() && to.OnBoard(), "move %s off the board", m)
	pc := p.board.Squares[from]
	invariant(pc.IsValid() && pc.Side() == side, "move %s of %s with %s to move", m, pc, side)

	p.history = append(p.history, undo{
		move:          m,
		castling:      p.castling,
		enPassant:     p.enPassant,
		halfmoveClock: p.halfmoveClock,
		hash:          p.hash,
		kingSquare:    p.kingSquare,
	})

	if m.IsEnPassant() {
		p.clearPiece(to - pawnRulesBySide[side].push)
	} else if m.IsCastle() {
		rookFrom, rookTo := rookCastleMove(to)
		p.movePiece(rookFrom, rookTo)
	}

	if p.enPassant != NoSquare {
		p.hash ^= p.keys.enPassantKey(p.enPassant)
		p.enPassant = NoSquare
	}
	p.hash ^= p.keys.castling[p.castling]
	p.castling &= castlingMask[from] & castlingMask[to]
	p.hash ^= p.keys.castling[p.castling]

	p.halfmoveClock++
	if captured := m.Captured(); captured != Empty {
		invariant(p.board.Squares[to] == captured, "move %s captures %s but %s stands there", m, captured, p.board.Squares[to])
		p.clearPiece(to)
		p.halfmoveClock = 0
	}
	p.ply++

	if pc.Type() == Pawn {
		p.halfmoveClock = 0
		if m.IsPawnStart() {
			p.enPassant = from + pawnRulesBySide[side].push
			p.hash ^= p.keys.enPassantKey(p.enPassant)
		}
	}

	p.movePiece(from, to)
	if promo := m.Promoted(); promo != Empty {
		invariant(pc.Type() == Pawn && promo.Side() == side, "promotion %s by %s", promo, pc)
		p.clearPiece(to)
		p.addPiece(to, promo)
	}
	if pc.Type() == King {
		p.kingSquare[side] = to
	}

	p.sideToMove = side.Opponent()
	p.hash ^= p.keys.side

	if p.IsAttacked(p.kingSquare[side], p.sideToMove) {
		p.UnmakeMove()
		return false
	}
	return true
}

// UnmakeMove takes back the most recent MakeMove. Scalar state comes
// straight from the snapshot; only piece placement is reversed.
func (p *Position) UnmakeMove() {
	n := len(p.history)
	invariant(n > 0, "unmake with empty history")
	u := p.history[n-1]
	p.history = p.history[:n-1]

	m := u.move
	from, to := m.From(), m.To()
	p.sideToMove = p.sideToMove.Opponent()
	side := p.sideToMove
	p.ply--

	if m.IsPromotion() {
		p.clearPiece(to)
		p.addPiece(to, MakePiece(side, Pawn))
	}
	p.movePiece(to, from)
	if m.IsEnPassant() {
		p.addPiece(to-pawnRulesBySide[side].push, MakePiece(side.Opponent(), Pawn))
	} else if m.IsCastle() {
		rookFrom, rookTo := rookCastleMove(to)
		p.movePiece(rookTo, rookFrom)
	}
	if captured := m.Captured(); captured != Empty {
		p.addPiece(to, captured)
	}

	p.castling = u.castling
	p.enPassant = u.enPassant
	p.halfmoveClock = u.halfmoveClock
	p.kingSquare = u.kingSquare
	p.hash = u.hash
}

// ApplyMove is the checked entry point for moves coming from outside the
// engine: m must be pseudo-legal and must not leave the king attacked.
func (p *Position) ApplyMove(m Move) error {
	if p.sideToMove == NoSide || !p.IsPseudoLegal(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	if !p.MakeMove(m) {
		return fmt.Errorf("%w: %s leaves the king in check", ErrIllegalMove, m)
	}
	return nil
}
