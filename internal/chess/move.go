package chess

// Move packs a move into 25 bits:
//
//	bits  0-6   from square
//	bits  7-13  to square
//	bits 14-17  captured piece
//	bit  18     en passant capture
//	bit  19     double pawn push
//	bits 20-23  promotion piece
//	bit  24     castling
type Move uint32

const (
	FlagEnPassant Move = 0x40000
	FlagPawnStart Move = 0x80000
	FlagCastle    Move = 0x1000000

	moveSquareMask  = 0x7f
	movePieceMask   = 0xf
	moveToShift     = 7
	moveCaptShift   = 14
	movePromoShift  = 20
	moveFlagsMask   = FlagEnPassant | FlagPawnStart | FlagCastle
	moveCaptureBits = Move(movePieceMask<<moveCaptShift) | FlagEnPassant
)

// NoMove is the zero move; no generated move encodes to it because the
// from square of a real move is never 0.
const NoMove Move = 0

func NewMove(from, to Square, captured, promoted Piece, flags Move) Move {
	invariant(from.inRange() && to.inRange(), "move squares %d-%d", from, to)
	invariant(captured >= Empty && captured <= BlackKing, "captured piece %d", captured)
	invariant(promoted >= Empty && promoted <= BlackKing, "promoted piece %d", promoted)
	return Move(from) |
		Move(to)<<moveToShift |
		Move(captured)<<moveCaptShift |
		Move(promoted)<<movePromoShift |
		flags&moveFlagsMask
}

func (m Move) From() Square      { return Square(m & moveSquareMask) }
func (m Move) To() Square        { return Square((m >> moveToShift) & moveSquareMask) }
func (m Move) Captured() Piece   { return Piece((m >> moveCaptShift) & movePieceMask) }
func (m Move) Promoted() Piece   { return Piece((m >> movePromoShift) & movePieceMask) }
func (m Move) IsEnPassant() bool { return m&FlagEnPassant != 0 }
func (m Move) IsPawnStart() bool { return m&FlagPawnStart != 0 }
func (m Move) IsCastle() bool    { return m&FlagCastle != 0 }

// IsCapture covers both ordinary and en-passant captures.
func (m Move) IsCapture() bool   { return m&moveCaptureBits != 0 }
func (m Move) IsPromotion() bool { return m.Promoted() != Empty }

// String renders pure coordinate notation, e.g. "e2e4" or "b7b8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	switch m.Promoted().Type() {
	case Queen:
		s += "q"
	case Rook:
		s += "r"
	case Bishop:
		s += "b"
	case Knight:
		s += "n"
	}
	return s
}
