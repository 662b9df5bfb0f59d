package chess

type Side int8

const (
	NoSide Side = -1
	White  Side = 0
	Black  Side = 1
)

func (s Side) Opponent() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

type PieceType int8

const (
	PieceNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a closed enumeration. Empty and OffBoard are colorless and never
// counted as material.
type Piece int8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	OffBoard

	NumPieces = int(BlackKing) + 1
)

func MakePiece(side Side, pt PieceType) Piece {
	if pt < Pawn || pt > King {
		return Empty
	}
	switch side {
	case White:
		return Piece(pt)
	case Black:
		return Piece(pt) + BlackPawn - 1
	}
	return Empty
}

// IsValid reports whether p is a real piece (not Empty, not OffBoard).
func (p Piece) IsValid() bool { return p >= WhitePawn && p <= BlackKing }

func (p Piece) Type() PieceType {
	switch {
	case p >= WhitePawn && p <= WhiteKing:
		return PieceType(p)
	case p >= BlackPawn && p <= BlackKing:
		return PieceType(p - BlackPawn + 1)
	}
	return PieceNone
}

func (p Piece) Side() Side {
	switch {
	case p >= WhitePawn && p <= WhiteKing:
		return White
	case p >= BlackPawn && p <= BlackKing:
		return Black
	}
	return NoSide
}

func (p Piece) IsSlider() bool {
	switch p.Type() {
	case Bishop, Rook, Queen:
		return true
	}
	return false
}

const pieceChars = ".PNBRQKpnbrqk"

func (p Piece) String() string {
	if p == OffBoard {
		return "x"
	}
	if p < Empty || p > BlackKing {
		return "?"
	}
	return pieceChars[p : p+1]
}

func pieceFromChar(ch byte) (Piece, bool) {
	for i := 1; i < len(pieceChars); i++ {
		if pieceChars[i] == ch {
			return Piece(i), true
		}
	}
	return Empty, false
}

// CastlingRights is a 4-bit set; values are always within [0,15].
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var b []byte
	for i, ch := range []byte("KQkq") {
		if c&(1<<i) != 0 {
			b = append(b, ch)
		}
	}
	return string(b)
}
