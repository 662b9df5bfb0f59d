package chess

import (
	"fmt"
	"strings"
)

// The board is a 10x12 mailbox: the 8x8 playing area is surrounded by a
// border of OffBoard sentinels (two rows top and bottom, one column each side)
// so that knight and slider deltas never need explicit bounds checks.
const (
	NumSquares = 120
	boardWidth = 10
)

type Square int

const (
	A1 Square = 21 + iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A2 Square = 31 + iota
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A7 Square = 81 + iota
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A8 Square = 91 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NoSquare marks an absent en-passant target or king. It lies in the border
// so that it is never mistaken for a playable square.
const NoSquare Square = 99

const (
	fileNone = -1
	rankNone = -1
)

var (
	squareFile, squareRank = buildFileRankTables()
	sq64To120              = buildSquareTable()
)

func buildFileRankTables() (files, ranks [NumSquares]int8) {
	for i := range files {
		files[i] = fileNone
		ranks[i] = rankNone
	}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := SquareOf(file, rank)
			files[sq] = int8(file)
			ranks[sq] = int8(rank)
		}
	}
	return files, ranks
}

func buildSquareTable() (t [64]Square) {
	for i := range t {
		t[i] = SquareOf(i%8, i/8)
	}
	return t
}

// SquareOf converts a 0-based file and rank to a mailbox index.
func SquareOf(file, rank int) Square { return Square(21 + file + rank*boardWidth) }

func (s Square) inRange() bool { return s >= 0 && s < NumSquares }

// OnBoard reports whether s is one of the 64 playable squares.
func (s Square) OnBoard() bool { return s.inRange() && squareFile[s] != fileNone }

func (s Square) File() int {
	if !s.inRange() {
		return fileNone
	}
	return int(squareFile[s])
}

func (s Square) Rank() int {
	if !s.inRange() {
		return rankNone
	}
	return int(squareRank[s])
}

func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return SquareOf(int(s[0]-'a'), int(s[1]-'1')), nil
}

type Board struct {
	Squares [NumSquares]Piece
}

// reset marks every square OffBoard and then clears the playing area.
func (b *Board) reset() {
	for i := range b.Squares {
		b.Squares[i] = OffBoard
	}
	for _, sq := range sq64To120 {
		b.Squares[sq] = Empty
	}
}

// String prints the board from rank 8 down to rank 1.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			fmt.Fprintf(&sb, " %s ", p.board.Squares[SquareOf(file, rank)])
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   ")
	for file := 0; file < 8; file++ {
		fmt.Fprintf(&sb, " %c ", 'A'+file)
	}
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "side: %s\n", p.sideToMove)
	fmt.Fprintf(&sb, "enPas: %s\n", p.enPassant)
	fmt.Fprintf(&sb, "castle: %s\n", p.castling)
	fmt.Fprintf(&sb, "key: %016x\n", p.hash)
	return sb.String()
}
