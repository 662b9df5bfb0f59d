package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN builds a new position from a FEN-like description.
func ParseFEN(fen string) (*Position, error) {
	p := NewPosition()
	if err := p.SetFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// SetFEN replaces the position with the one described by fen. Placement,
// side to move, castling and en-passant fields are required; the halfmove
// clock and fullmove number are optional. On error p is left untouched.
func (p *Position) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return fmt.Errorf("%w: want 4 to 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	np := NewPositionWithKeys(p.keys)
	if err := np.parsePlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		np.sideToMove = White
	case "b":
		np.sideToMove = Black
	default:
		return fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return err
	}
	np.castling = castling

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return fmt.Errorf("%w: en passant %q", ErrInvalidFEN, fields[3])
		}
		wantRank := 5
		if np.sideToMove == Black {
			wantRank = 2
		}
		if sq.Rank() != wantRank {
			return fmt.Errorf("%w: en passant %s with %s to move", ErrInvalidFEN, sq, np.sideToMove)
		}
		np.enPassant = sq
		if err := np.checkEnPassant(); err != nil {
			return err
		}
	}

	fullmove := 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		np.halfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		fullmove = n
	}
	np.ply = (fullmove - 1) * 2
	if np.sideToMove == Black {
		np.ply++
	}

	np.recount()
	for _, pc := range []Piece{WhiteKing, BlackKing} {
		if np.pieceCount[pc] != 1 {
			return fmt.Errorf("%w: want one %s, got %d", ErrInvalidFEN, pc, np.pieceCount[pc])
		}
	}
	if np.IsInCheck(np.sideToMove.Opponent()) {
		return fmt.Errorf("%w: %s to move can capture the king", ErrInvalidFEN, np.sideToMove)
	}
	np.hash = np.CalculateHash()

	*p = *np
	return nil
}

// checkEnPassant requires the target square and the pawn's start square to be
// empty, with the pawn that just double-pushed standing behind the target.
func (p *Position) checkEnPassant() error {
	sq := p.enPassant
	mover := p.sideToMove.Opponent()
	push := pawnRulesBySide[mover].push
	pawn := MakePiece(mover, Pawn)
	switch {
	case p.board.Squares[sq] != Empty:
		return fmt.Errorf("%w: en passant %s is occupied", ErrInvalidFEN, sq)
	case p.board.Squares[sq-push] != Empty:
		return fmt.Errorf("%w: en passant %s origin %s is occupied", ErrInvalidFEN, sq, sq-push)
	case p.board.Squares[sq+push] != pawn:
		return fmt.Errorf("%w: en passant %s without a %s on %s", ErrInvalidFEN, sq, pawn, sq+push)
	}
	return nil
}

func (p *Position) parsePlacement(s string) error {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc, ok := pieceFromChar(ch)
			if !ok {
				return fmt.Errorf("%w: piece character %q", ErrInvalidFEN, ch)
			}
			if file >= 8 {
				return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
			}
			if pc.Type() == Pawn && (rank == 0 || rank == 7) {
				return fmt.Errorf("%w: pawn on rank %d", ErrInvalidFEN, rank+1)
			}
			p.board.Squares[SquareOf(file, rank)] = pc
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}
	return nil
}

func parseCastling(s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastling, nil
	}
	if len(s) > 4 {
		return 0, fmt.Errorf("%w: castling %q", ErrInvalidFEN, s)
	}
	var c CastlingRights
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte("KQkq", s[i])
		if idx < 0 || c&(1<<idx) != 0 {
			return 0, fmt.Errorf("%w: castling %q", ErrInvalidFEN, s)
		}
		c |= 1 << idx
	}
	return c, nil
}

// FEN encodes the position with all six fields.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.board.Squares[SquareOf(file, rank)]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d", p.sideToMove, p.castling, p.enPassant, p.halfmoveClock, p.ply/2+1)
	return sb.String()
}
