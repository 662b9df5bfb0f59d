package chess

import (
	"sort"
	"testing"
)

const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	endgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	promoFEN     = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	talkchessFEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func mustFEN(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return pos
}

func mustPlay(t *testing.T, pos *Position, moves ...string) {
	t.Helper()
	for _, s := range moves {
		mv, err := ParseMove(pos, s)
		if err != nil {
			t.Fatalf("parse move %s: %v", s, err)
		}
		if err := pos.ApplyMove(mv); err != nil {
			t.Fatalf("apply move %s: %v", s, err)
		}
	}
}

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, mv := range moves {
		out[i] = mv.String()
	}
	sort.Strings(out)
	return out
}

func containsMove(moves []Move, s string) bool {
	for _, mv := range moves {
		if mv.String() == s {
			return true
		}
	}
	return false
}

// snapshot captures every observable field of a position.
type snapshot struct {
	board         Board
	sideToMove    Side
	castling      CastlingRights
	enPassant     Square
	halfmoveClock int
	ply           int
	kingSquare    [2]Square
	pieceCount    [NumPieces]int
	hash          uint64
	depth         int
}

func takeSnapshot(p *Position) snapshot {
	return snapshot{
		board:         p.board,
		sideToMove:    p.sideToMove,
		castling:      p.castling,
		enPassant:     p.enPassant,
		halfmoveClock: p.halfmoveClock,
		ply:           p.ply,
		kingSquare:    p.kingSquare,
		pieceCount:    p.pieceCount,
		hash:          p.hash,
		depth:         len(p.history),
	}
}

// checkConsistency verifies the cached fields against a from-scratch rebuild.
func checkConsistency(t *testing.T, p *Position) {
	t.Helper()
	if got, want := p.hash, p.CalculateHash(); got != want {
		t.Fatalf("hash mismatch: got=%x want=%x\n%s", got, want, p)
	}
	cp := *p
	cp.recount()
	if cp.pieceCount != p.pieceCount {
		t.Fatalf("piece count mismatch: got=%v want=%v", p.pieceCount, cp.pieceCount)
	}
	if cp.kingSquare != p.kingSquare {
		t.Fatalf("king square mismatch: got=%v want=%v", p.kingSquare, cp.kingSquare)
	}
	if p.castling > AllCastling {
		t.Fatalf("castling rights out of range: %d", p.castling)
	}
}
