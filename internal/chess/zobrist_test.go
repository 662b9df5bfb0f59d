package chess

import "testing"

func TestHashInitializedFromInitialAndFEN(t *testing.T) {
	pos := NewInitialPosition()
	if pos.Hash() != pos.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", pos.Hash(), pos.CalculateHash())
	}

	for _, fen := range []string{kiwipeteFEN, endgameFEN, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 3"} {
		decoded := mustFEN(t, fen)
		if decoded.Hash() != decoded.CalculateHash() {
			t.Fatalf("decoded hash mismatch for %s: got=%d want=%d", fen, decoded.Hash(), decoded.CalculateHash())
		}
	}
}

func TestMakeMoveHashIncrementalMatchesFullRecompute(t *testing.T) {
	for _, fen := range []string{StartFEN, kiwipeteFEN, promoFEN} {
		pos := mustFEN(t, fen)
		start := pos.Hash()
		played := 0
		for ply := 0; ply < 60; ply++ {
			moves := pos.GenerateLegalMoves()
			if len(moves) == 0 {
				break
			}
			mv := moves[(ply*7)%len(moves)]
			if !pos.MakeMove(mv) {
				t.Fatalf("legal move rejected at ply %d: %s", ply, mv)
			}
			played++
			checkConsistency(t, pos)
		}
		for i := 0; i < played; i++ {
			pos.UnmakeMove()
			checkConsistency(t, pos)
		}
		if pos.Hash() != start {
			t.Fatalf("hash after full unwind: got=%x want=%x", pos.Hash(), start)
		}
	}
}

func TestZobristKeysSeeded(t *testing.T) {
	a := NewZobristKeys(1, 2)
	b := NewZobristKeys(1, 2)
	c := NewZobristKeys(3, 4)
	if *a != *b {
		t.Fatalf("equal seeds produced different tables")
	}
	if a.side == c.side && a.castling == c.castling {
		t.Fatalf("different seeds produced the same tables")
	}

	pa := NewPositionWithKeys(a)
	if err := pa.SetFEN(StartFEN); err != nil {
		t.Fatal(err)
	}
	pb := NewPositionWithKeys(b)
	if err := pb.SetFEN(StartFEN); err != nil {
		t.Fatal(err)
	}
	if pa.Hash() != pb.Hash() {
		t.Fatalf("same keys, same position, different hash")
	}
}

func TestHashDistinguishesSideAndEnPassant(t *testing.T) {
	w := mustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1")
	b := mustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 b - - 0 1")
	ep := mustFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if w.Hash() == b.Hash() {
		t.Fatalf("side to move not hashed")
	}
	if w.Hash() == ep.Hash() {
		t.Fatalf("en passant square not hashed")
	}
}
