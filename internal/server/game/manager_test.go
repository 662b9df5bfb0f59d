package game

import (
	"errors"
	"sync"
	"testing"

	"hugo/internal/chess"
)

func TestNewGameAndGet(t *testing.T) {
	m := NewManager()
	v, err := m.NewGame("")
	if err != nil {
		t.Fatal(err)
	}
	if v.FEN != chess.StartFEN || len(v.LegalMoves) != 20 || v.Result.IsOver() {
		t.Fatalf("new game view: %+v", v)
	}
	g, err := m.Get(v.ID)
	if err != nil || g.ID != v.ID {
		t.Fatalf("Get(%s) = %v, %v", v.ID, g, err)
	}
	if _, err := m.Get("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Get(missing): got=%v want ErrGameNotFound", err)
	}
	if m.Len() != 1 {
		t.Fatalf("Len: got=%d want=1", m.Len())
	}
}

func TestNewGameFromFEN(t *testing.T) {
	m := NewManager()
	fen := "4k3/8/8/8/8/8/8/3RK3 w - - 0 1"
	v, err := m.NewGame(fen)
	if err != nil || v.FEN != fen {
		t.Fatalf("NewGame(fen) = %q, %v", v.FEN, err)
	}
	if _, err := m.NewGame("nonsense"); !errors.Is(err, chess.ErrInvalidFEN) {
		t.Fatalf("bad FEN: got=%v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("failed NewGame must not register a game")
	}
}

func TestPlayUndoReset(t *testing.T) {
	m := NewManager()
	v, _ := m.NewGame("")
	id := v.ID

	v, err := m.Play(id, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	if v.SideToMove != chess.Black || v.LastMove.String() != "e2e4" || v.Ply != 1 {
		t.Fatalf("after e2e4: %+v", v)
	}
	if _, err := m.Play(id, "e2e4"); !errors.Is(err, chess.ErrIllegalMove) {
		t.Fatalf("replayed move: got=%v want ErrIllegalMove", err)
	}
	if _, err := m.Play(id, "zz"); !errors.Is(err, chess.ErrInvalidMove) {
		t.Fatalf("garbage move: got=%v want ErrInvalidMove", err)
	}

	v, err = m.Undo(id)
	if err != nil || v.FEN != chess.StartFEN {
		t.Fatalf("undo: %q, %v", v.FEN, err)
	}
	if _, err := m.Undo(id); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("undo at start: got=%v", err)
	}

	if _, err := m.Play(id, "d2d4"); err != nil {
		t.Fatal(err)
	}
	v, err = m.Reset(id)
	if err != nil || v.FEN != chess.StartFEN || v.Ply != 0 {
		t.Fatalf("reset: %q, %v", v.FEN, err)
	}
}

func TestLoadKeepsGameOnError(t *testing.T) {
	m := NewManager()
	v, _ := m.NewGame("")
	m.Play(v.ID, "g1f3")
	before, _ := m.State(v.ID)
	if _, err := m.Load(v.ID, "8/8/8/8/8/8/8/8 w - -"); !errors.Is(err, chess.ErrInvalidFEN) {
		t.Fatalf("got=%v want ErrInvalidFEN", err)
	}
	after, _ := m.State(v.ID)
	if after.FEN != before.FEN || after.LastMove != before.LastMove {
		t.Fatalf("failed load changed the game")
	}
	after, err := m.Load(v.ID, "3k4/Q7/8/3K4/8/8/8/8 w - -")
	if err != nil || after.Ply != 0 {
		t.Fatalf("load: %+v, %v", after, err)
	}
}

func TestPlayAfterGameOver(t *testing.T) {
	m := NewManager()
	v, _ := m.NewGame("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if v.Result != (chess.Result{Outcome: chess.Draw, Reason: chess.ReasonStalemate}) {
		t.Fatalf("result: %s", v.Result)
	}
	if _, err := m.Play(v.ID, "h8g8"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("got=%v want ErrGameOver", err)
	}
}

func TestDelete(t *testing.T) {
	m := NewManager()
	v, _ := m.NewGame("")
	if err := m.Delete(v.ID); err != nil {
		t.Fatal(err)
	}
	if err := m.Delete(v.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("second delete: got=%v", err)
	}
	if _, err := m.State(v.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("state after delete: got=%v", err)
	}
}

func TestConcurrentGames(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		v, _ := m.NewGame("")
		ids[i] = v.ID
	}
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, mv := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
				if _, err := m.Play(id, mv); err != nil {
					t.Errorf("%s: %v", mv, err)
					return
				}
			}
		}()
	}
	wg.Wait()
	for _, id := range ids {
		v, _ := m.State(id)
		if v.Ply != 4 {
			t.Fatalf("game %s: ply=%d want=4", id, v.Ply)
		}
	}
}
