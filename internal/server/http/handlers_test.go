package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"hugo/internal/chess"
	"hugo/internal/engine"
	"hugo/internal/server/game"
)

func newTestServer() http.Handler {
	log := zerolog.Nop()
	cfg := engine.SearchConfig{
		Strategy:    engine.StrategyMCTS,
		Simulations: 200,
		Workers:     2,
		Seed:        1,
		MaxDepth:    40,
	}
	h := NewHandler(game.NewManager(), engine.NewEngine(log), cfg, log)
	return NewRouter(h, log)
}

func post(t *testing.T, srv http.Handler, path string, body any, wantCode int, out any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != wantCode {
		t.Fatalf("POST %s: status=%d want=%d body=%s", path, rec.Code, wantCode, rec.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("POST %s: decode %q: %v", path, rec.Body.String(), err)
		}
	}
}

func newGame(t *testing.T, srv http.Handler, fen string) StateResponse {
	t.Helper()
	var st StateResponse
	post(t, srv, "/api/new_game", NewGameRequest{FEN: fen}, http.StatusOK, &st)
	return st
}

func TestNewGameEmptyBody(t *testing.T) {
	srv := newTestServer()
	var st StateResponse
	post(t, srv, "/api/new_game", nil, http.StatusOK, &st)
	if st.GameID == "" || st.Position != chess.StartFEN || st.ToMove != "w" || len(st.LegalMoves) != 20 || st.Status != "ongoing" {
		t.Fatalf("new game: %+v", st)
	}
}

func TestPlayUndoFlow(t *testing.T) {
	srv := newTestServer()
	st := newGame(t, srv, "")

	post(t, srv, "/api/play", PlayRequest{GameID: st.GameID, Move: "e2e4"}, http.StatusOK, &st)
	if st.ToMove != "b" || st.LastMove != "e2e4" || st.Ply != 1 {
		t.Fatalf("after e2e4: %+v", st)
	}
	var lm LegalMovesResponse
	post(t, srv, "/api/legal_moves", GameRequest{GameID: st.GameID}, http.StatusOK, &lm)
	if lm.Count != 20 || len(lm.Moves) != 20 {
		t.Fatalf("black legal moves: %d", lm.Count)
	}

	post(t, srv, "/api/undo", GameRequest{GameID: st.GameID}, http.StatusOK, &st)
	if st.Position != chess.StartFEN {
		t.Fatalf("after undo: %s", st.Position)
	}
	post(t, srv, "/api/undo", GameRequest{GameID: st.GameID}, http.StatusBadRequest, nil)

	post(t, srv, "/api/play", PlayRequest{GameID: st.GameID, Move: "d2d4"}, http.StatusOK, &st)
	post(t, srv, "/api/reset", GameRequest{GameID: st.GameID}, http.StatusOK, &st)
	if st.Position != chess.StartFEN {
		t.Fatalf("after reset: %s", st.Position)
	}
}

func TestLoadAndResult(t *testing.T) {
	srv := newTestServer()
	st := newGame(t, srv, "")
	post(t, srv, "/api/load", LoadRequest{GameID: st.GameID, FEN: "3k4/Q7/8/3K4/8/8/8/8 w - -"}, http.StatusOK, &st)
	for _, mv := range []string{"d5d6", "d8e8", "a7e7"} {
		post(t, srv, "/api/play", PlayRequest{GameID: st.GameID, Move: mv}, http.StatusOK, &st)
	}
	var res ResultResponse
	post(t, srv, "/api/result", GameRequest{GameID: st.GameID}, http.StatusOK, &res)
	if !res.Over || res.Outcome != "1-0" || res.Reason != "checkmate" || res.Winner != "w" {
		t.Fatalf("result: %+v", res)
	}
	post(t, srv, "/api/play", PlayRequest{GameID: st.GameID, Move: "e8d8"}, http.StatusConflict, nil)
	post(t, srv, "/api/ai_move", AiMoveRequest{GameID: st.GameID}, http.StatusConflict, nil)
}

func TestAiMove(t *testing.T) {
	srv := newTestServer()
	st := newGame(t, srv, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	for _, strategy := range []string{"playout", "mcts"} {
		var resp AiMoveResponse
		post(t, srv, "/api/ai_move", AiMoveRequest{GameID: st.GameID, Strategy: strategy}, http.StatusOK, &resp)
		if resp.BestMove != "a1a8" || resp.Score != 1 {
			t.Fatalf("%s: best=%s score=%v", strategy, resp.BestMove, resp.Score)
		}
		if resp.State.Ply != 0 {
			t.Fatalf("%s: ai_move without apply played a move", strategy)
		}
	}

	var resp AiMoveResponse
	post(t, srv, "/api/ai_move", AiMoveRequest{GameID: st.GameID, Apply: true}, http.StatusOK, &resp)
	if resp.State.LastMove != "a1a8" || resp.State.Status != "1-0 checkmate" {
		t.Fatalf("applied: %+v", resp.State)
	}
}

func TestAiMoveBadStrategy(t *testing.T) {
	srv := newTestServer()
	st := newGame(t, srv, "")
	post(t, srv, "/api/ai_move", AiMoveRequest{GameID: st.GameID, Strategy: "alphabeta"}, http.StatusBadRequest, nil)
}

func TestErrorStatuses(t *testing.T) {
	srv := newTestServer()
	st := newGame(t, srv, "")
	tests := []struct {
		name string
		path string
		body any
		code int
	}{
		{"unknown game", "/api/state", GameRequest{GameID: "nope"}, http.StatusNotFound},
		{"illegal move", "/api/play", PlayRequest{GameID: st.GameID, Move: "e2e5"}, http.StatusBadRequest},
		{"bad notation", "/api/play", PlayRequest{GameID: st.GameID, Move: "castle"}, http.StatusBadRequest},
		{"bad fen", "/api/load", LoadRequest{GameID: st.GameID, FEN: "x"}, http.StatusBadRequest},
		{"phantom en passant", "/api/load", LoadRequest{GameID: st.GameID, FEN: "4k3/8/8/3P4/8/8/8/4K3 w - e6 0 1"}, http.StatusBadRequest},
		{"bad new game fen", "/api/new_game", NewGameRequest{FEN: "x"}, http.StatusBadRequest},
		{"unknown route", "/api/fly", GameRequest{}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var er ErrorResponse
			var out any
			if tt.code != http.StatusNotFound || tt.path != "/api/fly" {
				out = &er
			}
			post(t, srv, tt.path, tt.body, tt.code, out)
			if out != nil && er.Error == "" {
				t.Fatalf("missing error message")
			}
		})
	}

	var lm LegalMovesResponse
	post(t, srv, "/api/legal_moves", GameRequest{GameID: st.GameID}, http.StatusOK, &lm)
	if lm.Count != 20 {
		t.Fatalf("game changed by rejected requests: %d legal moves", lm.Count)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET: status=%d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/state", bytes.NewBufferString("{"))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json: status=%d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: %d", rec.Code)
	}
}
