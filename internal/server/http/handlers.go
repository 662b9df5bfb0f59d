package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"hugo/internal/chess"
	"hugo/internal/engine"
	"hugo/internal/server/game"
)

// Handler serves the /api/* routes. Every route takes a JSON body via POST.
type Handler struct {
	games  *game.Manager
	engine *engine.Engine
	cfg    engine.SearchConfig
	log    zerolog.Logger
}

func NewHandler(games *game.Manager, eng *engine.Engine, cfg engine.SearchConfig, log zerolog.Logger) *Handler {
	return &Handler{
		games:  games,
		engine: eng,
		cfg:    cfg,
		log:    log.With().Str("component", "http").Logger(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/reset":
		h.handleReset(w, r)
	case "/api/load":
		h.handleLoad(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/undo":
		h.handleUndo(w, r)
	case "/api/ai_move":
		h.handleAiMove(w, r)
	case "/api/result":
		h.handleResult(w, r)
	case "/api/legal_moves":
		h.handleLegalMoves(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// An empty body starts from the initial position.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, r, errBadRequest{err})
		return
	}
	v, err := h.games.NewGame(req.FEN)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.log.Info().Str("game_id", v.ID).Msg("new game")
	h.writeJSON(w, viewToDTO(v))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !h.decode(w, r, &req) {
		return
	}
	respondView(h, w, r, viewToDTO)(h.games.State(req.GameID))
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !h.decode(w, r, &req) {
		return
	}
	respondView(h, w, r, viewToDTO)(h.games.Reset(req.GameID))
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req LoadRequest
	if !h.decode(w, r, &req) {
		return
	}
	respondView(h, w, r, viewToDTO)(h.games.Load(req.GameID, req.FEN))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !h.decode(w, r, &req) {
		return
	}
	respondView(h, w, r, viewToDTO)(h.games.Play(req.GameID, req.Move))
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !h.decode(w, r, &req) {
		return
	}
	respondView(h, w, r, viewToDTO)(h.games.Undo(req.GameID))
}

func (h *Handler) handleResult(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !h.decode(w, r, &req) {
		return
	}
	respondView(h, w, r, resultToDTO)(h.games.State(req.GameID))
}

func (h *Handler) handleLegalMoves(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !h.decode(w, r, &req) {
		return
	}
	respondView(h, w, r, func(v game.View) LegalMovesResponse {
		return LegalMovesResponse{GameID: v.ID, Count: len(v.LegalMoves), Moves: movesToDTO(v.LegalMoves)}
	})(h.games.State(req.GameID))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if !h.decode(w, r, &req) {
		return
	}
	cfg, err := h.searchConfig(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var res engine.SearchResult
	v, err := h.games.Do(req.GameID, func(pos *chess.Position) error {
		if result := pos.Result(); result.IsOver() {
			return fmt.Errorf("%w: %s", game.ErrGameOver, result)
		}
		var err error
		if res, err = h.engine.Search(pos, cfg); err != nil {
			return err
		}
		if req.Apply {
			return pos.ApplyMove(res.BestMove)
		}
		return nil
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, AiMoveResponse{
		BestMove: res.BestMove.String(),
		Score:    res.Score,
		Nodes:    res.Nodes,
		TimeMs:   res.TimeUsed.Milliseconds(),
		Scores:   scoresToDTO(res.Scores),
		State:    viewToDTO(v),
	})
}

// searchConfig overlays the request's non-zero fields on the server default.
func (h *Handler) searchConfig(req AiMoveRequest) (engine.SearchConfig, error) {
	cfg := h.cfg
	if req.Strategy != "" {
		s, err := engine.ParseStrategy(req.Strategy)
		if err != nil {
			return cfg, errBadRequest{err}
		}
		cfg.Strategy = s
	}
	if req.Simulations > 0 {
		cfg.Simulations = req.Simulations
	}
	if req.Exploration > 0 {
		cfg.Exploration = req.Exploration
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	}
	return cfg, nil
}

// respondView returns a callback that writes either the converted view or
// the error.
func respondView[T any](h *Handler, w http.ResponseWriter, r *http.Request, conv func(game.View) T) func(game.View, error) {
	return func(v game.View, err error) {
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, conv(v))
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeError(w, r, errBadRequest{err})
		return false
	}
	return true
}

type errBadRequest struct{ err error }

func (e errBadRequest) Error() string { return "bad request: " + e.err.Error() }
func (e errBadRequest) Unwrap() error { return e.err }

func statusOf(err error) int {
	var bad errBadRequest
	switch {
	case errors.As(err, &bad),
		errors.Is(err, chess.ErrInvalidFEN),
		errors.Is(err, chess.ErrIllegalMove),
		errors.Is(err, chess.ErrInvalidMove),
		errors.Is(err, game.ErrNothingToUndo):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrNoLegalMoves),
		errors.Is(err, game.ErrGameOver):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusOf(err)
	ev := h.log.Warn()
	if code == http.StatusInternalServerError {
		ev = h.log.Error()
	}
	ev.Err(err).Str("path", r.URL.Path).Int("status", code).Msg("request failed")

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("writeJSON")
	}
}
