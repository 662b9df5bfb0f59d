package httpserver

import (
	"hugo/internal/chess"
	"hugo/internal/engine"
	"hugo/internal/server/game"
)

// NewGameRequest may carry a starting FEN; empty means the initial position.
type NewGameRequest struct {
	FEN string `json:"fen"`
}

// GameRequest is the body of every call that only names a game.
type GameRequest struct {
	GameID string `json:"game_id"`
}

type LoadRequest struct {
	GameID string `json:"game_id"`
	FEN    string `json:"fen"`
}

// PlayRequest carries a move in coordinate notation, e.g. "e2e4" or "e7e8q".
type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}

// AiMoveRequest asks the engine for a move. Zero fields fall back to the
// server's search configuration. With Apply set the move is also played.
type AiMoveRequest struct {
	GameID      string  `json:"game_id"`
	Strategy    string  `json:"strategy"`
	Simulations int     `json:"simulations"`
	Exploration float64 `json:"exploration"`
	Seed        *uint64 `json:"seed"`
	Apply       bool    `json:"apply"`
}

type StateResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"`
	ToMove     string   `json:"to_move"`
	Ply        int      `json:"ply"`
	InCheck    bool     `json:"in_check"`
	LastMove   string   `json:"last_move,omitempty"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"`
}

type RootScoreDTO struct {
	Move        string  `json:"move"`
	Score       float64 `json:"score"`
	Simulations int     `json:"simulations"`
	Immediate   bool    `json:"immediate"`
}

type AiMoveResponse struct {
	BestMove string         `json:"best_move"`
	Score    float64        `json:"score"`
	Nodes    int64          `json:"nodes"`
	TimeMs   int64          `json:"time_ms"`
	Scores   []RootScoreDTO `json:"scores"`
	State    StateResponse  `json:"state"`
}

type ResultResponse struct {
	GameID  string `json:"game_id"`
	Over    bool   `json:"over"`
	Outcome string `json:"outcome"`
	Reason  string `json:"reason,omitempty"`
	Winner  string `json:"winner,omitempty"`
}

type LegalMovesResponse struct {
	GameID string   `json:"game_id"`
	Count  int      `json:"count"`
	Moves  []string `json:"moves"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func movesToDTO(ms []chess.Move) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}

func status(r chess.Result) string {
	if !r.IsOver() {
		return "ongoing"
	}
	return r.String()
}

func viewToDTO(v game.View) StateResponse {
	resp := StateResponse{
		GameID:     v.ID,
		Position:   v.FEN,
		ToMove:     v.SideToMove.String(),
		Ply:        v.Ply,
		InCheck:    v.InCheck,
		LegalMoves: movesToDTO(v.LegalMoves),
		Status:     status(v.Result),
	}
	if v.LastMove != chess.NoMove {
		resp.LastMove = v.LastMove.String()
	}
	return resp
}

func resultToDTO(v game.View) ResultResponse {
	resp := ResultResponse{
		GameID:  v.ID,
		Over:    v.Result.IsOver(),
		Outcome: v.Result.Outcome.String(),
		Reason:  v.Result.Reason.String(),
	}
	if w := v.Result.Winner(); w != chess.NoSide {
		resp.Winner = w.String()
	}
	return resp
}

func scoresToDTO(ss []engine.RootScore) []RootScoreDTO {
	out := make([]RootScoreDTO, len(ss))
	for i, s := range ss {
		out[i] = RootScoreDTO{
			Move:        s.Move.String(),
			Score:       s.Score,
			Simulations: s.Simulations,
			Immediate:   s.Immediate,
		}
	}
	return out
}
