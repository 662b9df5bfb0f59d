package game

import (
	"sync"
	"time"

	"hugo/internal/chess"
)

// GameState is one session. Pos is guarded by mu; go through the Manager
// rather than touching it directly.
type GameState struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu  sync.Mutex
	Pos *chess.Position
}

// View is a read-only summary of a game at one point in time.
type View struct {
	ID         string
	FEN        string
	SideToMove chess.Side
	Ply        int
	InCheck    bool
	LastMove   chess.Move
	LegalMoves []chess.Move
	Result     chess.Result
}

// view must be called with g.mu held.
func (g *GameState) view() View {
	return View{
		ID:         g.ID,
		FEN:        g.Pos.FEN(),
		SideToMove: g.Pos.SideToMove(),
		Ply:        g.Pos.Ply(),
		InCheck:    g.Pos.InCheck(),
		LastMove:   g.Pos.LastMove(),
		LegalMoves: g.Pos.GenerateLegalMoves(),
		Result:     g.Pos.Result(),
	}
}
