package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"hugo/internal/chess"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrGameOver      = errors.New("game is over")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame starts a session from fen, or from the initial position when fen
// is empty.
func (m *Manager) NewGame(fen string) (View, error) {
	pos := chess.NewInitialPosition()
	if fen != "" {
		var err error
		if pos, err = chess.ParseFEN(fen); err != nil {
			return View{}, err
		}
	}

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       pos,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.view(), nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Do runs fn with exclusive access to the game's position and returns the
// resulting view. The position is marked updated only when fn succeeds.
func (m *Manager) Do(id string, fn func(pos *chess.Position) error) (View, error) {
	g, err := m.Get(id)
	if err != nil {
		return View{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if fn != nil {
		if err := fn(g.Pos); err != nil {
			return View{}, err
		}
		g.UpdatedAt = time.Now()
	}
	return g.view(), nil
}

func (m *Manager) State(id string) (View, error) {
	return m.Do(id, nil)
}

// Reset puts the game back at the initial position.
func (m *Manager) Reset(id string) (View, error) {
	return m.Do(id, func(pos *chess.Position) error {
		return pos.SetFEN(chess.StartFEN)
	})
}

// Load replaces the position. On a bad FEN the game is unchanged.
func (m *Manager) Load(id, fen string) (View, error) {
	return m.Do(id, func(pos *chess.Position) error {
		return pos.SetFEN(fen)
	})
}

// Play applies a move given in coordinate notation.
func (m *Manager) Play(id, move string) (View, error) {
	return m.Do(id, func(pos *chess.Position) error {
		if r := pos.Result(); r.IsOver() {
			return fmt.Errorf("%w: %s", ErrGameOver, r)
		}
		mv, err := chess.ParseMove(pos, move)
		if err != nil {
			return err
		}
		return pos.ApplyMove(mv)
	})
}

func (m *Manager) Undo(id string) (View, error) {
	return m.Do(id, func(pos *chess.Position) error {
		if pos.Depth() == 0 {
			return ErrNothingToUndo
		}
		pos.UnmakeMove()
		return nil
	})
}
