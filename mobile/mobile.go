// Package mobile exposes the HTTP API through a gomobile-friendly surface:
// only strings, ints and errors cross the boundary.
package mobile

import (
	"errors"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"hugo/internal/engine"
	"hugo/internal/server/game"
	httpserver "hugo/internal/server/http"
)

var ErrRunning = errors.New("server already running")

var (
	mu  sync.Mutex
	srv *http.Server
)

// StartServer listens on 127.0.0.1:port in the background and returns the
// bound address. Port "0" picks a free port. strategy is "playout" or
// "mcts"; sims is the per-move simulation budget.
func StartServer(port string, strategy string, sims int) (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if srv != nil {
		return "", ErrRunning
	}

	s, err := engine.ParseStrategy(strategy)
	if err != nil {
		return "", err
	}
	cfg := engine.DefaultSearchConfig()
	cfg.Strategy = s
	cfg.Simulations = sims
	cfg.Seed = uint64(time.Now().UnixNano())

	ln, err := net.Listen("tcp", "127.0.0.1:"+port)
	if err != nil {
		return "", err
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Str("app", "hugo-mobile").Logger()
	h := httpserver.NewHandler(game.NewManager(), engine.NewEngine(log), cfg, log)
	srv = &http.Server{Handler: httpserver.NewRouter(h, log), ReadHeaderTimeout: 10 * time.Second}

	// Serve in the background so the caller's UI thread is not blocked.
	go func(s *http.Server) {
		if err := s.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
	}(srv)
	return ln.Addr().String(), nil
}

// StopServer shuts the server down. It is a no-op when nothing runs.
func StopServer() error {
	mu.Lock()
	defer mu.Unlock()
	if srv == nil {
		return nil
	}
	err := srv.Close()
	srv = nil
	return err
}
