package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"hugo/internal/engine"
	"hugo/internal/server/game"
	httpserver "hugo/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	strategy := flag.String("strategy", "mcts", "search strategy: playout or mcts")
	sims := flag.Int("sims", 5000, "simulations per engine move, shared by the root moves")
	workers := flag.Int("workers", 0, "root tasks in flight (0: GOMAXPROCS)")
	exploration := flag.Float64("c", 1.0, "UCB1 exploration constant")
	maxDepth := flag.Int("max-depth", 400, "playout depth / rollout length bound")
	seed := flag.Uint64("seed", 0, "search seed (0: derive from the clock)")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	s, err := engine.ParseStrategy(*strategy)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -strategy")
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	cfg := engine.SearchConfig{
		Strategy:    s,
		Simulations: *sims,
		Workers:     *workers,
		Exploration: *exploration,
		Seed:        *seed,
		MaxDepth:    *maxDepth,
	}

	h := httpserver.NewHandler(game.NewManager(), engine.NewEngine(log), cfg, log)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpserver.NewRouter(h, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", *addr).Str("strategy", s.String()).Int("sims", *sims).Msg("listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
