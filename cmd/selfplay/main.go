package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"hugo/internal/chess"
	"hugo/internal/engine"
)

func main() {
	fen := flag.String("fen", chess.StartFEN, "starting position")
	sims := flag.Int("sims", 2000, "simulations per move")
	workers := flag.Int("workers", 0, "root tasks in flight (0: GOMAXPROCS)")
	maxDepth := flag.Int("max-depth", 200, "playout depth / rollout length bound")
	maxMoves := flag.Int("maxmoves", 200, "max plies to play per game")
	games := flag.Int("games", 1, "games to play; more than one runs a playout-vs-mcts match")
	seed := flag.Uint64("seed", 1, "base search seed")
	debug := flag.Bool("debug", false, "log engine details")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	start, err := chess.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -fen")
	}

	e := engine.NewEngine(log.Level(zerolog.WarnLevel))
	if *debug {
		e = engine.NewEngine(log)
	}
	base := engine.SearchConfig{
		Simulations: *sims,
		Workers:     *workers,
		MaxDepth:    *maxDepth,
		Seed:        *seed,
	}

	playout := base
	playout.Strategy = engine.StrategyPlayout
	uct := base
	uct.Strategy = engine.StrategyMCTS
	players := [2]PlayerConfig{
		{Name: fmt.Sprintf("playout (%d sims)", *sims), Cfg: playout},
		{Name: fmt.Sprintf("mcts (%d sims)", *sims), Cfg: uct},
	}

	if *games <= 1 {
		pos := start.Copy()
		res := playGame(e, pos, players[1], players[1], *maxMoves, log)
		fmt.Println(pos)
		fmt.Printf("Result: %s\nFEN: %s\n", res, pos.FEN())
		return
	}
	runMatch(e, start, players, *games, *maxMoves, log)
}
