package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"hugo/internal/chess"
	"hugo/internal/engine"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

// runMatch plays games between the two players, swapping colours every game.
func runMatch(e *engine.Engine, start *chess.Position, players [2]PlayerConfig, games, maxMoves int, log zerolog.Logger) {
	var wins [2]int
	draws := 0

	for g := 0; g < games; g++ {
		white, black := 0, 1
		if g%2 == 1 {
			white, black = 1, 0
		}
		fmt.Printf("\n=== Game %d: White [%s] vs Black [%s] ===\n", g+1, players[white].Name, players[black].Name)

		pos := start.Copy()
		res := playGame(e, pos, players[white], players[black], maxMoves, log)
		switch res.Winner() {
		case chess.White:
			wins[white]++
			fmt.Printf("Result: %s wins (%s)\n", players[white].Name, res)
		case chess.Black:
			wins[black]++
			fmt.Printf("Result: %s wins (%s)\n", players[black].Name, res)
		default:
			draws++
			fmt.Printf("Result: draw (%s)\n", res)
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", players[0].Name, wins[0])
	fmt.Printf("%s: %d\n", players[1].Name, wins[1])
	fmt.Printf("Draws: %d\n", draws)
}

// playGame plays from pos until the game ends or maxMoves plies pass. An
// unfinished game is reported as ongoing.
func playGame(e *engine.Engine, pos *chess.Position, white, black PlayerConfig, maxMoves int, log zerolog.Logger) chess.Result {
	for i := 0; i < maxMoves; i++ {
		if r := pos.Result(); r.IsOver() {
			return r
		}
		p := white
		if pos.SideToMove() == chess.Black {
			p = black
		}
		cfg := p.Cfg
		cfg.Seed += uint64(pos.Ply())

		res, err := e.Search(pos, cfg)
		if err != nil {
			log.Error().Err(err).Msg("search failed")
			return pos.Result()
		}
		log.Info().
			Int("ply", pos.Ply()+1).
			Str("side", pos.SideToMove().String()).
			Str("move", res.BestMove.String()).
			Float64("score", res.Score).
			Int64("nodes", res.Nodes).
			Dur("elapsed", res.TimeUsed).
			Msg(p.Name)

		if err := pos.ApplyMove(res.BestMove); err != nil {
			log.Fatal().Err(err).Str("fen", pos.FEN()).Msg("engine returned an illegal move")
		}
	}
	return pos.Result()
}
