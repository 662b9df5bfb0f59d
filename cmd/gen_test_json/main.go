package main

import (
	"encoding/json"
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"

	"hugo/internal/chess"
)

// TestCase is one position of a random game with its legal moves, for
// checking other move generators against this one.
type TestCase struct {
	FEN        string   `json:"fen"`
	LegalMoves []string `json:"legal_moves"`
	InCheck    bool     `json:"in_check"`
	Result     string   `json:"result"`
}

func main() {
	numGames := flag.Int("games", 10, "random games to record")
	maxMoves := flag.Int("maxmoves", 500, "ply cap per game")
	seed := flag.Uint64("seed", 1, "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	rng := rand.New(rand.NewPCG(*seed, 0))
	var testCases []TestCase

	for g := 0; g < *numGames; g++ {
		pos := chess.NewInitialPosition()
		for moveCount := 0; moveCount < *maxMoves; moveCount++ {
			legal := pos.GenerateLegalMoves()
			r := pos.Result()
			tc := TestCase{
				FEN:        pos.FEN(),
				LegalMoves: make([]string, len(legal)),
				InCheck:    pos.InCheck(),
				Result:     r.String(),
			}
			for i, mv := range legal {
				tc.LegalMoves[i] = mv.String()
			}
			testCases = append(testCases, tc)
			if r.IsOver() {
				break
			}
			if err := pos.ApplyMove(legal[rng.IntN(len(legal))]); err != nil {
				log.Fatal().Err(err).Int("game", g).Str("fen", pos.FEN()).Msg("apply move")
			}
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode test cases")
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		log.Fatal().Err(err).Str("out", *out).Msg("write test cases")
	}
	log.Info().
		Int("cases", len(testCases)).
		Int("games", *numGames).
		Str("out", *out).
		Msg("generated test cases")
}
