package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"hugo/internal/chess"
)

func main() {
	fen := flag.String("fen", chess.StartFEN, "position to inspect")
	depth := flag.Int("perft", 0, "run perft to this depth")
	divide := flag.Bool("divide", false, "print perft counts per root move")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	pos, err := chess.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Str("fen", *fen).Msg("bad -fen")
	}
	fmt.Println(pos)
	fmt.Println("FEN:", pos.FEN())
	fmt.Println("Pseudo legal moves:", len(pos.GeneratePseudoMoves()))
	legal := pos.GenerateLegalMoves()
	fmt.Println("Legal moves:", len(legal))
	fmt.Println("Result:", pos.Result())

	if *depth <= 0 {
		return
	}
	start := time.Now()
	var total uint64
	if *divide {
		for _, mv := range legal {
			pos.MakeMove(mv)
			n := pos.Perft(*depth - 1)
			pos.UnmakeMove()
			fmt.Printf("%s: %d\n", mv, n)
			total += n
		}
	} else {
		total = pos.Perft(*depth)
	}
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %v (%.0f nps)\n", *depth, total, elapsed, float64(total)/elapsed.Seconds())
}
