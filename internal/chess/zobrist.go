package chess

import (
	"math/rand/v2"
	"sync"
)

// ZobristKeys holds the random fingerprint tables. The Empty row of pieces
// doubles as the en-passant key table. Tables are never mutated after
// construction, so one instance may be shared by any number of positions.
type ZobristKeys struct {
	pieces   [NumPieces][NumSquares]uint64
	castling [16]uint64
	side     uint64
}

var (
	defaultKeysOnce sync.Once
	defaultKeys     *ZobristKeys
)

// DefaultKeys returns the process-lifetime key tables, generated on first use.
func DefaultKeys() *ZobristKeys {
	defaultKeysOnce.Do(func() {
		defaultKeys = NewZobristKeys(rand.Uint64(), rand.Uint64())
	})
	return defaultKeys
}

// NewZobristKeys builds a table set from a PCG seed. Equal seeds give equal
// tables.
func NewZobristKeys(seed1, seed2 uint64) *ZobristKeys {
	rng := rand.New(rand.NewPCG(seed1, seed2))
	k := &ZobristKeys{}
	for pc := 0; pc < NumPieces; pc++ {
		for sq := 0; sq < NumSquares; sq++ {
			k.pieces[pc][sq] = rng.Uint64()
		}
	}
	k.side = rng.Uint64()
	for i := range k.castling {
		k.castling[i] = rng.Uint64()
	}
	return k
}

func (k *ZobristKeys) enPassantKey(sq Square) uint64 { return k.pieces[Empty][sq] }

// CalculateHash recomputes the fingerprint from scratch. MakeMove maintains
// the same value incrementally.
func (p *Position) CalculateHash() uint64 {
	var h uint64
	for _, sq := range sq64To120 {
		pc := p.board.Squares[sq]
		if !pc.IsValid() {
			continue
		}
		h ^= p.keys.pieces[pc][sq]
	}
	if p.sideToMove == White {
		h ^= p.keys.side
	}
	if p.enPassant != NoSquare {
		invariant(p.enPassant.OnBoard(), "en passant square %d", p.enPassant)
		h ^= p.keys.enPassantKey(p.enPassant)
	}
	invariant(p.castling <= AllCastling, "castling rights %d", p.castling)
	h ^= p.keys.castling[p.castling]
	return h
}
