package chess

import (
	"fmt"
	"strings"
)

// ParseMove resolves coordinate notation ("e2e4", "b7b8q") against the
// pseudo-legal moves of p. A promotion without a piece letter is rejected.
func ParseMove(p *Position, s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	if _, err := ParseSquare(s[0:2]); err != nil {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	if _, err := ParseSquare(s[2:4]); err != nil {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	if len(s) == 5 && strings.IndexByte("qrbn", s[4]) < 0 {
		return NoMove, fmt.Errorf("%w: promotion piece in %q", ErrInvalidMove, s)
	}
	if p.sideToMove == NoSide {
		return NoMove, fmt.Errorf("%w: %s", ErrIllegalMove, s)
	}
	for _, mv := range p.GeneratePseudoMoves() {
		if mv.String() == s {
			return mv, nil
		}
	}
	return NoMove, fmt.Errorf("%w: %s", ErrIllegalMove, s)
}
