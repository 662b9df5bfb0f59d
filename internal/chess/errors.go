package chess

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrIllegalMove = errors.New("illegal move")
	ErrInvalidMove = errors.New("invalid move notation")
)

// invariant panics when cond is false. It guards conditions that only a
// programming error or a corrupted position can break.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("chess: invariant violated: "+format, args...))
	}
}
