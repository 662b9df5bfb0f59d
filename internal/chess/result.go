package chess

type Outcome int8

const (
	Ongoing Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

type Reason int8

const (
	ReasonNone Reason = iota
	ReasonCheckmate
	ReasonStalemate
	ReasonFiftyMove
	ReasonRepetition
	ReasonInsufficientMaterial
)

func (r Reason) String() string {
	switch r {
	case ReasonCheckmate:
		return "checkmate"
	case ReasonStalemate:
		return "stalemate"
	case ReasonFiftyMove:
		return "fifty move rule"
	case ReasonRepetition:
		return "3-fold repetition"
	case ReasonInsufficientMaterial:
		return "insufficient material"
	}
	return ""
}

type Result struct {
	Outcome Outcome
	Reason  Reason
}

func (r Result) IsOver() bool { return r.Outcome != Ongoing }

// Winner returns the winning side, or NoSide for draws and ongoing games.
func (r Result) Winner() Side {
	switch r.Outcome {
	case WhiteWins:
		return White
	case BlackWins:
		return Black
	}
	return NoSide
}

// ScoreFor maps a finished game to 1, 0 or 0.5 from side's point of view.
func (r Result) ScoreFor(side Side) float64 {
	switch r.Winner() {
	case side:
		return 1.0
	case NoSide:
		return 0.5
	}
	return 0.0
}

func (r Result) String() string {
	if r.Outcome == Ongoing {
		return "ongoing"
	}
	return r.Outcome.String() + " " + r.Reason.String()
}

const fiftyMoveLimit = 100

// Result classifies the position. The checks run in a fixed order and the
// first that applies decides.
func (p *Position) Result() Result {
	if p.halfmoveClock > fiftyMoveLimit {
		return Result{Draw, ReasonFiftyMove}
	}
	if p.RepetitionCount() >= 2 {
		return Result{Draw, ReasonRepetition}
	}
	if p.InsufficientMaterial() {
		return Result{Draw, ReasonInsufficientMaterial}
	}
	if p.HasLegalMove() {
		return Result{}
	}
	if p.InCheck() {
		if p.sideToMove == White {
			return Result{BlackWins, ReasonCheckmate}
		}
		return Result{WhiteWins, ReasonCheckmate}
	}
	return Result{Draw, ReasonStalemate}
}

// RepetitionCount returns how many earlier positions of the game share the
// current fingerprint. Only snapshots since the last irreversible move can
// match, so the scan stops at the halfmove clock.
func (p *Position) RepetitionCount() int {
	n := len(p.history)
	start := n - p.halfmoveClock
	if start < 0 {
		start = 0
	}
	count := 0
	for i := start; i < n; i++ {
		if p.history[i].hash == p.hash {
			count++
		}
	}
	return count
}

// InsufficientMaterial reports positions where neither side can force mate:
// no pawns, rooks or queens, and each side has at most a single minor piece.
func (p *Position) InsufficientMaterial() bool {
	c := &p.pieceCount
	if c[WhitePawn] != 0 || c[BlackPawn] != 0 {
		return false
	}
	if c[WhiteQueen] != 0 || c[BlackQueen] != 0 || c[WhiteRook] != 0 || c[BlackRook] != 0 {
		return false
	}
	if c[WhiteBishop] > 1 || c[BlackBishop] > 1 || c[WhiteKnight] > 1 || c[BlackKnight] > 1 {
		return false
	}
	if c[WhiteKnight] != 0 && c[WhiteBishop] != 0 {
		return false
	}
	if c[BlackKnight] != 0 && c[BlackBishop] != 0 {
		return false
	}
	return true
}
