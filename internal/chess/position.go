package chess

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the authoritative mutable game state. It is only changed
// through SetFEN, MakeMove and UnmakeMove; every exported accessor observes a
// consistent state.
type Position struct {
	board         Board
	sideToMove    Side
	castling      CastlingRights
	enPassant     Square
	halfmoveClock int
	ply           int
	kingSquare    [2]Square
	pieceCount    [NumPieces]int
	hash          uint64

	history []undo
	keys    *ZobristKeys
}

// undo holds everything MakeMove overwrites that cannot be recovered from the
// move itself.
type undo struct {
	move          Move
	castling      CastlingRights
	enPassant     Square
	halfmoveClock int
	hash          uint64
	kingSquare    [2]Square
}

// NewPosition returns an empty position using the process-wide key tables.
func NewPosition() *Position {
	return NewPositionWithKeys(DefaultKeys())
}

func NewPositionWithKeys(keys *ZobristKeys) *Position {
	if keys == nil {
		keys = DefaultKeys()
	}
	p := &Position{keys: keys}
	p.reset()
	return p
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *Position {
	p := NewPosition()
	if err := p.SetFEN(StartFEN); err != nil {
		panic("chess: start position does not parse: " + err.Error())
	}
	return p
}

func (p *Position) reset() {
	p.board.reset()
	p.sideToMove = NoSide
	p.castling = NoCastling
	p.enPassant = NoSquare
	p.halfmoveClock = 0
	p.ply = 0
	p.kingSquare = [2]Square{NoSquare, NoSquare}
	p.pieceCount = [NumPieces]int{}
	p.hash = 0
	p.history = p.history[:0]
}

// Copy returns a fully independent position, history included. Key tables
// are read-only and shared.
func (p *Position) Copy() *Position {
	np := *p
	np.history = make([]undo, len(p.history), len(p.history)+64)
	copy(np.history, p.history)
	return &np
}

func (p *Position) Keys() *ZobristKeys { return p.keys }

func (p *Position) Piece(sq Square) Piece {
	if !sq.inRange() {
		return OffBoard
	}
	return p.board.Squares[sq]
}

func (p *Position) SideToMove() Side            { return p.sideToMove }
func (p *Position) Castling() CastlingRights    { return p.castling }
func (p *Position) EnPassant() Square           { return p.enPassant }
func (p *Position) HalfmoveClock() int          { return p.halfmoveClock }
func (p *Position) Ply() int                    { return p.ply }
func (p *Position) Hash() uint64                { return p.hash }
func (p *Position) PieceCount(pc Piece) int     { return p.pieceCount[pc] }
func (p *Position) KingSquare(side Side) Square { return p.kingSquare[side] }
func (p *Position) Depth() int                  { return len(p.history) }

// LastMove returns the most recently made move, or NoMove.
func (p *Position) LastMove() Move {
	if len(p.history) == 0 {
		return NoMove
	}
	return p.history[len(p.history)-1].move
}

// InCheck reports whether the side to move has its king attacked.
func (p *Position) InCheck() bool {
	if p.sideToMove == NoSide {
		return false
	}
	return p.IsInCheck(p.sideToMove)
}

// recount rebuilds the piece counters and king squares from the board.
func (p *Position) recount() {
	p.pieceCount = [NumPieces]int{}
	p.kingSquare = [2]Square{NoSquare, NoSquare}
	for _, sq := range sq64To120 {
		pc := p.board.Squares[sq]
		if !pc.IsValid() {
			continue
		}
		p.pieceCount[pc]++
		if pc.Type() == King {
			p.kingSquare[pc.Side()] = sq
		}
	}
}

func (p *Position) addPiece(sq Square, pc Piece) {
	p.board.Squares[sq] = pc
	p.pieceCount[pc]++
	p.hash ^= p.keys.pieces[pc][sq]
}

func (p *Position) clearPiece(sq Square) {
	pc := p.board.Squares[sq]
	invariant(pc.IsValid(), "clear of %s on %s", pc, sq)
	p.board.Squares[sq] = Empty
	p.pieceCount[pc]--
	p.hash ^= p.keys.pieces[pc][sq]
}

func (p *Position) movePiece(from, to Square) {
	pc := p.board.Squares[from]
	invariant(pc.IsValid(), "move of %s from %s", pc, from)
	invariant(p.board.Squares[to] == Empty, "move onto occupied %s", to)
	p.board.Squares[from] = Empty
	p.board.Squares[to] = pc
	p.hash ^= p.keys.pieces[pc][from] ^ p.keys.pieces[pc][to]
}
