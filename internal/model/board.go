package model

// Board is the 8x8 grid of owned, nullable slots. A piece lives in exactly
// one slot; moving it transfers the pointer and capturing drops the old one.
type Board struct {
	squares [BoardSize][BoardSize]*Piece
}

var backRankOrder = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns a board set up in the standard starting position.
func NewBoard() *Board {
	board := &Board{}
	for file := 0; file < BoardSize; file++ {
		board.Place(Square{File: file, Rank: 0}, NewPiece(backRankOrder[file], Black))
		board.Place(Square{File: file, Rank: 1}, NewPiece(Pawn, Black))
		board.Place(Square{File: file, Rank: 6}, NewPiece(Pawn, White))
		board.Place(Square{File: file, Rank: 7}, NewPiece(backRankOrder[file], White))
	}
	return board
}

// NewEmptyBoard returns a board with no pieces on it.
func NewEmptyBoard() *Board {
	return &Board{}
}

func OnBoard(sq Square) bool {
	return sq.OnBoard()
}

func (b *Board) OnBoard(sq Square) bool {
	return sq.OnBoard()
}

// Occupant returns the piece on sq, or nil for an empty or off-board square.
func (b *Board) Occupant(sq Square) *Piece {
	if !sq.OnBoard() {
		return nil
	}
	return b.squares[sq.Rank][sq.File]
}

// Place puts p on sq, dropping whatever occupied it before.
func (b *Board) Place(sq Square, p *Piece) {
	b.squares[sq.Rank][sq.File] = p
}

// Remove empties sq and hands its occupant to the caller.
func (b *Board) Remove(sq Square) *Piece {
	p := b.squares[sq.Rank][sq.File]
	b.squares[sq.Rank][sq.File] = nil
	return p
}

// Relocate moves the occupant of from onto to, destroying any piece already
// there. The destroyed piece is returned so callers can record the capture.
func (b *Board) Relocate(from, to Square) *Piece {
	captured := b.Remove(to)
	b.Place(to, b.Remove(from))
	return captured
}

func (b *Board) isEmpty(sq Square) bool {
	return b.Occupant(sq) == nil
}

func (b *Board) holdsEnemy(sq Square, color Color) bool {
	p := b.Occupant(sq)
	return p != nil && p.Color != color
}

// emptyOrEnemy is the landing rule shared by knights, kings and sliders.
func (b *Board) emptyOrEnemy(sq Square, color Color) bool {
	return sq.OnBoard() && (b.isEmpty(sq) || b.holdsEnemy(sq, color))
}

// Squares calls fn for each occupied square, rank by rank.
func (b *Board) Squares(fn func(sq Square, p *Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.squares[rank][file]; p != nil {
				fn(Square{File: file, Rank: rank}, p)
			}
		}
	}
}

// Grid copies the occupants into a value grid suitable for rendering.
func (b *Board) Grid() [][]*Piece {
	grid := make([][]*Piece, BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		grid[rank] = make([]*Piece, BoardSize)
		for file := 0; file < BoardSize; file++ {
			if p := b.squares[rank][file]; p != nil {
				cp := *p
				grid[rank][file] = &cp
			}
		}
	}
	return grid
}
