package model

var (
	rookDirs   = []Square{{File: 1, Rank: 0}, {File: -1, Rank: 0}, {File: 0, Rank: 1}, {File: 0, Rank: -1}}
	bishopDirs = []Square{{File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: 1}, {File: -1, Rank: -1}}
	queenDirs  = append(append([]Square{}, rookDirs...), bishopDirs...)
	knightDirs = []Square{{File: 1, Rank: 2}, {File: 1, Rank: -2}, {File: -1, Rank: 2}, {File: -1, Rank: -2}, {File: 2, Rank: 1}, {File: 2, Rank: -1}, {File: -2, Rank: 1}, {File: -2, Rank: -1}}
	kingDirs   = queenDirs
)

const (
	queenSideRookFile = 0
	kingSideRookFile  = BoardSize - 1
)

// PseudoLegalMoves returns the destinations the occupant of from could reach
// by its movement pattern alone. It does not consider whether the move leaves
// the mover's own king in check. An empty square yields no moves.
func PseudoLegalMoves(b *Board, from Square) []Square {
	piece := b.Occupant(from)
	if piece == nil {
		return nil
	}
	switch piece.Kind {
	case Pawn:
		return pawnMoves(b, from, piece)
	case Rook:
		return slidingMoves(b, from, piece, rookDirs)
	case Bishop:
		return slidingMoves(b, from, piece, bishopDirs)
	case Queen:
		return slidingMoves(b, from, piece, queenDirs)
	case Knight:
		return steppingMoves(b, from, piece, knightDirs)
	case King:
		return append(steppingMoves(b, from, piece, kingDirs), castlingMoves(b, from, piece)...)
	default:
		return nil
	}
}

func pawnMoves(b *Board, from Square, piece *Piece) []Square {
	moves := []Square{}
	dir := piece.Color.pawnDirection()

	oneStep := from.offset(0, dir)
	if oneStep.OnBoard() && b.isEmpty(oneStep) {
		moves = append(moves, oneStep)
		twoStep := from.offset(0, 2*dir)
		if from.Rank == piece.Color.pawnStartRank() && twoStep.OnBoard() && b.isEmpty(twoStep) {
			moves = append(moves, twoStep)
		}
	}
	// captures only
	for _, df := range []int{-1, 1} {
		target := from.offset(df, dir)
		if target.OnBoard() && b.holdsEnemy(target, piece.Color) {
			moves = append(moves, target)
		}
	}
	return moves
}

// slidingMoves walks each ray outward, keeping empty squares and the first
// occupied square only when it holds an enemy.
func slidingMoves(b *Board, from Square, piece *Piece, dirs []Square) []Square {
	moves := []Square{}
	for _, dir := range dirs {
		target := from.offset(dir.File, dir.Rank)
		for target.OnBoard() {
			if b.isEmpty(target) {
				moves = append(moves, target)
			} else {
				if b.holdsEnemy(target, piece.Color) {
					moves = append(moves, target)
				}
				break
			}
			target = target.offset(dir.File, dir.Rank)
		}
	}
	return moves
}

func steppingMoves(b *Board, from Square, piece *Piece, offsets []Square) []Square {
	moves := []Square{}
	for _, off := range offsets {
		target := from.offset(off.File, off.Rank)
		if b.emptyOrEnemy(target, piece.Color) {
			moves = append(moves, target)
		}
	}
	return moves
}

// castlingMoves returns the king's castling destinations. Only the king's
// final square is later filtered for check; transit squares are not tested.
func castlingMoves(b *Board, from Square, king *Piece) []Square {
	if !king.unmovedCastlingPiece(King) {
		return nil
	}
	moves := []Square{}
	if canCastle(b, from, king.Color, queenSideRookFile) {
		if dest := from.offset(-2, 0); dest.OnBoard() {
			moves = append(moves, dest)
		}
	}
	if canCastle(b, from, king.Color, kingSideRookFile) {
		if dest := from.offset(2, 0); dest.OnBoard() {
			moves = append(moves, dest)
		}
	}
	return moves
}

func canCastle(b *Board, kingSq Square, color Color, rookFile int) bool {
	rook := b.Occupant(Square{File: rookFile, Rank: kingSq.Rank})
	if !rook.unmovedCastlingPiece(Rook) || rook.Color != color {
		return false
	}
	step := 1
	if rookFile < kingSq.File {
		step = -1
	}
	for file := kingSq.File + step; file != rookFile; file += step {
		if !b.isEmpty(Square{File: file, Rank: kingSq.Rank}) {
			return false
		}
	}
	return true
}

// isCastlingMove reports whether a king travelling from -> to is castling.
func isCastlingMove(piece *Piece, from, to Square) bool {
	return piece.Kind == King && from.Rank == to.Rank && abs(to.File-from.File) == 2
}

// castlingRookSquares returns where the castling rook starts and lands for a
// king arriving on kingTo.
func castlingRookSquares(kingFrom, kingTo Square) (Square, Square) {
	if kingTo.File < kingFrom.File {
		return Square{File: queenSideRookFile, Rank: kingTo.Rank}, kingTo.offset(1, 0)
	}
	return Square{File: kingSideRookFile, Rank: kingTo.Rank}, kingTo.offset(-1, 0)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
