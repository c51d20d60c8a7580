package model

import "fmt"

// LegalDestinations returns the pseudo-legal destinations of the occupant of
// sq that do not leave its own king in check. The board is left exactly as
// it was found.
func LegalDestinations(b *Board, sq Square) []Square {
	piece := b.Occupant(sq)
	if piece == nil {
		return []Square{}
	}
	legal := []Square{}
	for _, to := range PseudoLegalMoves(b, sq) {
		exposed := simulateMove(b, sq, to, func() bool {
			return InCheck(b, piece.Color)
		})
		if !exposed {
			legal = append(legal, to)
		}
	}
	return legal
}

// simulateMove relocates the occupant of from onto to, evaluates probe, and
// restores both squares to their original occupants before returning, even
// if probe panics. Castling is simulated as the king move alone.
func simulateMove(b *Board, from, to Square, probe func() bool) bool {
	captured := b.Remove(to)
	b.Place(to, b.Remove(from))
	defer func() {
		b.Place(from, b.Remove(to))
		b.Place(to, captured)
	}()
	return probe()
}

// FindKing returns the square of color's king. A board without that king is
// a broken invariant and panics.
func FindKing(b *Board, color Color) Square {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sq := Square{File: file, Rank: rank}
			if p := b.Occupant(sq); p != nil && p.Kind == King && p.Color == color {
				return sq
			}
		}
	}
	panic(fmt.Sprintf("model: no %s king on board", color))
}

// InCheck reports whether color's king is among the pseudo-legal
// destinations of any enemy piece.
func InCheck(b *Board, color Color) bool {
	kingSq := FindKing(b, color)
	enemy := color.Opponent()
	for _, sq := range piecesOf(b, enemy) {
		if containsSquare(PseudoLegalMoves(b, sq), kingSq) {
			return true
		}
	}
	return false
}

// HasLegalMoves reports whether any piece of color has a legal destination.
func HasLegalMoves(b *Board, color Color) bool {
	for _, sq := range piecesOf(b, color) {
		if len(LegalDestinations(b, sq)) > 0 {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether color is in check with no legal move anywhere.
func IsCheckmate(b *Board, color Color) bool {
	return InCheck(b, color) && !HasLegalMoves(b, color)
}

// IsStalemate reports whether color is not in check but cannot move.
func IsStalemate(b *Board, color Color) bool {
	return !InCheck(b, color) && !HasLegalMoves(b, color)
}

// piecesOf lists the squares holding color's pieces. The list is taken up
// front so callers may simulate moves while iterating it.
func piecesOf(b *Board, color Color) []Square {
	squares := []Square{}
	b.Squares(func(sq Square, p *Piece) {
		if p.Color == color {
			squares = append(squares, sq)
		}
	})
	return squares
}
