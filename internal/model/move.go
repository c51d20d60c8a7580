package model

type CastleRookMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Ply records one committed move.
type Ply struct {
	Piece          Piece           `json:"piece"`
	From           Square          `json:"from"`
	To             Square          `json:"to"`
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceKind       `json:"promotion,omitempty"`
}

type SimpleMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Highlights partitions the legal destinations of the selected piece for
// rendering: quiet moves land on empty squares, captures on occupied ones.
type Highlights struct {
	Quiet    []Square `json:"quiet"`
	Captures []Square `json:"captures"`
}

func (h Highlights) All() []Square {
	all := make([]Square, 0, len(h.Quiet)+len(h.Captures))
	all = append(all, h.Quiet...)
	return append(all, h.Captures...)
}

func (h Highlights) Contains(sq Square) bool {
	return containsSquare(h.Quiet, sq) || containsSquare(h.Captures, sq)
}

func partitionDestinations(b *Board, dests []Square) Highlights {
	h := Highlights{Quiet: []Square{}, Captures: []Square{}}
	for _, sq := range dests {
		if b.isEmpty(sq) {
			h.Quiet = append(h.Quiet, sq)
		} else {
			h.Captures = append(h.Captures, sq)
		}
	}
	return h
}
