package model

import "testing"

func TestPseudoLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]*Piece
		from   string
		want   []Square
	}{
		{
			name:   "knight in corner",
			pieces: map[string]*Piece{"a1": NewPiece(Knight, White)},
			from:   "a1",
			want:   squares("b3", "c2"),
		},
		{
			name: "knight skips friendly, takes enemy",
			pieces: map[string]*Piece{
				"d4": NewPiece(Knight, White),
				"e6": NewPiece(Pawn, White),
				"c6": NewPiece(Pawn, Black),
			},
			from: "d4",
			want: squares("c6", "b5", "b3", "c2", "e2", "f3", "f5"),
		},
		{
			name: "rook stops at blockers",
			pieces: map[string]*Piece{
				"d4": NewPiece(Rook, White),
				"d6": NewPiece(Pawn, White),
				"f4": NewPiece(Bishop, Black),
			},
			from: "d4",
			want: squares("d5", "e4", "f4", "c4", "b4", "a4", "d3", "d2", "d1"),
		},
		{
			name: "bishop rays",
			pieces: map[string]*Piece{
				"c1": NewPiece(Bishop, White),
				"e3": NewPiece(Knight, Black),
				"b2": NewPiece(Pawn, White),
			},
			from: "c1",
			want: squares("d2", "e3"),
		},
		{
			name:   "queen on empty board",
			pieces: map[string]*Piece{"a1": NewPiece(Queen, Black)},
			from:   "a1",
			want: squares(
				"a2", "a3", "a4", "a5", "a6", "a7", "a8",
				"b1", "c1", "d1", "e1", "f1", "g1", "h1",
				"b2", "c3", "d4", "e5", "f6", "g7", "h8",
			),
		},
		{
			name: "white pawn double step and capture",
			pieces: map[string]*Piece{
				"e2": NewPiece(Pawn, White),
				"d3": NewPiece(Rook, Black),
				"f3": NewPiece(Rook, White),
			},
			from: "e2",
			want: squares("e3", "e4", "d3"),
		},
		{
			name: "pawn blocked two ahead",
			pieces: map[string]*Piece{
				"c7": NewPiece(Pawn, Black),
				"c5": NewPiece(Pawn, White),
			},
			from: "c7",
			want: squares("c6"),
		},
		{
			name: "pawn blocked directly",
			pieces: map[string]*Piece{
				"c7": NewPiece(Pawn, Black),
				"c6": NewPiece(Knight, White),
			},
			from: "c7",
			want: squares(),
		},
		{
			name:   "pawn off start rank moves one",
			pieces: map[string]*Piece{"h3": NewPiece(Pawn, White)},
			from:   "h3",
			want:   squares("h4"),
		},
		{
			name: "king steps",
			pieces: map[string]*Piece{
				"h1": {Kind: King, Color: White, HasMoved: true},
				"g2": NewPiece(Pawn, White),
			},
			from: "h1",
			want: squares("g1", "h2"),
		},
		{
			name:   "empty square",
			pieces: map[string]*Piece{},
			from:   "e4",
			want:   squares(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(tt.pieces)
			got := PseudoLegalMoves(b, sq(tt.from))
			if !sameSquares(got, tt.want) {
				t.Fatalf("PseudoLegalMoves(%s) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestCastlingDestinations(t *testing.T) {
	base := func() map[string]*Piece {
		return map[string]*Piece{
			"e1": NewPiece(King, White),
			"a1": NewPiece(Rook, White),
			"h1": NewPiece(Rook, White),
			"e8": NewPiece(King, Black),
		}
	}

	tests := []struct {
		name   string
		mutate func(p map[string]*Piece)
		want   []Square
	}{
		{name: "both sides open", mutate: func(map[string]*Piece) {}, want: squares("c1", "g1")},
		{name: "queen side blocked", mutate: func(p map[string]*Piece) { p["b1"] = NewPiece(Knight, White) }, want: squares("g1")},
		{name: "king side blocked by enemy", mutate: func(p map[string]*Piece) { p["f1"] = NewPiece(Bishop, Black) }, want: squares("c1")},
		{name: "king has moved", mutate: func(p map[string]*Piece) { p["e1"].HasMoved = true }, want: squares()},
		{name: "rook has moved", mutate: func(p map[string]*Piece) { p["h1"].HasMoved = true }, want: squares("c1")},
		{name: "enemy rook in corner", mutate: func(p map[string]*Piece) { p["a1"] = NewPiece(Rook, Black) }, want: squares("g1")},
		{name: "no rook", mutate: func(p map[string]*Piece) { delete(p, "a1"); delete(p, "h1") }, want: squares()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := base()
			tt.mutate(pieces)
			b := boardWith(pieces)
			king := b.Occupant(sq("e1"))
			got := castlingMoves(b, sq("e1"), king)
			if !sameSquares(got, tt.want) {
				t.Fatalf("castlingMoves = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCastlingRookSquares(t *testing.T) {
	from, to := castlingRookSquares(sq("e1"), sq("c1"))
	if from != sq("a1") || to != sq("d1") {
		t.Fatalf("queen side rook %v -> %v, want a1 -> d1", from, to)
	}
	from, to = castlingRookSquares(sq("e8"), sq("g8"))
	if from != sq("h8") || to != sq("f8") {
		t.Fatalf("king side rook %v -> %v, want h8 -> f8", from, to)
	}
}
