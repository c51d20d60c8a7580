package model

import (
	"encoding/json"
	"fmt"
)

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown color %q", s)
	}
	return nil
}

// pawnDirection is the rank delta of a forward pawn step.
func (c Color) pawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) pawnStartRank() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRank is the farthest rank a pawn of this color can reach.
func (c Color) PromotionRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

type PieceKind string

const (
	Pawn   PieceKind = "pawn"
	Rook   PieceKind = "rook"
	Knight PieceKind = "knight"
	Bishop PieceKind = "bishop"
	Queen  PieceKind = "queen"
	King   PieceKind = "king"
)

// IsPromotionChoice reports whether a pawn may be promoted to this kind.
func (k PieceKind) IsPromotionChoice() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// Piece is a board occupant. Position is implied by the slot holding it.
// HasMoved is only tracked for rooks and kings, where castling reads it.
type Piece struct {
	Kind     PieceKind `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

func NewPiece(kind PieceKind, color Color) *Piece {
	return &Piece{Kind: kind, Color: color}
}

// unmovedCastlingPiece reports whether p is a kind that tracks movement and
// has not moved yet.
func (p *Piece) unmovedCastlingPiece(kind PieceKind) bool {
	if p == nil || p.Kind != kind {
		return false
	}
	switch p.Kind {
	case Rook, King:
		return !p.HasMoved
	default:
		return false
	}
}

func (p *Piece) markMoved() {
	switch p.Kind {
	case Rook, King:
		p.HasMoved = true
	}
}

func (p *Piece) String() string {
	if p == nil {
		return "empty"
	}
	return p.Color.String() + " " + string(p.Kind)
}
