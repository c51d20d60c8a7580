package model

import "fmt"

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Square addresses one cell of the board. Rank 0 is Black's back rank and
// rank 7 is White's, matching the order the grid is stored in.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

func (s Square) offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String renders the square in algebraic coordinates, e.g. "e2".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, BoardSize-s.Rank)
}

func containsSquare(squares []Square, target Square) bool {
	for _, sq := range squares {
		if sq == target {
			return true
		}
	}
	return false
}
