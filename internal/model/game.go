package model

// PromotionChooser is asked which piece a pawn reaching its farthest rank
// becomes. The call blocks the commit until it returns.
type PromotionChooser interface {
	ChoosePromotion(color Color) PieceKind
}

// GameOverAnnouncer is told when a side is checkmated. The engine does not
// reset itself; play resumes only after Reset.
type GameOverAnnouncer interface {
	AnnounceGameOver(winner Color)
}

type PromotionFunc func(color Color) PieceKind

func (f PromotionFunc) ChoosePromotion(color Color) PieceKind { return f(color) }

type AnnounceFunc func(winner Color)

func (f AnnounceFunc) AnnounceGameOver(winner Color) { f(winner) }

// ClickResult describes how a click changed the game.
type ClickResult int

const (
	ClickIgnored ClickResult = iota
	ClickSelected
	ClickDeselected
	ClickCommitted
)

func (r ClickResult) String() string {
	switch r {
	case ClickSelected:
		return "selected"
	case ClickDeselected:
		return "deselected"
	case ClickCommitted:
		return "committed"
	default:
		return "ignored"
	}
}

// Game is the turn state machine over one board. It is not safe for
// concurrent use.
type Game struct {
	board      *Board
	turn       Color
	selected   *Square
	highlights Highlights
	history    []Ply
	winner     *Color
	committing bool
	promoter   PromotionChooser
	announcer  GameOverAnnouncer
}

// GameState is the read-only view handed to renderers.
type GameState struct {
	Board          [][]*Piece  `json:"board"`
	ToMove         Color       `json:"toMove"`
	SelectedSquare *Square     `json:"selectedSquare"`
	Highlights     Highlights  `json:"highlights"`
	IsCheck        bool        `json:"isCheck"`
	IsStalemate    bool        `json:"isStalemate"`
	Winner         *Color      `json:"winner"`
	LastMove       *SimpleMove `json:"lastMove"`
	MoveHistory    []Ply       `json:"moveHistory"`
}

// NewGame starts a game from the standard position with White to move. A nil
// promoter always promotes to a queen; a nil announcer drops the signal.
func NewGame(promoter PromotionChooser, announcer GameOverAnnouncer) *Game {
	return NewGameFromBoard(NewBoard(), White, promoter, announcer)
}

// NewGameFromBoard starts a game from an arbitrary position.
func NewGameFromBoard(board *Board, toMove Color, promoter PromotionChooser, announcer GameOverAnnouncer) *Game {
	if promoter == nil {
		promoter = PromotionFunc(func(Color) PieceKind { return Queen })
	}
	if announcer == nil {
		announcer = AnnounceFunc(func(Color) {})
	}
	return &Game{
		board:      board,
		turn:       toMove,
		highlights: Highlights{Quiet: []Square{}, Captures: []Square{}},
		history:    make([]Ply, 0),
		promoter:   promoter,
		announcer:  announcer,
	}
}

// Reset rebuilds the starting position and hands the move to White.
func (g *Game) Reset() {
	g.board = NewBoard()
	g.turn = White
	g.history = make([]Ply, 0)
	g.winner = nil
	g.clearSelection()
}

func (g *Game) Board() *Board { return g.board }

func (g *Game) Turn() Color { return g.turn }

func (g *Game) Occupant(sq Square) *Piece { return g.board.Occupant(sq) }

// Selected returns the selected square, if any.
func (g *Game) Selected() (Square, bool) {
	if g.selected == nil {
		return Square{}, false
	}
	return *g.selected, true
}

func (g *Game) Highlights() Highlights { return g.highlights }

func (g *Game) History() []Ply { return g.history }

// Winner returns the winning color once a checkmate has been announced.
func (g *Game) Winner() (Color, bool) {
	if g.winner == nil {
		return White, false
	}
	return *g.winner, true
}

// OnSquareClicked drives the state machine. With nothing selected, a click on
// one of the mover's pieces selects it. With a piece selected, a click on one
// of its legal destinations commits the move; any other click deselects.
func (g *Game) OnSquareClicked(sq Square) ClickResult {
	if g.committing || !sq.OnBoard() {
		g.clearSelection()
		return ClickIgnored
	}

	if g.selected == nil {
		piece := g.board.Occupant(sq)
		if piece == nil || piece.Color != g.turn {
			return ClickIgnored
		}
		selected := sq
		g.selected = &selected
		g.highlights = partitionDestinations(g.board, LegalDestinations(g.board, sq))
		return ClickSelected
	}

	from := *g.selected
	legal := g.highlights.Contains(sq)
	g.clearSelection()
	if !legal {
		return ClickDeselected
	}

	g.committing = true
	defer func() { g.committing = false }()
	g.history = append(g.history, g.commit(from, sq))
	g.turn = g.turn.Opponent()
	g.checkGameOver()
	return ClickCommitted
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.highlights = Highlights{Quiet: []Square{}, Captures: []Square{}}
}

func (g *Game) commit(from, to Square) Ply {
	mover := g.board.Occupant(from)
	ply := Ply{Piece: *mover, From: from, To: to}

	if isCastlingMove(mover, from, to) {
		rookFrom, rookTo := castlingRookSquares(from, to)
		g.board.Relocate(from, to)
		rook := g.board.Occupant(rookFrom)
		g.board.Relocate(rookFrom, rookTo)
		mover.markMoved()
		if rook != nil {
			rook.markMoved()
		}
		ply.CastleRookMove = &CastleRookMove{From: rookFrom, To: rookTo}
		return ply
	}

	if captured := g.board.Relocate(from, to); captured != nil {
		cp := *captured
		ply.CapturedPiece = &cp
	}
	mover.markMoved()

	if mover.Kind == Pawn && to.Rank == mover.Color.PromotionRank() {
		kind := g.promoter.ChoosePromotion(mover.Color)
		if !kind.IsPromotionChoice() {
			kind = Queen
		}
		g.board.Remove(to)
		g.board.Place(to, NewPiece(kind, mover.Color))
		ply.Promotion = kind
	}
	return ply
}

func (g *Game) checkGameOver() {
	for _, color := range []Color{White, Black} {
		if IsCheckmate(g.board, color) {
			winner := color.Opponent()
			g.winner = &winner
			g.announcer.AnnounceGameOver(winner)
			return
		}
	}
}

// Snapshot captures everything a renderer needs.
func (g *Game) Snapshot() GameState {
	state := GameState{
		Board:       g.board.Grid(),
		ToMove:      g.turn,
		Highlights:  g.highlights,
		IsCheck:     InCheck(g.board, g.turn),
		IsStalemate: IsStalemate(g.board, g.turn),
		MoveHistory: append([]Ply(nil), g.history...),
	}
	if g.selected != nil {
		sel := *g.selected
		state.SelectedSquare = &sel
	}
	if g.winner != nil {
		w := *g.winner
		state.Winner = &w
	}
	if n := len(g.history); n > 0 {
		last := g.history[n-1]
		state.LastMove = &SimpleMove{From: last.From, To: last.To}
	}
	if state.MoveHistory == nil {
		state.MoveHistory = []Ply{}
	}
	return state
}
