// Package types contains shared data structures for seabattle.
package types

import "seabattle/game"

// Side identifies a player.
type Side int

const (
	SideNone Side = iota
	SideHuman
	SideComputer
)

func (s Side) String() string {
	switch s {
	case SideHuman:
		return "human"
	case SideComputer:
		return "computer"
	}
	return "none"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHuman {
		return SideComputer
	}
	return SideHuman
}

const (
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)

// GameState is a render-ready snapshot of a match.
type GameState struct {
	MoveNumber int        `json:"move_number"`
	Phase      string     `json:"phase"` // "playing", "finished"
	Turn       Side       `json:"turn"`
	Winner     Side       `json:"winner"`
	Outcome    string     `json:"outcome"`
	Player     BoardView  `json:"player"` // the human's own fleet
	Enemy      BoardView  `json:"enemy"`  // the computer's fleet, concealed
	LastShot   *ShotEntry `json:"last_shot,omitempty"`
}

// Finished returns true if the game is over.
func (g *GameState) Finished() bool {
	return g.Phase == PhaseFinished
}

// BoardView is a copy of a board's visible state.
// Cells is indexed as Cells[row][col].
type BoardView struct {
	Size    int           `json:"size"`
	Cells   [][]game.Cell `json:"cells"`
	Sunk    int           `json:"sunk"`
	Fleet   int           `json:"fleet"`
	Conceal bool          `json:"conceal"`
}

// NewBoardView snapshots b.
func NewBoardView(b *game.Board) BoardView {
	return BoardView{
		Size:    b.Size(),
		Cells:   b.Grid(),
		Sunk:    b.SunkCount(),
		Fleet:   len(b.Ships()),
		Conceal: b.Conceal,
	}
}

// Visible returns the cell at (row, col) as a renderer should show it:
// intact ship cells read as empty water on concealed boards.
func (v BoardView) Visible(row, col int) game.Cell {
	if row < 0 || row >= len(v.Cells) || col < 0 || col >= len(v.Cells[row]) {
		return game.CellEmpty
	}
	c := v.Cells[row][col]
	if v.Conceal && c == game.CellShip {
		return game.CellEmpty
	}
	return c
}

// Remaining returns the number of ships still afloat.
func (v BoardView) Remaining() int {
	return v.Fleet - v.Sunk
}

// ShotEntry is one resolved shot.
type ShotEntry struct {
	Number  int             `json:"number"`
	Shooter Side            `json:"shooter"`
	Pos     game.Position   `json:"pos"`
	Result  game.ShotResult `json:"result"`
}
