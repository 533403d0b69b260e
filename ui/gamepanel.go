package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"seabattle/game"
	"seabattle/types"
)

const maxVisibleShots = 12

// GameInfoPanel displays fleet status and shot history alongside the boards.
type GameInfoPanel struct {
	box   *tview.TextView
	state *types.GameState
	shots []types.ShotEntry
	str   *Strings
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel(str *Strings) *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
		str: str,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetState updates the panel with the current match and shot history.
func (p *GameInfoPanel) SetState(state *types.GameState, shots []types.ShotEntry) {
	p.state = state
	p.shots = shots
	p.box.SetText(p.render())
}

func (p *GameInfoPanel) render() string {
	if p.state == nil {
		return ""
	}

	var text string

	text += "[white::b]Sea Battle[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Shot:[-:-:-] %d\n", p.state.MoveNumber)
	text += fmt.Sprintf("[white]%s[-:-:-]\n  "+p.str.ShipsLeft+"\n", p.str.PlayerBoard, p.state.Player.Remaining(), p.state.Player.Fleet)
	text += fmt.Sprintf("[white]%s[-:-:-]\n  "+p.str.ShipsLeft+"\n", p.str.EnemyBoard, p.state.Enemy.Remaining(), p.state.Enemy.Fleet)

	if len(p.shots) == 0 {
		return text
	}

	text += fmt.Sprintf("\n[white::b]%s[-:-:-]\n", p.str.Shots)
	text += "[dimgray]──────────────────────[-:-:-]\n"

	start := 0
	if len(p.shots) > maxVisibleShots {
		start = len(p.shots) - maxVisibleShots
	}

	for i := start; i < len(p.shots); i++ {
		s := p.shots[i]

		sideStr := "[white]H[-]"
		if s.Shooter == types.SideComputer {
			sideStr = "[dimgray]C[-]"
		}

		resultStr := "[dimgray]" + p.str.Result(s.Result) + "[-]"
		if s.Result != game.ShotMiss {
			resultStr = "[red]" + p.str.Result(s.Result) + "[-]"
		}

		marker := " "
		if i == len(p.shots)-1 {
			marker = "[white]>[-]"
		}

		text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %-3s %s\n", marker, s.Number, sideStr, types.Coord(s.Pos), resultStr)
	}

	if start > 0 {
		text += fmt.Sprintf("[dimgray]  "+p.str.Earlier+"[-]\n", start)
	}
	return text
}

// CreateGameLayout creates the main game layout with boards and side panel.
func CreateGameLayout(board *SeaBoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the normal game layout with boards, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *SeaBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel(board.str)
	board.infoPanel = infoPanel
	infoPanel.SetState(board.State, board.shots)

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 30, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 5, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered boards.
func BuildFocusLayout(gameFrame *tview.Flex, board *SeaBoardUI) {
	gameFrame.Clear()

	boardWidth, boardHeight := 40, 8
	if board.State != nil && board.State.Player.Size > 0 {
		size := board.State.Player.Size
		boardWidth = rowLabelWidth*2 + size*4 + boardSpacing
		boardHeight = size + 2
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
