// Package ui specifies custom controls for tview to play sea battle in the terminal.
package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"seabattle/config"
	"seabattle/engine"
	"seabattle/game"
	"seabattle/types"
)

const (
	rowLabelWidth = 3
	boardSpacing  = 6
)

// SeaBoardUI draws the player's and the computer's boards side by side.
// The cursor only ever moves over the computer's board.
type SeaBoardUI struct {
	Box       *tview.Box
	State     *types.GameState
	hint      *tview.TextView
	cfg       *config.Config
	str       *Strings
	finished  bool
	selRow    int
	selCol    int
	message   string
	shots     []types.ShotEntry
	app       *tview.Application
	eng       engine.GameEngine
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	focusMode bool

	// queue runs f on the UI goroutine.
	queue func(f func())

	mu           sync.Mutex
	gen          int // bumped per connected engine; older callbacks are dropped
	pending      []types.ShotEntry
	pendingState *types.GameState
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *SeaBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

func (g *SeaBoardUI) SelectedTile() *game.Position {
	if g.selRow == -1 && g.selCol == -1 {
		return nil
	}
	p := game.Pos(g.selRow, g.selCol)
	return &p
}

func (g *SeaBoardUI) MoveSelection(dr, dc int) {
	if g.State == nil || g.State.Finished() {
		g.ResetSelection()
		return
	}
	size := g.State.Enemy.Size
	if g.SelectedTile() == nil {
		g.selRow = size / 2
		g.selCol = size / 2
		if last := g.State.LastShot; last != nil && last.Shooter == types.SideHuman {
			g.selRow, g.selCol = last.Pos.Row, last.Pos.Col
		}
		return
	}
	if g.selRow+dr < 0 || g.selRow+dr >= size {
		return
	}
	if g.selCol+dc < 0 || g.selCol+dc >= size {
		return
	}
	g.selRow += dr
	g.selCol += dc
}

func (g *SeaBoardUI) ResetSelection() {
	g.selRow = -1
	g.selCol = -1
}

func NewSeaBoard(app *tview.Application, c *config.Config, str *Strings, hint *tview.TextView) *SeaBoardUI {
	seaBoard := &SeaBoardUI{
		Box:    tview.NewBox(),
		hint:   hint,
		str:    str,
		app:    app,
		selRow: -1,
		selCol: -1,
	}
	seaBoard.queue = func(f func()) {
		// Engine callbacks may arrive on the UI goroutine itself.
		go seaBoard.app.QueueUpdateDraw(f)
	}
	seaBoard.SetConfig(c)
	seaBoard.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if seaBoard.State == nil || seaBoard.State.Player.Size == 0 {
			return x, y, 1, 1
		}
		size := seaBoard.State.Player.Size
		leftX := x + rowLabelWidth
		rightX := leftX + size*2 + boardSpacing

		seaBoard.drawBoard(screen, seaBoard.State.Player, types.SideComputer, leftX, y, false)
		seaBoard.drawBoard(screen, seaBoard.State.Enemy, types.SideHuman, rightX, y, true)
		return x, y, rightX + size*2 - x, size + 2
	})
	return seaBoard
}

// drawBoard draws one board with its title and coordinates at column l, row t.
// shooter is the side whose shots land on this board.
func (g *SeaBoardUI) drawBoard(s tcell.Screen, v types.BoardView, shooter types.Side, l, t int, withCursor bool) {
	title := g.str.PlayerBoard
	if withCursor {
		title = g.str.EnemyBoard
	}
	tview.Print(s, title, l-rowLabelWidth, t, v.Size*2+rowLabelWidth, tview.AlignLeft, tcell.ColorWhite)

	var last *game.Position
	if g.State.LastShot != nil && g.State.LastShot.Shooter == shooter {
		last = &g.State.LastShot.Pos
	}

	for row := 0; row < v.Size; row++ {
		for col := 0; col < v.Size; col++ {
			cell := v.Visible(row, col)
			bg := g.styles[0]
			if (row%2 + col%2) == 1 {
				bg = g.styles[1]
			}
			fg := g.cellColor(cell)
			r := CellRune(cell, g.cfg.Theme.Symbols)

			if withCursor && row == g.selRow && col == g.selCol {
				if g.cfg.Theme.DrawCursorBackground {
					bg = g.styles[8]
					fg = g.styles[7]
				} else {
					r = g.cfg.Theme.Symbols.Cursor
				}
			} else if last != nil && last.Row == row && last.Col == col && g.cfg.Theme.DrawLastShotBackground {
				bg = g.styles[9]
			}
			drawSeaCell(s, tcell.StyleDefault.Background(bg).Foreground(fg), r, col, row, l, t+2)
		}
	}
	g.drawCoordinates(s, v.Size, l, t+1, withCursor)
}

func (g *SeaBoardUI) cellColor(c game.Cell) tcell.Color {
	switch c {
	case game.CellShip:
		return g.styles[2]
	case game.CellHit:
		return g.styles[3]
	case game.CellMiss:
		return g.styles[4]
	case game.CellClear:
		return g.styles[5]
	}
	return g.styles[6]
}

// ConnectEngine connects the board to a game engine and starts the match.
// A previously connected engine is closed and its late callbacks are ignored.
func (g *SeaBoardUI) ConnectEngine(e engine.GameEngine) error {
	if g.eng != nil && g.eng != e {
		g.eng.Close()
	}
	g.finished = false
	g.eng = e
	g.State = nil
	g.shots = nil
	g.message = ""
	g.ResetSelection()

	g.mu.Lock()
	g.gen++
	gen := g.gen
	g.pending, g.pendingState = nil, nil
	g.mu.Unlock()

	e.OnShot(func(shot types.ShotEntry, state *types.GameState) {
		g.onShot(gen, shot, state)
	})
	e.OnGameEnd(func(winner types.Side) {
		g.queue(g.drain)
	})

	if err := e.Start(); err != nil {
		return err
	}

	g.State = e.GetGameState()
	g.finished = g.State.Finished()
	g.refreshHint()
	return nil
}

// onShot is called by the engine, possibly from its own goroutine.
// Shots from an engine connected before generation gen are dropped.
func (g *SeaBoardUI) onShot(gen int, shot types.ShotEntry, state *types.GameState) {
	g.mu.Lock()
	if gen != g.gen {
		g.mu.Unlock()
		return
	}
	g.pending = append(g.pending, shot)
	if g.pendingState == nil || state.MoveNumber >= g.pendingState.MoveNumber {
		g.pendingState = state
	}
	g.mu.Unlock()
	g.queue(g.drain)
}

// drain applies queued engine updates. Runs on the UI goroutine.
func (g *SeaBoardUI) drain() {
	g.mu.Lock()
	shots, state := g.pending, g.pendingState
	g.pending, g.pendingState = nil, nil
	g.mu.Unlock()

	for _, shot := range shots {
		g.shots = append(g.shots, shot)
		if shot.Shooter == types.SideComputer {
			g.message = fmt.Sprintf(g.str.ComputerMove, types.Coord(shot.Pos)) + " " + g.str.Result(shot.Result)
		} else {
			g.message = g.str.Result(shot.Result)
		}
	}
	if state != nil && (g.State == nil || state.MoveNumber >= g.State.MoveNumber) {
		g.State = state
	}
	if g.State != nil && g.State.Finished() {
		g.finished = true
		g.ResetSelection()
	}
	g.refreshHint()
}

// Fire shoots at the selected cell of the computer's board.
func (g *SeaBoardUI) Fire() {
	if g.finished || g.eng == nil {
		return
	}
	sel := g.SelectedTile()
	if sel == nil {
		return
	}
	if err := g.eng.Fire(*sel); err != nil {
		g.message = g.str.Rejection(err)
		g.refreshHint()
	}
}

// Close stops the engine.
func (g *SeaBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
}

func (g *SeaBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.WaterColor),      // 0
		tcell.PaletteColor(c.Theme.Colors.WaterColorAlt),   // 1
		tcell.PaletteColor(c.Theme.Colors.ShipColor),       // 2
		tcell.PaletteColor(c.Theme.Colors.HitColor),        // 3
		tcell.PaletteColor(c.Theme.Colors.MissColor),       // 4
		tcell.PaletteColor(c.Theme.Colors.ClearColor),      // 5
		tcell.PaletteColor(c.Theme.Colors.LineColor),       // 6
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),   // 7
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),   // 8
		tcell.PaletteColor(c.Theme.Colors.LastShotColorBG), // 9
	}
	g.cfg = c
}

// SetStrings switches the message language.
func (g *SeaBoardUI) SetStrings(str *Strings) {
	g.str = str
	if g.infoPanel != nil {
		g.infoPanel.str = str
	}
	g.refreshHint()
}

func (g *SeaBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetState(g.State, g.shots)
	}
	if g.hint == nil {
		return
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.finished {
		statusLine = fmt.Sprintf("───────── %s ─────────\n", g.str.GameOver)
		if g.State != nil {
			turnLine = fmt.Sprintf("  %s\n", g.str.Winner(g.State.Winner))
		}
		controlsLine = "  " + g.str.BackToMenu
	} else {
		if g.message != "" {
			statusLine = fmt.Sprintf("  %s\n", g.message)
		}
		if g.eng != nil && g.eng.IsMyTurn() {
			turnLine = fmt.Sprintf("  ◎ %s   ", g.str.HumanTurn)
		} else {
			turnLine = fmt.Sprintf("  ◌ %s   ", g.str.Thinking)
		}
		controlsLine = g.str.Controls
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (g *SeaBoardUI) IsFinished() bool {
	return g.finished
}

// drawSeaCell draws a cell 2 characters wide.
func drawSeaCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

// drawCoordinates draws column letters on row t and row numbers left of column l.
func (g *SeaBoardUI) drawCoordinates(s tcell.Screen, size, l, t int, withCursor bool) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(g.styles[8])

	for col := 0; col < size; col++ {
		_style := style
		if withCursor && col == g.selCol {
			_style = highlight
		}
		s.SetContent(l+col*2, t, rune('a'+col), nil, _style)
		s.SetContent(l+col*2+1, t, ' ', nil, _style)
	}

	for row := 0; row < size; row++ {
		_style := style
		if withCursor && row == g.selRow {
			_style = highlight
		}
		displayNum := row + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(l-rowLabelWidth, t+1+row, tensRune, nil, _style)
		s.SetContent(l-rowLabelWidth+1, t+1+row, rune('0'+displayNum%10), nil, _style)
	}
}
