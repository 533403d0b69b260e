package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"seabattle/config"
	"seabattle/game"
	"seabattle/types"
)

const boardGap = "    "

// CellRune returns the symbol used for a visible cell.
func CellRune(c game.Cell, sym config.ConfigSymbols) rune {
	switch c {
	case game.CellShip:
		return sym.Ship
	case game.CellHit:
		return sym.Hit
	case game.CellMiss:
		return sym.Miss
	case game.CellClear:
		return sym.Clear
	}
	return sym.Water
}

// RenderBoard draws one board as text lines: a header of column letters,
// then one line per row prefixed with its 1-based number.
func RenderBoard(v types.BoardView, sym config.ConfigSymbols) []string {
	lines := make([]string, 0, v.Size+1)

	var b strings.Builder
	b.WriteString("   |")
	for col := 0; col < v.Size; col++ {
		fmt.Fprintf(&b, " %c |", rune('a'+col))
	}
	lines = append(lines, b.String())

	for row := 0; row < v.Size; row++ {
		b.Reset()
		fmt.Fprintf(&b, "%2d |", row+1)
		for col := 0; col < v.Size; col++ {
			fmt.Fprintf(&b, " %c |", CellRune(v.Visible(row, col), sym))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// RenderText draws both boards side by side with their titles.
func RenderText(state *types.GameState, sym config.ConfigSymbols, str *Strings) string {
	left := append([]string{str.PlayerBoard}, RenderBoard(state.Player, sym)...)
	right := append([]string{str.EnemyBoard}, RenderBoard(state.Enemy, sym)...)
	return SideBySide(left, right)
}

// SideBySide joins two columns of lines, padding the left one to its widest line.
func SideBySide(left, right []string) string {
	width := 0
	for _, l := range left {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}

	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}

	var b strings.Builder
	for i := 0; i < rows; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		b.WriteString(l)
		if r != "" {
			b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(l)))
			b.WriteString(boardGap)
			b.WriteString(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
