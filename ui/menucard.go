package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuCard is a banner with rounded borders and a centered title.
type MenuCard struct {
	*tview.Box
	title string
}

// NewMenuCard creates a new menu card with the given title.
func NewMenuCard(title string) *MenuCard {
	return &MenuCard{
		Box:   tview.NewBox(),
		title: title,
	}
}

// SetText replaces the banner text.
func (c *MenuCard) SetText(title string) *MenuCard {
	c.title = title
	return c
}

// Draw renders the card.
func (c *MenuCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width < 4 || height < 3 {
		return
	}

	borderStyle := tcell.StyleDefault.Foreground(MenuColors.Border).Background(MenuColors.CardBG)
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// ╭───╮
	screen.SetContent(x, y, '╭', nil, borderStyle)
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)
	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}

	if c.title == "" {
		return
	}
	titleStyle := tcell.StyleDefault.Foreground(MenuColors.Title).Background(MenuColors.CardBG).Bold(true)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)

	// ⚓  title
	titleLen := len([]rune(c.title)) + 3
	titleX := x + (width-titleLen)/2
	if titleX < x+1 {
		titleX = x + 1
	}
	titleY := y + height/2

	screen.SetContent(titleX, titleY, '⚓', nil, accentStyle)
	for i, ch := range []rune(c.title) {
		if titleX+3+i >= x+width-1 {
			break
		}
		screen.SetContent(titleX+3+i, titleY, ch, nil, titleStyle)
	}
}
