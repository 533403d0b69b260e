package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the sea palette for the menu UI.
var MenuColors = struct {
	Border      tcell.Color
	CardBG      tcell.Color
	Title       tcell.Color
	TitleAccent tcell.Color
	Hint        tcell.Color
	ButtonBG    tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(67),
	CardBG:      tcell.PaletteColor(235),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(74),
	Hint:        tcell.PaletteColor(245),
	ButtonBG:    tcell.PaletteColor(24),
	ButtonText:  tcell.PaletteColor(255),
}
