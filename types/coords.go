package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"seabattle/game"
)

// Coordinate notation:
// - Columns: a, b, c, ... (left to right)
// - Rows: 1, 2, 3, ... (top to bottom)
// - Example: c4 is row 3, column 2 (0-indexed)

// ErrBadCoord is returned for input that is not a letter followed by a number.
var ErrBadCoord = errors.New("invalid coordinate")

// Coord converts a position to notation.
// (0, 0) -> a1, (3, 2) -> c4, (9, 9) -> j10
func Coord(p game.Position) string {
	return fmt.Sprintf("%c%d", rune('a'+p.Col), p.Row+1)
}

// ParseCoord converts notation to a position. Case and spaces are ignored.
// Range is not checked here; the board reports game.ErrOutOfBounds.
func ParseCoord(s string) (game.Position, error) {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))
	if len(s) < 2 {
		return game.Position{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}

	col := rune(s[0])
	if col < 'a' || col > 'z' {
		return game.Position{}, fmt.Errorf("%w: column in %q", ErrBadCoord, s)
	}

	digits := s[1:]
	for _, ch := range digits {
		if !unicode.IsDigit(ch) {
			return game.Position{}, fmt.Errorf("%w: row in %q", ErrBadCoord, s)
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil {
		return game.Position{}, fmt.Errorf("%w: row in %q", ErrBadCoord, s)
	}

	return game.Pos(row-1, int(col-'a')), nil
}
