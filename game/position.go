// Package game implements the sea battle board model: ships, placement under the
// no-touch rule, shot resolution and random fleet placement.
package game

import "fmt"

// Position is a 0-indexed (row, column) cell coordinate.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position offset by dr rows and dc columns.
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

var (
	orthogonalOffsets = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	diagonalOffsets   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Orthogonal returns the four edge-sharing neighbors, which may lie off the board.
func (p Position) Orthogonal() []Position {
	out := make([]Position, 0, 4)
	for _, d := range orthogonalOffsets {
		out = append(out, p.Add(d[0], d[1]))
	}
	return out
}

// Diagonal returns the four corner-sharing neighbors, which may lie off the board.
func (p Position) Diagonal() []Position {
	out := make([]Position, 0, 4)
	for _, d := range diagonalOffsets {
		out = append(out, p.Add(d[0], d[1]))
	}
	return out
}

// Neighbors returns the full 8-neighborhood of p.
func (p Position) Neighbors() []Position {
	return append(p.Orthogonal(), p.Diagonal()...)
}

// Chebyshev returns the king-move distance between a and b.
func Chebyshev(a, b Position) int {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
