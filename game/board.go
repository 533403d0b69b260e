package game

import (
	"github.com/dolthub/swiss"
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellShip
	CellHit
	CellMiss
	// CellClear marks a cell next to a sunk ship; it cannot hold a ship.
	CellClear
)

// ShotResult classifies the outcome of a shot for presentation.
type ShotResult uint8

const (
	ShotMiss ShotResult = iota
	ShotHit
	ShotSunk
)

func (r ShotResult) String() string {
	switch r {
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	}
	return "miss"
}

// Outcome is returned by a successful Shoot.
// TurnContinues is true only on a non-lethal hit. HuntSignal is true for every
// outcome except a sinking.
type Outcome struct {
	TurnContinues bool
	HuntSignal    bool
}

var (
	outcomeMiss = Outcome{TurnContinues: false, HuntSignal: true}
	outcomeHit  = Outcome{TurnContinues: true, HuntSignal: true}
	outcomeSunk = Outcome{TurnContinues: false, HuntSignal: false}
)

// Result maps the outcome flags to a ShotResult.
func (o Outcome) Result() ShotResult {
	switch {
	case o.TurnContinues:
		return ShotHit
	case !o.HuntSignal:
		return ShotSunk
	}
	return ShotMiss
}

type positionSet = swiss.Map[Position, struct{}]

// Board owns a square grid, the ships placed on it and the shot history.
//
// Placement bookkeeping (exclusion) and shot history (busy) are kept in separate
// sets. A Board is not safe for concurrent use.
type Board struct {
	// Conceal hides ship cells from renderers. It has no effect on game logic.
	Conceal bool

	size      int
	grid      [][]Cell
	ships     []*Ship
	busy      *positionSet
	exclusion *positionSet
	sunk      int
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) *Board {
	grid := make([][]Cell, size)
	for i := range grid {
		grid[i] = make([]Cell, size)
	}
	return &Board{
		size:      size,
		grid:      grid,
		busy:      swiss.NewMap[Position, struct{}](uint32(size * size)),
		exclusion: swiss.NewMap[Position, struct{}](uint32(size * size)),
	}
}

// Size returns the side length of the grid.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether p lies on the grid.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// Place puts ship on the board. It fails without mutating the board if any cell
// is off the grid or inside the exclusion zone of a previously placed ship.
// Ships already placed elsewhere, or damaged, are rejected with ErrInvalidShip.
func (b *Board) Place(ship *Ship) error {
	if !ship.valid() {
		return errAt(ErrInvalidShip, ship.Bow)
	}
	cells := ship.Cells()
	for _, c := range cells {
		if !b.InBounds(c) {
			return errAt(ErrOutOfBounds, c)
		}
		if b.exclusion.Has(c) {
			return errAt(ErrOverlap, c)
		}
	}
	for _, c := range cells {
		b.grid[c.Row][c.Col] = CellShip
		b.exclusion.Put(c, struct{}{})
		for _, n := range c.Neighbors() {
			if b.InBounds(n) {
				b.exclusion.Put(n, struct{}{})
			}
		}
	}
	ship.placed = true
	b.ships = append(b.ships, ship)
	return nil
}

// Shoot resolves a shot at target.
func (b *Board) Shoot(target Position) (Outcome, error) {
	if !b.InBounds(target) {
		return Outcome{}, errAt(ErrOutOfBounds, target)
	}
	if b.busy.Has(target) {
		return Outcome{}, errAt(ErrAlreadyTargeted, target)
	}
	b.busy.Put(target, struct{}{})

	ship := b.shipAt(target)
	if ship == nil {
		b.grid[target.Row][target.Col] = CellMiss
		return outcomeMiss, nil
	}

	b.grid[target.Row][target.Col] = CellHit
	if !ship.hit() {
		return outcomeHit, nil
	}
	b.sunk++
	b.markContour(ship)
	return outcomeSunk, nil
}

// markContour makes every cell around a sunk ship busy.
func (b *Board) markContour(ship *Ship) {
	for _, c := range ship.Cells() {
		for _, n := range c.Neighbors() {
			if !b.InBounds(n) || b.busy.Has(n) {
				continue
			}
			b.busy.Put(n, struct{}{})
			if b.grid[n.Row][n.Col] == CellEmpty {
				b.grid[n.Row][n.Col] = CellClear
			}
		}
	}
}

func (b *Board) shipAt(p Position) *Ship {
	for _, s := range b.ships {
		if s.Occupies(p) {
			return s
		}
	}
	return nil
}

// IsDestroyed reports whether p is a cell of a sunk ship.
func (b *Board) IsDestroyed(p Position) bool {
	s := b.shipAt(p)
	return s != nil && s.Sunk()
}

// IsBusy reports whether p has already been targeted or lies in a cleared contour.
func (b *Board) IsBusy(p Position) bool {
	return b.busy.Has(p)
}

// BusyCount returns the size of the busy set.
func (b *Board) BusyCount() int {
	return b.busy.Count()
}

// FreeCells returns every in-bounds position not yet busy, in row-major order.
func (b *Board) FreeCells() []Position {
	free := make([]Position, 0, b.size*b.size-b.busy.Count())
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			p := Pos(r, c)
			if !b.busy.Has(p) {
				free = append(free, p)
			}
		}
	}
	return free
}

// ResetShots clears the busy set. Fleet placement calls it once the fleet is down.
func (b *Board) ResetShots() {
	b.busy.Clear()
}

// SunkCount returns how many ships on this board have been sunk.
func (b *Board) SunkCount() int {
	return b.sunk
}

// Ships returns the placed ships in placement order.
func (b *Board) Ships() []*Ship {
	return b.ships
}

// Cell returns the state of the cell at p. Off-board positions report CellEmpty.
func (b *Board) Cell(p Position) Cell {
	if !b.InBounds(p) {
		return CellEmpty
	}
	return b.grid[p.Row][p.Col]
}

// Grid returns a copy of the cell grid indexed as grid[row][col].
func (b *Board) Grid() [][]Cell {
	out := make([][]Cell, b.size)
	for i := range b.grid {
		out[i] = make([]Cell, b.size)
		copy(out[i], b.grid[i])
	}
	return out
}
