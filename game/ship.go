package game

// Orientation is the axis a ship extends along from its bow.
type Orientation uint8

const (
	// Horizontal ships step along the column axis.
	Horizontal Orientation = iota
	// Vertical ships step along the row axis.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "unknown"
}

// MaxShipLength is the longest ship in the fleet.
const MaxShipLength = 3

// Ship is a straight run of cells with a remaining-health counter.
// Health is only decremented by the Board the ship was placed on, and a ship
// can be placed on one board only.
type Ship struct {
	Class       string
	Bow         Position
	Length      int
	Orientation Orientation
	health      int
	placed      bool
}

// NewShip creates an unplaced ship at full health.
func NewShip(bow Position, length int, o Orientation) *Ship {
	return &Ship{
		Bow:         bow,
		Length:      length,
		Orientation: o,
		health:      length,
	}
}

// Cells returns the occupied positions in order, starting at the bow.
func (s *Ship) Cells() []Position {
	cells := make([]Position, 0, s.Length)
	for i := 0; i < s.Length; i++ {
		if s.Orientation == Vertical {
			cells = append(cells, s.Bow.Add(i, 0))
		} else {
			cells = append(cells, s.Bow.Add(0, i))
		}
	}
	return cells
}

// Occupies reports whether p is one of the ship's cells.
func (s *Ship) Occupies(p Position) bool {
	for _, c := range s.Cells() {
		if c == p {
			return true
		}
	}
	return false
}

// Health returns the number of cells not yet hit.
func (s *Ship) Health() int {
	return s.health
}

// Sunk reports whether every cell has been hit.
func (s *Ship) Sunk() bool {
	return s.health == 0
}

// hit records one hit and reports whether it was the lethal one.
func (s *Ship) hit() bool {
	if s.health == 0 {
		return false
	}
	s.health--
	return s.health == 0
}

func (s *Ship) valid() bool {
	if s.placed || s.health != s.Length {
		return false
	}
	if s.Length < 1 || s.Length > MaxShipLength {
		return false
	}
	return s.Orientation == Horizontal || s.Orientation == Vertical
}
