package game

import "fmt"

// ShipClass names a ship type in the fixed fleet.
type ShipClass struct {
	Name   string
	Length int
}

// Fleet is the fixed set of ships every board carries, placed in this order.
var Fleet = []ShipClass{
	{Name: "battleship", Length: 3},
	{Name: "cruiser", Length: 2},
	{Name: "cruiser", Length: 2},
	{Name: "destroyer", Length: 1},
	{Name: "destroyer", Length: 1},
	{Name: "destroyer", Length: 1},
	{Name: "destroyer", Length: 1},
}

const (
	// FleetSize is the number of ships that must be sunk to win.
	FleetSize = 7

	// PlacementAttempts bounds the random draws spent on a single ship.
	PlacementAttempts = 2000

	// BoardRetries bounds how many times RandomBoard restarts from an empty board.
	BoardRetries = 1000

	// MinBoardSize is the smallest grid the fleet is known to fit on.
	MinBoardSize = 6
)

// Defeated reports whether the whole fixed fleet on b has been sunk.
func (b *Board) Defeated() bool {
	return b.sunk >= FleetSize
}

// PlaceFleet makes a single attempt at placing the fleet on an empty board.
// It returns ErrPlacementExhausted when any ship runs out of attempts; the
// partial board must then be discarded.
func PlaceFleet(size int, rng Rand) (*Board, error) {
	b := NewBoard(size)
	for _, class := range Fleet {
		placed := false
		for attempt := 0; attempt < PlacementAttempts; attempt++ {
			ship := NewShip(Pos(rng.Intn(size), rng.Intn(size)), class.Length, Orientation(rng.Intn(2)))
			ship.Class = class.Name
			if err := b.Place(ship); err != nil {
				continue
			}
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("%w: %s (length %d)", ErrPlacementExhausted, class.Name, class.Length)
		}
	}
	b.ResetShots()
	return b, nil
}

// RandomBoard places the fleet, restarting from an empty board whenever a
// placement attempt is exhausted.
func RandomBoard(size int, rng Rand) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("board size %d is below the minimum of %d", size, MinBoardSize)
	}
	var lastErr error
	for i := 0; i < BoardRetries; i++ {
		b, err := PlaceFleet(size, rng)
		if err == nil {
			return b, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("place fleet after %d boards: %w", BoardRetries, lastErr)
}
