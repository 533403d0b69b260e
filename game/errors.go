package game

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a target or ship cell lies outside the grid.
	ErrOutOfBounds = errors.New("position is outside the board")
	// ErrAlreadyTargeted is returned when a cell is shot twice.
	ErrAlreadyTargeted = errors.New("position was already targeted")
	// ErrOverlap is returned when a ship would overlap or touch another ship.
	ErrOverlap = errors.New("ship overlaps or touches another ship")
	// ErrInvalidShip is returned for ships with an unsupported length or orientation.
	ErrInvalidShip = errors.New("invalid ship")
	// ErrPlacementExhausted is returned when a ship could not be placed within its attempt budget.
	ErrPlacementExhausted = errors.New("fleet placement attempts exhausted")
)

func errAt(err error, p Position) error {
	return fmt.Errorf("%w: %s", err, p)
}
