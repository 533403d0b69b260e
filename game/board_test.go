package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShipCells(t *testing.T) {
	tests := []struct {
		name string
		ship *Ship
		want []Position
	}{
		{"horizontal", NewShip(Pos(0, 0), 3, Horizontal), []Position{Pos(0, 0), Pos(0, 1), Pos(0, 2)}},
		{"vertical", NewShip(Pos(2, 4), 2, Vertical), []Position{Pos(2, 4), Pos(3, 4)}},
		{"single", NewShip(Pos(5, 5), 1, Vertical), []Position{Pos(5, 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.ship.Cells())
			require.Equal(t, tt.ship.Length, tt.ship.Health())
		})
	}
}

func TestPlaceContourRule(t *testing.T) {
	b := NewBoard(6)
	require.NoError(t, b.Place(NewShip(Pos(0, 0), 3, Horizontal)))

	for _, p := range []Position{Pos(0, 0), Pos(0, 1), Pos(0, 2)} {
		require.Equal(t, CellShip, b.Cell(p))
	}

	err := b.Place(NewShip(Pos(1, 1), 1, Horizontal))
	require.ErrorIs(t, err, ErrOverlap)

	require.NoError(t, b.Place(NewShip(Pos(2, 2), 1, Horizontal)))
	require.Len(t, b.Ships(), 2)
}

func TestPlaceRejections(t *testing.T) {
	tests := []struct {
		name string
		ship *Ship
		want error
	}{
		{"off right edge", NewShip(Pos(0, 5), 2, Horizontal), ErrOutOfBounds},
		{"off bottom edge", NewShip(Pos(4, 0), 3, Vertical), ErrOutOfBounds},
		{"negative bow", NewShip(Pos(-1, 0), 1, Vertical), ErrOutOfBounds},
		{"too long", NewShip(Pos(0, 0), 4, Horizontal), ErrInvalidShip},
		{"zero length", NewShip(Pos(0, 0), 0, Horizontal), ErrInvalidShip},
		{"bad orientation", NewShip(Pos(0, 0), 2, Orientation(7)), ErrInvalidShip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(6)
			require.ErrorIs(t, b.Place(tt.ship), tt.want)
			require.Empty(t, b.Ships())
			for _, row := range b.Grid() {
				for _, c := range row {
					require.Equal(t, CellEmpty, c)
				}
			}
		})
	}
}

func TestPlaceRejectsShipFromAnotherBoard(t *testing.T) {
	ship := NewShip(Pos(0, 0), 2, Horizontal)
	first := NewBoard(6)
	require.NoError(t, first.Place(ship))

	out, err := first.Shoot(Pos(0, 0))
	require.NoError(t, err)
	require.Equal(t, ShotHit, out.Result())

	second := NewBoard(6)
	require.ErrorIs(t, second.Place(ship), ErrInvalidShip)
	require.Empty(t, second.Ships())
	require.Equal(t, CellEmpty, second.Cell(Pos(0, 0)))
}

func TestPlaceRejectsShipTwice(t *testing.T) {
	ship := NewShip(Pos(3, 3), 1, Horizontal)
	b := NewBoard(6)
	require.NoError(t, b.Place(ship))
	require.ErrorIs(t, NewBoard(6).Place(ship), ErrInvalidShip)

	fresh := NewShip(Pos(0, 0), 2, Horizontal)
	other := NewBoard(6)
	require.NoError(t, other.Place(fresh))
	out, err := other.Shoot(Pos(0, 0))
	require.NoError(t, err)
	require.Equal(t, ShotHit, out.Result(), "one hit must not sink a fresh length-2 ship")
	require.Zero(t, other.SunkCount())
}

func TestPlacementDoesNotTouchShotHistory(t *testing.T) {
	b := NewBoard(6)
	require.NoError(t, b.Place(NewShip(Pos(0, 0), 3, Horizontal)))
	require.Zero(t, b.BusyCount())
	require.Len(t, b.FreeCells(), 36)
}

func TestShootSinksBattleship(t *testing.T) {
	b := NewBoard(6)
	require.NoError(t, b.Place(NewShip(Pos(0, 0), 3, Horizontal)))

	out, err := b.Shoot(Pos(0, 0))
	require.NoError(t, err)
	require.Equal(t, Outcome{TurnContinues: true, HuntSignal: true}, out)
	require.Equal(t, ShotHit, out.Result())

	out, err = b.Shoot(Pos(0, 1))
	require.NoError(t, err)
	require.Equal(t, Outcome{TurnContinues: true, HuntSignal: true}, out)
	require.False(t, b.IsDestroyed(Pos(0, 1)))

	out, err = b.Shoot(Pos(0, 2))
	require.NoError(t, err)
	require.Equal(t, Outcome{TurnContinues: false, HuntSignal: false}, out)
	require.Equal(t, ShotSunk, out.Result())
	require.Equal(t, 1, b.SunkCount())
	require.True(t, b.IsDestroyed(Pos(0, 0)))

	// Ship cells plus the in-bounds contour (0,3) and (1,0)..(1,3).
	for _, p := range []Position{Pos(0, 3), Pos(1, 0), Pos(1, 1), Pos(1, 2), Pos(1, 3)} {
		require.True(t, b.IsBusy(p), "contour cell %s should be busy", p)
		require.Equal(t, CellClear, b.Cell(p))
	}
	require.Equal(t, 8, b.BusyCount())
	require.False(t, b.IsBusy(Pos(2, 2)))
}

func TestShootMiss(t *testing.T) {
	b := NewBoard(6)
	require.NoError(t, b.Place(NewShip(Pos(0, 0), 1, Horizontal)))

	out, err := b.Shoot(Pos(4, 4))
	require.NoError(t, err)
	require.Equal(t, Outcome{TurnContinues: false, HuntSignal: true}, out)
	require.Equal(t, ShotMiss, out.Result())
	require.Equal(t, CellMiss, b.Cell(Pos(4, 4)))
	require.Zero(t, b.SunkCount())
}

func TestShootRejections(t *testing.T) {
	b := NewBoard(6)
	require.NoError(t, b.Place(NewShip(Pos(2, 2), 2, Vertical)))

	_, err := b.Shoot(Pos(6, 0))
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = b.Shoot(Pos(0, -1))
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.Zero(t, b.BusyCount())

	_, err = b.Shoot(Pos(2, 2))
	require.NoError(t, err)
	_, err = b.Shoot(Pos(2, 2))
	require.ErrorIs(t, err, ErrAlreadyTargeted)
	require.Equal(t, 1, b.BusyCount())
	require.Equal(t, 1, b.Ships()[0].Health())
}

func TestShootOnContourIsRejected(t *testing.T) {
	b := NewBoard(6)
	require.NoError(t, b.Place(NewShip(Pos(3, 3), 1, Horizontal)))
	_, err := b.Shoot(Pos(3, 3))
	require.NoError(t, err)

	_, err = b.Shoot(Pos(2, 2))
	require.ErrorIs(t, err, ErrAlreadyTargeted)
}

func TestShootGrowsBusySetByOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b, err := RandomBoard(6, rng)
	require.NoError(t, err)

	for _, p := range b.FreeCells() {
		if b.IsBusy(p) {
			continue
		}
		before := b.BusyCount()
		out, err := b.Shoot(p)
		require.NoError(t, err)
		require.True(t, b.IsBusy(p))
		if out.Result() != ShotSunk {
			require.Equal(t, before+1, b.BusyCount())
		} else {
			require.GreaterOrEqual(t, b.BusyCount(), before+1)
		}
	}
	require.Equal(t, FleetSize, b.SunkCount())
	require.True(t, b.Defeated())
	require.Empty(t, b.FreeCells())
}

func TestSunkCountIncrementsOncePerShip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b, err := RandomBoard(6, rng)
	require.NoError(t, err)

	for i, ship := range b.Ships() {
		for _, c := range ship.Cells() {
			_, err := b.Shoot(c)
			require.NoError(t, err)
		}
		require.True(t, ship.Sunk())
		require.Equal(t, i+1, b.SunkCount())
	}
	require.True(t, b.Defeated())
}
