package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// constRand always returns the same value, so placement keeps colliding.
type constRand int

func (c constRand) Intn(n int) int { return int(c) % n }

func TestRandomBoardHonorsContourRule(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		b, err := RandomBoard(6, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Len(t, b.Ships(), FleetSize)
		require.Zero(t, b.BusyCount(), "busy set must be empty after placement")

		ships := b.Ships()
		for i := range ships {
			for j := i + 1; j < len(ships); j++ {
				for _, a := range ships[i].Cells() {
					for _, c := range ships[j].Cells() {
						require.Greater(t, Chebyshev(a, c), 1,
							"seed %d: ships %d and %d touch at %s/%s", seed, i, j, a, c)
					}
				}
			}
		}
	}
}

func TestRandomBoardFleetComposition(t *testing.T) {
	b, err := RandomBoard(6, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	var lengths []int
	shipCells := 0
	for _, s := range b.Ships() {
		lengths = append(lengths, s.Length)
		shipCells += s.Length
		require.NotEmpty(t, s.Class)
	}
	require.Equal(t, []int{3, 2, 2, 1, 1, 1, 1}, lengths)

	counted := 0
	for _, row := range b.Grid() {
		for _, c := range row {
			if c == CellShip {
				counted++
			}
		}
	}
	require.Equal(t, shipCells, counted)
}

func TestRandomBoardDeterministic(t *testing.T) {
	a, err := RandomBoard(6, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := RandomBoard(6, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, a.Grid(), b.Grid())
}

func TestPlaceFleetExhausted(t *testing.T) {
	_, err := PlaceFleet(6, constRand(0))
	require.ErrorIs(t, err, ErrPlacementExhausted)
}

func TestRandomBoardGivesUp(t *testing.T) {
	_, err := RandomBoard(6, constRand(0))
	require.ErrorIs(t, err, ErrPlacementExhausted)
}

func TestRandomBoardTooSmall(t *testing.T) {
	_, err := RandomBoard(4, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}
