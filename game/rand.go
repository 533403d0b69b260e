package game

// Rand is the source of randomness for every probabilistic decision in the game.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
