// Package engine defines the interface between the UI and a running match.
package engine

import (
	"errors"
	"time"

	"seabattle/game"
	"seabattle/types"
)

var (
	// ErrGameOver is returned for shots after the match has ended.
	ErrGameOver = errors.New("game is over")
	// ErrNotYourTurn is returned when the human fires during the computer's turn.
	ErrNotYourTurn = errors.New("not your turn")
)

// GameEngine defines the interface for playing a match against the computer.
type GameEngine interface {
	// Start places both fleets and begins the match.
	Start() error

	// GetGameState returns a snapshot of the current match.
	GetGameState() *types.GameState

	// Fire resolves a human shot at the computer's board.
	// Board errors (game.ErrOutOfBounds, game.ErrAlreadyTargeted) are returned
	// unchanged so the caller can re-prompt.
	Fire(p game.Position) error

	// IsMyTurn returns true if it's the human player's turn.
	IsMyTurn() bool

	// OnShot registers a callback for every resolved shot, by either side.
	// state is passed directly to avoid lock contention.
	OnShot(func(shot types.ShotEntry, state *types.GameState))

	// OnGameEnd registers a callback for when the match ends.
	OnGameEnd(func(winner types.Side))

	// Close releases engine resources.
	Close()
}

// GameConfig holds configuration for starting a new match.
type GameConfig struct {
	BoardSize   int           // 6..10, 6 for the classic game
	Seed        int64         // 0 picks a time based seed
	HumanFirst  bool          // the human fires the first shot
	EngineDelay time.Duration // pause between computer shots
	RecordDir   string        // write a shot transcript here when set
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:   game.MinBoardSize,
		HumanFirst:  true,
		EngineDelay: 400 * time.Millisecond,
	}
}
