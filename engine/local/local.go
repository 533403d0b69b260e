// Package local runs a match in-process against the hunter targeting engine.
package local

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sync"
	"time"

	"seabattle/engine"
	"seabattle/engine/hunter"
	"seabattle/game"
	"seabattle/record"
	"seabattle/types"
)

var debugLog = log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)

// SetDebugLog redirects the engine's debug log.
func SetDebugLog(w io.Writer) {
	debugLog.SetOutput(w)
}

// Option configures a LocalEngine.
type Option func(*LocalEngine)

// WithSyncTurns plays the computer's turn on the calling goroutine instead of
// a background one.
func WithSyncTurns() Option {
	return func(e *LocalEngine) {
		e.schedule = func(f func()) { f() }
	}
}

// WithRand overrides the seeded generator used for placement and targeting.
func WithRand(rng game.Rand) Option {
	return func(e *LocalEngine) {
		e.rng = rng
	}
}

// LocalEngine implements the GameEngine interface with both boards in memory.
type LocalEngine struct {
	config engine.GameConfig
	rng    game.Rand
	seed   int64

	human    *game.Board // the human's fleet, shot at by the computer
	computer *game.Board // the computer's fleet, shot at by the human
	hunter   *hunter.Hunter
	record   *record.ShotLog

	myTurn     bool
	gameOver   bool
	closed     bool
	winner     types.Side
	moveNumber int
	lastShot   *types.ShotEntry

	schedule     func(func())
	shotCallback func(shot types.ShotEntry, state *types.GameState)
	endCallback  func(winner types.Side)

	mu sync.Mutex
}

var _ engine.GameEngine = (*LocalEngine)(nil)

// NewLocalEngine creates a new engine with the given configuration.
func NewLocalEngine(cfg engine.GameConfig, opts ...Option) *LocalEngine {
	if cfg.BoardSize == 0 {
		cfg.BoardSize = game.MinBoardSize
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &LocalEngine{
		config:   cfg,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		schedule: func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(e)
	}
	e.hunter = hunter.New(e.rng)
	return e
}

// Seed returns the seed the match was generated from.
func (e *LocalEngine) Seed() int64 {
	return e.seed
}

// Start places both fleets and begins the match.
func (e *LocalEngine) Start() error {
	e.mu.Lock()

	human, err := game.RandomBoard(e.config.BoardSize, e.rng)
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("failed to place your fleet: %w", err)
	}
	computer, err := game.RandomBoard(e.config.BoardSize, e.rng)
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("failed to place computer fleet: %w", err)
	}
	computer.Conceal = true

	e.human = human
	e.computer = computer
	e.closed = false
	e.hunter.Reset()
	e.myTurn = e.config.HumanFirst
	e.gameOver = false
	e.winner = types.SideNone
	e.moveNumber = 0
	e.lastShot = nil

	if e.config.RecordDir != "" {
		rec, err := record.NewShotLog(e.config.RecordDir, e.config.BoardSize, e.seed)
		if err != nil {
			debugLog.Printf("Start: record disabled: %v", err)
		} else {
			for side, b := range map[types.Side]*game.Board{types.SideHuman: human, types.SideComputer: computer} {
				if err := rec.AddFleet(side, b.Ships()); err != nil {
					debugLog.Printf("record: %v", err)
				}
			}
			e.record = rec
		}
	}
	debugLog.Printf("Start: seed=%d size=%d humanFirst=%v", e.seed, e.config.BoardSize, e.config.HumanFirst)

	myTurn := e.myTurn
	e.mu.Unlock()

	if !myTurn {
		e.schedule(e.playComputerTurn)
	}
	return nil
}

// GetGameState returns a snapshot of the current match.
func (e *LocalEngine) GetGameState() *types.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Fire resolves a human shot at the computer's board.
func (e *LocalEngine) Fire(p game.Position) error {
	e.mu.Lock()

	if e.computer == nil {
		e.mu.Unlock()
		return fmt.Errorf("game not started")
	}
	if e.gameOver || e.closed {
		e.mu.Unlock()
		return engine.ErrGameOver
	}
	if !e.myTurn {
		e.mu.Unlock()
		return engine.ErrNotYourTurn
	}

	out, err := e.computer.Shoot(p)
	if err != nil {
		e.mu.Unlock()
		debugLog.Printf("Fire: %s rejected: %v", types.Coord(p), err)
		return err
	}
	shot := e.applyShot(types.SideHuman, p, out)
	e.myTurn = out.TurnContinues
	finished := e.gameOver
	winner := e.winner
	myTurn := e.myTurn
	state := e.snapshot()
	e.mu.Unlock()

	// Notify callbacks outside the lock to prevent deadlock
	e.notify(shot, state, finished, winner)
	if finished {
		return nil
	}

	if !myTurn {
		e.schedule(e.playComputerTurn)
	}
	return nil
}

// playComputerTurn fires until the computer misses, sinks a ship or wins.
func (e *LocalEngine) playComputerTurn() {
	for {
		e.mu.Lock()
		if e.gameOver || e.myTurn || e.closed {
			e.mu.Unlock()
			return
		}

		p, out, err := e.hunter.Fire(e.human)
		if err != nil {
			// Only possible with no free cell left, which a finished game prevents.
			debugLog.Printf("playComputerTurn: %v", err)
			e.myTurn = true
			e.mu.Unlock()
			return
		}
		shot := e.applyShot(types.SideComputer, p, out)
		e.myTurn = !out.TurnContinues
		finished := e.gameOver
		winner := e.winner
		again := out.TurnContinues && !finished
		state := e.snapshot()
		e.mu.Unlock()

		if !e.notify(shot, state, finished, winner) || finished {
			return
		}
		if !again {
			return
		}
		if e.config.EngineDelay > 0 {
			time.Sleep(e.config.EngineDelay)
		}
	}
}

// applyShot records a resolved shot and checks for the end of the match.
// Must be called while holding the lock.
func (e *LocalEngine) applyShot(shooter types.Side, p game.Position, out game.Outcome) types.ShotEntry {
	e.moveNumber++
	shot := types.ShotEntry{
		Number:  e.moveNumber,
		Shooter: shooter,
		Pos:     p,
		Result:  out.Result(),
	}
	e.lastShot = &shot
	debugLog.Printf("shot %d: %s -> %s %s", shot.Number, shooter, types.Coord(p), shot.Result)

	target := e.computer
	if shooter.Opponent() == types.SideHuman {
		target = e.human
	}
	if target.Defeated() {
		e.gameOver = true
		e.winner = shooter
	}

	if e.record != nil {
		if err := e.record.AddShot(shot); err != nil {
			debugLog.Printf("record: %v", err)
		}
		if e.gameOver {
			if err := e.record.SetResult(e.winner); err != nil {
				debugLog.Printf("record: %v", err)
			}
		}
	}
	return shot
}

// notify delivers a resolved shot, and the end of the match if finished, to the
// registered callbacks. It returns false without calling them once the engine
// has been closed.
func (e *LocalEngine) notify(shot types.ShotEntry, state *types.GameState, finished bool, winner types.Side) bool {
	e.mu.Lock()
	closed := e.closed
	onShot, onEnd := e.shotCallback, e.endCallback
	e.mu.Unlock()
	if closed {
		return false
	}

	if onShot != nil {
		onShot(shot, state)
	}
	if finished && onEnd != nil {
		onEnd(winner)
	}
	return true
}

// snapshot copies the current match state.
// Must be called while holding the lock.
func (e *LocalEngine) snapshot() *types.GameState {
	state := &types.GameState{
		MoveNumber: e.moveNumber,
		Phase:      types.PhasePlaying,
		Turn:       types.SideComputer,
		Winner:     e.winner,
	}
	if e.myTurn {
		state.Turn = types.SideHuman
	}
	if e.gameOver {
		state.Phase = types.PhaseFinished
		state.Turn = types.SideNone
		state.Outcome = fmt.Sprintf("%s wins", e.winner)
	}
	if e.human != nil {
		state.Player = types.NewBoardView(e.human)
	}
	if e.computer != nil {
		state.Enemy = types.NewBoardView(e.computer)
	}
	if e.lastShot != nil {
		shot := *e.lastShot
		state.LastShot = &shot
	}
	return state
}

// IsMyTurn returns true if it's the human player's turn.
func (e *LocalEngine) IsMyTurn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.myTurn && !e.gameOver
}

// OnShot registers a callback for every resolved shot.
func (e *LocalEngine) OnShot(callback func(shot types.ShotEntry, state *types.GameState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shotCallback = callback
}

// OnGameEnd registers a callback for when the match ends.
func (e *LocalEngine) OnGameEnd(callback func(winner types.Side)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.endCallback = callback
}

// Close stops the match: a computer turn in progress fires no further shots
// and no callback is invoked afterwards. The transcript, if any, is finished.
func (e *LocalEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.record != nil {
		if err := e.record.Close(); err != nil {
			debugLog.Printf("record: %v", err)
		}
		e.record = nil
	}
}

// IsBoardError reports whether err is a rejected target the human should be re-prompted for.
func IsBoardError(err error) bool {
	return errors.Is(err, game.ErrOutOfBounds) || errors.Is(err, game.ErrAlreadyTargeted)
}
