// Package hunter implements the computer's targeting engine: a uniform random
// search that switches to a local hunt around the freshest hit on a ship that is
// still afloat.
package hunter

import (
	"errors"
	"fmt"

	"seabattle/game"
)

// ErrNoTarget is returned when the attacked board has no cell left to shoot.
var ErrNoTarget = errors.New("no untargeted cell left")

// Target is the attacked board as seen by the engine. *game.Board satisfies it.
type Target interface {
	Size() int
	IsBusy(p game.Position) bool
	Shoot(p game.Position) (game.Outcome, error)
}

// Hunter holds per-instance targeting state. The zero value is not usable; use New.
type Hunter struct {
	rng game.Rand

	anchor  *game.Position
	queue   []game.Position
	invalid map[game.Position]bool
}

// New returns a Hunter in search mode drawing from rng.
func New(rng game.Rand) *Hunter {
	return &Hunter{
		rng:     rng,
		invalid: make(map[game.Position]bool),
	}
}

// Hunting reports whether a live hit is being followed up.
func (h *Hunter) Hunting() bool {
	return h.anchor != nil
}

// Anchor returns the most recent unresolved hit, if any.
func (h *Hunter) Anchor() (game.Position, bool) {
	if h.anchor == nil {
		return game.Position{}, false
	}
	return *h.anchor, true
}

// Queue returns a copy of the pending follow-up candidates.
func (h *Hunter) Queue() []game.Position {
	return append([]game.Position(nil), h.queue...)
}

// Reset drops all hunt state and returns to search mode.
func (h *Hunter) Reset() {
	h.anchor = nil
	h.queue = nil
	h.invalid = make(map[game.Position]bool)
}

// Decide selects the next cell to fire at. In hunt mode the chosen candidate is
// removed from the queue.
func (h *Hunter) Decide(t Target) (game.Position, error) {
	if h.anchor != nil {
		h.expand(t)
		if len(h.queue) > 0 {
			i := h.rng.Intn(len(h.queue))
			p := h.queue[i]
			h.queue = append(h.queue[:i], h.queue[i+1:]...)
			return p, nil
		}
		// Nothing left around the anchor; search instead.
		h.Reset()
	}
	return h.search(t)
}

// Observe updates hunt state from the outcome of a shot at p.
func (h *Hunter) Observe(p game.Position, out game.Outcome) {
	switch {
	case out.TurnContinues && out.HuntSignal:
		anchor := p
		h.anchor = &anchor
	case !out.HuntSignal:
		h.Reset()
	}
}

// Fire decides, shoots and observes in one step. Candidates rejected by a
// stale board are dropped and a fresh one is chosen.
func (h *Hunter) Fire(t Target) (game.Position, game.Outcome, error) {
	size := t.Size()
	var lastErr error
	for attempt := 0; attempt <= size*size; attempt++ {
		p, err := h.Decide(t)
		if err != nil {
			return game.Position{}, game.Outcome{}, err
		}
		out, err := t.Shoot(p)
		if err != nil {
			if errors.Is(err, game.ErrAlreadyTargeted) || errors.Is(err, game.ErrOutOfBounds) {
				h.invalid[p] = true
				lastErr = err
				continue
			}
			return game.Position{}, game.Outcome{}, err
		}
		h.Observe(p, out)
		return p, out, nil
	}
	return game.Position{}, game.Outcome{}, fmt.Errorf("no valid target after retries: %w", lastErr)
}

// expand adds the anchor's orthogonal neighbors to the queue and rules out its
// diagonals, which cannot hold a ship cell under the no-touch rule.
func (h *Hunter) expand(t Target) {
	anchor := *h.anchor
	for _, p := range anchor.Orthogonal() {
		if !inBounds(t, p) || t.IsBusy(p) || h.invalid[p] || h.queued(p) {
			continue
		}
		h.queue = append(h.queue, p)
	}
	for _, p := range anchor.Diagonal() {
		if !inBounds(t, p) || t.IsBusy(p) {
			continue
		}
		h.invalid[p] = true
	}

	kept := h.queue[:0]
	for _, p := range h.queue {
		if h.invalid[p] || t.IsBusy(p) {
			continue
		}
		kept = append(kept, p)
	}
	h.queue = kept
}

func (h *Hunter) queued(p game.Position) bool {
	for _, q := range h.queue {
		if q == p {
			return true
		}
	}
	return false
}

// search picks uniformly among the cells not yet busy.
func (h *Hunter) search(t Target) (game.Position, error) {
	size := t.Size()
	free := make([]game.Position, 0, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p := game.Pos(r, c)
			if !t.IsBusy(p) && !h.invalid[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return game.Position{}, ErrNoTarget
	}
	return free[h.rng.Intn(len(free))], nil
}

func inBounds(t Target, p game.Position) bool {
	size := t.Size()
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}
