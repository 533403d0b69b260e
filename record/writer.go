// Package record writes a plain-text transcript of a match as it is played.
// Transcripts are write-only; nothing reads them back into a game.
package record

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"seabattle/game"
	"seabattle/types"
)

// ShotLog tracks a match in progress and writes it as a transcript.
type ShotLog struct {
	ID        string
	FilePath  string
	BoardSize int
	Seed      int64
	Date      string
	Result    string
	fleets    map[types.Side][]string // "battleship a1 horizontal", ...
	shots     []string                // "  1. H c4 hit", ...
	file      *os.File
}

// NewShotLog creates a new transcript file in dir and writes the initial header.
func NewShotLog(dir string, boardSize int, seed int64) (*ShotLog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}

	now := time.Now()
	id := uuid.NewString()[:8]
	filename := fmt.Sprintf("%s_%s.log", now.Format("2006-01-02_150405"), id)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create record file: %w", err)
	}

	rec := &ShotLog{
		ID:        id,
		FilePath:  path,
		BoardSize: boardSize,
		Seed:      seed,
		Date:      now.Format("2006-01-02"),
		Result:    "?",
		fleets:    make(map[types.Side][]string),
		file:      f,
	}

	if err := rec.flush(); err != nil {
		f.Close()
		return nil, err
	}

	return rec, nil
}

// AddFleet records the ships placed for side.
func (r *ShotLog) AddFleet(side types.Side, ships []*game.Ship) error {
	lines := make([]string, 0, len(ships))
	for _, s := range ships {
		lines = append(lines, fmt.Sprintf("%s %s %s", s.Class, types.Coord(s.Bow), s.Orientation))
	}
	r.fleets[side] = lines
	return r.flush()
}

// AddShot appends a resolved shot to the transcript.
func (r *ShotLog) AddShot(shot types.ShotEntry) error {
	shooter := "H"
	if shot.Shooter == types.SideComputer {
		shooter = "C"
	}
	r.shots = append(r.shots, fmt.Sprintf("%3d. %s %s %s", shot.Number, shooter, types.Coord(shot.Pos), shot.Result))
	return r.flush()
}

// SetResult records the winner.
func (r *ShotLog) SetResult(winner types.Side) error {
	r.Result = winner.String() + " wins"
	return r.flush()
}

// Close performs a final flush and closes the file handle.
func (r *ShotLog) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.flush()
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	r.file = nil
	return err
}

// flush rewrites the complete transcript from scratch.
func (r *ShotLog) flush() error {
	if r.file == nil {
		return fmt.Errorf("file already closed")
	}

	var b strings.Builder

	b.WriteString("# seabattle transcript\n")
	b.WriteString(fmt.Sprintf("id: %s\n", r.ID))
	b.WriteString(fmt.Sprintf("date: %s\n", r.Date))
	b.WriteString(fmt.Sprintf("size: %d\n", r.BoardSize))
	b.WriteString(fmt.Sprintf("seed: %d\n", r.Seed))
	b.WriteString(fmt.Sprintf("result: %s\n", r.Result))

	for _, side := range []types.Side{types.SideHuman, types.SideComputer} {
		ships, ok := r.fleets[side]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("\n[%s fleet]\n", side))
		for _, s := range ships {
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	if len(r.shots) > 0 {
		b.WriteString("\n[shots]\n")
		for _, s := range r.shots {
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	// Rewrite file from start
	if _, err := r.file.Seek(0, 0); err != nil {
		return err
	}
	if err := r.file.Truncate(0); err != nil {
		return err
	}
	if _, err := r.file.WriteString(b.String()); err != nil {
		return err
	}
	return r.file.Sync()
}
