// Package replay journals finished games to SQLite and re-executes them.
// A run is fully described by its seed, engine options and command stream;
// the engine is deterministic, so replaying the stream reproduces the game.
package replay

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/fredjuma007/our-book-club-sub000/internal/tetris"
)

var (
	// ErrRunNotFound is returned when no run has the requested ID.
	ErrRunNotFound = errors.New("replay: run not found")

	// ErrDiverged is returned when a re-executed run ends differently from
	// what was recorded.
	ErrDiverged = errors.New("replay: run diverged from recording")
)

// Run is one recorded game.
type Run struct {
	ID                int64
	Player            string // SSH user or "local"
	Seed              int64
	StartLevel        int
	MinDropIntervalMs int
	Commands          []tetris.Command
	Score             int
	Lines             int
	Level             int
	CreatedAt         time.Time
}

// Options returns the engine options the run was played with.
func (r Run) Options() tetris.Options {
	return tetris.Options{
		StartLevel:        r.StartLevel,
		MinDropIntervalMs: r.MinDropIntervalMs,
	}
}

// EncodeCommands packs a command stream into one code byte per command.
func EncodeCommands(cmds []tetris.Command) string {
	var sb strings.Builder
	sb.Grow(len(cmds))
	for _, c := range cmds {
		sb.WriteByte(c.Code())
	}
	return sb.String()
}

// DecodeCommands unpacks a stream written by EncodeCommands.
func DecodeCommands(s string) ([]tetris.Command, error) {
	cmds := make([]tetris.Command, 0, len(s))
	for i := 0; i < len(s); i++ {
		c, err := tetris.ParseCommand(s[i])
		if err != nil {
			return nil, fmt.Errorf("replay: command %d: %w", i, err)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// Replay runs the command stream on a fresh engine and returns the final snapshot.
func Replay(r Run) tetris.Snapshot {
	g := tetris.New(rand.New(rand.NewSource(r.Seed)), r.Options())
	for _, c := range r.Commands {
		g.Apply(c)
	}
	return g.Snapshot()
}

// Verify replays r and checks the outcome matches the recorded result.
func Verify(r Run) error {
	snap := Replay(r)
	if snap.Score != r.Score || snap.RowsCleared != r.Lines || snap.Level != r.Level {
		return fmt.Errorf("%w: recorded score=%d lines=%d level=%d, replayed score=%d lines=%d level=%d",
			ErrDiverged, r.Score, r.Lines, r.Level, snap.Score, snap.RowsCleared, snap.Level)
	}
	return nil
}
