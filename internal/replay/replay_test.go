package replay_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredjuma007/our-book-club-sub000/internal/replay"
	"github.com/fredjuma007/our-book-club-sub000/internal/tetris"
)

// playRun plays cmds on a fresh engine and packages the result as a run.
func playRun(seed int64, opts tetris.Options, cmds []tetris.Command) replay.Run {
	g := tetris.New(rand.New(rand.NewSource(seed)), opts)
	for _, c := range cmds {
		g.Apply(c)
	}
	return replay.Run{
		Player:            "tester",
		Seed:              seed,
		StartLevel:        opts.StartLevel,
		MinDropIntervalMs: opts.MinDropIntervalMs,
		Commands:          cmds,
		Score:             g.Score(),
		Lines:             g.RowsCleared(),
		Level:             g.Level(),
	}
}

// longGame drops pieces until the stack tops out.
func longGame() []tetris.Command {
	cmds := []tetris.Command{tetris.CommandNewGame}
	moves := []tetris.Command{
		tetris.CommandMoveLeft, tetris.CommandMoveRight, tetris.CommandRotateCW,
		tetris.CommandMoveLeft, tetris.CommandMoveLeft, tetris.CommandMoveRight,
	}
	for i := 0; i < 120; i++ {
		for j := 0; j <= i%4; j++ {
			cmds = append(cmds, moves[(i+j)%len(moves)])
		}
		cmds = append(cmds, tetris.CommandHardDrop, tetris.CommandTick)
	}
	return cmds
}

func TestEncodeDecodeCommands(t *testing.T) {
	cmds := longGame()

	encoded := replay.EncodeCommands(cmds)
	assert.Len(t, encoded, len(cmds))

	decoded, err := replay.DecodeCommands(encoded)
	require.NoError(t, err)
	assert.Equal(t, cmds, decoded)
}

func TestDecodeCommandsRejectsUnknownCode(t *testing.T) {
	_, err := replay.DecodeCommands("NLx")
	assert.Error(t, err)
}

func TestDecodeCommandsEmpty(t *testing.T) {
	cmds, err := replay.DecodeCommands("")
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestReplayReproducesGame(t *testing.T) {
	run := playRun(99, tetris.Options{StartLevel: 2}, longGame())

	snap := replay.Replay(run)
	assert.Equal(t, run.Score, snap.Score)
	assert.Equal(t, run.Lines, snap.RowsCleared)
	assert.Equal(t, run.Level, snap.Level)
	assert.Equal(t, tetris.PhaseGameOver, snap.Phase)

	assert.Equal(t, snap, replay.Replay(run), "replay must be deterministic")
}

func TestVerify(t *testing.T) {
	run := playRun(5, tetris.Options{}, longGame())
	assert.NoError(t, replay.Verify(run))

	tampered := run
	tampered.Score += 100
	assert.ErrorIs(t, replay.Verify(tampered), replay.ErrDiverged)

	reseeded := run
	reseeded.Seed++
	reseeded.Level = run.Level + 1
	assert.ErrorIs(t, replay.Verify(reseeded), replay.ErrDiverged)
}

func TestRunOptions(t *testing.T) {
	run := replay.Run{StartLevel: 3, MinDropIntervalMs: 50}
	assert.Equal(t, tetris.Options{StartLevel: 3, MinDropIntervalMs: 50}, run.Options())
}
