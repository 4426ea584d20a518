// Package blocks adapts the tetris engine to the arcade platform.
// It turns host ticks into gravity ticks, maps platform actions to engine
// commands, journals every command for replay, and draws the well.
package blocks

import (
	"math/rand"

	"github.com/fredjuma007/our-book-club-sub000/internal/config"
	"github.com/fredjuma007/our-book-club-sub000/internal/core"
	"github.com/fredjuma007/our-book-club-sub000/internal/replay"
	"github.com/fredjuma007/our-book-club-sub000/internal/tetris"
)

// Layout requirements for the well plus the side panel.
const (
	MinScreenW = 44
	MinScreenH = 22
)

// bannerSeconds is how long the level-up banner stays visible.
const bannerSeconds = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored;
// the CLI validates them before calling this.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return
	}
	difficultyPreset = p
}

// Game implements the platform game contract on top of a tetris engine.
type Game struct {
	cfg       config.BlocksConfig
	hasConfig bool
	runtime   core.RuntimeConfig

	engine  *tetris.Game
	opts    tetris.Options
	seed    int64
	journal []tetris.Command

	msPerTick int // host tick length
	elapsedMs int // time since the last gravity tick

	levelUpTicks int // banner countdown
	lastClear    int // rows removed by the latest sweep
	clearTicks   int

	tooSmall bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed configuration, skipping file lookup.
func NewWithConfig(cfg config.BlocksConfig) *Game {
	return &Game{cfg: cfg, hasConfig: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset initializes or restarts the game with a fresh engine seeded from cfg.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.hasConfig {
		cfg, err := config.LoadBlocks(configPath)
		if err != nil {
			cfg = config.DefaultBlocksConfig()
		}
		config.ApplyBlocksPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.opts = tetris.Options{
		StartLevel:        g.cfg.Gameplay.StartLevel,
		MinDropIntervalMs: g.cfg.Timing.MinDropIntervalMs,
	}
	g.seed = runtime.Seed
	g.engine = tetris.New(rand.New(rand.NewSource(g.seed)), g.opts)
	g.journal = g.journal[:0]

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.msPerTick = 1000 / tickRate
	if g.msPerTick < 1 {
		g.msPerTick = 1
	}
	g.elapsedMs = 0
	g.levelUpTicks = 0
	g.lastClear = 0
	g.clearTicks = 0

	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
}

// Resize updates the screen-size check without touching game state.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < MinScreenW || h < MinScreenH
}

// Step advances the game by one host tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.levelUpTicks > 0 {
		g.levelUpTicks--
	}
	if g.clearTicks > 0 {
		g.clearTicks--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if cmd, ok := g.commandFor(a); ok {
			g.apply(cmd)
		}
	}

	// A collided piece settles on the very next tick.
	if g.engine.Locking() {
		g.apply(tetris.CommandTick)
		return core.StepResult{State: g.State()}
	}

	interval, active := g.engine.DropInterval()
	if !active {
		g.elapsedMs = 0
		return core.StepResult{State: g.State()}
	}

	g.elapsedMs += g.msPerTick
	if g.elapsedMs >= interval {
		g.elapsedMs = 0
		g.apply(tetris.CommandTick)
	}

	return core.StepResult{State: g.State()}
}

// commandFor maps a platform action to an engine command for the current phase.
func (g *Game) commandFor(a core.Action) (tetris.Command, bool) {
	phase := g.engine.Phase()

	switch a {
	case core.ActionConfirm:
		if phase == tetris.PhaseReady {
			return tetris.CommandNewGame, true
		}
	case core.ActionPause:
		return tetris.CommandTogglePause, true
	}

	if phase != tetris.PhaseRunning {
		return 0, false
	}

	switch a {
	case core.ActionLeft:
		return tetris.CommandMoveLeft, true
	case core.ActionRight:
		return tetris.CommandMoveRight, true
	case core.ActionDown:
		return tetris.CommandSoftDrop, true
	case core.ActionUp, core.ActionRotate:
		return tetris.CommandRotateCW, true
	case core.ActionRotateBack:
		return tetris.CommandRotateCCW, true
	case core.ActionDrop:
		return tetris.CommandHardDrop, true
	}
	return 0, false
}

// apply runs one command, journals it and reacts to the events it produced.
func (g *Game) apply(cmd tetris.Command) {
	before := g.engine.Phase()
	g.engine.Apply(cmd)
	g.journal = append(g.journal, cmd)

	for _, e := range g.engine.Events() {
		switch e.Type {
		case tetris.EventLevelUp:
			g.levelUpTicks = bannerSeconds * 1000 / g.msPerTick
		case tetris.EventRowsCleared:
			g.lastClear = e.Rows
			g.clearTicks = 1000 / g.msPerTick
		case tetris.EventTimerReset:
			g.elapsedMs = 0
		}
	}

	// Gravity restarts from zero after pause, resume or a new game.
	if after := g.engine.Phase(); after != before {
		g.elapsedMs = 0
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.engine.Phase()
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		Lines:    g.engine.RowsCleared(),
		GameOver: phase == tetris.PhaseGameOver,
		Paused:   phase == tetris.PhasePaused,
	}
}

// Snapshot returns the engine state for rendering and tests.
func (g *Game) Snapshot() tetris.Snapshot {
	return g.engine.Snapshot()
}

// Run packages the game played so far as a replayable run.
func (g *Game) Run() replay.Run {
	cmds := make([]tetris.Command, len(g.journal))
	copy(cmds, g.journal)
	return replay.Run{
		Seed:              g.seed,
		StartLevel:        g.opts.StartLevel,
		MinDropIntervalMs: g.opts.MinDropIntervalMs,
		Commands:          cmds,
		Score:             g.engine.Score(),
		Lines:             g.engine.RowsCleared(),
		Level:             g.engine.Level(),
	}
}
