package tui

import (
	"github.com/fredjuma007/our-book-club-sub000/internal/core"
	"github.com/fredjuma007/our-book-club-sub000/internal/replay"
)

// Game is the contract between the terminal host and a game.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier, used in screenshot names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again on restart with a fresh seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without losing progress. Other games are reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// Recordable is implemented by games that can hand over a replayable run.
type Recordable interface {
	Run() replay.Run
}
