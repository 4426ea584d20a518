package tetris

// Phase is the game's lifecycle state.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Scoring and pacing constants.
const (
	RowsPerLevel     = 10
	PointsPerRow     = 100
	BaseDropInterval = 1000 // ms at level 1
)

// Options tune a game. The zero value plays like the classic game.
type Options struct {
	// StartLevel is the level a new game begins at. Values below 1 mean 1.
	StartLevel int

	// MinDropIntervalMs floors the drop interval. 0 leaves 1000/level
	// unbounded, so very high levels reach a 0 ms interval.
	MinDropIntervalMs int
}

func (o Options) normalized() Options {
	if o.StartLevel < 1 {
		o.StartLevel = 1
	}
	if o.MinDropIntervalMs < 0 {
		o.MinDropIntervalMs = 0
	}
	return o
}

// Game owns the stage and the active piece and runs the drop loop.
// It is not safe for concurrent use; hosts serialise ticks and commands.
type Game struct {
	rng  RandomSource
	opts Options

	stage  Stage
	player Player

	score          int
	rowsCleared    int
	level          int
	dropIntervalMs int
	phase          Phase

	events []Event
}

// New creates a game in the Ready phase. rng supplies piece selection.
func New(rng RandomSource, opts Options) *Game {
	g := &Game{
		rng:  rng,
		opts: opts.normalized(),
	}
	g.Reset()
	return g
}

// Reset discards all state and returns to Ready.
func (g *Game) Reset() {
	g.stage = NewStage()
	g.player = Player{Tetromino: Catalog(KindNone)}
	g.score = 0
	g.rowsCleared = 0
	g.level = g.opts.StartLevel
	g.dropIntervalMs = g.intervalFor(g.level)
	g.phase = PhaseReady
	g.events = nil
}

// Start moves a Ready game to Running and spawns the first piece.
func (g *Game) Start() {
	if g.phase != PhaseReady {
		return
	}
	g.phase = PhaseRunning
	g.dropIntervalMs = g.intervalFor(g.level)
	g.spawn()
}

// Pause suspends a running game. No ticks accumulate while paused.
func (g *Game) Pause() {
	if g.phase != PhaseRunning {
		return
	}
	g.phase = PhasePaused
}

// Resume continues a paused game; the interval is recomputed from the level.
func (g *Game) Resume() {
	if g.phase != PhasePaused {
		return
	}
	g.phase = PhaseRunning
	g.dropIntervalMs = g.intervalFor(g.level)
}

// Drop is one gravity tick. A piece that collided on the previous tick is
// merged into the stage first, and that consumes the tick.
func (g *Game) Drop() {
	if g.phase != PhaseRunning {
		return
	}

	if g.player.Collided {
		g.settle()
		return
	}

	if g.rowsCleared >= g.level*RowsPerLevel {
		g.level++
		g.dropIntervalMs = g.intervalFor(g.level)
		g.emit(Event{Type: EventLevelUp, Level: g.level, DropIntervalMs: g.dropIntervalMs})
	}

	if !CheckCollision(g.player, g.stage, 0, 1) {
		g.player.Pos.Y++
		g.player.Collided = false
		g.refresh()
		return
	}

	if g.player.Pos.Y < 1 {
		g.gameOver()
		return
	}
	g.player.Collided = true
}

// SoftDrop advances the piece one row and asks the host to restart its timer.
func (g *Game) SoftDrop() {
	if g.phase != PhaseRunning {
		return
	}
	g.Drop()
	if g.phase == PhaseRunning {
		g.emit(Event{Type: EventTimerReset})
	}
}

// HardDrop moves the piece straight to its resting row and marks it collided.
// The merge happens on the next Drop.
func (g *Game) HardDrop() {
	if g.phase != PhaseRunning || g.player.Collided {
		return
	}

	dy := 0
	for !CheckCollision(g.player, g.stage, 0, dy+1) {
		dy++
	}
	if dy == 0 && g.player.Pos.Y < 1 {
		g.gameOver()
		return
	}

	g.player.Pos.Y += dy
	g.player.Collided = true
	g.refresh()
}

// Move shifts the piece one column left (dir < 0) or right (dir > 0) if free.
func (g *Game) Move(dir int) {
	if g.phase != PhaseRunning || g.player.Collided || dir == 0 {
		return
	}
	if dir > 0 {
		dir = 1
	} else {
		dir = -1
	}
	if CheckCollision(g.player, g.stage, dir, 0) {
		return
	}
	g.player.Pos.X += dir
	g.refresh()
}

// Rotate turns the piece; a rotation that cannot be kicked into place is dropped.
func (g *Game) Rotate(dir Direction) {
	if g.phase != PhaseRunning || g.player.Collided {
		return
	}
	rotated, ok := RotatePlayer(g.player, g.stage, dir)
	if !ok {
		return
	}
	g.player = rotated
	g.refresh()
}

// DropInterval returns the current gravity interval in milliseconds. ok is
// false while the timer is inactive (Ready, Paused, GameOver).
func (g *Game) DropInterval() (ms int, ok bool) {
	if g.phase != PhaseRunning {
		return 0, false
	}
	return g.dropIntervalMs, true
}

// Events drains the events emitted since the previous call.
func (g *Game) Events() []Event {
	ev := g.events
	g.events = nil
	return ev
}

// Phase returns the lifecycle state.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Level returns the current level.
func (g *Game) Level() int { return g.level }

// RowsCleared returns the cumulative number of cleared rows.
func (g *Game) RowsCleared() int { return g.rowsCleared }

// Locking reports whether the active piece has collided and is waiting for
// the next Drop to merge it.
func (g *Game) Locking() bool {
	return g.phase == PhaseRunning && g.player.Collided
}

// Player returns a copy of the active piece.
func (g *Game) Player() Player { return g.player.Clone() }

// settle merges the collided piece, sweeps full rows, scores and spawns.
func (g *Game) settle() {
	g.stage = PaintPiece(FlushTransient(g.stage), g.player)
	g.emit(Event{Type: EventPieceLocked})

	var rows int
	g.stage, rows = SweepRows(g.stage)
	if rows > 0 {
		points := rows * PointsPerRow * g.level
		g.score += points
		g.rowsCleared += rows
		g.emit(Event{Type: EventRowsCleared, Rows: rows, Points: points, Score: g.score})
	}

	g.spawn()
}

// spawn replaces the active piece with a random one at the spawn offset. A
// piece that overlaps locked cells on arrival ends the game.
func (g *Game) spawn() {
	g.player = SpawnPlayer(RandomTetromino(g.rng))
	if CheckCollision(g.player, g.stage, 0, 0) {
		g.gameOver()
		return
	}
	g.refresh()
}

func (g *Game) gameOver() {
	g.phase = PhaseGameOver
	g.emit(Event{Type: EventGameOver, Score: g.score, Level: g.level})
}

// refresh redraws the falling piece: erase its old footprint, paint the new one.
func (g *Game) refresh() {
	g.stage = FlushTransient(g.stage)
	if CheckCollision(g.player, g.stage, 0, 0) {
		return
	}
	p := g.player
	p.Collided = false
	g.stage = PaintPiece(g.stage, p)
}

func (g *Game) intervalFor(level int) int {
	ms := BaseDropInterval / level
	if g.opts.MinDropIntervalMs > 0 && ms < g.opts.MinDropIntervalMs {
		ms = g.opts.MinDropIntervalMs
	}
	return ms
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}
