package tetris

// Point is a stage coordinate.
type Point struct {
	X, Y int
}

// Spawn offset for every new piece.
const (
	SpawnX = 4
	SpawnY = 0
)

// Player is the active falling piece. Pos is the top-left of its shape matrix.
type Player struct {
	Pos       Point
	Tetromino Tetromino
	Collided  bool
}

// SpawnPlayer places a fresh copy of t at the spawn offset.
func SpawnPlayer(t Tetromino) Player {
	return Player{
		Pos:       Point{X: SpawnX, Y: SpawnY},
		Tetromino: t.Clone(),
	}
}

// Clone returns a player whose shape can be mutated independently.
func (p Player) Clone() Player {
	p.Tetromino = p.Tetromino.Clone()
	return p
}
