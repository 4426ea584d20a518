package tetris

import "strings"

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Stage          Stage
	Piece          Kind
	PiecePos       Point
	Locking        bool
	Score          int
	RowsCleared    int
	Level          int
	DropIntervalMs int
	TimerActive    bool
	Phase          Phase
}

// Snapshot returns the current state. The stage is copied, never shared.
func (g *Game) Snapshot() Snapshot {
	interval, active := g.DropInterval()
	if !active {
		interval = g.dropIntervalMs
	}
	return Snapshot{
		Stage:          g.stage,
		Piece:          g.player.Tetromino.Kind,
		PiecePos:       g.player.Pos,
		Locking:        g.player.Collided,
		Score:          g.score,
		RowsCleared:    g.rowsCleared,
		Level:          g.level,
		DropIntervalMs: interval,
		TimerActive:    active,
		Phase:          g.phase,
	}
}

// String draws the stage as text: '.' empty, piece letter for a falling
// cell, '#' for a locked cell.
func (s Stage) String() string {
	var sb strings.Builder
	sb.Grow(StageHeight * (StageWidth + 1))
	for y := range s {
		for x := range s[y] {
			c := s[y][x]
			switch c.Status {
			case CellMerged:
				sb.WriteByte('#')
			case CellClear:
				sb.WriteString(colorKind(c.Value).String())
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// colorKind maps a cell colour id back to its catalog kind.
func colorKind(color uint8) Kind {
	for _, t := range catalog {
		if t.Color == color {
			return t.Kind
		}
	}
	return KindNone
}
