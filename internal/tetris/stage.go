package tetris

// Stage dimensions. Row 0 is the top.
const (
	StageWidth  = 10
	StageHeight = 20
)

// CellStatus tags what occupies a stage cell.
type CellStatus uint8

const (
	CellEmpty  CellStatus = iota
	CellClear             // drawn by the falling piece, not locked
	CellMerged            // part of a locked piece
)

// String returns a short name for the status.
func (s CellStatus) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellClear:
		return "clear"
	case CellMerged:
		return "merged"
	default:
		return "unknown"
	}
}

// Cell is one stage position. Value is the colour id of the piece (0 = empty).
type Cell struct {
	Value  uint8
	Status CellStatus
}

// Row is one horizontal line of the stage.
type Row [StageWidth]Cell

// Stage is the playfield grid. It is an array value: assigning it copies it.
type Stage [StageHeight]Row

// NewStage returns an empty stage.
func NewStage() Stage {
	return Stage{}
}

// FlushTransient erases every Clear cell, leaving merged cells alone.
func FlushTransient(stage Stage) Stage {
	for y := range stage {
		for x := range stage[y] {
			if stage[y][x].Status == CellClear {
				stage[y][x] = Cell{}
			}
		}
	}
	return stage
}

// PaintPiece writes the player's non-zero shape cells into the stage, tagged
// Merged when the player has collided and Clear otherwise. The caller must
// have checked the piece is in bounds.
func PaintPiece(stage Stage, p Player) Stage {
	status := CellClear
	if p.Collided {
		status = CellMerged
	}
	for y, row := range p.Tetromino.Shape {
		for x, v := range row {
			if v == 0 {
				continue
			}
			stage[p.Pos.Y+y][p.Pos.X+x] = Cell{Value: p.Tetromino.Color, Status: status}
		}
	}
	return stage
}

// SweepRows removes every full row, inserting an empty row at the top for
// each one removed. Returns the new stage and how many rows were cleared.
func SweepRows(stage Stage) (Stage, int) {
	var out Stage
	kept := make([]Row, 0, StageHeight)
	cleared := 0
	for _, row := range stage {
		if rowFull(row) {
			cleared++
			continue
		}
		kept = append(kept, row)
	}
	// Rows 0..cleared-1 stay empty.
	copy(out[cleared:], kept)
	return out, cleared
}

func rowFull(row Row) bool {
	for _, c := range row {
		if c.Value == 0 {
			return false
		}
	}
	return true
}

// InBounds reports whether (x, y) is a stage position.
func InBounds(x, y int) bool {
	return x >= 0 && x < StageWidth && y >= 0 && y < StageHeight
}

// CountStatus returns how many cells carry the given status.
func (s Stage) CountStatus(status CellStatus) int {
	n := 0
	for y := range s {
		for x := range s[y] {
			if s[y][x].Status == status {
				n++
			}
		}
	}
	return n
}
