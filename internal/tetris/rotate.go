package tetris

// Direction is a rotation direction.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// RotateMatrix returns shape rotated a quarter turn. It transposes, then
// reverses each row for clockwise or the row order for counter-clockwise.
// Only square matrices rotate correctly.
func RotateMatrix(shape Shape, dir Direction) Shape {
	n := len(shape)
	out := make(Shape, n)
	for y := range out {
		out[y] = make([]uint8, n)
		for x := range out[y] {
			out[y][x] = shape[x][y]
		}
	}

	if dir == Clockwise {
		for _, row := range out {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		return out
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// RotatePlayer rotates a copy of p and nudges it sideways by +1, -2, +3, -4...
// until it fits. Once the next nudge would exceed the shape width the rotation
// is abandoned and p is returned unchanged, along with false.
func RotatePlayer(p Player, stage Stage, dir Direction) (Player, bool) {
	rotated := p.Clone()
	rotated.Tetromino.Shape = RotateMatrix(rotated.Tetromino.Shape, dir)

	width := rotated.Tetromino.Shape.Width()
	offset := 1
	for CheckCollision(rotated, stage, 0, 0) {
		rotated.Pos.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
		if offset > width {
			return p, false
		}
	}
	return rotated, true
}
