package tetris

// CheckCollision reports whether the player's shape, shifted by (dx, dy),
// would leave the stage or overlap a merged cell. Clear cells are the piece's
// own footprint and never collide.
func CheckCollision(p Player, stage Stage, dx, dy int) bool {
	for y, row := range p.Tetromino.Shape {
		for x, v := range row {
			if v == 0 {
				continue
			}
			tx := x + p.Pos.X + dx
			ty := y + p.Pos.Y + dy
			if !InBounds(tx, ty) {
				return true
			}
			if stage[ty][tx].Status == CellMerged {
				return true
			}
		}
	}
	return false
}
