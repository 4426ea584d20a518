package tetris

import "testing"

func TestCheckCollision(t *testing.T) {
	stage := NewStage()
	stage[10][4] = Cell{Value: 2, Status: CellMerged}
	stage[5][0] = Cell{Value: 1, Status: CellClear}

	o := func(x, y int) Player {
		p := SpawnPlayer(Catalog(KindO))
		p.Pos = Point{X: x, Y: y}
		return p
	}

	tests := []struct {
		name     string
		p        Player
		dx, dy   int
		expected bool
	}{
		{"open space", o(4, 0), 0, 0, false},
		{"left wall", o(0, 0), -1, 0, true},
		{"right wall", o(8, 0), 1, 0, true},
		{"floor", o(4, 18), 0, 1, true},
		{"resting on floor", o(4, 18), 0, 0, false},
		{"merged below", o(3, 8), 0, 1, true},
		{"merged beside", o(2, 9), 0, 0, false},
		{"merged reached", o(2, 9), 1, 0, true},
		{"clear cells ignored", o(0, 4), 0, 0, false},
		{"above top", o(4, 0), 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckCollision(tt.p, stage, tt.dx, tt.dy)
			if got != tt.expected {
				t.Errorf("CheckCollision(%v, %d, %d) = %v, expected %v", tt.p.Pos, tt.dx, tt.dy, got, tt.expected)
			}
		})
	}
}

func TestCheckCollisionIgnoresEmptyShapeCells(t *testing.T) {
	// I's filled column is 1, so x = -1 puts it at column 0.
	p := SpawnPlayer(Catalog(KindI))
	p.Pos = Point{X: -1, Y: 0}

	if CheckCollision(p, NewStage(), 0, 0) {
		t.Error("empty shape columns outside the stage caused a collision")
	}
}
