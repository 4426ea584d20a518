package tetris

import "testing"

func TestCommandCodesRoundTrip(t *testing.T) {
	seen := make(map[byte]Command)
	for c := CommandNewGame; c <= CommandTick; c++ {
		code := c.Code()
		if prev, ok := seen[code]; ok {
			t.Errorf("%v and %v share code %q", prev, c, code)
		}
		seen[code] = c

		got, err := ParseCommand(code)
		if err != nil {
			t.Errorf("ParseCommand(%q) failed: %v", code, err)
			continue
		}
		if got != c {
			t.Errorf("ParseCommand(%q) = %v, expected %v", code, got, c)
		}
	}
}

func TestParseCommandUnknown(t *testing.T) {
	if _, err := ParseCommand('x'); err == nil {
		t.Error("ParseCommand('x') succeeded, expected error")
	}
}

func TestCommandString(t *testing.T) {
	if CommandHardDrop.String() != "HardDrop" {
		t.Errorf("String() = %q, expected %q", CommandHardDrop.String(), "HardDrop")
	}
	if Command(99).String() != "Unknown" || Command(99).Code() != '?' {
		t.Error("out-of-range command not reported as unknown")
	}
}

func TestApplyTogglePause(t *testing.T) {
	g := New(sourceFor(KindO), Options{})

	g.Apply(CommandTogglePause)
	if g.Phase() != PhaseReady {
		t.Errorf("TogglePause on Ready: Phase() = %v, expected %v", g.Phase(), PhaseReady)
	}

	g.Apply(CommandStart)
	g.Apply(CommandTogglePause)
	if g.Phase() != PhasePaused {
		t.Errorf("Phase() = %v, expected %v", g.Phase(), PhasePaused)
	}
	g.Apply(CommandTogglePause)
	if g.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected %v", g.Phase(), PhaseRunning)
	}
}

func TestApplyDispatch(t *testing.T) {
	tests := []struct {
		cmd   Command
		check func(g *Game) bool
	}{
		{CommandMoveLeft, func(g *Game) bool { return g.Player().Pos.X == 3 }},
		{CommandMoveRight, func(g *Game) bool { return g.Player().Pos.X == 5 }},
		{CommandTick, func(g *Game) bool { return g.Player().Pos.Y == 1 }},
		{CommandSoftDrop, func(g *Game) bool { return g.Player().Pos.Y == 1 }},
		{CommandHardDrop, func(g *Game) bool { return g.Locking() }},
		{CommandRotateCW, func(g *Game) bool {
			return g.Player().Tetromino.Shape.Equal(RotateMatrix(Catalog(KindT).Shape, Clockwise))
		}},
		{CommandRotateCCW, func(g *Game) bool {
			return g.Player().Tetromino.Shape.Equal(RotateMatrix(Catalog(KindT).Shape, CounterClockwise))
		}},
		{CommandPause, func(g *Game) bool { return g.Phase() == PhasePaused }},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			g := startedGame(KindT)
			g.Apply(tt.cmd)
			if !tt.check(g) {
				t.Errorf("Apply(%v) did not have the expected effect", tt.cmd)
			}
		})
	}
}
