package tetris

// seqSource replays a fixed list of values, cycling when exhausted.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

// sourceFor returns a source that yields the given kinds in order.
func sourceFor(kinds ...Kind) *seqSource {
	vals := make([]int, len(kinds))
	for i, k := range kinds {
		vals[i] = int(k) - 1
	}
	return &seqSource{vals: vals}
}

// startedGame returns a running game whose pieces come from kinds.
func startedGame(kinds ...Kind) *Game {
	g := New(sourceFor(kinds...), Options{})
	g.Start()
	g.Events()
	return g
}

// fillRow locks every cell of row y except the listed columns.
func fillRow(stage *Stage, y int, skip ...int) {
	for x := 0; x < StageWidth; x++ {
		hole := false
		for _, s := range skip {
			if s == x {
				hole = true
			}
		}
		if !hole {
			stage[y][x] = Cell{Value: 2, Status: CellMerged}
		}
	}
}

func hasEvent(events []Event, t EventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}
