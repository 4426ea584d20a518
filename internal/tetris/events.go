package tetris

// EventType identifies something the host may want to react to.
type EventType int

const (
	EventLevelUp     EventType = iota // Level and DropIntervalMs changed
	EventPieceLocked                  // a piece merged into the stage
	EventRowsCleared                  // Rows were swept, Points added to score
	EventTimerReset                   // host should restart its drop timer
	EventGameOver                     // terminal; Score is the final score
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventLevelUp:
		return "LevelUp"
	case EventPieceLocked:
		return "PieceLocked"
	case EventRowsCleared:
		return "RowsCleared"
	case EventTimerReset:
		return "TimerReset"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is emitted by the game loop and drained by the host with Events.
type Event struct {
	Type           EventType
	Level          int
	DropIntervalMs int
	Rows           int
	Points         int
	Score          int
}
