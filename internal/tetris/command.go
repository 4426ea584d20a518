package tetris

import "fmt"

// Command is the closed set of inputs the game accepts.
type Command int

const (
	CommandNewGame Command = iota // reset and start
	CommandStart
	CommandPause
	CommandResume
	CommandTogglePause
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDrop
	CommandHardDrop
	CommandRotateCW
	CommandRotateCCW
	CommandTick // timer-driven Drop
)

var commandCodes = [...]byte{
	CommandNewGame:     'N',
	CommandStart:       'S',
	CommandPause:       'P',
	CommandResume:      'U',
	CommandTogglePause: 'p',
	CommandMoveLeft:    'L',
	CommandMoveRight:   'R',
	CommandSoftDrop:    'D',
	CommandHardDrop:    'H',
	CommandRotateCW:    'C',
	CommandRotateCCW:   'W',
	CommandTick:        'T',
}

var commandNames = [...]string{
	CommandNewGame:     "NewGame",
	CommandStart:       "Start",
	CommandPause:       "Pause",
	CommandResume:      "Resume",
	CommandTogglePause: "TogglePause",
	CommandMoveLeft:    "MoveLeft",
	CommandMoveRight:   "MoveRight",
	CommandSoftDrop:    "SoftDrop",
	CommandHardDrop:    "HardDrop",
	CommandRotateCW:    "RotateCW",
	CommandRotateCCW:   "RotateCCW",
	CommandTick:        "Tick",
}

// String returns the command name.
func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "Unknown"
	}
	return commandNames[c]
}

// Code returns the one-byte code used when journaling commands.
func (c Command) Code() byte {
	if c < 0 || int(c) >= len(commandCodes) {
		return '?'
	}
	return commandCodes[c]
}

// ParseCommand maps a journal code back to its command.
func ParseCommand(code byte) (Command, error) {
	for c, b := range commandCodes {
		if b == code {
			return Command(c), nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown command code %q", code)
}

// Apply runs one command to completion.
func (g *Game) Apply(cmd Command) {
	switch cmd {
	case CommandNewGame:
		g.Reset()
		g.Start()
	case CommandStart:
		g.Start()
	case CommandPause:
		g.Pause()
	case CommandResume:
		g.Resume()
	case CommandTogglePause:
		if g.phase == PhasePaused {
			g.Resume()
		} else {
			g.Pause()
		}
	case CommandMoveLeft:
		g.Move(-1)
	case CommandMoveRight:
		g.Move(1)
	case CommandSoftDrop:
		g.SoftDrop()
	case CommandHardDrop:
		g.HardDrop()
	case CommandRotateCW:
		g.Rotate(Clockwise)
	case CommandRotateCCW:
		g.Rotate(CounterClockwise)
	case CommandTick:
		g.Drop()
	}
}
