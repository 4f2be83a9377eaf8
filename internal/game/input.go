package game

import "strings"

// InputKind tags what a line of player input turned out to be.
type InputKind int

const (
	InputGuess   InputKind = iota // a candidate code, not yet validated
	InputCommand                  // one of the reserved keywords
)

// Command is a mid-session keyword.
type Command int

const (
	CmdSave  Command = iota + 1 // bank elapsed time, persist, suspend
	CmdCheat                    // toggle secret exposure
	CmdQuit                     // abandon without saving
)

func (c Command) String() string {
	switch c {
	case CmdSave:
		return "save"
	case CmdCheat:
		return "cheat"
	case CmdQuit:
		return "quit"
	}
	return "unknown"
}

var commands = map[string]Command{
	"save":  CmdSave,
	"cheat": CmdCheat,
	"quit":  CmdQuit,
}

// Input is a turn input, classified once at the input boundary.
type Input struct {
	Kind    InputKind
	Command Command // set when Kind == InputCommand
	Raw     string  // trimmed guess text when Kind == InputGuess
}

// ParseInput classifies a raw line. Keywords are matched case-insensitively;
// anything else is a guess attempt for the validator to judge.
func ParseInput(line string) Input {
	s := strings.TrimSpace(line)
	if c, ok := commands[strings.ToLower(s)]; ok {
		return Input{Kind: InputCommand, Command: c}
	}
	return GuessInput(s)
}

// GuessInput builds a guess input directly.
func GuessInput(raw string) Input { return Input{Kind: InputGuess, Raw: raw} }
