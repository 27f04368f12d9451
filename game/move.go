package game

import "fmt"

// MoveKind represents the type of move a player can make.
type MoveKind int

const (
	MoveAnt MoveKind = iota
	Build
	EndTurn
)

func (k MoveKind) String() string {
	switch k {
	case MoveAnt:
		return "move"
	case Build:
		return "build"
	case EndTurn:
		return "end"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(k))
	}
}

// Move represents a move in the game. Moves are comparable so a move returned by
// a player can be matched against the legal moves of a state.
type Move struct {
	Kind  MoveKind
	From  Coord   // Ant to move, or the anthill to build on
	To    Coord   // Destination of an ant move
	Build AntKind // Ant to build
}

func (m Move) IsTurnEnding() bool {
	return m.Kind == EndTurn
}

func (m Move) String() string {
	switch m.Kind {
	case MoveAnt:
		return fmt.Sprintf("move %v->%v", m.From, m.To)
	case Build:
		return fmt.Sprintf("build %v at %v", m.Build, m.From)
	default:
		return m.Kind.String()
	}
}
