package game

// Board and setup constants of the ant-colony game.
const (
	BoardSize = 10
	FoodGoal  = 11 // Food needed to win

	ConstructionsPerPlayer = 11 // Anthill, tunnel and 9 grass placed in setup phase 1
	FoodPerPlayer          = 2  // Food placed on the opponent's half in setup phase 2
)

// Player seats. NoWinner is reported while a game is in progress.
const (
	PlayerOne = 0
	PlayerTwo = 1
	NoWinner  = -1
)

type Phase int

const (
	SetupPhase1 Phase = iota // Own constructions
	SetupPhase2              // Food on the opponent's half
	PlayPhase
)

// State is the narrow view of a game consumed by agents. Implementations must
// be immutable: Play returns a new State and never mutates its receiver.
type State interface {
	WhoseTurn() int
	Phase() Phase
	LegalMoves() []Move
	Play(Move) State
	// StepsToReach is the movement cost between two cells.
	StepsToReach(from, to Coord) int

	Inventory(player int) Inventory
	// Ants lists the player's ants, optionally filtered by kind.
	Ants(player int, kinds ...AntKind) []Ant
	// Constructions lists the player's constructions, optionally filtered by kind.
	Constructions(player int, kinds ...ConstrKind) []Construction
	Food() []Construction
	Queen(player int) (Ant, bool)
	Anthill(player int) (Construction, bool)
	IsEmpty(c Coord) bool
	Winner() int
}

// Opponent returns the other seat of a two player game.
func Opponent(player int) int {
	return 1 - player
}

// Rows is an inclusive band of board rows.
type Rows struct {
	Min int
	Max int
}

func (r Rows) Contains(y int) bool {
	return y >= r.Min && y <= r.Max
}

// HomeRows returns the half of the board a player sets up on.
func HomeRows(player int) Rows {
	if player == PlayerOne {
		return Rows{Min: 0, Max: 3}
	}
	return Rows{Min: BoardSize - 4, Max: BoardSize - 1}
}

// EmptyCells lists the unoccupied cells within rows, row by row.
func EmptyCells(state State, rows Rows) []Coord {
	cells := []Coord{}
	for y := rows.Min; y <= rows.Max; y++ {
		for x := 0; x < BoardSize; x++ {
			c := Coord{X: x, Y: y}
			if state.IsEmpty(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}
