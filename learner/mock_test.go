package learner

import "tdants/game"

// mockState is a hand-built position. Play follows next, falling back to the
// state itself for moves without a successor.
type mockState struct {
	turn    int
	phase   game.Phase
	moves   []game.Move
	next    map[game.Move]game.State
	food    [2]int
	ants    []game.Ant
	constrs []game.Construction
	winner  int
	played  *[]game.Move
}

func newMockState() mockState {
	return mockState{
		phase:  game.PlayPhase,
		winner: game.NoWinner,
		next:   map[game.Move]game.State{},
	}
}

func (m mockState) WhoseTurn() int {
	return m.turn
}

func (m mockState) Phase() game.Phase {
	return m.phase
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	if m.played != nil {
		*m.played = append(*m.played, move)
	}
	if next, ok := m.next[move]; ok {
		return next
	}
	return m
}

func (m mockState) StepsToReach(from, to game.Coord) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

func (m mockState) Inventory(player int) game.Inventory {
	return game.Inventory{
		Player:        player,
		FoodCount:     m.food[player],
		Ants:          m.Ants(player),
		Constructions: m.Constructions(player),
	}
}

func (m mockState) Ants(player int, kinds ...game.AntKind) []game.Ant {
	ants := []game.Ant{}
	for _, ant := range m.ants {
		if ant.Owner == player && (len(kinds) == 0 || containsAnt(kinds, ant.Kind)) {
			ants = append(ants, ant)
		}
	}
	return ants
}

func (m mockState) Constructions(player int, kinds ...game.ConstrKind) []game.Construction {
	constrs := []game.Construction{}
	for _, c := range m.constrs {
		if c.Owner == player && (len(kinds) == 0 || containsConstr(kinds, c.Kind)) {
			constrs = append(constrs, c)
		}
	}
	return constrs
}

func (m mockState) Food() []game.Construction {
	food := []game.Construction{}
	for _, c := range m.constrs {
		if c.Kind == game.Food {
			food = append(food, c)
		}
	}
	return food
}

func (m mockState) Queen(player int) (game.Ant, bool) {
	queens := m.Ants(player, game.Queen)
	if len(queens) == 0 {
		return game.Ant{}, false
	}
	return queens[0], true
}

func (m mockState) Anthill(player int) (game.Construction, bool) {
	hills := m.Constructions(player, game.Anthill)
	if len(hills) == 0 {
		return game.Construction{}, false
	}
	return hills[0], true
}

func (m mockState) IsEmpty(c game.Coord) bool {
	for _, ant := range m.ants {
		if ant.Coords == c {
			return false
		}
	}
	for _, constr := range m.constrs {
		if constr.Coords == c {
			return false
		}
	}
	return true
}

func (m mockState) Winner() int {
	return m.winner
}

func containsAnt(kinds []game.AntKind, kind game.AntKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func containsConstr(kinds []game.ConstrKind, kind game.ConstrKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// colony returns a mock state with a queen, a worker, an anthill and a tunnel
// for each player, and one food cell.
func colony() mockState {
	m := newMockState()
	m.ants = []game.Ant{
		{Kind: game.Queen, Owner: game.PlayerOne, Coords: game.Coord{X: 0, Y: 0}, Health: 10},
		{Kind: game.Worker, Owner: game.PlayerOne, Coords: game.Coord{X: 2, Y: 2}, Health: 4},
		{Kind: game.Queen, Owner: game.PlayerTwo, Coords: game.Coord{X: 9, Y: 9}, Health: 10},
		{Kind: game.Worker, Owner: game.PlayerTwo, Coords: game.Coord{X: 7, Y: 7}, Health: 4},
	}
	m.constrs = []game.Construction{
		{Kind: game.Anthill, Owner: game.PlayerOne, Coords: game.Coord{X: 0, Y: 0}, CaptureHealth: 3},
		{Kind: game.Tunnel, Owner: game.PlayerOne, Coords: game.Coord{X: 4, Y: 1}},
		{Kind: game.Anthill, Owner: game.PlayerTwo, Coords: game.Coord{X: 9, Y: 9}, CaptureHealth: 3},
		{Kind: game.Tunnel, Owner: game.PlayerTwo, Coords: game.Coord{X: 5, Y: 8}},
		{Kind: game.Food, Owner: game.NoWinner, Coords: game.Coord{X: 4, Y: 3}},
	}
	return m
}
