package game

import (
	"errors"
	"fmt"

	"tdants/utils"
)

var ErrInvalidPlacement = errors.New("invalid placement")

// GameState is a compact ant-colony ruleset on a 10x10 board. It implements
// State for the local engine and tests.
type GameState struct {
	AntList       []Ant
	ConstrList    []Construction
	FoodCounts    [2]int
	CurrentPlayer int
	CurrentPhase  Phase
	Won           int // NoWinner while in progress
}

// NewGameState returns an empty board waiting for setup phase 1.
func NewGameState() *GameState {
	return &GameState{
		CurrentPlayer: PlayerOne,
		CurrentPhase:  SetupPhase1,
		Won:           NoWinner,
	}
}

func (gs *GameState) Copy() *GameState {
	ants := make([]Ant, len(gs.AntList))
	copy(ants, gs.AntList)
	constrs := make([]Construction, len(gs.ConstrList))
	copy(constrs, gs.ConstrList)
	return &GameState{
		AntList:       ants,
		ConstrList:    constrs,
		FoodCounts:    gs.FoodCounts,
		CurrentPlayer: gs.CurrentPlayer,
		CurrentPhase:  gs.CurrentPhase,
		Won:           gs.Won,
	}
}

func (gs *GameState) WhoseTurn() int {
	return gs.CurrentPlayer
}

func (gs *GameState) Phase() Phase {
	return gs.CurrentPhase
}

func (gs *GameState) Winner() int {
	return gs.Won
}

// StepsToReach is the Manhattan distance: every ant moves one orthogonal step.
func (gs *GameState) StepsToReach(from, to Coord) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

func (gs *GameState) Inventory(player int) Inventory {
	return Inventory{
		Player:        player,
		FoodCount:     gs.FoodCounts[player],
		Ants:          gs.Ants(player),
		Constructions: gs.Constructions(player),
	}
}

func (gs *GameState) Ants(player int, kinds ...AntKind) []Ant {
	ants := []Ant{}
	for _, ant := range gs.AntList {
		if ant.Owner == player && (len(kinds) == 0 || containsKind(kinds, ant.Kind)) {
			ants = append(ants, ant)
		}
	}
	return ants
}

func (gs *GameState) Constructions(player int, kinds ...ConstrKind) []Construction {
	constrs := []Construction{}
	for _, c := range gs.ConstrList {
		if c.Owner == player && (len(kinds) == 0 || containsKind(kinds, c.Kind)) {
			constrs = append(constrs, c)
		}
	}
	return constrs
}

func (gs *GameState) Food() []Construction {
	food := []Construction{}
	for _, c := range gs.ConstrList {
		if c.Kind == Food {
			food = append(food, c)
		}
	}
	return food
}

func (gs *GameState) Queen(player int) (Ant, bool) {
	for _, ant := range gs.AntList {
		if ant.Owner == player && ant.Kind == Queen {
			return ant, true
		}
	}
	return Ant{}, false
}

func (gs *GameState) Anthill(player int) (Construction, bool) {
	for _, c := range gs.ConstrList {
		if c.Owner == player && c.Kind == Anthill {
			return c, true
		}
	}
	return Construction{}, false
}

func (gs *GameState) IsEmpty(c Coord) bool {
	return gs.antIndex(c) < 0 && gs.constrIndex(c) < 0
}

// Place applies one player's setup placements for the current setup phase.
// In phase 1 the coordinates are the anthill, the tunnel and then grass; in
// phase 2 they are food on the opponent's half.
func (gs *GameState) Place(player int, coords []Coord) (*GameState, error) {
	var rows Rows
	var want int
	switch gs.CurrentPhase {
	case SetupPhase1:
		rows, want = HomeRows(player), ConstructionsPerPlayer
	case SetupPhase2:
		rows, want = HomeRows(Opponent(player)), FoodPerPlayer
	default:
		return nil, fmt.Errorf("%w: not a setup phase", ErrInvalidPlacement)
	}
	if len(coords) != want {
		return nil, fmt.Errorf("%w: want %d coordinates, got %d", ErrInvalidPlacement, want, len(coords))
	}

	if !utils.Distinct(coords) {
		return nil, fmt.Errorf("%w: duplicate coordinates in %v", ErrInvalidPlacement, coords)
	}

	newGs := gs.Copy()
	for i, c := range coords {
		if !c.InBounds() || !rows.Contains(c.Y) {
			return nil, fmt.Errorf("%w: %v outside rows %d-%d", ErrInvalidPlacement, c, rows.Min, rows.Max)
		}
		if !newGs.IsEmpty(c) {
			return nil, fmt.Errorf("%w: %v is occupied", ErrInvalidPlacement, c)
		}
		constr := Construction{Kind: Grass, Owner: player, Coords: c}
		if gs.CurrentPhase == SetupPhase2 {
			constr = Construction{Kind: Food, Owner: NoWinner, Coords: c}
		} else if i == 0 {
			constr = Construction{Kind: Anthill, Owner: player, Coords: c, CaptureHealth: AnthillCaptureHealth}
		} else if i == 1 {
			constr.Kind = Tunnel
		}
		newGs.ConstrList = append(newGs.ConstrList, constr)
	}
	return newGs, nil
}

// AdvancePhase moves setup forward. Entering the play phase puts each queen on
// her anthill and a worker on the tunnel.
func (gs *GameState) AdvancePhase() *GameState {
	newGs := gs.Copy()
	switch gs.CurrentPhase {
	case SetupPhase1:
		newGs.CurrentPhase = SetupPhase2
	case SetupPhase2:
		newGs.CurrentPhase = PlayPhase
		for _, player := range []int{PlayerOne, PlayerTwo} {
			if hill, ok := newGs.Anthill(player); ok {
				newGs.AntList = append(newGs.AntList, newAnt(Queen, player, hill.Coords))
			}
			for _, tunnel := range newGs.Constructions(player, Tunnel) {
				newGs.AntList = append(newGs.AntList, newAnt(Worker, player, tunnel.Coords))
			}
		}
		newGs.CurrentPlayer = PlayerOne
	}
	return newGs
}

// LegalMoves returns all legal moves for the current player. It is empty
// outside the play phase and once the game is won.
func (gs *GameState) LegalMoves() []Move {
	if gs.CurrentPhase != PlayPhase || gs.Won != NoWinner {
		return nil
	}
	player := gs.CurrentPlayer
	moves := []Move{}
	for _, ant := range gs.AntList {
		if ant.Owner != player || ant.HasMoved {
			continue
		}
		for _, n := range ant.Coords.Neighbors() {
			if gs.antIndex(n) < 0 {
				moves = append(moves, Move{Kind: MoveAnt, From: ant.Coords, To: n})
			}
		}
	}
	if hill, ok := gs.Anthill(player); ok && gs.antIndex(hill.Coords) < 0 {
		for _, kind := range []AntKind{Worker, Soldier} {
			if gs.FoodCounts[player] >= kind.Cost() {
				moves = append(moves, Move{Kind: Build, From: hill.Coords, Build: kind})
			}
		}
	}
	return append(moves, Move{Kind: EndTurn})
}

// Play returns the state after the current player makes move. The move is
// assumed legal; an ant move without an ant to move leaves the board unchanged.
func (gs *GameState) Play(move Move) State {
	newGs := gs.Copy()
	player := newGs.CurrentPlayer

	switch move.Kind {
	case MoveAnt:
		if i := newGs.antIndex(move.From); i >= 0 && newGs.AntList[i].Owner == player {
			newGs.AntList[i].Coords = move.To
			newGs.AntList[i].HasMoved = true
		}
	case Build:
		ant := newAnt(move.Build, player, move.From)
		ant.HasMoved = true
		newGs.AntList = append(newGs.AntList, ant)
		newGs.FoodCounts[player] -= move.Build.Cost()
	case EndTurn:
		newGs.endTurn()
	}

	newGs.checkWinner()
	return newGs
}

// endTurn settles food pick up and delivery, anthill captures and hands the
// turn to the opponent.
func (gs *GameState) endTurn() {
	player := gs.CurrentPlayer
	for i := range gs.AntList {
		ant := &gs.AntList[i]
		if ant.Owner != player {
			continue
		}
		ant.HasMoved = false
		j := gs.constrIndex(ant.Coords)
		if j < 0 {
			continue
		}
		constr := &gs.ConstrList[j]
		switch {
		case ant.Kind == Worker && !ant.Carrying && constr.Kind == Food:
			ant.Carrying = true
		case ant.Kind == Worker && ant.Carrying && constr.IsDropOff() && constr.Owner == player:
			ant.Carrying = false
			gs.FoodCounts[player]++
		case constr.Kind == Anthill && constr.Owner != player:
			constr.CaptureHealth--
		}
	}
	gs.CurrentPlayer = Opponent(player)
}

// AttackTargets lists the enemy ants the ant at c can attack.
func (gs *GameState) AttackTargets(c Coord) []Coord {
	i := gs.antIndex(c)
	if i < 0 || gs.AntList[i].Kind.Attack() == 0 {
		return nil
	}
	owner := gs.AntList[i].Owner
	targets := []Coord{}
	for _, n := range c.Neighbors() {
		if j := gs.antIndex(n); j >= 0 && gs.AntList[j].Owner != owner {
			targets = append(targets, n)
		}
	}
	return targets
}

// Attack returns the state after the ant at attacker hits the ant at target.
func (gs *GameState) Attack(attacker, target Coord) (*GameState, error) {
	i, j := gs.antIndex(attacker), gs.antIndex(target)
	if i < 0 || j < 0 {
		return nil, fmt.Errorf("cannot attack: no ant at %v or %v", attacker, target)
	}
	if gs.AntList[i].Owner == gs.AntList[j].Owner {
		return nil, fmt.Errorf("cannot attack: %v and %v have the same owner", attacker, target)
	}
	if gs.StepsToReach(attacker, target) != 1 {
		return nil, fmt.Errorf("cannot attack: %v is not adjacent to %v", target, attacker)
	}

	newGs := gs.Copy()
	newGs.AntList[j].Health -= newGs.AntList[i].Kind.Attack()
	if newGs.AntList[j].Health <= 0 {
		newGs.AntList = append(newGs.AntList[:j], newGs.AntList[j+1:]...)
	}
	newGs.checkWinner()
	return newGs, nil
}

func (gs *GameState) checkWinner() {
	if gs.CurrentPhase != PlayPhase || gs.Won != NoWinner {
		return
	}
	for _, player := range []int{PlayerOne, PlayerTwo} {
		if gs.FoodCounts[player] >= FoodGoal {
			gs.Won = player
			return
		}
	}
	for _, player := range []int{PlayerOne, PlayerTwo} {
		_, hasQueen := gs.Queen(player)
		hill, hasHill := gs.Anthill(player)
		if !hasQueen || !hasHill || hill.CaptureHealth <= 0 {
			gs.Won = Opponent(player)
			return
		}
	}
}

func (gs *GameState) antIndex(c Coord) int {
	for i, ant := range gs.AntList {
		if ant.Coords == c {
			return i
		}
	}
	return -1
}

func (gs *GameState) constrIndex(c Coord) int {
	for i, constr := range gs.ConstrList {
		if constr.Coords == c {
			return i
		}
	}
	return -1
}

func newAnt(kind AntKind, owner int, c Coord) Ant {
	return Ant{Kind: kind, Owner: owner, Coords: c, Health: kind.MaxHealth()}
}

func containsKind[K comparable](kinds []K, kind K) bool {
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
