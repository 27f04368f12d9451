package player

import (
	"errors"
	"fmt"

	"tdants/game"

	"golang.org/x/exp/rand"
)

var (
	ErrNoMoves   = errors.New("no possible moves")
	ErrNoTargets = errors.New("no possible targets")
)

// Random plays uniformly random legal moves. It is the baseline opponent of
// training and evaluation runs.
type Random struct {
	ID  int
	rng *rand.Rand
}

func NewRandom(id int, seed uint64) *Random {
	return &Random{
		ID:  id,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// ChoosePlacements picks distinct empty cells on its own half in the first
// setup phase and on the opponent's half in the second.
func (p *Random) ChoosePlacements(state game.State) ([]game.Coord, error) {
	var rows game.Rows
	var count int
	switch state.Phase() {
	case game.SetupPhase1:
		rows, count = game.HomeRows(p.ID), game.ConstructionsPerPlayer
	case game.SetupPhase2:
		rows, count = game.HomeRows(game.Opponent(p.ID)), game.FoodPerPlayer
	default:
		return nil, fmt.Errorf("nothing to place in phase %d", state.Phase())
	}

	cells := game.EmptyCells(state, rows)
	if len(cells) < count {
		return nil, fmt.Errorf("want %d empty cells, have %d", count, len(cells))
	}
	picked := make([]game.Coord, count)
	for i, j := range p.rng.Perm(len(cells))[:count] {
		picked[i] = cells[j]
	}
	return picked, nil
}

func (p *Random) ChooseMove(state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMoves
	}
	return moves[p.rng.Intn(len(moves))], nil
}

func (p *Random) ChooseAttackTarget(state game.State, attacker game.Coord, targets []game.Coord) (game.Coord, error) {
	if len(targets) == 0 {
		return game.Coord{}, ErrNoTargets
	}
	return targets[p.rng.Intn(len(targets))], nil
}

func (p *Random) OnGameEnd(won bool) error {
	return nil
}
