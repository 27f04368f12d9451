package engine

import (
	"errors"

	"tdants/experiments/metrics"
	"tdants/game"
)

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrIllegalTarget = errors.New("illegal attack target")
)

type Engine interface {
	// Run plays a game till there's a winner or the move limit is reached
	Run() (metrics.GameMetric, error)
}

// Player is one seat at the table. The engine asks it for setup placements,
// moves and attack targets, and tells it how the game ended.
type Player interface {
	ChoosePlacements(state game.State) ([]game.Coord, error)
	ChooseMove(state game.State) (game.Move, error)
	ChooseAttackTarget(state game.State, attacker game.Coord, targets []game.Coord) (game.Coord, error)
	OnGameEnd(won bool) error
}
