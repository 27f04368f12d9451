package engine

import (
	"errors"
	"fmt"

	"tdants/experiments/metrics"
	"tdants/game"
	"tdants/meta"
	"tdants/utils"

	"github.com/rs/zerolog/log"
)

// Local runs a game between two in-process players, seated in order.
type Local struct {
	State     *game.GameState
	Players   []Player
	maxMoves  int
	collector metrics.Collector
}

type Option func(e *Local)

func WithMaxMoves(moves int) Option {
	return func(e *Local) {
		e.maxMoves = moves
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Local) {
		e.collector = c
	}
}

func LocalEngine(players []Player, options ...Option) *Local {
	if len(players) != 2 {
		panic(fmt.Sprintf("need exactly two players, got %d", len(players)))
	}

	e := &Local{
		State:     game.NewGameState(),
		Players:   players,
		maxMoves:  meta.MAX_MOVES,
		collector: metrics.NewCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.maxMoves <= 0 {
		panic("move limit must be positive")
	}
	return e
}

// Run plays the setup phases and then the game until there's a winner or the
// move limit is reached. Any player error or illegal choice aborts the game;
// players only hear about the end of games that finish.
func (e *Local) Run() (metrics.GameMetric, error) {
	e.collector.Start(e.State.WhoseTurn())

	if err := e.setup(); err != nil {
		return e.collector.Complete(game.NoWinner), err
	}

	moves := 0
	for e.State.Winner() == game.NoWinner && moves < e.maxMoves {
		player := e.State.WhoseTurn()

		move, err := e.Players[player].ChooseMove(e.State)
		if err != nil {
			return e.collector.Complete(game.NoWinner), fmt.Errorf("player %d failed to choose a move: %w", player, err)
		}
		if utils.FindIndex(e.State.LegalMoves(), move) < 0 {
			return e.collector.Complete(game.NoWinner), fmt.Errorf("%w: player %d chose %v", ErrIllegalMove, player, move)
		}

		e.State = e.State.Play(move).(*game.GameState)
		e.collector.AddMove(move)
		moves++

		if move.Kind == game.MoveAnt && e.State.Winner() == game.NoWinner {
			if err := e.resolveAttack(player, move.To); err != nil {
				return e.collector.Complete(game.NoWinner), err
			}
		}
	}

	winner := e.State.Winner()
	if winner == game.NoWinner {
		log.Info().Msgf("stopped after %d moves without a winner", moves)
	} else {
		log.Info().Msgf("player %d won after %d moves", winner, moves)
	}

	metric := e.collector.Complete(winner)
	var errs []error
	for player, p := range e.Players {
		if err := p.OnGameEnd(player == winner); err != nil {
			errs = append(errs, fmt.Errorf("player %d: %w", player, err))
		}
	}
	return metric, errors.Join(errs...)
}

// setup collects both players' placements for each setup phase.
func (e *Local) setup() error {
	for _, phase := range []game.Phase{game.SetupPhase1, game.SetupPhase2} {
		for player, p := range e.Players {
			coords, err := p.ChoosePlacements(e.State)
			if err != nil {
				return fmt.Errorf("player %d failed to place in phase %d: %w", player, phase, err)
			}
			state, err := e.State.Place(player, coords)
			if err != nil {
				return fmt.Errorf("player %d: %w", player, err)
			}
			e.State = state
		}
		e.State = e.State.AdvancePhase()
		log.Debug().Msgf("completed setup phase %d", phase)
	}
	return nil
}

// resolveAttack lets the ant that just moved to c attack, if any enemy is in
// reach.
func (e *Local) resolveAttack(player int, c game.Coord) error {
	targets := e.State.AttackTargets(c)
	if len(targets) == 0 {
		return nil
	}

	target, err := e.Players[player].ChooseAttackTarget(e.State, c, targets)
	if err != nil {
		return fmt.Errorf("player %d failed to choose a target: %w", player, err)
	}
	if !utils.Contains(targets, target) {
		return fmt.Errorf("%w: player %d chose %v from %v", ErrIllegalTarget, player, target, targets)
	}

	state, err := e.State.Attack(c, target)
	if err != nil {
		return err
	}
	e.State = state
	e.collector.AddAttack()
	log.Debug().Msgf("player %d attacked %v from %v", player, target, c)
	return nil
}
