package learner

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"tdants/game"
	"tdants/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Stats describes what an agent has done so far.
type Stats struct {
	Turns     int
	Epsilon   float64
	TableSize int
	Updates   int
	Explores  int
	Exploits  int
	Games     int
	Wins      int
}

// Agent plays one seat of the ant game, learning utilities as it goes.
type Agent struct {
	player    int
	alpha     float64
	gamma     float64
	seed      uint64
	rng       *rand.Rand
	table     *Table
	tablePath string
	updater   *Updater
	reward    RewardFunc
	score     Abstractor
	schedule  schedule
	epsilon   float64
	stats     Stats
}

// NewAgent creates an agent for player. Its table comes from WithTable, or is
// loaded from WithTablePath, or starts empty.
func NewAgent(player int, options ...Option) *Agent {
	if player != game.PlayerOne && player != game.PlayerTwo {
		panic(fmt.Sprintf("invalid player %d", player))
	}

	a := &Agent{
		player: player,
		alpha:  meta.ALPHA,
		gamma:  meta.GAMMA,
		seed:   uint64(time.Now().UnixNano()),
		reward: Reward,
		score:  Score,
		schedule: schedule{
			start:    1,
			base:     meta.EPSILON_BASE,
			interval: meta.DECAY_INTERVAL,
		},
	}
	for _, option := range options {
		option(a)
	}

	if a.alpha <= 0 || a.alpha > 1 {
		panic(fmt.Sprintf("learning rate must be in (0, 1], got %v", a.alpha))
	}
	if a.gamma < 0 || a.gamma > 1 {
		panic(fmt.Sprintf("discount must be in [0, 1], got %v", a.gamma))
	}
	if a.schedule.start < 0 || a.schedule.start > 1 {
		panic(fmt.Sprintf("exploration rate must be in [0, 1], got %v", a.schedule.start))
	}
	if a.schedule.base <= 0 || a.schedule.base > 1 {
		panic(fmt.Sprintf("exploration base must be in (0, 1], got %v", a.schedule.base))
	}

	if a.table == nil {
		a.table = loadOrCreate(a.tablePath)
	}
	a.rng = rand.New(rand.NewSource(a.seed))
	a.epsilon = a.schedule.start
	a.updater = NewUpdater(player, a.table, a.alpha, a.gamma)
	a.updater.score = a.score
	return a
}

func loadOrCreate(path string) *Table {
	if path == "" {
		return NewTable()
	}
	table, err := LoadTable(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Msgf("no utility table at %s, starting empty", path)
		return NewTable()
	}
	if err != nil {
		log.Warn().Err(err).Msgf("could not load utility table at %s, starting empty", path)
		return NewTable()
	}
	log.Info().Msgf("loaded %d utilities from %s", table.Len(), path)
	return table
}

func (a *Agent) Player() int {
	return a.player
}

func (a *Agent) Table() *Table {
	return a.table
}

func (a *Agent) Epsilon() float64 {
	return a.epsilon
}

func (a *Agent) Stats() Stats {
	stats := a.stats
	stats.Epsilon = a.epsilon
	stats.TableSize = a.table.Len()
	return stats
}

// ChooseMove picks a legal move epsilon-greedily and backs up the utility of
// state before returning it.
func (a *Agent) ChooseMove(state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoLegalMoves
	}

	var move game.Move
	if explores(a.rng.Float64(), a.epsilon) {
		move = moves[a.rng.Intn(len(moves))]
		a.stats.Explores++
	} else {
		move = a.exploit(state, moves)
		a.stats.Exploits++
	}

	a.updater.Update(state, move, Play, a.reward)
	a.stats.Updates++

	if move.IsTurnEnding() {
		a.stats.Turns++
		if a.stats.Turns%a.schedule.interval == 0 {
			a.epsilon = a.schedule.epsilon(a.stats.Turns)
			log.Debug().Msgf("player %d epsilon %.4f after %d turns", a.player, a.epsilon, a.stats.Turns)
		}
	}
	return move, nil
}

// exploit returns the first move whose successor has the highest known
// utility above zero. When no successor beats zero, the first move is played.
func (a *Agent) exploit(state game.State, moves []game.Move) game.Move {
	best := moves[0]
	bestValue := 0.0
	for _, move := range moves {
		value, ok := a.table.Lookup(a.score(state.Play(move), a.player))
		if ok && value > bestValue {
			best = move
			bestValue = value
		}
	}
	return best
}

// ChoosePlacements picks random distinct empty cells: the player's whole
// layout in the first setup phase, its two food cells on the opponent's side
// in the second.
func (a *Agent) ChoosePlacements(state game.State) ([]game.Coord, error) {
	var rows game.Rows
	var count int
	switch state.Phase() {
	case game.SetupPhase1:
		rows, count = game.HomeRows(a.player), game.ConstructionsPerPlayer
	case game.SetupPhase2:
		rows, count = game.HomeRows(game.Opponent(a.player)), game.FoodPerPlayer
	default:
		return []game.Coord{{X: 0, Y: 0}}, nil
	}

	cells := game.EmptyCells(state, rows)
	if len(cells) < count {
		return nil, fmt.Errorf("%w: want %d in rows %d-%d, have %d", ErrNoRoom, count, rows.Min, rows.Max, len(cells))
	}
	a.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	return cells[:count], nil
}

// ChooseAttackTarget attacks the first target offered.
func (a *Agent) ChooseAttackTarget(state game.State, attacker game.Coord, targets []game.Coord) (game.Coord, error) {
	if len(targets) == 0 {
		return game.Coord{}, ErrNoTargets
	}
	return targets[0], nil
}

// OnGameEnd records the result and persists the table when a path is set.
func (a *Agent) OnGameEnd(won bool) error {
	a.stats.Games++
	if won {
		a.stats.Wins++
	}
	log.Info().Msgf("player %d game over (won=%t): %d utilities, epsilon %.4f", a.player, won, a.table.Len(), a.epsilon)

	if a.tablePath == "" {
		return nil
	}
	if err := a.table.Save(a.tablePath); err != nil {
		return fmt.Errorf("failed to save utility table: %w", err)
	}
	return nil
}
