package learner

import "tdants/game"

// Projector returns the state reached by playing move in state.
type Projector func(state game.State, move game.Move) game.State

// RewardFunc scores a state reached by the learner.
type RewardFunc func(next game.State, player int) float64

// Play is the default Projector.
func Play(state game.State, move game.Move) game.State {
	return state.Play(move)
}

// Reward is Win or Loss once next is decided. Otherwise every step costs a
// little, stored food pays and each worker costs as much as a food is worth.
func Reward(next game.State, player int) float64 {
	if winner := next.Winner(); winner != game.NoWinner {
		if winner == player {
			return Win
		}
		return Loss
	}
	food := next.Inventory(player).FoodCount
	workers := len(next.Ants(player, game.Worker))
	return StepCost + float64(food)/99 - float64(workers)/99
}

// Backup is the TD(0) update of utility v towards reward plus the discounted
// utility of the successor.
func Backup(alpha, gamma, v, reward, next float64) float64 {
	return v + alpha*(reward+gamma*next-v)
}

// Updater revises the utility of the states a player leaves.
type Updater struct {
	alpha  float64
	gamma  float64
	player int
	table  *Table
	score  Abstractor
}

func NewUpdater(player int, table *Table, alpha, gamma float64) *Updater {
	return &Updater{
		alpha:  alpha,
		gamma:  gamma,
		player: player,
		table:  table,
		score:  Score,
	}
}

// Update backs up the utility of state after the learner commits to move, and
// returns the new utility. Unseen states count as 0.
func (u *Updater) Update(state game.State, move game.Move, project Projector, reward RewardFunc) float64 {
	current := u.score(state, u.player)
	v := u.table.Value(current)

	next := project(state, move)
	r := reward(next, u.player)
	vNext := u.table.Value(u.score(next, u.player))

	updated := Backup(u.alpha, u.gamma, v, r, vNext)
	u.table.Upsert(current, updated)
	return updated
}
