package learner

import (
	"testing"

	"tdants/game"

	"github.com/stretchr/testify/require"
)

func TestReward(t *testing.T) {
	t.Run("terminal states", func(t *testing.T) {
		state := colony()
		state.winner = game.PlayerOne

		require.Equal(t, Win, Reward(state, game.PlayerOne))
		require.Equal(t, Loss, Reward(state, game.PlayerTwo))
	})

	t.Run("shaping", func(t *testing.T) {
		state := colony()
		state.food = [2]int{3, 0}

		got := Reward(state, game.PlayerOne)

		require.InDelta(t, -0.01+3.0/99-1.0/99, got, 1e-12, "Food should pay and workers should cost")
	})
}

func TestBackup(t *testing.T) {
	t.Run("example backup", func(t *testing.T) {
		got := Backup(0.1, 0.9, 0, -0.01, 0)
		require.InDelta(t, -0.001, got, 1e-12)
	})

	t.Run("fixed point", func(t *testing.T) {
		for _, tc := range []struct{ reward, next float64 }{{0, 0}, {-0.01, 0.5}, {1, -1}} {
			v := tc.reward + 0.9*tc.next
			require.InDelta(t, v, Backup(0.1, 0.9, v, tc.reward, tc.next), 1e-12, "Backup should leave the target unchanged")
		}
	})
}

func TestUpdate(t *testing.T) {
	constant := func(v CategoryVector) Abstractor {
		return func(game.State, int) CategoryVector { return v }
	}
	stepCost := func(game.State, int) float64 { return StepCost }

	t.Run("worked example", func(t *testing.T) {
		table := NewTable()
		table.Upsert(example, 0)
		updater := NewUpdater(game.PlayerOne, table, 0.1, 0.9)
		next := example
		next.OwnFood = 3
		updater.score = func(state game.State, _ int) CategoryVector {
			if state.(mockState).turn == 1 {
				return next
			}
			return example
		}
		successor := newMockState()
		successor.turn = 1
		state := newMockState()
		move := game.Move{Kind: game.EndTurn}
		state.next[move] = successor

		got := updater.Update(state, move, Play, stepCost)

		require.InDelta(t, -0.001, got, 1e-12)
		require.InDelta(t, -0.001, table.Value(example), 1e-12)
		_, ok := table.Lookup(next)
		require.False(t, ok, "Only the state being left should be updated")
		require.Equal(t, 1, table.Len())
	})

	t.Run("inserts unseen states", func(t *testing.T) {
		table := NewTable()
		updater := NewUpdater(game.PlayerOne, table, 0.1, 0.9)
		updater.score = constant(example)

		updater.Update(newMockState(), game.Move{Kind: game.EndTurn}, Play, stepCost)

		require.Equal(t, 1, table.Len())
	})

	t.Run("projects the chosen move", func(t *testing.T) {
		var projected []game.Move
		project := func(state game.State, move game.Move) game.State {
			projected = append(projected, move)
			return state
		}
		updater := NewUpdater(game.PlayerOne, NewTable(), 0.1, 0.9)
		move := game.Move{Kind: game.Build, Build: game.Worker}

		updater.Update(colony(), move, project, Reward)

		require.Equal(t, []game.Move{move}, projected)
	})

	t.Run("converges to the fixed point", func(t *testing.T) {
		table := NewTable()
		updater := NewUpdater(game.PlayerOne, table, 0.1, 0.9)
		next := example
		next.OwnFood = 9
		table.Upsert(next, 0.5)
		updater.score = func(state game.State, _ int) CategoryVector {
			if state.(mockState).turn == 1 {
				return next
			}
			return example
		}
		successor := newMockState()
		successor.turn = 1
		state := newMockState()
		move := game.Move{Kind: game.EndTurn}
		state.next[move] = successor

		for i := 0; i < 500; i++ {
			updater.Update(state, move, Play, stepCost)
		}

		require.InDelta(t, StepCost+0.9*0.5, table.Value(example), 1e-9)
	})
}
