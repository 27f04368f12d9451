package learner

import (
	"tdants/game"

	"github.com/rs/zerolog/log"
)

// maxFoodDistance bounds the food to drop-off search, and is reported as the
// distance when no food can be paired with a drop-off.
const maxFoodDistance = 30

// Abstractor reduces a state to a category vector from one player's perspective.
type Abstractor func(state game.State, player int) CategoryVector

// Score is the default Abstractor. It is a pure function of state.
func Score(state game.State, player int) CategoryVector {
	enemy := game.Opponent(player)
	food, drop, foodToDrop, paired := minFoodSpots(state, player)

	stepsToFood := NoWorker
	if workers := state.Ants(player, game.Worker); len(workers) > 0 && paired {
		worker := workers[0]
		if worker.Carrying {
			stepsToFood = state.StepsToReach(worker.Coords, drop.Coords)
		} else {
			stepsToFood = state.StepsToReach(worker.Coords, food.Coords) + foodToDrop
		}
	}

	ownFood := state.Inventory(player).FoodCount
	foodNeeded := game.FoodGoal - ownFood

	v := CategoryVector{
		StepsToFood:        stepsToFood,
		StepsToWin:         (foodNeeded - 1) * (foodToDrop*2 + 2),
		EnemyFood:          state.Inventory(enemy).FoodCount,
		OwnFood:            ownFood,
		EnemyQueenHealth:   queenHealth(state, enemy),
		OwnQueenHealth:     queenHealth(state, player),
		OwnAnthillHealth:   anthillHealth(state, player),
		EnemyAnthillHealth: anthillHealth(state, enemy),
	}
	log.Trace().Int("player", player).Stringer("vector", v).Msg("scored state")
	return v
}

// minFoodSpots finds the food and drop-off closest to each other. The first
// closest pair found wins ties.
func minFoodSpots(state game.State, player int) (food, drop game.Construction, dist int, ok bool) {
	dist = maxFoodDistance
	drops := state.Constructions(player, game.Anthill, game.Tunnel)
	for _, spot := range drops {
		for _, f := range state.Food() {
			if d := state.StepsToReach(f.Coords, spot.Coords); d < dist {
				dist = d
				food = f
				drop = spot
				ok = true
			}
		}
	}
	return food, drop, dist, ok
}

func queenHealth(state game.State, player int) int {
	if queen, ok := state.Queen(player); ok {
		return queen.Health
	}
	return 0
}

func anthillHealth(state game.State, player int) int {
	if hill, ok := state.Anthill(player); ok {
		return hill.CaptureHealth
	}
	return 0
}
