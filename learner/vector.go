package learner

import "fmt"

// NumFeatures is the length of a CategoryVector.
const NumFeatures = 8

// CategoryVector is the abstraction of a game state used as a table key.
// Vectors match only when every feature is equal.
type CategoryVector struct {
	StepsToFood        int // Steps until the reference worker's next delivery
	StepsToWin         int
	EnemyFood          int
	OwnFood            int
	EnemyQueenHealth   int
	OwnQueenHealth     int
	OwnAnthillHealth   int
	EnemyAnthillHealth int
}

// Features returns the vector in its fixed positional order.
func (v CategoryVector) Features() []int {
	return []int{
		v.StepsToFood,
		v.StepsToWin,
		v.EnemyFood,
		v.OwnFood,
		v.EnemyQueenHealth,
		v.OwnQueenHealth,
		v.OwnAnthillHealth,
		v.EnemyAnthillHealth,
	}
}

// VectorOf is the inverse of Features.
func VectorOf(features []int) (CategoryVector, error) {
	if len(features) != NumFeatures {
		return CategoryVector{}, fmt.Errorf("want %d features, got %d", NumFeatures, len(features))
	}
	return CategoryVector{
		StepsToFood:        features[0],
		StepsToWin:         features[1],
		EnemyFood:          features[2],
		OwnFood:            features[3],
		EnemyQueenHealth:   features[4],
		OwnQueenHealth:     features[5],
		OwnAnthillHealth:   features[6],
		EnemyAnthillHealth: features[7],
	}, nil
}

func (v CategoryVector) String() string {
	return fmt.Sprint(v.Features())
}
