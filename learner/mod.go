// Package learner implements a tabular TD(0) agent: states are abstracted
// into category vectors, their utilities are kept in a Table and revised
// online after every decision, and moves are chosen epsilon-greedily.
package learner

import "errors"

// Rewards for terminal states, from the learner's perspective.
const (
	Win  = 1.0
	Loss = -Win
)

// StepCost is the shaping penalty paid by every non-terminal state.
const StepCost = -0.01

// NoWorker is reported as steps to food when no worker can deliver.
const NoWorker = -1

var (
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrNoTargets    = errors.New("no attack targets")
	ErrNoRoom       = errors.New("not enough empty cells")
)
