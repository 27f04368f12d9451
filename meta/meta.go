// meta/meta.go
package meta

// ALPHA is the TD learning rate.
const ALPHA = 0.1

// GAMMA is the discount applied to the successor state's utility.
const GAMMA = 0.9

// EPSILON_BASE is the fixed base of the exploration decay.
const EPSILON_BASE = 0.999

// DECAY_INTERVAL is the number of turns between exploration decay steps.
const DECAY_INTERVAL = 10

// MAX_MOVES caps the moves of a single game.
const MAX_MOVES = 20000

// GAMES is the default number of games in an experiment.
const GAMES = 100

// TABLE_PATH is the default location of the persisted utility table.
const TABLE_PATH = "utilities.csv"

// OUT_DIR is where experiment records and charts are written.
const OUT_DIR = "experiments"
