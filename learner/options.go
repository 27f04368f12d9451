package learner

type Option func(a *Agent)

func WithAlpha(alpha float64) Option {
	return func(a *Agent) {
		a.alpha = alpha
	}
}

func WithGamma(gamma float64) Option {
	return func(a *Agent) {
		a.gamma = gamma
	}
}

// WithEpsilon sets the exploration rate before any decay.
func WithEpsilon(epsilon float64) Option {
	return func(a *Agent) {
		a.schedule.start = epsilon
	}
}

func WithEpsilonBase(base float64) Option {
	return func(a *Agent) {
		a.schedule.base = base
	}
}

func WithDecayInterval(turns int) Option {
	return func(a *Agent) {
		if turns > 0 {
			a.schedule.interval = turns
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.seed = seed
	}
}

// WithTable makes the agent learn into table, which may be shared with other
// agents playing in turn.
func WithTable(table *Table) Option {
	return func(a *Agent) {
		if table != nil {
			a.table = table
		}
	}
}

// WithTablePath loads the table from path at construction, unless a table is
// given with WithTable, and saves it there at the end of every game.
func WithTablePath(path string) Option {
	return func(a *Agent) {
		a.tablePath = path
	}
}

func WithReward(reward RewardFunc) Option {
	return func(a *Agent) {
		if reward != nil {
			a.reward = reward
		}
	}
}

func WithAbstractor(score Abstractor) Option {
	return func(a *Agent) {
		if score != nil {
			a.score = score
		}
	}
}
