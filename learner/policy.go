package learner

import "math"

// schedule decays exploration in steps. The rate is recomputed from a fixed
// base at every step instead of compounding the live rate, so it depends only
// on the number of turns played.
type schedule struct {
	start    float64 // Rate before the first step
	base     float64
	interval int // Turns per step
}

func (s schedule) epsilon(turns int) float64 {
	return s.start * math.Pow(s.base, float64(turns/s.interval))
}

// explores decides a uniform draw in [0,1): explore with probability epsilon,
// so 0 never explores and 1 always does.
func explores(draw, epsilon float64) bool {
	return draw < epsilon
}
