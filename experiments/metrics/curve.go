package metrics

// Point is the learner's standing after a game of a run.
type Point struct {
	Game      int
	WinRate   float64 // Over the trailing window
	Epsilon   float64
	TableSize int
}

// Curve turns game records into learning curve points, computing the win rate
// over the last window games (all games so far when window <= 0).
func Curve(records []GameRecord, window int) []Point {
	points := make([]Point, 0, len(records))
	wins := 0
	for i, record := range records {
		if record.Won {
			wins++
		}
		n := i + 1
		if window > 0 && n > window {
			if records[n-window-1].Won {
				wins--
			}
			n = window
		}
		points = append(points, Point{
			Game:      record.Index,
			WinRate:   float64(wins) / float64(n),
			Epsilon:   record.Epsilon,
			TableSize: record.TableSize,
		})
	}
	return points
}
