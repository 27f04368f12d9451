package metrics

import (
	"time"

	"tdants/game"
)

type GameMetric struct {
	StartingPlayer int
	Winner         int // game.NoWinner when the move limit ended the game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Turns          int
	Builds         int
	Attacks        int
}

// Collector counts what happens in one game.
type Collector interface {
	Start(startingPlayer int)
	AddMove(move game.Move)
	AddAttack()
	Complete(winner int) GameMetric
}

type collector struct {
	startingPlayer int
	startTime      time.Time
	moves          int
	turns          int
	builds         int
	attacks        int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer int) {
	*m = collector{startingPlayer: startingPlayer, startTime: time.Now()}
}

func (m *collector) AddMove(move game.Move) {
	m.moves++
	switch move.Kind {
	case game.EndTurn:
		m.turns++
	case game.Build:
		m.builds++
	}
}

func (m *collector) AddAttack() {
	m.attacks++
}

func (m *collector) Complete(winner int) GameMetric {
	end := time.Now()
	return GameMetric{
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     m.moves,
		Turns:          m.turns,
		Builds:         m.builds,
		Attacks:        m.attacks,
	}
}
