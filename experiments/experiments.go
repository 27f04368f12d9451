package experiments

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"tdants/engine"
	"tdants/experiments/metrics"
	"tdants/game"
	"tdants/learner"
	"tdants/meta"
	"tdants/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	ModeTrain    = "train"
	ModeEvaluate = "eval"
)

type Config struct {
	Games      int
	Seed       uint64 // 0 picks a seed from the clock
	SelfPlay   bool   // Learner against itself, sharing one table
	TablePath  string // Utility table to load, and to save after every training game
	OutDir     string // Game records and charts go to OutDir/<run id>; empty to skip
	LedgerPath string // SQLite ledger; empty to skip
	Window     int    // Games in the win rate window of the learning curve
	MaxMoves   int
}

// Summary is the learner's record over a run.
type Summary struct {
	RunID     string
	Mode      string
	Games     int
	Wins      int
	Losses    int
	Draws     int
	TableSize int
	Epsilon   float64
	Dir       string // Where records were written, if anywhere
}

func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Run trains the learner over cfg.Games games, alternating its seat.
func Run(cfg Config) (Summary, error) {
	return runExperiment(ModeTrain, cfg)
}

// Evaluate plays greedily with the table at cfg.TablePath without saving what
// is learned along the way.
func Evaluate(cfg Config) (Summary, error) {
	return runExperiment(ModeEvaluate, cfg)
}

func runExperiment(mode string, cfg Config) (Summary, error) {
	cfg = withDefaults(cfg)
	runID := uuid.New().String()
	summary := Summary{RunID: runID, Mode: mode}

	opponent := "random"
	if cfg.SelfPlay {
		opponent = "self"
	}
	learners, err := newLearners(mode, cfg)
	if err != nil {
		return summary, err
	}
	table := learners[game.PlayerOne].Table()

	run := metrics.RunRecord{
		ID:        runID,
		Mode:      mode,
		Opponent:  opponent,
		Games:     cfg.Games,
		Seed:      cfg.Seed,
		StartTime: time.Now(),
	}
	var ledger *metrics.Ledger
	if cfg.LedgerPath != "" {
		ledger, err = metrics.NewLedger(cfg.LedgerPath)
		if err != nil {
			return summary, fmt.Errorf("failed to open ledger: %w", err)
		}
		defer ledger.Close()
		if err := ledger.StartRun(run); err != nil {
			return summary, err
		}
	}

	log.Info().Msgf("starting %s run %s: %d games against %s...", mode, runID, cfg.Games, opponent)

	records := []metrics.GameRecord{}
	for i := 0; i < cfg.Games; i++ {
		seat := i % 2
		opp := game.Opponent(seat)

		players := make([]engine.Player, 2)
		players[seat] = learners[seat]
		if cfg.SelfPlay {
			players[opp] = learners[opp]
		} else {
			players[opp] = player.NewRandom(opp, cfg.Seed+uint64(i)+2)
		}

		log.Info().Msgf("starting game %d of %d with the learner in seat %d...", i+1, cfg.Games, seat)

		e := engine.LocalEngine(players, engine.WithMaxMoves(cfg.MaxMoves))
		gameMetric, err := e.Run()
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		record := metrics.GameRecord{
			ID:         uuid.New().String(),
			Run:        runID,
			Index:      i + 1,
			Seat:       seat,
			Opponent:   opponent,
			Won:        gameMetric.Winner == seat,
			Epsilon:    learners[seat].Epsilon(),
			TableSize:  table.Len(),
			GameMetric: gameMetric,
		}
		records = append(records, record)
		summary.Games++
		switch gameMetric.Winner {
		case seat:
			summary.Wins++
		case game.NoWinner:
			summary.Draws++
		default:
			summary.Losses++
		}

		if ledger != nil {
			if err := ledger.RecordGame(record); err != nil {
				return summary, err
			}
		}

		log.Info().Msgf("completed game %d of %d with winner %d in %d moves (%d utilities)", i+1, cfg.Games, gameMetric.Winner, gameMetric.TotalMoves, table.Len())
	}

	summary.TableSize = table.Len()
	summary.Epsilon = learners[game.PlayerOne].Epsilon()
	log.Info().Msgf("completed %s run %s: %d wins, %d losses, %d draws", mode, runID, summary.Wins, summary.Losses, summary.Draws)

	if cfg.OutDir != "" {
		dir, err := writeRecords(cfg, runID, records)
		if err != nil {
			return summary, err
		}
		summary.Dir = dir
	}

	if ledger != nil {
		run.EndTime = time.Now()
		run.Wins, run.Losses, run.Draws = summary.Wins, summary.Losses, summary.Draws
		run.TableSize = summary.TableSize
		if err := ledger.FinishRun(run); err != nil {
			return summary, err
		}
		if err := checkLedger(ledger, summary); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// checkLedger reads a finished run back from the ledger and makes sure every
// game of the summary was recorded.
func checkLedger(ledger *metrics.Ledger, summary Summary) error {
	run, err := ledger.GetRun(summary.RunID)
	if err != nil {
		return err
	}
	games, wins, err := ledger.CountGames(summary.RunID)
	if err != nil {
		return err
	}
	if games != summary.Games || wins != summary.Wins || run.Wins != summary.Wins {
		return fmt.Errorf("ledger holds %d games and %d wins for run %s, want %d and %d", games, wins, summary.RunID, summary.Games, summary.Wins)
	}
	log.Info().Msgf("ledger recorded run %s: %d games in %s", run.ID, games, run.EndTime.Sub(run.StartTime).Round(time.Millisecond))
	return nil
}

func withDefaults(cfg Config) Config {
	if cfg.Games <= 0 {
		cfg.Games = meta.GAMES
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.MaxMoves <= 0 {
		cfg.MaxMoves = meta.MAX_MOVES
	}
	if cfg.Window <= 0 {
		cfg.Window = 10
	}
	return cfg
}

// newLearners creates a learner for each seat. Both seats share one table.
// Training saves the table after every game; evaluation plays greedily and
// never saves.
func newLearners(mode string, cfg Config) ([]*learner.Agent, error) {
	table, err := openTable(cfg.TablePath)
	if err != nil {
		return nil, err
	}

	learners := make([]*learner.Agent, 2)
	for _, seat := range []int{game.PlayerOne, game.PlayerTwo} {
		options := []learner.Option{
			learner.WithTable(table),
			learner.WithSeed(cfg.Seed + uint64(seat)),
		}
		if mode == ModeEvaluate {
			options = append(options, learner.WithEpsilon(0))
		} else if cfg.TablePath != "" {
			options = append(options, learner.WithTablePath(cfg.TablePath))
		}
		learners[seat] = learner.NewAgent(seat, options...)
	}
	return learners, nil
}

// openTable loads the table at path. A missing file gives an empty table;
// an unreadable one is an error since a run would overwrite it.
func openTable(path string) (*learner.Table, error) {
	if path == "" {
		return learner.NewTable(), nil
	}
	table, err := learner.LoadTable(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Msgf("no utility table at %s, starting empty", path)
		return learner.NewTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load utility table: %w", err)
	}
	log.Info().Msgf("loaded %d utilities from %s", table.Len(), path)
	return table, nil
}

func writeRecords(cfg Config, runID string, records []metrics.GameRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir, runID)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteGameRecords(records); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	chart := filepath.Join(writer.Dir(), "learning_curve.html")
	if err := metrics.PlotLearningCurve(chart, runID, metrics.Curve(records, cfg.Window)); err != nil {
		return "", fmt.Errorf("failed to plot learning curve: %w", err)
	}
	log.Info().Msgf("stored learning curve at %s", chart)
	return writer.Dir(), nil
}
