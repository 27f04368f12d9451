package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tdants/game"

	"github.com/stretchr/testify/require"
)

func records(won ...bool) []GameRecord {
	records := make([]GameRecord, len(won))
	for i, w := range won {
		records[i] = GameRecord{
			ID:        "game-" + string(rune('a'+i)),
			Run:       "run-1",
			Index:     i + 1,
			Seat:      i % 2,
			Opponent:  "random",
			Won:       w,
			Epsilon:   0.9,
			TableSize: 10 * (i + 1),
			GameMetric: GameMetric{
				Winner:     i % 2,
				StartTime:  time.Now(),
				EndTime:    time.Now(),
				TotalMoves: 40,
				Turns:      12,
			},
		}
	}
	return records
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(game.PlayerTwo)
	c.AddMove(game.Move{Kind: game.MoveAnt})
	c.AddMove(game.Move{Kind: game.Build, Build: game.Worker})
	c.AddMove(game.Move{Kind: game.EndTurn})
	c.AddAttack()

	got := c.Complete(game.PlayerOne)

	require.Equal(t, game.PlayerTwo, got.StartingPlayer)
	require.Equal(t, game.PlayerOne, got.Winner)
	require.Equal(t, 3, got.TotalMoves)
	require.Equal(t, 1, got.Turns)
	require.Equal(t, 1, got.Builds)
	require.Equal(t, 1, got.Attacks)
	require.False(t, got.EndTime.Before(got.StartTime))

	c.Start(game.PlayerOne)
	require.Zero(t, c.Complete(game.NoWinner).TotalMoves, "Start should reset the counts")
}

func TestCurve(t *testing.T) {
	t.Run("running win rate", func(t *testing.T) {
		got := Curve(records(true, false, true, true), 0)

		require.Len(t, got, 4)
		require.Equal(t, []float64{1, 0.5, 2.0 / 3, 0.75}, []float64{got[0].WinRate, got[1].WinRate, got[2].WinRate, got[3].WinRate})
		require.Equal(t, 4, got[3].Game)
		require.Equal(t, 40, got[3].TableSize)
	})

	t.Run("trailing window", func(t *testing.T) {
		got := Curve(records(true, false, false, true), 2)

		require.Equal(t, []float64{1, 0.5, 0, 0.5}, []float64{got[0].WinRate, got[1].WinRate, got[2].WinRate, got[3].WinRate})
	})
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir, "run-1")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "run-1"), writer.Dir())

	require.NoError(t, writer.WriteGameRecords(records(true, false)))

	f, err := os.Open(filepath.Join(writer.Dir(), "games.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "Should write a header and one row per game")
	require.Equal(t, "id", rows[0][0])
	require.Equal(t, []string{"game-a", "1", "0", "random", "0", "0", "true"}, rows[1][:7])
}

func TestLedger(t *testing.T) {
	ledger, err := NewLedger(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })

	run := RunRecord{ID: "run-1", Mode: "train", Opponent: "random", Games: 3, Seed: 42, StartTime: time.Now()}
	require.NoError(t, ledger.StartRun(run))
	for _, record := range records(true, false, true) {
		require.NoError(t, ledger.RecordGame(record))
	}
	run.EndTime = time.Now()
	run.Wins, run.Losses, run.TableSize = 2, 1, 30
	require.NoError(t, ledger.FinishRun(run))

	got, err := ledger.GetRun("run-1")
	require.NoError(t, err)
	require.Equal(t, "train", got.Mode)
	require.Equal(t, uint64(42), got.Seed)
	require.Equal(t, 2, got.Wins)
	require.Equal(t, 1, got.Losses)
	require.Equal(t, 30, got.TableSize)
	require.False(t, got.EndTime.IsZero())

	games, wins, err := ledger.CountGames("run-1")
	require.NoError(t, err)
	require.Equal(t, 3, games)
	require.Equal(t, 2, wins)

	t.Run("games need a run", func(t *testing.T) {
		record := records(true)[0]
		record.ID = "orphan"
		record.Run = "missing"
		require.Error(t, ledger.RecordGame(record))
	})

	t.Run("corrupt timestamps", func(t *testing.T) {
		_, err := ledger.db.Exec(
			`INSERT INTO runs (run_id, mode, opponent, games, seed, started_at) VALUES (?, ?, ?, ?, ?, ?)`,
			"corrupt", "train", "random", 1, 1, "yesterday",
		)
		require.NoError(t, err)

		_, err = ledger.GetRun("corrupt")

		require.ErrorContains(t, err, "parse started_at")
	})

	t.Run("unknown run", func(t *testing.T) {
		require.Error(t, ledger.FinishRun(RunRecord{ID: "missing"}))
		_, err := ledger.GetRun("missing")
		require.Error(t, err)
	})
}

func TestPlotLearningCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "curve.html")

	err := PlotLearningCurve(path, "run-1", Curve(records(true, false, true), 0))

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "win rate")
	require.Contains(t, string(data), "table size")
}
