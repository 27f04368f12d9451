package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GameRecord is one game of a run, seen from the learner's seat.
type GameRecord struct {
	ID        string
	Run       string
	Index     int // 1-based position in the run
	Seat      int // Learner's seat
	Opponent  string
	Won       bool
	Epsilon   float64 // Learner's exploration rate after the game
	TableSize int
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates the directory a run's records are written to.
func NewWriter(outDir, runID string) (*Writer, error) {
	baseDir := filepath.Join(outDir, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{
		"id", "index", "seat", "opponent", "starting_player", "winner", "won",
		"moves", "turns", "builds", "attacks", "epsilon", "table_size",
		"start_time", "end_time", "duration",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			strconv.Itoa(record.Index),
			strconv.Itoa(record.Seat),
			record.Opponent,
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			strconv.FormatBool(record.Won),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Builds),
			strconv.Itoa(record.Attacks),
			strconv.FormatFloat(record.Epsilon, 'f', 6, 64),
			strconv.Itoa(record.TableSize),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
