package learner

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Encode writes one CSV row per record: the features in order, then the value.
// Values are written with the shortest representation that parses back to the
// same float64.
func (t *Table) Encode(w io.Writer) error {
	writer := csv.NewWriter(w)
	row := make([]string, NumFeatures+1)
	for _, r := range t.records {
		for i, f := range r.Vector.Features() {
			row[i] = strconv.Itoa(f)
		}
		row[NumFeatures] = strconv.FormatFloat(r.Value, 'g', -1, 64)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %v: %w", r.Vector, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadTable decodes a table written by Encode. Malformed rows are skipped with
// a warning; a repeated vector keeps the last value read.
func ReadTable(r io.Reader) (*Table, error) {
	table := NewTable()
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	skipped := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			log.Warn().Err(err).Msg("skipping malformed utility row")
			skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read utility table: %w", err)
		}

		line, _ := reader.FieldPos(0)
		record, err := parseRecord(row)
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("skipping malformed utility row")
			skipped++
			continue
		}
		table.Upsert(record.Vector, record.Value)
	}

	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Int("records", table.Len()).Msg("utility table loaded with skipped rows")
	}
	return table, nil
}

func parseRecord(row []string) (Record, error) {
	if len(row) != NumFeatures+1 {
		return Record{}, fmt.Errorf("want %d fields, got %d", NumFeatures+1, len(row))
	}
	features := make([]int, NumFeatures)
	for i := range features {
		f, err := strconv.Atoi(row[i])
		if err != nil {
			return Record{}, fmt.Errorf("feature %d: %w", i, err)
		}
		features[i] = f
	}
	value, err := strconv.ParseFloat(row[NumFeatures], 64)
	if err != nil {
		return Record{}, fmt.Errorf("value: %w", err)
	}
	v, err := VectorOf(features)
	if err != nil {
		return Record{}, err
	}
	return Record{Vector: v, Value: value}, nil
}

// Save writes the table to path, replacing any previous file only once the
// new one is complete.
func (t *Table) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create utility file: %w", err)
	}
	defer os.Remove(f.Name())

	if err := t.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close utility file: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("failed to replace utility file: %w", err)
	}
	return nil
}

// LoadTable reads a table saved with Save.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f)
}
