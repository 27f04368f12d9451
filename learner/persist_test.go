package learner

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	table := NewTable()
	table.Upsert(example, -0.001)

	var buf bytes.Buffer
	require.NoError(t, table.Encode(&buf))

	require.Equal(t, "3,18,0,2,100,100,50,50,-0.001\n", buf.String())
}

func TestReadTable(t *testing.T) {
	t.Run("skips malformed rows", func(t *testing.T) {
		input := strings.Join([]string{
			"3,18,0,2,100,100,50,50,-0.001",
			"1,2,3",
			"a,18,0,2,100,100,50,50,0.5",
			"3,18,0,2,100,100,50,50,zero",
			"-1,620,1,0,10,0,3,3,0.25",
		}, "\n")

		table, err := ReadTable(strings.NewReader(input))

		require.NoError(t, err)
		require.Equal(t, 2, table.Len(), "Only well formed rows should load")
		require.Equal(t, -0.001, table.Value(example))
		v := CategoryVector{StepsToFood: -1, StepsToWin: 620, EnemyFood: 1, EnemyQueenHealth: 10, OwnAnthillHealth: 3, EnemyAnthillHealth: 3}
		require.Equal(t, 0.25, table.Value(v))
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		input := "3,18,0,2,100,100,50,50,1\n3,18,0,2,100,100,50,50,2\n"

		table, err := ReadTable(strings.NewReader(input))

		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
		require.Equal(t, 2.0, table.Value(example))
	})

	t.Run("empty input gives an empty table", func(t *testing.T) {
		table, err := ReadTable(strings.NewReader(""))

		require.NoError(t, err)
		require.Zero(t, table.Len())
	})
}

func TestSaveLoad(t *testing.T) {
	t.Run("round trip keeps exact values", func(t *testing.T) {
		table := NewTable()
		values := []float64{0.1 + 0.2, -1.0 / 3.0, 1e-17, 0, -0.001}
		for i, value := range values {
			v := example
			v.OwnFood = i
			table.Upsert(v, value)
		}
		path := filepath.Join(t.TempDir(), "nested", "utilities.csv")

		require.NoError(t, table.Save(path))
		loaded, err := LoadTable(path)

		require.NoError(t, err)
		require.Equal(t, table.Records(), loaded.Records(), "Loaded table should match the saved one")
		for _, r := range table.Records() {
			got, ok := loaded.Lookup(r.Vector)
			require.True(t, ok)
			require.Equal(t, r.Value, got)
		}
	})

	t.Run("save replaces the previous file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "utilities.csv")
		first := NewTable()
		first.Upsert(example, 1)
		require.NoError(t, first.Save(path))

		second := NewTable()
		require.NoError(t, second.Save(path))

		loaded, err := LoadTable(path)
		require.NoError(t, err)
		require.Zero(t, loaded.Len())
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1, "Temporary files should not be left behind")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTable(filepath.Join(t.TempDir(), "missing.csv"))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}
