package textcodec_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/textcodec"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")

	src, err := matrix.New(4, 6)
	require.NoError(t, err)
	require.NoError(t, src.Randomize(-50, 50, matrix.WithSeed(31)))

	require.NoError(t, textcodec.Save(src, path))
	back, err := textcodec.Load(path)
	require.NoError(t, err)
	require.True(t, matrix.Equal(src, back))
}

func TestSave_WireFormatOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.NoError(t, textcodec.Save(m, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1 2 \n3 4 \n", string(raw))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := textcodec.Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_FileWithBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n1 2\n\n3 4\n\n"), 0o644))

	m, err := textcodec.Load(path)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.ToRows())
}

func TestLoad_StrictOptionPropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n4 5\n"), 0o644))

	_, err := textcodec.Load(path, textcodec.WithStrict())
	require.ErrorIs(t, err, textcodec.ErrFormat)
}

func TestSave_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	big, err := matrix.New(5, 5)
	require.NoError(t, err)
	big.Fill(123456)
	require.NoError(t, textcodec.Save(big, path))

	small, err := matrix.FromRows([][]int{{1}})
	require.NoError(t, err)
	require.NoError(t, textcodec.Save(small, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1 \n", string(raw))
}
