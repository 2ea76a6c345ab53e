package matrix_test

import (
	"testing"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroInitialized(t *testing.T) {
	m, err := matrix.New(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, 0, v)
		}
	}
}

func TestNew_ZeroDimensionsAreLegal(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
		m, err := matrix.New(shape[0], shape[1])
		require.NoError(t, err)
		require.True(t, m.IsEmpty())
	}
}

func TestNew_NegativeDimensions(t *testing.T) {
	_, err := matrix.New(-1, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.New(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNew_OverflowingShape(t *testing.T) {
	_, err := matrix.New(int(^uint(0)>>1), 2)
	require.ErrorIs(t, err, matrix.ErrTooBig)
}

func TestRelease_ResetsToEmptyState(t *testing.T) {
	m, err := matrix.New(4, 4)
	require.NoError(t, err)
	m.Release()
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.True(t, m.IsEmpty())
}

func TestRelease_IdempotentAndNilSafe(t *testing.T) {
	m, err := matrix.New(2, 2)
	require.NoError(t, err)
	m.Release()
	m.Release() // second release must be a no-op
	require.True(t, m.IsEmpty())

	var nilM *matrix.Matrix
	require.NotPanics(t, func() { nilM.Release() })
}

func TestZeroValue_IsEmptyMatrix(t *testing.T) {
	var m matrix.Matrix
	require.True(t, m.IsEmpty())
	r, c := m.Shape()
	require.Zero(t, r)
	require.Zero(t, c)
}

func TestAtSet_Bounds(t *testing.T) {
	m, err := matrix.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 1, 42))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(-1, 0, 7)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestClone_Independence(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	cp := m.Clone()
	require.True(t, matrix.Equal(m, cp))

	require.NoError(t, cp.Set(0, 0, 99))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v) // original untouched
}

func TestFromRows_RaggedInput(t *testing.T) {
	_, err := matrix.FromRows([][]int{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestFromRows_ToRows_RoundTrip(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, rows, m.ToRows())
}

func TestRow_CopyNotAlias(t *testing.T) {
	m, err := matrix.FromRows([][]int{{7, 8, 9}})
	require.NoError(t, err)
	row, err := m.Row(0)
	require.NoError(t, err)
	row[0] = 0 // must not write through
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	_, err = m.Row(1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestString_DiagnosticForm(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
