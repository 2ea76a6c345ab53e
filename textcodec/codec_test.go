package textcodec_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/textcodec"
	"github.com/stretchr/testify/require"
)

func mustFromRows(t *testing.T, rows [][]int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestEncode_ConcreteScenario(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, "1 2 \n3 4 \n", textcodec.Encode(m))
}

func TestEncode_EmptyMatrix(t *testing.T) {
	m, err := matrix.New(0, 0)
	require.NoError(t, err)
	require.Equal(t, "", textcodec.Encode(m))

	var nilM *matrix.Matrix
	require.Equal(t, "", textcodec.Encode(nilM))
}

func TestParse_ConcreteScenario(t *testing.T) {
	m, err := textcodec.Parse("1 2\n3 4\n")
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.ToRows())
}

func TestParse_NegativeValues(t *testing.T) {
	m, err := textcodec.Parse("-1 2 \n3 -4 \n")
	require.NoError(t, err)
	require.Equal(t, [][]int{{-1, 2}, {3, -4}}, m.ToRows())
}

func TestParse_BlankLineTolerance(t *testing.T) {
	withBlanks := "\n1 2 \n\n\n3 4 \n\n"
	plain := "1 2 \n3 4 \n"

	a, err := textcodec.Parse(withBlanks)
	require.NoError(t, err)
	b, err := textcodec.Parse(plain)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, b))
}

func TestParse_WhitespaceOnlyLinesAreBlank(t *testing.T) {
	m, err := textcodec.Parse("1 2 \n   \n3 4 \n")
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.ToRows())
}

func TestParse_EmptyInputYieldsEmptyMatrix(t *testing.T) {
	for _, src := range []string{"", "\n", "\n\n\n"} {
		m, err := textcodec.Parse(src)
		require.NoError(t, err)
		require.True(t, m.IsEmpty())
	}
}

func TestParse_NoPhantomTokens(t *testing.T) {
	// Doubled and trailing separators must not shift or add columns.
	m, err := textcodec.Parse("1  2   3  \n4 5 6\n")
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m.ToRows())
}

func TestParse_ExcessTokensIgnored(t *testing.T) {
	// Column count is fixed by the first data line; trailing garbage on
	// later lines is tolerated, not an error.
	m, err := textcodec.Parse("1 2 \n3 4 99 77 \n")
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.ToRows())
}

func TestParse_ShortRowsZeroFill(t *testing.T) {
	m, err := textcodec.Parse("1 2 3 \n4 \n")
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 0, 0}}, m.ToRows())
}

func TestParse_PermissiveTokenRule(t *testing.T) {
	// atoi semantics: leading digits win, junk parses as zero.
	m, err := textcodec.Parse("12ab -7x ab \n+3 - 0 \n")
	require.NoError(t, err)
	require.Equal(t, [][]int{{12, -7, 0}, {3, 0, 0}}, m.ToRows())
}

func TestParse_CRLFInput(t *testing.T) {
	m, err := textcodec.Parse("1 2 \r\n3 4 \r\n")
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.ToRows())
}

func TestParse_Strict_RaggedShortRow(t *testing.T) {
	_, err := textcodec.Parse("1 2 3 \n4 5 \n", textcodec.WithStrict())
	require.ErrorIs(t, err, textcodec.ErrFormat)
}

func TestParse_Strict_RaggedLongRow(t *testing.T) {
	_, err := textcodec.Parse("1 2 \n3 4 5 \n", textcodec.WithStrict())
	require.ErrorIs(t, err, textcodec.ErrFormat)
}

func TestParse_Strict_ReportsInputLineNumber(t *testing.T) {
	// Blank lines shift the data-row index away from the file position;
	// the diagnostic must cite the actual (1-based) input line.
	_, err := textcodec.Parse("\n1 2\n\n\n3 4 5\n", textcodec.WithStrict())
	require.ErrorIs(t, err, textcodec.ErrFormat)
	require.ErrorContains(t, err, "line 5")
}

func TestParse_Strict_NonIntegerToken(t *testing.T) {
	_, err := textcodec.Parse("1 2 \n3 4x \n", textcodec.WithStrict())
	require.ErrorIs(t, err, textcodec.ErrFormat)
}

func TestParse_Strict_AcceptsExactInput(t *testing.T) {
	m, err := textcodec.Parse("1 2 \n3 4 \n", textcodec.WithStrict())
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.ToRows())
}

func TestRoundTrip(t *testing.T) {
	src, err := matrix.New(7, 5)
	require.NoError(t, err)
	require.NoError(t, src.Randomize(-1000, 1000, matrix.WithSeed(17)))

	back, err := textcodec.Parse(textcodec.Encode(src))
	require.NoError(t, err)
	require.True(t, matrix.Equal(src, back))
}

func TestRoundTrip_StrictAcceptsOwnOutput(t *testing.T) {
	src, err := matrix.New(3, 4)
	require.NoError(t, err)
	require.NoError(t, src.Randomize(-9, 9, matrix.WithSeed(23)))

	back, err := textcodec.Parse(textcodec.Encode(src), textcodec.WithStrict())
	require.NoError(t, err)
	require.True(t, matrix.Equal(src, back))
}

func TestRead_FromReader(t *testing.T) {
	m, err := textcodec.Read(strings.NewReader("5 6 \n7 8 \n"))
	require.NoError(t, err)
	require.Equal(t, [][]int{{5, 6}, {7, 8}}, m.ToRows())
}

func TestWrite_ToWriter(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	var b strings.Builder
	require.NoError(t, textcodec.Write(m, &b))
	require.Equal(t, "1 2 \n3 4 \n", b.String())
}
