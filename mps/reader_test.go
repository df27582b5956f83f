package mps_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/letruongzzio/linprog/lp"
	"github.com/letruongzzio/linprog/mps"
	"github.com/letruongzzio/linprog/simplex"
)

// sampleMPS is the classic three-variable example from the MPS format
// documentation: one objective row, a ≤, a ≥ and an = constraint, an upper
// bound on X1 and a negative lower bound on X2.
const sampleMPS = `NAME          SAMPLE
ROWS
 N  COST
 L  LIM1
 G  LIM2
 E  MYEQN
COLUMNS
    X1        COST      1.0   LIM1      1.0
    X1        LIM2      1.0
    X2        COST      2.0   LIM1      1.0
    X2        MYEQN     -1.0
    X3        COST      -1.0  LIM2      1.0
    X3        MYEQN     1.0
RHS
    RHS       LIM1      4.0   LIM2      1.0
    RHS       MYEQN     7.0
BOUNDS
 UP BND       X1        4.0
 LO BND       X2        -1.0
ENDATA
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.mps")
	require.NoError(t, os.WriteFile(path, []byte(sampleMPS), 0o644))

	return path
}

func TestRead_Sample(t *testing.T) {
	p, err := mps.Read(writeSample(t))
	require.NoError(t, err)

	require.Equal(t, lp.Minimize, p.Direction)
	require.Equal(t, []float64{1, 2, -1}, p.C)

	// Three constraint rows (the free objective row contributes none) plus
	// two rows materializing the finite column bounds.
	require.Len(t, p.A, 5)

	require.Equal(t, []float64{1, 1, 0}, p.A[0])
	require.Equal(t, lp.LessEq, p.Signs[0])
	require.Equal(t, 4.0, p.B[0])

	require.Equal(t, []float64{1, 0, 1}, p.A[1])
	require.Equal(t, lp.GreaterEq, p.Signs[1])
	require.Equal(t, 1.0, p.B[1])

	require.Equal(t, []float64{0, -1, 1}, p.A[2])
	require.Equal(t, lp.Equal, p.Signs[2])
	require.Equal(t, 7.0, p.B[2])

	// 0 ≤ X1 ≤ 4: base domain NonNegative plus an explicit upper-bound row.
	require.Equal(t, []float64{1, 0, 0}, p.A[3])
	require.Equal(t, lp.LessEq, p.Signs[3])
	require.Equal(t, 4.0, p.B[3])

	// X2 ≥ -1: Free base domain plus an explicit lower-bound row.
	require.Equal(t, []float64{0, 1, 0}, p.A[4])
	require.Equal(t, lp.GreaterEq, p.Signs[4])
	require.Equal(t, -1.0, p.B[4])

	require.Equal(t, []lp.Bound{lp.NonNegative, lp.Free, lp.NonNegative}, p.Bounds)
}

func TestRead_SampleSolves(t *testing.T) {
	p, err := mps.Read(writeSample(t))
	require.NoError(t, err)

	// MYEQN forces x3 = 7 + x2, so the objective is x1 + x2 - 7 and its
	// minimum sits at x1 = 0, x2 = -1.
	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	require.Equal(t, lp.StatusOptimal, sol.Status)
	require.InDelta(t, -8, sol.Objective, 1e-6)
	require.InDelta(t, 0, sol.X[0], 1e-6)
	require.InDelta(t, -1, sol.X[1], 1e-6)
	require.InDelta(t, 6, sol.X[2], 1e-6)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := mps.Read(filepath.Join(t.TempDir(), "absent.mps"))
	require.Error(t, err)
}
