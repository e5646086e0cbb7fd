/*
This file is part of gonum-gurobi.

gonum-gurobi is free software: you can redistribute it and/or modify
it under the terms of the GNU Lesser General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

gonum-gurobi is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Lesser General Public License for more details.

You should have received a copy of the GNU Lesser General Public License
along with gonum-gurobi.  If not, see <http://www.gnu.org/licenses/>.
*/
package gurobi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const delta = 1e-6 // acceptable numerical deviation for test results

func TestUnsolvedSentinel(t *testing.T) {
	sizes := []struct{ numVars, numEq, numIneq int }{
		{2, 1, 1},
		{3, 0, 0},
		{1, 2, 0},
		{0, 0, 0},
	}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%dx%d", size.numVars, size.numEq, size.numIneq), func(t *testing.T) {
			qp, err := NewDense(size.numVars, size.numEq, size.numIneq)
			require.NoError(t, err)

			assert.Equal(t, StatusUnsolved, qp.Status())
			assert.False(t, qp.Success())
			assert.Equal(t, 0, qp.Iterations())

			var uerr *UnsolvedError
			_, err = qp.Result()
			assert.ErrorAs(t, err, &uerr)
			_, err = qp.DualEq()
			assert.ErrorAs(t, err, &uerr)
			_, err = qp.DualIneq()
			assert.ErrorAs(t, err, &uerr)
			_, err = qp.ObjectiveValue()
			assert.ErrorAs(t, err, &uerr)
		})
	}
}

func TestSetProblemInvalidatesResult(t *testing.T) {
	qp, err := NewDense(2, 2, 0)
	require.NoError(t, err)

	ok, err := qp.Solve(
		mat.NewDense(2, 2, []float64{2, 0, 0, 2}),
		mat.NewVecDense(2, nil),
		mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
		mat.NewVecDense(2, []float64{1, 1}),
		nil, nil,
		mat.NewVecDense(2, []float64{-10, -10}),
		mat.NewVecDense(2, []float64{10, 10}),
	)
	require.NoError(t, err)
	require.True(t, ok)

	// Reconfiguring throws away the previous solution entirely.
	require.NoError(t, qp.SetProblem(3, 1, 1))
	assert.Equal(t, StatusUnsolved, qp.Status())
	assert.False(t, qp.Success())
	assert.Equal(t, 0, qp.Iterations())

	_, err = qp.Result()
	assert.Error(t, err)
}

func TestSetProblemNegativeSizePanics(t *testing.T) {
	qp, err := NewDense(1, 0, 0)
	require.NoError(t, err)

	assert.Panics(t, func() { qp.SetProblem(-1, 0, 0) })
	assert.Panics(t, func() { qp.SetProblem(1, -1, 0) })
	assert.Panics(t, func() { qp.SetProblem(1, 0, -1) })
}

func TestToleranceBounds(t *testing.T) {
	qp, err := NewDense(1, 0, 0)
	require.NoError(t, err)

	assert.Panics(t, func() { qp.SetFeasibilityTolerance(1e-10) })
	assert.Panics(t, func() { qp.SetFeasibilityTolerance(1) })
	assert.Panics(t, func() { qp.SetOptimalityTolerance(1e-10) })
	assert.Panics(t, func() { qp.SetOptimalityTolerance(1) })

	qp.SetFeasibilityTolerance(1e-7)
	assert.InDelta(t, 1e-7, qp.FeasibilityTolerance(), 1e-12)

	qp.SetOptimalityTolerance(1e-8)
	assert.InDelta(t, 1e-8, qp.OptimalityTolerance(), 1e-12)
}

func TestWarmStartRoundTrip(t *testing.T) {
	qp, err := NewDense(1, 0, 0)
	require.NoError(t, err)

	qp.SetWarmStart(WarmDualSimplex)
	assert.Equal(t, WarmDualSimplex, qp.WarmStart())

	qp.SetWarmStart(WarmDefault)
	assert.Equal(t, WarmDefault, qp.WarmStart())
}

func TestVariableTypeRoundTrip(t *testing.T) {
	qp, err := NewDense(2, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, ContinuousVariable, qp.GetVariableType(0))

	qp.SetVariableType(1, IntegerVariable)
	assert.Equal(t, IntegerVariable, qp.GetVariableType(1))
	assert.Equal(t, ContinuousVariable, qp.GetVariableType(0))

	assert.Panics(t, func() { qp.SetVariableType(2, BinaryVariable) })
	assert.Panics(t, func() { qp.GetVariableType(-1) })
}

func TestTimeLimit(t *testing.T) {
	qp, err := NewDense(1, 0, 0)
	require.NoError(t, err)

	qp.SetTimeLimit(30)
	assert.InDelta(t, 30, qp.TimeLimit(), 1e-12)
}

func TestModelName(t *testing.T) {
	qp, err := NewDense(1, 0, 0, WithName("portfolio"))
	require.NoError(t, err)

	assert.Equal(t, "portfolio", qp.Name())
}

func TestStatusDescriptions(t *testing.T) {
	assert.Equal(t, "The solver has not been run yet.", StatusUnsolved.Description())
	assert.Equal(t, "The solver has not been run yet.", Status(99).Description())
	assert.Equal(t, "Model was proven to be infeasible.", StatusInfeasible.Description())
	assert.Contains(t, StatusOptimal.Description(), "optimality")
	assert.Contains(t, StatusTimeLimit.Description(), "TimeLimit")

	assert.Equal(t, "unsolved", StatusUnsolved.String())
	assert.Equal(t, "optimal", StatusOptimal.String())
	assert.Equal(t, "status(99)", Status(99).String())
}

type testLogger struct {
	lines []string
}

func (l *testLogger) Print(v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprint(v...))
}

func TestLoggerReceivesEngineOutput(t *testing.T) {
	logger := &testLogger{}
	qp, err := NewDense(2, 1, 0, WithLogger(logger))
	require.NoError(t, err)

	ok, err := qp.Solve(
		mat.NewDense(2, 2, []float64{2, 0, 0, 2}),
		mat.NewVecDense(2, nil),
		mat.NewDense(1, 2, []float64{1, 1}),
		mat.NewVecDense(1, []float64{1}),
		nil, nil,
		mat.NewVecDense(2, []float64{-10, -10}),
		mat.NewVecDense(2, []float64{10, 10}),
	)
	require.NoError(t, err)
	require.True(t, ok)

	assert.NotEmpty(t, logger.lines)
}
