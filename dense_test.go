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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// minimize x'x subject to x = (1, 1); optimum is obviously (1, 1).
func TestDenseKnownOptimum(t *testing.T) {
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
	assert.Equal(t, StatusOptimal, qp.Status())

	x, err := qp.Result()
	require.NoError(t, err)
	assert.InDelta(t, 1, x.AtVec(0), delta)
	assert.InDelta(t, 1, x.AtVec(1), delta)

	obj, err := qp.ObjectiveValue()
	require.NoError(t, err)
	assert.InDelta(t, 2, obj, delta)

	yEq, err := qp.DualEq()
	require.NoError(t, err)
	assert.Equal(t, 2, yEq.Len())

	yIneq, err := qp.DualIneq()
	require.NoError(t, err)
	assert.Equal(t, 0, yIneq.Len())
}

// minimize x'x subject to -x <= -3, i.e. x >= 3; optimum is x = 3.
func TestDenseInequality(t *testing.T) {
	qp, err := NewDense(1, 0, 1)
	require.NoError(t, err)

	ok, err := qp.Solve(
		mat.NewDense(1, 1, []float64{2}),
		mat.NewVecDense(1, nil),
		nil, nil,
		mat.NewDense(1, 1, []float64{-1}),
		mat.NewVecDense(1, []float64{-3}),
		mat.NewVecDense(1, []float64{-100}),
		mat.NewVecDense(1, []float64{100}),
	)
	require.NoError(t, err)
	require.True(t, ok)

	x, err := qp.Result()
	require.NoError(t, err)
	assert.InDelta(t, 3, x.AtVec(0), delta)

	yIneq, err := qp.DualIneq()
	require.NoError(t, err)
	assert.Equal(t, 1, yIneq.Len())
}

// x = 1 and x = 2 cannot hold at once.
func TestDenseInfeasible(t *testing.T) {
	qp, err := NewDense(1, 2, 0)
	require.NoError(t, err)

	ok, err := qp.Solve(
		mat.NewDense(1, 1, []float64{2}),
		mat.NewVecDense(1, nil),
		mat.NewDense(2, 1, []float64{1, 1}),
		mat.NewVecDense(2, []float64{1, 2}),
		nil, nil,
		mat.NewVecDense(1, []float64{-10}),
		mat.NewVecDense(1, []float64{10}),
	)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, StatusInfeasible, qp.Status())
	assert.False(t, qp.Success())

	var uerr *UnsolvedError
	_, err = qp.Result()
	require.Error(t, err)
	assert.ErrorAs(t, err, &uerr)
	assert.Equal(t, StatusInfeasible, uerr.Status)
}

// Re-solving with new bounds and otherwise identical data must reflect
// only the new bounds.
func TestDenseResolveWithNewBounds(t *testing.T) {
	qp, err := NewDense(1, 0, 0)
	require.NoError(t, err)

	Q := mat.NewDense(1, 1, []float64{2})
	c := mat.NewVecDense(1, nil)

	ok, err := qp.Solve(Q, c, nil, nil, nil, nil,
		mat.NewVecDense(1, []float64{1}),
		mat.NewVecDense(1, []float64{5}),
	)
	require.NoError(t, err)
	require.True(t, ok)

	x, err := qp.Result()
	require.NoError(t, err)
	assert.InDelta(t, 1, x.AtVec(0), delta)

	ok, err = qp.Solve(Q, c, nil, nil, nil, nil,
		mat.NewVecDense(1, []float64{2}),
		mat.NewVecDense(1, []float64{5}),
	)
	require.NoError(t, err)
	require.True(t, ok)

	x, err = qp.Result()
	require.NoError(t, err)
	assert.InDelta(t, 2, x.AtVec(0), delta)
}

func TestDenseDimensionPanics(t *testing.T) {
	qp, err := NewDense(2, 1, 0)
	require.NoError(t, err)

	Q := mat.NewDense(2, 2, []float64{2, 0, 0, 2})
	c := mat.NewVecDense(2, nil)
	lb := mat.NewVecDense(2, []float64{-1, -1})
	ub := mat.NewVecDense(2, []float64{1, 1})

	assert.Panics(t, func() {
		qp.Solve(mat.NewDense(1, 1, []float64{2}), c, // Q not numVars x numVars
			mat.NewDense(1, 2, []float64{1, 1}), mat.NewVecDense(1, []float64{1}),
			nil, nil, lb, ub)
	})
	assert.Panics(t, func() {
		qp.Solve(Q, c,
			mat.NewDense(2, 2, nil), mat.NewVecDense(2, nil), // wrong constraint count
			nil, nil, lb, ub)
	})
	assert.Panics(t, func() {
		qp.Solve(Q, c,
			mat.NewDense(1, 2, []float64{1, 1}), mat.NewVecDense(2, nil), // RHS length mismatch
			nil, nil, lb, ub)
	})
	assert.Panics(t, func() {
		qp.Solve(Q, mat.NewVecDense(1, nil), // c length mismatch
			mat.NewDense(1, 2, []float64{1, 1}), mat.NewVecDense(1, []float64{1}),
			nil, nil, lb, ub)
	})
}
