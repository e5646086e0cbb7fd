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

import "gonum.org/v1/gonum/mat"

/* Result accessors */

// Status returns the raw engine status from the most recent solve, or
// StatusUnsolved if no solve has run since the last SetProblem.
func (model *Model) Status() Status {
	return model.status
}

// Iterations returns the barrier iteration count of the most recent
// solve, or 0 if no solve has run.
func (model *Model) Iterations() int {
	return model.iter
}

// Success reports whether the most recent solve found an optimal or
// sub-optimal solution.
func (model *Model) Success() bool {
	return model.status == StatusOptimal || model.status == StatusSuboptimal
}

// Result returns the primal solution vector. The vector is a view into
// the model's buffer and is overwritten by the next solve. It returns an
// *UnsolvedError if the most recent solve was not successful.
func (model *Model) Result() (*mat.VecDense, error) {
	if !model.Success() {
		return nil, &UnsolvedError{What: "result", Status: model.status}
	}
	return asVec(model.x), nil
}

// DualEq returns the dual values of the equality constraints. It returns
// an *UnsolvedError if the most recent solve was not successful.
func (model *Model) DualEq() (*mat.VecDense, error) {
	if !model.Success() {
		return nil, &UnsolvedError{What: "dual_eq", Status: model.status}
	}
	return asVec(model.yEq), nil
}

// DualIneq returns the dual values of the inequality constraints. It
// returns an *UnsolvedError if the most recent solve was not successful.
func (model *Model) DualIneq() (*mat.VecDense, error) {
	if !model.Success() {
		return nil, &UnsolvedError{What: "dual_ineq", Status: model.status}
	}
	return asVec(model.yIneq), nil
}

// ObjectiveValue returns the objective value of the most recent solution.
// It returns an *UnsolvedError if the most recent solve was not
// successful.
func (model *Model) ObjectiveValue() (float64, error) {
	if !model.Success() {
		return 0, &UnsolvedError{What: "objective value", Status: model.status}
	}
	return model.getDblAttr(attrObjVal), nil
}

// asVec wraps a result buffer without copying. gonum rejects zero-length
// construction, so empty buffers map to the empty vector.
func asVec(data []float64) *mat.VecDense {
	if len(data) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(data), data)
}
