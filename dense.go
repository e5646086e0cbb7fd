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

// #cgo CFLAGS: -I/opt/gurobi/include
// #cgo LDFLAGS: -L/opt/gurobi/lib -lgurobi110
// #include <gurobi_c.h>
import "C"

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense is a QP adapter taking problem data as gonum dense matrices.
type Dense struct {
	*Model
}

// NewDense creates a dense QP adapter configured for numVars decision
// variables, numEq equality constraints and numIneq inequality
// constraints.
func NewDense(numVars, numEq, numIneq int, opts ...Option) (*Dense, error) {
	model, err := newModel(numVars, numEq, numIneq, opts...)
	if err != nil {
		return nil, err
	}
	return &Dense{Model: model}, nil
}

// Solve loads the problem data into the engine model and runs the
// blocking solve. The objective is 0.5 x'Qx + c'x; every entry of Q is
// written as a quadratic term and every coefficient of Aeq and Aineq is
// rewritten column by column, zeros included. Bounds and both right-hand
// sides are fully overwritten.
//
// Zero-row constraint blocks may be passed as nil. The returned bool is
// Success(); a non-nil error is only returned for failed engine calls.
// Mismatched input dimensions panic.
func (qp *Dense) Solve(Q mat.Matrix, c mat.Vector,
	Aeq mat.Matrix, beq mat.Vector,
	Aineq mat.Matrix, bineq mat.Vector,
	lb, ub mat.Vector) (bool, error) {

	n := qp.numVars
	checkSquare("Q", Q, n)
	checkVecLen("c", c, n)
	checkVecLen("lb", lb, n)
	checkVecLen("ub", ub, n)

	// Objective: quadratic terms over every (row, col) pair of Q.
	qrow := make([]C.int, 0, n*n)
	qcol := make([]C.int, 0, n*n)
	qval := make([]C.double, 0, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			qrow = append(qrow, C.int(i))
			qcol = append(qcol, C.int(j))
			qval = append(qval, C.double(0.5*Q.At(i, j)))
		}
	}
	if err := qp.setQuadObjective(qrow, qcol, qval); err != nil {
		return false, err
	}

	// Objective: linear terms.
	if err := qp.setDblAttrArray(attrObj, 0, vecDoubles(c)); err != nil {
		return false, err
	}

	// Bounds.
	if err := qp.setDblAttrArray(attrLB, 0, vecDoubles(lb)); err != nil {
		return false, err
	}
	if err := qp.setDblAttrArray(attrUB, 0, vecDoubles(ub)); err != nil {
		return false, err
	}

	// Update eq and ineq, column by column.
	if err := qp.updateConstr(0, qp.numEq, "Aeq", Aeq, beq); err != nil {
		return false, err
	}
	if err := qp.updateConstr(qp.numEq, qp.numIneq, "Aineq", Aineq, bineq); err != nil {
		return false, err
	}

	return qp.optimize()
}

// updateConstr rewrites every coefficient of the constraint block
// starting at row offset, together with its right-hand side.
func (qp *Dense) updateConstr(offset, count int, name string, A mat.Matrix, b mat.Vector) error {
	if count == 0 {
		return nil
	}

	r, cols := A.Dims()
	if r != count || cols != qp.numVars {
		panic(fmt.Sprintf("gurobi: %s is %dx%d, expected %dx%d", name, r, cols, count, qp.numVars))
	}
	if b.Len() != count {
		panic(fmt.Sprintf("gurobi: %s right-hand side has length %d, expected %d", name, b.Len(), count))
	}

	cind := make([]C.int, count)
	vind := make([]C.int, count)
	val := make([]C.double, count)
	for i := range cind {
		cind[i] = C.int(offset + i)
	}
	for col := 0; col < qp.numVars; col++ {
		for i := 0; i < count; i++ {
			vind[i] = C.int(col)
			val[i] = C.double(A.At(i, col))
		}
		code := C.GRBchgcoeffs(qp.prob, C.int(count), &cind[0], &vind[0], &val[0])
		if err := qp.check(code, "change "+name+" coefficients"); err != nil {
			return err
		}
	}

	return qp.setDblAttrArray(attrRHS, offset, vecDoubles(b))
}

func checkSquare(name string, m mat.Matrix, n int) {
	r, c := m.Dims()
	if r != n || c != n {
		panic(fmt.Sprintf("gurobi: %s is %dx%d, expected %dx%d", name, r, c, n, n))
	}
}

func checkVecLen(name string, v mat.Vector, n int) {
	if v.Len() != n {
		panic(fmt.Sprintf("gurobi: %s has length %d, expected %d", name, v.Len(), n))
	}
}

func vecDoubles(v mat.Vector) []C.double {
	out := make([]C.double, v.Len())
	for i := range out {
		out[i] = C.double(v.AtVec(i))
	}
	return out
}
