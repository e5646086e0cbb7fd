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

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Sparse is a QP adapter taking problem data in compressed sparse column
// form, touching only non-zero entries where the update rules allow it.
type Sparse struct {
	*Model
}

// NewSparse creates a sparse QP adapter configured for numVars decision
// variables, numEq equality constraints and numIneq inequality
// constraints.
func NewSparse(numVars, numEq, numIneq int, opts ...Option) (*Sparse, error) {
	model, err := newModel(numVars, numEq, numIneq, opts...)
	if err != nil {
		return nil, err
	}
	return &Sparse{Model: model}, nil
}

// Solve loads the problem data into the engine model and runs the
// blocking solve. Only the stored non-zeros of Q contribute quadratic
// terms (each at weight 0.5*value). Constraint coefficients are updated
// per column: the whole column is first zeroed across the block, then
// the column's non-zeros are written, so entries that vanished since the
// previous solve are cleared. Right-hand sides are only written at the
// stored non-zeros of beq/bineq — an entry that was non-zero in a
// previous solve and must become zero has to be stored explicitly.
//
// Zero-row constraint blocks may be passed as nil. The returned bool is
// Success(); a non-nil error is only returned for failed engine calls.
// Mismatched input dimensions panic.
func (qp *Sparse) Solve(Q *sparse.CSC, c *sparse.Vector,
	Aeq *sparse.CSC, beq *sparse.Vector,
	Aineq *sparse.CSC, bineq *sparse.Vector,
	lb, ub mat.Vector) (bool, error) {

	n := qp.numVars
	checkSquare("Q", Q, n)
	checkVecLen("c", c, n)
	checkVecLen("lb", lb, n)
	checkVecLen("ub", ub, n)

	// Objective: quadratic terms from the non-zeros of Q only.
	var qrow, qcol []C.int
	var qval []C.double
	Q.DoNonZero(func(i, j int, v float64) {
		qrow = append(qrow, C.int(i))
		qcol = append(qcol, C.int(j))
		qval = append(qval, C.double(0.5*v))
	})
	if err := qp.setQuadObjective(qrow, qcol, qval); err != nil {
		return false, err
	}

	// Objective: linear terms. The objective is replaced wholesale, so
	// entries absent from c read as zero.
	obj := make([]C.double, n)
	c.DoNonZero(func(i, _ int, v float64) {
		obj[i] = C.double(v)
	})
	if err := qp.setDblAttrArray(attrObj, 0, obj); err != nil {
		return false, err
	}

	// Bounds.
	if err := qp.setDblAttrArray(attrLB, 0, vecDoubles(lb)); err != nil {
		return false, err
	}
	if err := qp.setDblAttrArray(attrUB, 0, vecDoubles(ub)); err != nil {
		return false, err
	}

	if err := qp.updateConstr(0, qp.numEq, "Aeq", Aeq, beq); err != nil {
		return false, err
	}
	if err := qp.updateConstr(qp.numEq, qp.numIneq, "Aineq", Aineq, bineq); err != nil {
		return false, err
	}

	return qp.optimize()
}

// updateConstr updates the constraint block starting at row offset:
// for each column the block's coefficients are zeroed and the column's
// stored non-zeros written back; the right-hand side is written only at
// b's stored non-zeros. A zero-row block is a no-op.
func (qp *Sparse) updateConstr(offset, count int, name string, A *sparse.CSC, b *sparse.Vector) error {
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
	zeros := make([]C.double, count)
	for i := range cind {
		cind[i] = C.int(offset + i)
	}

	var cerr error
	for col := 0; col < qp.numVars; col++ {
		for i := range vind {
			vind[i] = C.int(col)
		}
		code := C.GRBchgcoeffs(qp.prob, C.int(count), &cind[0], &vind[0], &zeros[0])
		if err := qp.check(code, "clear "+name+" column"); err != nil {
			return err
		}

		A.DoColNonZero(col, func(i, j int, v float64) {
			if cerr != nil {
				return
			}
			ci := C.int(offset + i)
			vi := C.int(j)
			val := C.double(v)
			code := C.GRBchgcoeffs(qp.prob, 1, &ci, &vi, &val)
			cerr = qp.check(code, "change "+name+" coefficient")
		})
		if cerr != nil {
			return cerr
		}
	}

	b.DoNonZero(func(i, _ int, v float64) {
		if cerr != nil {
			return
		}
		cerr = qp.setDblAttrElement(attrRHS, offset+i, v)
	})
	return cerr
}
