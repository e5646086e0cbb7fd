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

// VariableType is the domain classification of a decision variable.
type VariableType byte

const (
	ContinuousVariable     = VariableType(C.GRB_CONTINUOUS)
	BinaryVariable         = VariableType(C.GRB_BINARY)
	IntegerVariable        = VariableType(C.GRB_INTEGER)
	SemiContinuousVariable = VariableType(C.GRB_SEMICONT)
	SemiIntegerVariable    = VariableType(C.GRB_SEMIINT)
)

func (t VariableType) String() string {
	switch t {
	case ContinuousVariable:
		return "continuous"
	case BinaryVariable:
		return "binary"
	case IntegerVariable:
		return "integer"
	case SemiContinuousVariable:
		return "semi-continuous"
	case SemiIntegerVariable:
		return "semi-integer"
	default:
		return "unknown"
	}
}

// WarmStatus selects the algorithm the engine uses to warm-start a solve
// from the previous solution (the MultiObjMethod parameter).
type WarmStatus int

const (
	WarmDefault       WarmStatus = -1
	WarmPrimalSimplex WarmStatus = 0
	WarmDualSimplex   WarmStatus = 1
	WarmBarrier       WarmStatus = 2
)

func (w WarmStatus) String() string {
	switch w {
	case WarmDefault:
		return "default"
	case WarmPrimalSimplex:
		return "primal simplex"
	case WarmDualSimplex:
		return "dual simplex"
	case WarmBarrier:
		return "barrier"
	default:
		return "unknown"
	}
}
