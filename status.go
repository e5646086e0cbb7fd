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

import "fmt"

/* Types */

// Status is the engine's termination status from the most recent solve.
// The zero value, StatusUnsolved, is the sentinel reported before any
// solve has run.
type Status int

const (
	StatusUnsolved       = Status(0)
	StatusLoaded         = Status(C.GRB_LOADED)
	StatusOptimal        = Status(C.GRB_OPTIMAL)
	StatusInfeasible     = Status(C.GRB_INFEASIBLE)
	StatusInfOrUnbounded = Status(C.GRB_INF_OR_UNBD)
	StatusUnbounded      = Status(C.GRB_UNBOUNDED)
	StatusCutoff         = Status(C.GRB_CUTOFF)
	StatusIterationLimit = Status(C.GRB_ITERATION_LIMIT)
	StatusNodeLimit      = Status(C.GRB_NODE_LIMIT)
	StatusTimeLimit      = Status(C.GRB_TIME_LIMIT)
	StatusSolutionLimit  = Status(C.GRB_SOLUTION_LIMIT)
	StatusInterrupted    = Status(C.GRB_INTERRUPTED)
	StatusNumeric        = Status(C.GRB_NUMERIC)
	StatusSuboptimal     = Status(C.GRB_SUBOPTIMAL)
	StatusInProgress     = Status(C.GRB_INPROGRESS)
	StatusUserObjLimit   = Status(C.GRB_USER_OBJ_LIMIT)
)

// String returns a short name for the status code.
func (s Status) String() string {
	switch s {
	case StatusUnsolved:
		return "unsolved"
	case StatusLoaded:
		return "loaded"
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusInfOrUnbounded:
		return "infeasible or unbounded"
	case StatusUnbounded:
		return "unbounded"
	case StatusCutoff:
		return "cutoff"
	case StatusIterationLimit:
		return "iteration limit"
	case StatusNodeLimit:
		return "node limit"
	case StatusTimeLimit:
		return "time limit"
	case StatusSolutionLimit:
		return "solution limit"
	case StatusInterrupted:
		return "interrupted"
	case StatusNumeric:
		return "numerical difficulties"
	case StatusSuboptimal:
		return "suboptimal"
	case StatusInProgress:
		return "in progress"
	case StatusUserObjLimit:
		return "objective limit"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Description returns the engine's documented explanation of the status
// code. Unknown codes, including the StatusUnsolved sentinel, report
// that the solver has not been run yet.
func (s Status) Description() string {
	switch s {
	case StatusLoaded:
		return "Model is loaded, but no solution information is available."
	case StatusOptimal:
		return "Model was solved to optimality (subject to tolerances), and an optimal solution is available."
	case StatusInfeasible:
		return "Model was proven to be infeasible."
	case StatusInfOrUnbounded:
		return "Model was proven to be either infeasible or unbounded. To obtain a more definitive conclusion," +
			" set the DualReductions parameter to 0 and reoptimize."
	case StatusUnbounded:
		return "Model was proven to be unbounded. " +
			"Important note: an unbounded status indicates the presence of an unbounded ray that allows the objective to improve without limit. " +
			"It says nothing about whether the model has a feasible solution. " +
			"If you require information on feasibility, you should set the objective to zero and reoptimize."
	case StatusCutoff:
		return "Optimal objective for model was proven to be worse than the value specified in the Cutoff parameter. " +
			"No solution information is available."
	case StatusIterationLimit:
		return "Optimization terminated because the total number of simplex iterations performed exceeded the value specified in the IterationLimit parameter," +
			" or because the total number of barrier iterations exceeded the value specified in the BarIterLimit parameter."
	case StatusNodeLimit:
		return "Optimization terminated because the total number of branch-and-cut nodes explored exceeded the value specified in the NodeLimit parameter."
	case StatusTimeLimit:
		return "Optimization terminated because the time expended exceeded the value specified in the TimeLimit parameter."
	case StatusSolutionLimit:
		return "Optimization terminated because the number of solutions found reached the value specified in the SolutionLimit parameter."
	case StatusInterrupted:
		return "Optimization was terminated by the user."
	case StatusNumeric:
		return "Optimization was terminated due to unrecoverable numerical difficulties."
	case StatusSuboptimal:
		return "Unable to satisfy optimality tolerances; a sub-optimal solution is available."
	case StatusInProgress:
		return "An asynchronous optimization call was made, but the associated optimization run is not yet complete."
	case StatusUserObjLimit:
		return "User specified an objective limit (a bound on either the best objective or the best bound), and that limit has been reached."
	default:
		return "The solver has not been run yet."
	}
}

/* Errors */

// EngineError reports a failed call into the engine's C API.
type EngineError struct {
	Op   string
	Code int
	Msg  string
}

func (e *EngineError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("gurobi: %s (error %d)", e.Op, e.Code)
	}
	return fmt.Sprintf("gurobi: %s: %s (error %d)", e.Op, e.Msg, e.Code)
}

// UnsolvedError reports an attempt to read solution data while the most
// recent solve was not successful (or no solve has run at all).
type UnsolvedError struct {
	What   string
	Status Status
}

func (e *UnsolvedError) Error() string {
	return fmt.Sprintf("solve unsuccessful (%s): unable to retrieve %s", e.Status, e.What)
}
