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

/*
Package gurobi wraps the Gurobi C API for solving quadratic programs of
the form

	minimize    0.5 x'Qx + c'x
	subject to  Aeq x  =  beq
	            Aineq x <= bineq
	            lb <= x <= ub

given either as gonum dense matrices (Dense) or as compressed sparse
matrices (Sparse). The wrapper only marshals problem data in and results
out; all optimization happens inside the engine.

As an example, minimizing 0.5 x'Qx + c'x over the simplex x0+x1 = 1,
0 <= x <= 0.7 can be expressed like this:

	package main

	import (
		"fmt"

		gurobi "github.com/zfergus/gonum-gurobi"
		"gonum.org/v1/gonum/mat"
	)

	func main() {
		qp, _ := gurobi.NewDense(2, 1, 0) // you should check for errors

		Q := mat.NewDense(2, 2, []float64{4, 1, 1, 2})
		c := mat.NewVecDense(2, []float64{1, 1})
		Aeq := mat.NewDense(1, 2, []float64{1, 1})
		beq := mat.NewVecDense(1, []float64{1})
		lb := mat.NewVecDense(2, []float64{0, 0})
		ub := mat.NewVecDense(2, []float64{0.7, 0.7})

		ok, _ := qp.Solve(Q, c, Aeq, beq, nil, nil, lb, ub)
		if !ok {
			fmt.Println(qp.Status().Description())
			return
		}
		x, _ := qp.Result()
		fmt.Printf("x = %v\n", mat.Formatted(x.T()))
	}

A Model owns one engine environment and one engine model with no internal
locking; callers wanting to solve problems in parallel must use
independent Dense/Sparse instances.
*/
package gurobi

// #cgo CFLAGS: -I/opt/gurobi/include
// #cgo LDFLAGS: -L/opt/gurobi/lib -lgurobi110
// #include <gurobi_c.h>
// #include <stdlib.h>
/*
// https://golang.org/issue/19837
extern int goMsgCallback(GRBmodel *model, void *cbdata, int where, void *usrdata);

static int setMsgCallback(GRBmodel *model, void *usrdata) {
	return GRBsetcallbackfunc(model, goMsgCallback, usrdata);
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Model is the state shared by the Dense and Sparse adapters: the engine
// handles, the configured problem sizes and the buffers holding the most
// recent solution.
type Model struct {
	env  *C.GRBenv
	prob *C.GRBmodel

	numVars int
	numEq   int
	numIneq int

	status Status
	iter   int

	x     []float64
	yEq   []float64
	yIneq []float64

	name   string
	logger Logger
}

func newModel(numVars, numEq, numIneq int, opts ...Option) (*Model, error) {
	model := &Model{
		name:   "qp",
		logger: noopLogger{},
	}

	if code := C.GRBemptyenv(&model.env); code != 0 {
		return nil, &EngineError{Op: "create environment", Code: int(code)}
	}

	// Console output is off by default; log lines are routed to the
	// configured Logger through the message callback instead.
	model.setIntParam(paramOutputFlag, 1)
	model.setIntParam(paramLogToConsole, 0)

	for _, opt := range opts {
		if err := opt(model); err != nil {
			C.GRBfreeenv(model.env)
			return nil, fmt.Errorf("applying model option: %w", err)
		}
	}

	if err := model.check(C.GRBstartenv(model.env), "start environment"); err != nil {
		C.GRBfreeenv(model.env)
		return nil, err
	}

	cname := C.CString(model.name)
	defer C.free(unsafe.Pointer(cname))

	if err := model.check(C.GRBnewmodel(model.env, &model.prob, cname, 0, nil, nil, nil, nil, nil), "create model"); err != nil {
		C.GRBfreeenv(model.env)
		return nil, err
	}

	C.setMsgCallback(model.prob, saveRef(model))

	// plug the underlying C library's destructors to the instance of Model,
	// otherwise we get a memory-leak of the underlying structs
	runtime.SetFinalizer(model, finalizeModel)

	if err := model.SetProblem(numVars, numEq, numIneq); err != nil {
		return nil, err
	}

	return model, nil
}

// finalizeModel is the function registered to be called upon garbage-
// collection of the model value
func finalizeModel(model *Model) {
	if model.prob != nil {
		C.GRBfreemodel(model.prob)
	}
	if model.env != nil {
		C.GRBfreeenv(model.env)
	}
}

// SetProblem configures the adapter for a problem with numVars decision
// variables, numEq equality constraints and numIneq inequality
// constraints. Any variables and constraints from a previous
// configuration are released from the engine model and recreated from
// scratch: fresh variables are continuous with a (-inf, +inf) range,
// constraint rows get '=' and '<=' senses with a zero right-hand side.
// Any previously held solution is invalidated.
func (model *Model) SetProblem(numVars, numEq, numIneq int) error {
	if numVars < 0 || numEq < 0 || numIneq < 0 {
		panic(fmt.Sprintf("gurobi: negative problem size (%d, %d, %d)", numVars, numEq, numIneq))
	}

	if n := model.numEq + model.numIneq; n > 0 {
		if err := model.check(C.GRBdelconstrs(model.prob, C.int(n), &indexRange(n)[0]), "delete constraints"); err != nil {
			return err
		}
	}
	if model.numVars > 0 {
		if err := model.check(C.GRBdelvars(model.prob, C.int(model.numVars), &indexRange(model.numVars)[0]), "delete variables"); err != nil {
			return err
		}
	}
	if err := model.check(C.GRBupdatemodel(model.prob), "update model"); err != nil {
		return err
	}

	model.numVars = numVars
	model.numEq = numEq
	model.numIneq = numIneq

	model.status = StatusUnsolved
	model.iter = 0
	model.x = make([]float64, numVars)
	model.yEq = make([]float64, numEq)
	model.yIneq = make([]float64, numIneq)

	if numVars > 0 {
		lb := make([]C.double, numVars)
		ub := make([]C.double, numVars)
		vtype := make([]C.char, numVars)
		for i := 0; i < numVars; i++ {
			lb[i] = -C.GRB_INFINITY
			ub[i] = C.GRB_INFINITY
			vtype[i] = C.GRB_CONTINUOUS
		}
		code := C.GRBaddvars(model.prob, C.int(numVars), 0, nil, nil, nil, nil, &lb[0], &ub[0], &vtype[0], nil)
		if err := model.check(code, "add variables"); err != nil {
			return err
		}
	}

	if err := model.addConstrBlock(numEq, C.GRB_EQUAL); err != nil {
		return err
	}
	if err := model.addConstrBlock(numIneq, C.GRB_LESS_EQUAL); err != nil {
		return err
	}

	return model.check(C.GRBupdatemodel(model.prob), "update model")
}

func (model *Model) addConstrBlock(count int, sense byte) error {
	if count == 0 {
		return nil
	}
	senses := make([]C.char, count)
	rhs := make([]C.double, count)
	for i := range senses {
		senses[i] = C.char(sense)
	}
	code := C.GRBaddconstrs(model.prob, C.int(count), 0, nil, nil, nil, &senses[0], &rhs[0], nil)
	return model.check(code, "add constraints")
}

// Name returns the name of the underlying engine model.
func (model *Model) Name() string {
	var cstr *C.char
	cattr := C.CString(attrModelName)
	defer C.free(unsafe.Pointer(cattr))

	C.GRBgetstrattr(model.prob, cattr, &cstr)
	return C.GoString(cstr)
}

// NumVars returns the configured number of decision variables.
func (model *Model) NumVars() int { return model.numVars }

// NumEq returns the configured number of equality constraints.
func (model *Model) NumEq() int { return model.numEq }

// NumIneq returns the configured number of inequality constraints.
func (model *Model) NumIneq() int { return model.numIneq }

/* Engine parameters */

// FeasibilityTolerance returns the engine's primal feasibility tolerance.
func (model *Model) FeasibilityTolerance() float64 {
	return model.getDblParam(paramFeasibilityTol)
}

// SetFeasibilityTolerance sets the engine's primal feasibility tolerance.
// tol must lie in [1e-9, 1e-2]; values outside that range are a caller
// programming error and panic.
func (model *Model) SetFeasibilityTolerance(tol float64) {
	checkTolerance(tol)
	model.setDblParam(paramFeasibilityTol, tol)
}

// OptimalityTolerance returns the engine's dual feasibility tolerance.
func (model *Model) OptimalityTolerance() float64 {
	return model.getDblParam(paramOptimalityTol)
}

// SetOptimalityTolerance sets the engine's dual feasibility tolerance.
// tol must lie in [1e-9, 1e-2]; values outside that range panic.
func (model *Model) SetOptimalityTolerance(tol float64) {
	checkTolerance(tol)
	model.setDblParam(paramOptimalityTol, tol)
}

func checkTolerance(tol float64) {
	if tol < 1e-9 || tol > 1e-2 {
		panic(fmt.Sprintf("gurobi: tolerance %g outside [1e-9, 1e-2]", tol))
	}
}

// WarmStart returns the currently configured warm-start mode.
func (model *Model) WarmStart() WarmStatus {
	return WarmStatus(model.getIntParam(paramMultiObjMethod))
}

// SetWarmStart selects how the engine warm-starts subsequent solves.
func (model *Model) SetWarmStart(ws WarmStatus) {
	model.setIntParam(paramMultiObjMethod, int(ws))
}

// TimeLimit returns the solve time limit in seconds.
func (model *Model) TimeLimit() float64 {
	return model.getDblParam(paramTimeLimit)
}

// SetTimeLimit bounds the wall-clock time of subsequent solves, in
// seconds. A solve hitting the limit terminates with StatusTimeLimit.
func (model *Model) SetTimeLimit(seconds float64) {
	model.setDblParam(paramTimeLimit, seconds)
}

// SetDisplayOutput toggles the engine's console output. Note that
// disabling it also silences the Logger, which is fed from the same
// stream.
func (model *Model) SetDisplayOutput(display bool) {
	if display {
		model.setIntParam(paramOutputFlag, 1)
		model.setIntParam(paramLogToConsole, 1)
	} else {
		model.setIntParam(paramLogToConsole, 0)
	}
}

/* Variable typing */

// SetVariableType changes the domain of the decision variable at the
// given index. The change takes effect on the next solve.
func (model *Model) SetVariableType(index int, vartype VariableType) {
	model.checkVarIndex(index)
	cattr := C.CString(attrVType)
	defer C.free(unsafe.Pointer(cattr))

	C.GRBsetcharattrelement(model.prob, cattr, C.int(index), C.char(vartype))
	// attribute changes are lazy; flush so reads observe the new type
	C.GRBupdatemodel(model.prob)
}

// GetVariableType returns the domain of the decision variable at the
// given index.
func (model *Model) GetVariableType(index int) VariableType {
	model.checkVarIndex(index)
	cattr := C.CString(attrVType)
	defer C.free(unsafe.Pointer(cattr))

	var v C.char
	C.GRBgetcharattrelement(model.prob, cattr, C.int(index), &v)
	return VariableType(v)
}

func (model *Model) checkVarIndex(index int) {
	if index < 0 || index >= model.numVars {
		panic(fmt.Sprintf("gurobi: variable index %d out of range [0, %d)", index, model.numVars))
	}
}

/* Solve plumbing shared by the adapters */

// optimize runs the blocking solve and records status, iteration count
// and, on success, the primal and dual vectors.
func (model *Model) optimize() (bool, error) {
	if err := model.check(C.GRBoptimize(model.prob), "optimize"); err != nil {
		return false, err
	}

	model.status = Status(model.getIntAttr(attrStatus))
	model.iter = model.getIntAttr(attrBarIterCount)

	if !model.Success() {
		return false, nil
	}

	if err := model.getDblAttrArray(attrX, 0, model.x); err != nil {
		return false, err
	}
	if err := model.getDblAttrArray(attrPi, 0, model.yEq); err != nil {
		return false, err
	}
	if err := model.getDblAttrArray(attrPi, model.numEq, model.yIneq); err != nil {
		return false, err
	}

	return true, nil
}

func (model *Model) setQuadObjective(qrow, qcol []C.int, qval []C.double) error {
	if err := model.check(C.GRBdelq(model.prob), "clear quadratic objective"); err != nil {
		return err
	}
	if len(qval) == 0 {
		return nil
	}
	code := C.GRBaddqpterms(model.prob, C.int(len(qval)), &qrow[0], &qcol[0], &qval[0])
	return model.check(code, "set quadratic objective")
}

/* cgo helpers */

// check converts a nonzero engine return code into an *EngineError
// carrying the engine's last error message.
func (model *Model) check(code C.int, op string) error {
	if code == 0 {
		return nil
	}
	return &EngineError{
		Op:   op,
		Code: int(code),
		Msg:  C.GoString(C.GRBgeterrormsg(model.cenv())),
	}
}

// cenv returns the environment parameter changes must be applied to: the
// model's own copy once the model exists, the standalone one before.
func (model *Model) cenv() *C.GRBenv {
	if model.prob != nil {
		return C.GRBgetenv(model.prob)
	}
	return model.env
}

func (model *Model) setIntParam(name string, value int) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	C.GRBsetintparam(model.cenv(), cname, C.int(value))
}

func (model *Model) getIntParam(name string) int {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var v C.int
	C.GRBgetintparam(model.cenv(), cname, &v)
	return int(v)
}

func (model *Model) setDblParam(name string, value float64) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	C.GRBsetdblparam(model.cenv(), cname, C.double(value))
}

func (model *Model) getDblParam(name string) float64 {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var v C.double
	C.GRBgetdblparam(model.cenv(), cname, &v)
	return float64(v)
}

func (model *Model) getIntAttr(name string) int {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var v C.int
	C.GRBgetintattr(model.prob, cname, &v)
	return int(v)
}

func (model *Model) getDblAttr(name string) float64 {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var v C.double
	C.GRBgetdblattr(model.prob, cname, &v)
	return float64(v)
}

func (model *Model) setDblAttrArray(name string, first int, values []C.double) error {
	if len(values) == 0 {
		return nil
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	code := C.GRBsetdblattrarray(model.prob, cname, C.int(first), C.int(len(values)), &values[0])
	return model.check(code, "set "+name)
}

func (model *Model) setDblAttrElement(name string, index int, value float64) error {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	code := C.GRBsetdblattrelement(model.prob, cname, C.int(index), C.double(value))
	return model.check(code, "set "+name)
}

func (model *Model) getDblAttrArray(name string, first int, dst []float64) error {
	if len(dst) == 0 {
		return nil
	}
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	buf := make([]C.double, len(dst))
	code := C.GRBgetdblattrarray(model.prob, cname, C.int(first), C.int(len(buf)), &buf[0])
	if err := model.check(code, "get "+name); err != nil {
		return err
	}
	for i, v := range buf {
		dst[i] = float64(v)
	}
	return nil
}

func indexRange(n int) []C.int {
	ind := make([]C.int, n)
	for i := range ind {
		ind[i] = C.int(i)
	}
	return ind
}

/* Engine parameter and attribute names (gurobi_c.h) */

const (
	paramFeasibilityTol = "FeasibilityTol"
	paramOptimalityTol  = "OptimalityTol"
	paramOutputFlag     = "OutputFlag"
	paramLogToConsole   = "LogToConsole"
	paramMultiObjMethod = "MultiObjMethod"
	paramTimeLimit      = "TimeLimit"

	attrStatus       = "Status"
	attrBarIterCount = "BarIterCount"
	attrModelName    = "ModelName"
	attrX            = "X"
	attrPi           = "Pi"
	attrRHS          = "RHS"
	attrLB           = "LB"
	attrUB           = "UB"
	attrObj          = "Obj"
	attrObjVal       = "ObjVal"
	attrVType        = "VType"
)
