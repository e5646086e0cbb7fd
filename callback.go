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
// #include <stdlib.h>
import "C"

import (
	"strings"
	"sync"
	"unsafe"
)

/*
 This code is used to work around the garbage collector and keep track of objects passed to callback code.
 Inspired by github.com/mattn/go-pointer
*/

var (
	refsMu sync.Mutex
	refs   = make(map[unsafe.Pointer]interface{})
)

func saveRef(ref interface{}) unsafe.Pointer {
	refsMu.Lock()
	defer refsMu.Unlock()

	var p unsafe.Pointer = C.malloc(C.size_t(1))
	if p == nil {
		panic("could not allocate memory for CGO pointer tracking")
	}

	refs[p] = ref

	return p
}

func loadRef(ptr unsafe.Pointer) interface{} {
	refsMu.Lock()
	defer refsMu.Unlock()

	return refs[ptr]
}

//export goMsgCallback
func goMsgCallback(prob *C.GRBmodel, cbdata unsafe.Pointer, where C.int, usrdata unsafe.Pointer) C.int {
	if where != C.GRB_CB_MESSAGE {
		return 0
	}

	model, ok := loadRef(usrdata).(*Model)
	if !ok {
		return 0
	}

	var msg *C.char
	if C.GRBcbget(cbdata, where, C.GRB_CB_MSG_STRING, unsafe.Pointer(&msg)) != 0 || msg == nil {
		return 0
	}

	model.logger.Print(strings.TrimRight(C.GoString(msg), "\n"))
	return 0
}
