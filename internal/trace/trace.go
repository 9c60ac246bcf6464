// Package trace implements the opt-in execution tracer carried forward
// from the original implementation's `--trace` flag (SPEC_FULL.md §2.2,
// §4): a record of every method entry/exit, tagging each receiving object
// with a stable debug identity so a human reading the trace can follow one
// object across calls. Each entry is assembled incrementally with
// github.com/tidwall/sjson rather than built via fmt.Sprintf, the way the
// teacher's `internal/report` machine-readable paths favor a structured
// builder over hand-rolled string concatenation.
package trace

import (
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"
)

// Execution accumulates one JSON document per traced run: a top-level
// "events" array of method call/exception entries.
type Execution struct {
	mu     sync.Mutex
	json   string
	ids    map[uintptr]string
	nextID int
}

// New creates an empty trace, ready to receive events.
func New() *Execution {
	return &Execution{json: "{}", ids: make(map[uintptr]string)}
}

// ObjectID returns a stable debug identity for the object at addr,
// minting a fresh UUID the first time addr is seen.
func (e *Execution) ObjectID(addr uintptr) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if id, ok := e.ids[addr]; ok {
		return id
	}
	id := uuid.NewString()
	e.ids[addr] = id
	return id
}

// CallEnter records a method dispatch about to run.
func (e *Execution) CallEnter(objID, method string, line int) {
	e.appendEvent("enter", objID, method, line, "")
}

// CallExit records a method dispatch returning, whether normally or with
// an error or exception.
func (e *Execution) CallExit(objID, method string, line int) {
	e.appendEvent("exit", objID, method, line, "")
}

// Exception records an exception raised during objID's call to method.
func (e *Execution) Exception(objID, method string, line int, message string) {
	e.appendEvent("exception", objID, method, line, message)
}

func (e *Execution) appendEvent(kind, objID, method string, line int, message string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx := e.nextID
	e.nextID++

	base := "events." + itoa(idx)
	var err error
	e.json, err = sjson.Set(e.json, base+".kind", kind)
	if err != nil {
		return
	}
	e.json, _ = sjson.Set(e.json, base+".object", objID)
	e.json, _ = sjson.Set(e.json, base+".method", method)
	e.json, _ = sjson.Set(e.json, base+".line", line)
	if message != "" {
		e.json, _ = sjson.Set(e.json, base+".message", message)
	}
}

// JSON renders the accumulated trace as a JSON document.
func (e *Execution) JSON() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.json
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := [20]byte{}
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}
