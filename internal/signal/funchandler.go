// internal/signal/funchandler.go
package signal

import (
	"math/bits"
	"os"
	"sync"
)

// funcHandlerTag marks handlers that name a registered Go function rather
// than a machine address.
const funcHandlerTag Handler = 1 << (bits.UintSize - 1)

var funcHandlers = struct {
	sync.RWMutex
	next Handler
	fns  map[Handler]func(os.Signal)
}{fns: make(map[Handler]func(os.Signal))}

// FuncHandler registers fn and returns a Handler naming it. Only a
// primitive facility over a NotifyTable can run it; the kernel facility
// rejects it. Registrations live for the rest of the process.
func FuncHandler(fn func(os.Signal)) Handler {
	funcHandlers.Lock()
	defer funcHandlers.Unlock()
	funcHandlers.next++
	h := funcHandlerTag | funcHandlers.next
	funcHandlers.fns[h] = fn
	return h
}

// IsFunc reports whether h was returned by FuncHandler.
func (h Handler) IsFunc() bool {
	return h&funcHandlerTag != 0
}

func lookupFunc(h Handler) func(os.Signal) {
	funcHandlers.RLock()
	defer funcHandlers.RUnlock()
	return funcHandlers.fns[h]
}
