// internal/signal/notify.go
package signal

import (
	"os"
	ossignal "os/signal"
	"sync"
	"syscall"
)

// NotifyTable is a SignalTable over os/signal. It understands
// HandlerDefault, HandlerIgnore and handlers from FuncHandler, which it
// runs on a dispatch goroutine per signal.
type NotifyTable struct {
	mu      sync.Mutex
	current map[int]Handler
	stops   map[int]func()
}

// NewNotifyTable returns an empty table. Only signals it has never set
// report the disposition the process inherited.
func NewNotifyTable() *NotifyTable {
	return &NotifyTable{
		current: make(map[int]Handler),
		stops:   make(map[int]func()),
	}
}

func (t *NotifyTable) Load(sig int) (Handler, error) {
	if !validSignal(sig) {
		return HandlerDefault, einval("signal")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadLocked(sig), nil
}

func (t *NotifyTable) Swap(sig int, h Handler) (Handler, error) {
	if !validSignal(sig) || unblockable(sig) {
		return HandlerDefault, einval("signal")
	}
	var fn func(os.Signal)
	switch {
	case h == HandlerDefault, h == HandlerIgnore:
	case h.IsFunc():
		if fn = lookupFunc(h); fn == nil {
			return HandlerDefault, einval("signal")
		}
	default:
		return HandlerDefault, einval("signal")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.loadLocked(sig)
	if stop, ok := t.stops[sig]; ok {
		stop()
		delete(t.stops, sig)
	}

	s := syscall.Signal(sig)
	switch {
	case h == HandlerDefault:
		// Reset leaves the runtime's ignored bit set, so the table must
		// remember the default rather than fall back to Ignored.
		ossignal.Reset(s)
	case h == HandlerIgnore:
		ossignal.Ignore(s)
	default:
		t.stops[sig] = dispatch(s, fn)
	}
	t.current[sig] = h
	return prev, nil
}

func (t *NotifyTable) loadLocked(sig int) Handler {
	if h, ok := t.current[sig]; ok {
		return h
	}
	if ossignal.Ignored(syscall.Signal(sig)) {
		return HandlerIgnore
	}
	return HandlerDefault
}

func dispatch(s os.Signal, fn func(os.Signal)) func() {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	ossignal.Notify(ch, s)
	go func() {
		for {
			select {
			case got := <-ch:
				fn(got)
			case <-done:
				return
			}
		}
	}()
	return func() {
		ossignal.Stop(ch)
		close(done)
	}
}

func validSignal(sig int) bool {
	return sig >= 1 && sig <= maxSignal
}

func einval(call string) error {
	return &os.SyscallError{Syscall: call, Err: syscall.EINVAL}
}
