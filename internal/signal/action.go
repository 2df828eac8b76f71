// internal/signal/action.go
package signal

import (
	"fmt"
	"strings"
)

// Handler is the entry point installed for a signal. Values other than
// HandlerDefault and HandlerIgnore are opaque addresses owned by the caller
// and must stay valid for as long as they are installed.
type Handler uintptr

const (
	// HandlerDefault is SIG_DFL.
	HandlerDefault Handler = 0
	// HandlerIgnore is SIG_IGN.
	HandlerIgnore Handler = 1
)

func (h Handler) String() string {
	switch {
	case h == HandlerDefault:
		return "default"
	case h == HandlerIgnore:
		return "ignore"
	case h.IsFunc():
		return fmt.Sprintf("func#%d", uint64(h&^funcHandlerTag))
	default:
		return fmt.Sprintf("%#x", uintptr(h))
	}
}

// Flags is the flag set of a structured action.
type Flags uint64

// Flag bits as understood by the structured facility. FlagRestart and
// FlagSigInfo are zero on targets that do not define them; use the values
// reported by Capabilities rather than testing these directly.
const (
	FlagSigInfo  Flags = flagSigInfo
	FlagOnStack  Flags = flagOnStack
	FlagRestorer Flags = flagRestorer
	FlagRestart  Flags = flagRestart
)

// Has reports whether every bit of f2 is set in f. A zero f2 is never
// reported as set.
func (f Flags) Has(f2 Flags) bool {
	return f2 != 0 && f&f2 == f2
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	rest := f
	for _, fl := range []struct {
		bit  Flags
		name string
	}{
		{FlagSigInfo, "SA_SIGINFO"},
		{FlagOnStack, "SA_ONSTACK"},
		{FlagRestorer, "SA_RESTORER"},
		{FlagRestart, "SA_RESTART"},
	} {
		if fl.bit != 0 && rest&fl.bit != 0 {
			names = append(names, fl.name)
			rest &^= fl.bit
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint64(rest)))
	}
	return strings.Join(names, "|")
}

// Mask is a blocked-signal set covering signals 1 through 64.
type Mask uint64

// Add adds sig to the mask. Out of range signals are ignored.
func (m *Mask) Add(sig int) {
	if sig < 1 || sig > 64 {
		return
	}
	*m |= 1 << uint(sig-1)
}

// Has reports whether sig is in the mask.
func (m Mask) Has(sig int) bool {
	if sig < 1 || sig > 64 {
		return false
	}
	return m&(1<<uint(sig-1)) != 0
}

// IsEmpty reports whether no signal is blocked.
func (m Mask) IsEmpty() bool {
	return m == 0
}

// Signals returns the members of the mask in ascending order.
func (m Mask) Signals() []int {
	var out []int
	for sig := 1; sig <= 64; sig++ {
		if m.Has(sig) {
			out = append(out, sig)
		}
	}
	return out
}

// Action describes what happens when a signal arrives. On the primitive
// facility only Handler is represented.
type Action struct {
	Handler  Handler
	Flags    Flags
	Mask     Mask
	Restorer uintptr
}
