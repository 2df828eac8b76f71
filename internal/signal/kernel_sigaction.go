//go:build linux && (amd64 || arm64 || 386 || arm || riscv64 || loong64 || ppc64 || ppc64le || s390x)

// internal/signal/kernel_sigaction.go
package signal

import (
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

const sigsetSize = 8

// KernelFacility is the structured facility backed by rt_sigaction(2).
// It bypasses the Go runtime; handlers installed through it run in raw
// signal context and must not be Go functions.
type KernelFacility struct{}

// NewKernelFacility returns the rt_sigaction facility.
func NewKernelFacility() *KernelFacility {
	return &KernelFacility{}
}

func (*KernelFacility) Capabilities() Capabilities {
	return Detected()
}

func (*KernelFacility) EmptyMask(m *Mask) error {
	*m = 0
	return nil
}

func (*KernelFacility) Action(sig int) (Action, error) {
	var old kernelSigaction
	if err := rtSigaction(sig, nil, &old); err != nil {
		return Action{}, err
	}
	return Action{
		Handler:  Handler(old.handler),
		Flags:    Flags(old.flags),
		Mask:     Mask(old.mask),
		Restorer: old.restorerAddr(),
	}, nil
}

func (f *KernelFacility) SetAction(sig int, act Action) error {
	if act.Handler.IsFunc() {
		return &os.SyscallError{Syscall: "rt_sigaction", Err: unix.EINVAL}
	}
	if act.Restorer == 0 && act.Handler != HandlerDefault && act.Handler != HandlerIgnore {
		// amd64 and 386 deliver through the restorer; borrow the one the
		// runtime registered.
		if r, ok := f.findRestorer(sig); ok {
			act.Flags |= FlagRestorer
			act.Restorer = r
		}
	}
	ks := kernelSigaction{
		handler: uintptr(act.Handler),
		flags:   uintptr(act.Flags),
		mask:    uint64(act.Mask),
	}
	ks.setRestorer(act.Restorer)
	return rtSigaction(sig, &ks, nil)
}

func (f *KernelFacility) findRestorer(sig int) (uintptr, bool) {
	for _, s := range []int{sig, int(unix.SIGSEGV)} {
		cur, err := f.Action(s)
		if err != nil {
			continue
		}
		if cur.Flags&FlagRestorer != 0 && cur.Restorer != 0 {
			return cur.Restorer, true
		}
	}
	return 0, false
}

func rtSigaction(sig int, act, old *kernelSigaction) error {
	_, _, errno := unix.RawSyscall6(unix.SYS_RT_SIGACTION,
		uintptr(sig),
		uintptr(unsafe.Pointer(act)),
		uintptr(unsafe.Pointer(old)),
		sigsetSize, 0, 0)
	runtime.KeepAlive(act)
	runtime.KeepAlive(old)
	if errno != 0 {
		return &os.SyscallError{Syscall: "rt_sigaction", Err: errno}
	}
	return nil
}
