//go:build linux && (amd64 || arm64 || 386 || arm || ppc64 || ppc64le || s390x)

package signal

import "unsafe"

// kernelSigaction matches struct sigaction as rt_sigaction(2) reads it on
// targets that carry sa_restorer.
type kernelSigaction struct {
	handler  uintptr
	flags    uintptr
	restorer uintptr
	mask     uint64
}

// kernelMaskOffset is where the kernel reads sa_mask.
const kernelMaskOffset = 3 * unsafe.Sizeof(uintptr(0))

// Fails to compile if mask drifts from kernelMaskOffset.
var _ [0]struct{} = [unsafe.Offsetof(kernelSigaction{}.mask) - kernelMaskOffset]struct{}{}

func (ks *kernelSigaction) restorerAddr() uintptr {
	return ks.restorer
}

func (ks *kernelSigaction) setRestorer(r uintptr) {
	ks.restorer = r
}
