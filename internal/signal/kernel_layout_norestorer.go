//go:build linux && (riscv64 || loong64)

package signal

import "unsafe"

// kernelSigaction matches struct sigaction as rt_sigaction(2) reads it on
// targets without sa_restorer; the mask follows the flags directly.
type kernelSigaction struct {
	handler uintptr
	flags   uintptr
	mask    uint64
}

// kernelMaskOffset is where the kernel reads sa_mask.
const kernelMaskOffset = 2 * unsafe.Sizeof(uintptr(0))

// Fails to compile if mask drifts from kernelMaskOffset.
var _ [0]struct{} = [unsafe.Offsetof(kernelSigaction{}.mask) - kernelMaskOffset]struct{}{}

// Restorers do not exist here; the kernel returns through the vDSO.
func (ks *kernelSigaction) restorerAddr() uintptr {
	return 0
}

func (ks *kernelSigaction) setRestorer(uintptr) {}
