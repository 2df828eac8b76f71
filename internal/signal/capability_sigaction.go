//go:build linux && (amd64 || arm64 || 386 || arm || riscv64 || loong64 || ppc64 || ppc64le || s390x)

package signal

// Kernel struct sigaction on these targets is {handler, flags, restorer, mask}.
const haveSigaction = true

const (
	flagSigInfo  = 0x00000004
	flagOnStack  = 0x08000000
	flagRestorer = 0x04000000
	flagRestart  = 0x10000000
)
