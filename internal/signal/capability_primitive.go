//go:build !linux || !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || ppc64 || ppc64le || s390x)

package signal

const haveSigaction = false

const (
	flagSigInfo  = 0
	flagOnStack  = 0
	flagRestorer = 0
	flagRestart  = 0
)
