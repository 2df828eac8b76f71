//go:build !sigcontext

package signal

const legacyContext = false
