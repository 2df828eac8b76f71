//go:build sigcontext

package signal

// Handlers in this build take the legacy sigcontext argument.
const legacyContext = true
