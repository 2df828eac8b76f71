// internal/signal/errors.go
package signal

import "fmt"

// Op identifies the step of a registration that failed.
type Op string

const (
	// OpMask means the blocked mask could not be cleared.
	OpMask Op = "mask"
	// OpSet means the facility rejected the new disposition.
	OpSet Op = "set"
	// OpGet means the facility refused to report the current disposition.
	OpGet Op = "get"
)

// maskContext is reported when clearing the mask fails, whatever the caller
// asked for.
const maskContext = "cannot set clear signal mask"

// RegistrationError is a failed install or query. The fatal entry points of
// Installer never return it; it reaches callers only through the Try
// variants.
type RegistrationError struct {
	Op      Op
	Signal  int
	Context string
	Err     error
}

func (e *RegistrationError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, SignalName(e.Signal), e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}
