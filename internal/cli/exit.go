package cli

import "fmt"

// ExitError carries the status sigcompat should exit with.
type ExitError struct {
	code    int
	message string
}

func (e *ExitError) Error() string {
	if e == nil {
		return ""
	}
	if e.message != "" {
		return e.message
	}
	return fmt.Sprintf("exit %d", e.code)
}

// Code is the process exit status. Like a shell, exec reports 127 when the
// command is not found and 126 when it cannot be started; otherwise it is
// the child's status. A nil error exits 1.
func (e *ExitError) Code() int {
	if e == nil {
		return 1
	}
	return e.code
}

func (e *ExitError) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}
