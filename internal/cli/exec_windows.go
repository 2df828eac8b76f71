//go:build windows

package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

// execCommand runs argv as a child and exits with its status; Windows has
// no exec that keeps the process.
func execCommand(cmd *cobra.Command, argv []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return &ExitError{code: 127, message: fmt.Sprintf("sigcompat: %s: command not found", argv[0])}
	}
	c := exec.CommandContext(cmd.Context(), path, argv[1:]...)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := c.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return &ExitError{code: ee.ExitCode()}
		}
		return &ExitError{code: 126, message: fmt.Sprintf("sigcompat: run %s: %v", path, err)}
	}
	return nil
}
