//go:build !windows

package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

// execCommand replaces the process image. It only returns on failure.
func execCommand(cmd *cobra.Command, argv []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return &ExitError{code: 127, message: fmt.Sprintf("sigcompat: %s: command not found", argv[0])}
	}
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return &ExitError{code: 126, message: fmt.Sprintf("sigcompat: exec %s: %v", path, err)}
	}
	return nil
}
