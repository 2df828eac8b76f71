//go:build !windows

// internal/signal/signames_unix.go
package signal

import "golang.org/x/sys/unix"

// maxSignal is the highest signal number a disposition can be set for,
// real-time signals included.
const maxSignal = 64

// Signal name to number mapping (Unix signals)
var signalNames = map[string]int{
	"SIGHUP":    int(unix.SIGHUP),
	"SIGINT":    int(unix.SIGINT),
	"SIGQUIT":   int(unix.SIGQUIT),
	"SIGILL":    int(unix.SIGILL),
	"SIGTRAP":   int(unix.SIGTRAP),
	"SIGABRT":   int(unix.SIGABRT),
	"SIGBUS":    int(unix.SIGBUS),
	"SIGFPE":    int(unix.SIGFPE),
	"SIGKILL":   int(unix.SIGKILL),
	"SIGUSR1":   int(unix.SIGUSR1),
	"SIGSEGV":   int(unix.SIGSEGV),
	"SIGUSR2":   int(unix.SIGUSR2),
	"SIGPIPE":   int(unix.SIGPIPE),
	"SIGALRM":   int(unix.SIGALRM),
	"SIGTERM":   int(unix.SIGTERM),
	"SIGCHLD":   int(unix.SIGCHLD),
	"SIGCONT":   int(unix.SIGCONT),
	"SIGSTOP":   int(unix.SIGSTOP),
	"SIGTSTP":   int(unix.SIGTSTP),
	"SIGTTIN":   int(unix.SIGTTIN),
	"SIGTTOU":   int(unix.SIGTTOU),
	"SIGURG":    int(unix.SIGURG),
	"SIGXCPU":   int(unix.SIGXCPU),
	"SIGXFSZ":   int(unix.SIGXFSZ),
	"SIGVTALRM": int(unix.SIGVTALRM),
	"SIGPROF":   int(unix.SIGPROF),
	"SIGWINCH":  int(unix.SIGWINCH),
	"SIGIO":     int(unix.SIGIO),
	"SIGSYS":    int(unix.SIGSYS),
}

// Signal groups for configuration convenience
var signalGroups = map[string][]int{
	"@fault":    {int(unix.SIGSEGV), int(unix.SIGBUS), int(unix.SIGFPE), int(unix.SIGILL)},
	"@timer":    {int(unix.SIGALRM), int(unix.SIGVTALRM), int(unix.SIGPROF)},
	"@terminal": {int(unix.SIGHUP), int(unix.SIGINT), int(unix.SIGQUIT), int(unix.SIGTERM)},
	"@job":      {int(unix.SIGTSTP), int(unix.SIGTTIN), int(unix.SIGTTOU)},
	"@user":     {int(unix.SIGUSR1), int(unix.SIGUSR2)},
	"@all":      nil, // Initialized in init() to avoid circular dependency
}

// unblockable reports whether sig can never be caught or ignored.
func unblockable(sig int) bool {
	return sig == int(unix.SIGKILL) || sig == int(unix.SIGSTOP)
}
