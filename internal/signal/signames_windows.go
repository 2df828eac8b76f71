//go:build windows

package signal

import "syscall"

const maxSignal = 31

// Signal name to number mapping (the subset syscall defines on Windows)
var signalNames = map[string]int{
	"SIGHUP":  int(syscall.SIGHUP),
	"SIGINT":  int(syscall.SIGINT),
	"SIGQUIT": int(syscall.SIGQUIT),
	"SIGILL":  int(syscall.SIGILL),
	"SIGTRAP": int(syscall.SIGTRAP),
	"SIGABRT": int(syscall.SIGABRT),
	"SIGBUS":  int(syscall.SIGBUS),
	"SIGFPE":  int(syscall.SIGFPE),
	"SIGKILL": int(syscall.SIGKILL),
	"SIGSEGV": int(syscall.SIGSEGV),
	"SIGPIPE": int(syscall.SIGPIPE),
	"SIGALRM": int(syscall.SIGALRM),
	"SIGTERM": int(syscall.SIGTERM),
}

var signalGroups = map[string][]int{
	"@fault":    {int(syscall.SIGSEGV), int(syscall.SIGBUS), int(syscall.SIGFPE), int(syscall.SIGILL)},
	"@terminal": {int(syscall.SIGHUP), int(syscall.SIGINT), int(syscall.SIGQUIT), int(syscall.SIGTERM)},
	"@all":      nil,
}

func unblockable(sig int) bool {
	return sig == int(syscall.SIGKILL)
}
