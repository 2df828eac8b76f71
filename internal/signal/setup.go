// internal/signal/setup.go
package signal

import "fmt"

// Setup is one disposition to install, as read from configuration.
type Setup struct {
	Signal  int
	Handler Handler
	SigInfo bool
	Restart bool
}

// Context is the error context reported if the setup cannot be installed.
func (s Setup) Context() string {
	return fmt.Sprintf("cannot install %s disposition for %s", s.Handler, SignalName(s.Signal))
}

// Apply installs the setup, terminating the process on failure.
func (s Setup) Apply(i *Installer) {
	if s.Restart {
		i.Install(s.Signal, s.Handler, s.SigInfo, true, s.Context())
		return
	}
	i.InstallNoRestart(s.Signal, s.Handler, s.SigInfo, s.Context())
}

// TryApply installs the setup and returns any failure.
func (s Setup) TryApply(i *Installer) error {
	return i.TryInstall(s.Signal, s.Handler, s.SigInfo, s.Restart, s.Context())
}
