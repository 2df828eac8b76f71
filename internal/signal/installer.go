// internal/signal/installer.go
package signal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Facility is the operating-system call surface that stores signal
// dispositions. Implementations hold no state of their own beyond what the
// platform keeps; the disposition table is process-wide.
type Facility interface {
	// Capabilities reports what the facility can represent.
	Capabilities() Capabilities
	// EmptyMask clears m. Only called for structured facilities.
	EmptyMask(m *Mask) error
	// Action returns the current disposition of sig without changing it.
	Action(sig int) (Action, error)
	// SetAction replaces the disposition of sig.
	SetAction(sig int, act Action) error
}

// Installer installs and queries signal dispositions on one facility.
// Failures of the non-Try methods report the caller's context and
// terminate the process.
//
// Installer takes no locks. Installing the same signal from several
// goroutines at once must be serialized by the caller.
type Installer struct {
	facility Facility
	logger   *slog.Logger
	diag     io.Writer
	exit     func(code int)
}

// Option configures an Installer.
type Option func(*Installer)

// WithLogger sets the logger used for installation and failure records.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Installer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithDiagnostics sets where the fatal diagnostic line is written.
func WithDiagnostics(w io.Writer) Option {
	return func(i *Installer) {
		if w != nil {
			i.diag = w
		}
	}
}

// WithExit replaces os.Exit on the fatal path. If fn returns, the failing
// call panics with the *RegistrationError instead of returning.
func WithExit(fn func(code int)) Option {
	return func(i *Installer) {
		if fn != nil {
			i.exit = fn
		}
	}
}

// NewInstaller creates an installer over f.
func NewInstaller(f Facility, opts ...Option) *Installer {
	i := &Installer{
		facility: f,
		logger:   slog.Default(),
		diag:     os.Stderr,
		exit:     os.Exit,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// SetLogger sets the logger for the installer.
func (i *Installer) SetLogger(logger *slog.Logger) {
	if logger != nil {
		i.logger = logger
	}
}

// Facility returns the facility the installer writes to.
func (i *Installer) Facility() Facility {
	return i.facility
}

// Capabilities returns the capabilities of the wrapped facility.
func (i *Installer) Capabilities() Capabilities {
	return i.facility.Capabilities()
}

// Build returns the action Install would set for h. On a structured
// facility the mask is cleared through the facility, and a failure there is
// returned as an OpMask error.
func (i *Installer) Build(h Handler, needExtendedContext, restartInterrupted bool) (Action, error) {
	var act Action
	caps := i.facility.Capabilities()
	if caps.Structured {
		if restartInterrupted && caps.HaveRestart {
			act.Flags |= caps.RestartFlag
		}
		// A legacy sigcontext handler must not be switched to the
		// three-argument siginfo convention.
		if needExtendedContext && caps.HaveSigInfo && !caps.LegacyContext {
			act.Flags |= caps.SigInfoFlag
		}
		if err := i.facility.EmptyMask(&act.Mask); err != nil {
			return Action{}, &RegistrationError{Op: OpMask, Context: maskContext, Err: err}
		}
	}
	act.Handler = h
	return act, nil
}

// TryInstall is Install returning the failure instead of terminating.
func (i *Installer) TryInstall(sig int, h Handler, needExtendedContext, restartInterrupted bool, errorContext string) error {
	act, err := i.Build(h, needExtendedContext, restartInterrupted)
	if err != nil {
		if re, ok := err.(*RegistrationError); ok {
			re.Signal = sig
		}
		return err
	}
	if err := i.TrySetAction(sig, act, errorContext); err != nil {
		return err
	}
	i.logger.Debug("signal handler installed",
		"signal", SignalName(sig),
		"handler", h.String(),
		"flags", act.Flags.String(),
		"siginfo", needExtendedContext,
		"restart", restartInterrupted)
	return nil
}

// Install installs h for sig. needExtendedContext asks for siginfo
// delivery and restartInterrupted for automatic restart of interrupted
// system calls; either is dropped silently when the facility cannot
// express it. On failure errorContext is reported and the process exits.
func (i *Installer) Install(sig int, h Handler, needExtendedContext, restartInterrupted bool, errorContext string) {
	if err := i.TryInstall(sig, h, needExtendedContext, restartInterrupted, errorContext); err != nil {
		i.fatal(err)
	}
}

// InstallNoRestart is Install with restartInterrupted false.
func (i *Installer) InstallNoRestart(sig int, h Handler, needExtendedContext bool, errorContext string) {
	i.Install(sig, h, needExtendedContext, false, errorContext)
}

// TryAction is Action returning the failure instead of terminating.
func (i *Installer) TryAction(sig int, errorContext string) (Action, error) {
	act, err := i.facility.Action(sig)
	if err != nil {
		return Action{}, &RegistrationError{Op: OpGet, Signal: sig, Context: errorContext, Err: err}
	}
	return act, nil
}

// Action returns the current disposition of sig.
func (i *Installer) Action(sig int, errorContext string) Action {
	act, err := i.TryAction(sig, errorContext)
	if err != nil {
		i.fatal(err)
	}
	return act
}

// TrySetAction is SetAction returning the failure instead of terminating.
func (i *Installer) TrySetAction(sig int, act Action, errorContext string) error {
	if err := i.facility.SetAction(sig, act); err != nil {
		return &RegistrationError{Op: OpSet, Signal: sig, Context: errorContext, Err: err}
	}
	return nil
}

// SetAction replaces the disposition of sig with act. The previous
// disposition is not kept; call Action first to save it.
func (i *Installer) SetAction(sig int, act Action, errorContext string) {
	if err := i.TrySetAction(sig, act, errorContext); err != nil {
		i.fatal(err)
	}
}

func (i *Installer) fatal(err error) {
	attrs := []any{"error", err}
	if re, ok := err.(*RegistrationError); ok {
		attrs = append(attrs, "op", string(re.Op), "signal", SignalName(re.Signal))
	}
	i.logger.Error("signal registration failed", attrs...)
	fmt.Fprintln(i.diag, err.Error())
	i.exit(1)
	panic(err)
}
