// internal/signal/platform.go
package signal

var (
	platform = newPlatformFacility()
	std      = NewInstaller(platform)
)

// Platform returns the facility selected for this build: the kernel
// facility where a structured sigaction call exists, a primitive facility
// over os/signal otherwise.
func Platform() Facility {
	return platform
}

// Default returns the installer over Platform used by the package-level
// functions.
func Default() *Installer {
	return std
}

// Install installs h for sig on the platform facility. See Installer.Install.
func Install(sig int, h Handler, needExtendedContext, restartInterrupted bool, errorContext string) {
	std.Install(sig, h, needExtendedContext, restartInterrupted, errorContext)
}

// InstallNoRestart is Install with restartInterrupted false.
func InstallNoRestart(sig int, h Handler, needExtendedContext bool, errorContext string) {
	std.InstallNoRestart(sig, h, needExtendedContext, errorContext)
}

// GetAction returns the current disposition of sig.
func GetAction(sig int, errorContext string) Action {
	return std.Action(sig, errorContext)
}

// SetAction replaces the disposition of sig.
func SetAction(sig int, act Action, errorContext string) {
	std.SetAction(sig, act, errorContext)
}
