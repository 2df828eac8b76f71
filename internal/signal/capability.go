// internal/signal/capability.go
package signal

// Capabilities describes the signal facility compiled into this binary.
type Capabilities struct {
	// Structured is true when the facility accepts flags and a blocked mask
	// (sigaction). Otherwise only a bare handler can be installed.
	Structured bool `json:"structured" yaml:"structured"`
	// HaveRestart is true when restart-on-interrupt has a flag bit.
	HaveRestart bool `json:"restart" yaml:"restart"`
	// HaveSigInfo is true when extended fault context can be requested.
	HaveSigInfo bool `json:"siginfo" yaml:"siginfo"`
	// LegacyContext is true when handlers are built against the legacy
	// sigcontext calling convention. Extended context is then never
	// requested, even when HaveSigInfo is true.
	LegacyContext bool `json:"legacy_context" yaml:"legacy_context"`

	RestartFlag Flags `json:"restart_flag" yaml:"restart_flag"`
	SigInfoFlag Flags `json:"siginfo_flag" yaml:"siginfo_flag"`
}

// Detected returns the capabilities selected when the binary was built.
func Detected() Capabilities {
	c := Capabilities{
		Structured:    haveSigaction,
		LegacyContext: legacyContext,
	}
	if haveSigaction {
		c.HaveRestart = flagRestart != 0
		c.HaveSigInfo = flagSigInfo != 0
		c.RestartFlag = flagRestart
		c.SigInfoFlag = flagSigInfo
	}
	return c
}

// Primitive returns c reduced to what a single-argument facility can
// represent. LegacyContext is preserved since it describes the handlers,
// not the facility.
func (c Capabilities) Primitive() Capabilities {
	return Capabilities{LegacyContext: c.LegacyContext}
}

// Available lists the names of the capabilities that are present.
func (c Capabilities) Available() []string {
	var out []string
	for _, e := range c.entries() {
		if e.on {
			out = append(out, e.name)
		}
	}
	return out
}

// Unavailable lists the names of the capabilities that are absent.
func (c Capabilities) Unavailable() []string {
	var out []string
	for _, e := range c.entries() {
		if !e.on {
			out = append(out, e.name)
		}
	}
	return out
}

type capEntry struct {
	name string
	on   bool
}

func (c Capabilities) entries() []capEntry {
	return []capEntry{
		{"structured", c.Structured},
		{"restart", c.HaveRestart},
		{"siginfo", c.HaveSigInfo},
		{"legacy_context", c.LegacyContext},
	}
}
