package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/agentsh/sigcompat/internal/signal"
	"github.com/spf13/cobra"
)

// detectReport is the output of `sigcompat detect`.
type detectReport struct {
	Platform     string              `json:"platform" yaml:"platform"`
	Facility     string              `json:"facility" yaml:"facility"`
	Capabilities signal.Capabilities `json:"capabilities" yaml:"capabilities"`
	Available    []string            `json:"available" yaml:"available"`
	Unavailable  []string            `json:"unavailable" yaml:"unavailable"`
}

func newDetectReport(f signal.Facility) detectReport {
	caps := f.Capabilities()
	facility := "primitive"
	if caps.Structured {
		facility = "structured"
	}
	return detectReport{
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		Facility:     facility,
		Capabilities: caps,
		Available:    caps.Available(),
		Unavailable:  caps.Unavailable(),
	}
}

func (r detectReport) writeTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Platform:\t%s\n", r.Platform)
	fmt.Fprintf(tw, "Facility:\t%s\n", r.Facility)
	fmt.Fprintf(tw, "Restart flag:\t%s\n", flagCell(r.Capabilities.HaveRestart, r.Capabilities.RestartFlag))
	fmt.Fprintf(tw, "Siginfo flag:\t%s\n", flagCell(r.Capabilities.HaveSigInfo, r.Capabilities.SigInfoFlag))
	fmt.Fprintf(tw, "Legacy context:\t%t\n", r.Capabilities.LegacyContext)
	fmt.Fprintf(tw, "Available:\t%s\n", listCell(r.Available))
	fmt.Fprintf(tw, "Unavailable:\t%s\n", listCell(r.Unavailable))
	return tw.Flush()
}

func flagCell(present bool, f signal.Flags) string {
	if !present {
		return "absent"
	}
	return fmt.Sprintf("%#x", uint64(f))
}

func listCell(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func newDetectCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Show the signal facility compiled into this binary",
		Long: `Show which signal facility this binary was built for.

A structured facility accepts restart and siginfo flags and a blocked
mask. A primitive facility installs a bare handler and drops both flags.
The legacy context setting comes from the 'sigcontext' build tag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := newDetectReport(signal.Platform())
			return render(cmd, outputFormat, report, report.writeTable)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json, yaml")

	return cmd
}
