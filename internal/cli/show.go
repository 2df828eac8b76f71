package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agentsh/sigcompat/internal/signal"
	"github.com/spf13/cobra"
)

// disposition is one row of `sigcompat show`.
type disposition struct {
	Signal  int    `json:"signal" yaml:"signal"`
	Name    string `json:"name" yaml:"name"`
	Handler string `json:"handler" yaml:"handler"`
	Flags   string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Mask    []int  `json:"mask,omitempty" yaml:"mask,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

func queryContext(sig int) string {
	return fmt.Sprintf("cannot query disposition of %s", signal.SignalName(sig))
}

// collectDispositions reads the disposition of each signal. In strict mode a
// failed query terminates the process; otherwise it is reported in the row.
func collectDispositions(inst *signal.Installer, sigs []int, strict bool) []disposition {
	structured := inst.Capabilities().Structured
	rows := make([]disposition, 0, len(sigs))
	for _, sig := range sigs {
		row := disposition{Signal: sig, Name: signal.SignalName(sig)}
		var act signal.Action
		if strict {
			act = inst.Action(sig, queryContext(sig))
		} else {
			var err error
			act, err = inst.TryAction(sig, queryContext(sig))
			if err != nil {
				row.Error = err.Error()
				rows = append(rows, row)
				continue
			}
		}
		row.Handler = act.Handler.String()
		if structured {
			row.Flags = act.Flags.String()
			row.Mask = act.Mask.Signals()
		}
		rows = append(rows, row)
	}
	return rows
}

func writeDispositionTable(w io.Writer, rows []disposition) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SIGNAL\tNAME\tHANDLER\tFLAGS\tBLOCKED")
	for _, r := range rows {
		if r.Error != "" {
			fmt.Fprintf(tw, "%d\t%s\terror: %s\t\t\n", r.Signal, r.Name, r.Error)
			continue
		}
		flags := r.Flags
		if flags == "" {
			flags = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.Signal, r.Name, r.Handler, flags, maskCell(r.Mask))
	}
	return tw.Flush()
}

// maskCell abbreviates a full mask; the runtime blocks everything while
// its own handlers run.
func maskCell(sigs []int) string {
	switch {
	case len(sigs) == 0:
		return "-"
	case len(sigs) >= 31:
		return fmt.Sprintf("%d signals", len(sigs))
	}
	names := make([]string, len(sigs))
	for i, sig := range sigs {
		names[i] = signal.SignalName(sig)
	}
	return strings.Join(names, ",")
}

func newShowCmd() *cobra.Command {
	var outputFormat string
	var strict bool

	cmd := &cobra.Command{
		Use:   "show [SIGNAL...]",
		Short: "Show the signal dispositions of this process",
		Long: `Show the handler, flags and blocked mask installed for each signal in
the running sigcompat process. Signals may be names (SIGHUP, hup),
numbers, or groups (@fault, @timer, @terminal, @job, @user, @all).
With no arguments every standard signal is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sigs := signal.AllSignals()
			if len(args) > 0 {
				var err error
				if sigs, err = signal.ParseSignals(args); err != nil {
					return err
				}
			}
			rows := collectDispositions(signal.Default(), sigs, strict)
			return render(cmd, outputFormat, rows, func(w io.Writer) error {
				return writeDispositionTable(w, rows)
			})
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json, yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "Abort on the first signal that cannot be queried")

	return cmd
}
