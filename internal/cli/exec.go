package cli

import (
	"github.com/agentsh/sigcompat/internal/config"
	"github.com/agentsh/sigcompat/internal/signal"
	"github.com/spf13/cobra"
)

type execOptions struct {
	configPath string
	ignore     []string
	dflt       []string
	noRestart  bool
	sigInfo    bool
}

// setups merges the config file with the command-line flags. Flags are
// applied after the file so they win for signals listed in both.
func (o execOptions) setups() (*config.Config, []signal.Setup, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, nil, err
		}
	}
	restart := !o.noRestart
	if len(o.ignore) > 0 {
		cfg.Signals = append(cfg.Signals, config.SignalConfig{Signals: o.ignore, Action: "ignore", Restart: &restart, SigInfo: o.sigInfo})
	}
	if len(o.dflt) > 0 {
		cfg.Signals = append(cfg.Signals, config.SignalConfig{Signals: o.dflt, Action: "default", Restart: &restart, SigInfo: o.sigInfo})
	}
	setups, err := cfg.Setups()
	if err != nil {
		return nil, nil, err
	}
	return cfg, setups, nil
}

func newExecCmd() *cobra.Command {
	var opts execOptions

	cmd := &cobra.Command{
		Use:   "exec [flags] -- COMMAND [ARGS...]",
		Short: "Run a command with the given signal dispositions",
		Long: `Install signal dispositions in this process and then replace it with
COMMAND. Ignored signals stay ignored across exec, so

  sigcompat exec --ignore SIGHUP -- ./long-job

behaves like nohup without redirecting output. Dispositions may also be
read from a YAML file given with --config.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, setups, err := opts.setups()
			if err != nil {
				return err
			}
			if opts.configPath != "" && !cmd.Root().PersistentFlags().Changed("log-level") {
				if err := setupLogging(cmd, cfg.Logging); err != nil {
					return err
				}
			}

			inst := signal.Default()
			for _, s := range setups {
				s.Apply(inst)
			}
			loggerFrom(cmd.Context()).Info("signal dispositions installed",
				"count", len(setups),
				"command", args[0])

			return execCommand(cmd, args)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML file listing signal dispositions")
	cmd.Flags().StringArrayVar(&opts.ignore, "ignore", nil, "Signal or group to ignore (repeatable)")
	cmd.Flags().StringArrayVar(&opts.dflt, "default", nil, "Signal or group to reset to the default action (repeatable)")
	cmd.Flags().BoolVar(&opts.noRestart, "no-restart", false, "Do not request restart of interrupted system calls for --ignore/--default signals")
	cmd.Flags().BoolVar(&opts.sigInfo, "siginfo", false, "Request extended fault context for --ignore/--default signals")

	return cmd
}
