package cli

import (
	"fmt"
	"os"

	"github.com/agentsh/sigcompat/internal/config"
	"github.com/agentsh/sigcompat/internal/signal"
	"github.com/spf13/cobra"
)

func NewRoot(version string) *cobra.Command {
	logCfg := &config.LoggingConfig{}
	cmd := &cobra.Command{
		Use:           "sigcompat",
		Short:         "sigcompat: inspect and install process signal dispositions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd, *logCfg)
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate("sigcompat {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&logCfg.Level, "log-level", getenvDefault("SIGCOMPAT_LOG_LEVEL", "warn"), "Log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&logCfg.Format, "log-format", getenvDefault("SIGCOMPAT_LOG_FORMAT", "text"), "Log format: text|json")

	cmd.AddCommand(newDetectCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newExecCmd())
	cmd.AddCommand(newVersionCmd(version))

	return cmd
}

// setupLogging installs the logger for the process and the default
// installer. Diagnostics go to stderr so command output stays parseable.
func setupLogging(cmd *cobra.Command, cfg config.LoggingConfig) error {
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	signal.Default().SetLogger(logger)
	cmd.SetContext(withLogger(cmd.Context(), logger))
	return nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sigcompat version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "sigcompat %s\n", version)
			return err
		},
	}
}
