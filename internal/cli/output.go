package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func printYAML(cmd *cobra.Command, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(b))
	return err
}

// render writes v in the requested format; table output is produced by
// table.
func render(cmd *cobra.Command, format string, v any, table func(w io.Writer) error) error {
	switch format {
	case "json":
		return printJSON(cmd, v)
	case "yaml":
		return printYAML(cmd, v)
	case "table":
		return table(cmd.OutOrStdout())
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
