package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the project root, resolved paths and the effective configuration.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	color := isStdoutTTY()
	source := paths.Config
	if configPath != "" {
		source = configPath
	}

	dump, err := cfg.Dump()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", paint("adco config", colorBold, color))
	fmt.Fprintf(out, "  Root:       %s\n", paths.Project)
	fmt.Fprintf(out, "  Config:     %s\n", source)
	fmt.Fprintf(out, "  DB:         %s\n", cfg.Cache.Path)
	fmt.Fprintf(out, "  Version:    %s\n", version)
	fmt.Fprintln(out)
	fmt.Fprint(out, dump)
	return nil
}
