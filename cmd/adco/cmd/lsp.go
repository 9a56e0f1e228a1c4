package cmd

import (
	"github.com/corey/adco/internal/adapters/lsp"
	"github.com/spf13/cobra"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Start the input diagnostics language server on stdio",
	Long:  "Publishes parse errors for open documents named after a day (day07.txt) as editor diagnostics.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, closeRunner, err := newRunner(false)
		if err != nil {
			return err
		}
		defer closeRunner()
		return lsp.NewServer(runner, version).RunStdio()
	},
}
