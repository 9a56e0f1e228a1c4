package cmd

import (
	"fmt"

	"github.com/corey/adco/internal/domain/puzzle"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List implemented days",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	problems := puzzle.Default()
	for _, day := range problems.Days() {
		p, err := problems.Get(day)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", day, p.Title())
	}
	return nil
}
