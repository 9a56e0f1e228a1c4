package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	solveInput   string
	solveNoCache bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <day> <a|b>",
	Short: "Solve one part of a day",
	Long: `Solves one part of a day and prints the answer.

Input comes from --input, piped stdin, or <inputs_dir>/dayNN.txt, in that
order. Answers are cached per input unless --no-cache is set.`,
	Example: `  adco solve 7 a < inputs/day07.txt
  adco solve 7 b --input inputs/day07.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "Input file (- for stdin)")
	solveCmd.Flags().BoolVar(&solveNoCache, "no-cache", false, "Neither read nor store cached answers")
}

func runSolve(cmd *cobra.Command, args []string) error {
	day, part, err := parseDayPart(args)
	if err != nil {
		return err
	}
	input, _, err := readInput(solveInput, day, cmd.InOrStdin())
	if err != nil {
		return err
	}

	runner, closeRunner, err := newRunner(!solveNoCache)
	if err != nil {
		return err
	}
	defer closeRunner()

	res, err := runner.Solve(cmd.Context(), day, part, input)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatResult(res, isStdoutTTY()))
	return nil
}
