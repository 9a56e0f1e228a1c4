package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/corey/adco/internal/domain/parsec"
	"github.com/corey/adco/internal/domain/puzzle"
	"github.com/spf13/cobra"
)

var checkInput string

var checkCmd = &cobra.Command{
	Use:   "check [day]",
	Short: "Parse an input without solving it",
	Long: `Runs only the day's input grammar and reports the first place the input
stops matching, as file:line:col. The day may be left out when the input
file is named after it (day07.txt, day7-input.txt).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "Input file (- for stdin)")
}

// errCheckFailed is returned after the diagnostic has been printed.
var errCheckFailed = errors.New("input does not parse")

func runCheck(cmd *cobra.Command, args []string) error {
	day, err := checkDay(args)
	if err != nil {
		return err
	}
	input, name, err := readInput(checkInput, day, cmd.InOrStdin())
	if err != nil {
		return err
	}

	runner, closeRunner, err := newRunner(false)
	if err != nil {
		return err
	}
	defer closeRunner()

	err = runner.Check(day, input)
	var perr *parsec.Error
	switch {
	case err == nil:
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", filepath.Base(name))
		return nil
	case errors.As(err, &perr):
		fmt.Fprintln(cmd.OutOrStdout(), formatParseError(filepath.Base(name), perr, isStdoutTTY()))
		return errCheckFailed
	default:
		return err
	}
}

func checkDay(args []string) (int, error) {
	if len(args) == 1 {
		return parseDay(args[0])
	}
	if checkInput == "" || checkInput == "-" {
		return 0, fmt.Errorf("give a day, or an --input file named after one")
	}
	day, ok := puzzle.DayFromFileName(checkInput)
	if !ok {
		return 0, fmt.Errorf("cannot tell the day from %q; pass it as an argument", filepath.Base(checkInput))
	}
	return day, nil
}
