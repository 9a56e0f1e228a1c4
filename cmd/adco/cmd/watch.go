package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	fsw "github.com/corey/adco/internal/adapters/fsnotify"
	"github.com/corey/adco/internal/app"
	"github.com/spf13/cobra"
)

var (
	watchInput   string
	watchNoCache bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <day> <a|b>",
	Short: "Re-solve whenever the input file changes",
	Long:  "Solves once, then again on every save of the input file, until interrupted.",
	Args:  cobra.ExactArgs(2),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchInput, "input", "i", "", "Input file (default <inputs_dir>/dayNN.txt)")
	watchCmd.Flags().BoolVar(&watchNoCache, "no-cache", false, "Neither read nor store cached answers")
}

func runWatch(cmd *cobra.Command, args []string) error {
	day, part, err := parseDayPart(args)
	if err != nil {
		return err
	}
	path := watchInput
	if path == "" {
		path = app.InputFile(cfg.InputsDir, day)
	}

	runner, closeRunner, err := newRunner(!watchNoCache)
	if err != nil {
		return err
	}
	defer closeRunner()

	w, err := fsw.NewWatcher()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	color := isStdoutTTY()
	fmt.Fprintf(out, "watching %s (ctrl-c to stop)\n", path)
	return runner.Watch(ctx, w, path, day, part, func(res app.Result, err error) {
		stamp := paint(time.Now().Format("15:04:05"), colorGray, color)
		if err != nil {
			fmt.Fprintf(out, "%s ERROR: %v\n", stamp, err)
			return
		}
		fmt.Fprintf(out, "%s %s\n", stamp, formatResult(res, color))
	})
}

