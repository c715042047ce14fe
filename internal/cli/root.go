package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"logsurrogate/internal/config"
	"logsurrogate/internal/emitter"
	"logsurrogate/internal/pause"
	"logsurrogate/internal/system"
	"logsurrogate/internal/ui"
)

type rootOptions struct {
	dataDir firstValue
	color   string
	speed   float64
	debug   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "logsurrogate --data-dir <path>",
		Short: "logsurrogate – scripted log emitter for testing the log viewer GUI",
		Long: "logsurrogate prints timestamped, leveled log lines on a fixed schedule,\n" +
			"then a spinner and a progress bar. It pauses while <data-dir>/pause.flag exists.",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			system.SetDebug(opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSurrogate(cmd.Context(), cmd.OutOrStdout(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Var(&opts.dataDir, "data-dir", "Path to the shared data directory for flags.")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "print diagnostics on stderr")
	cmd.Flags().StringVar(&opts.color, "color", string(ui.ColorAuto), "color log lines: auto, always or never")
	cmd.Flags().Float64Var(&opts.speed, "speed", 1, "delay scale factor; 2 runs twice as fast, 0 removes delays")

	// a stray "completion" positional must not replace the run
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(newPauseCmd(opts), newResumeCmd(opts), newVersionCmd())
	return cmd
}

func runSurrogate(ctx context.Context, stdout io.Writer, opts *rootOptions) error {
	paths, err := config.Resolve(opts.dataDir.String())
	if err != nil {
		return err
	}
	if err := config.ValidateSpeed(opts.speed); err != nil {
		return err
	}
	mode, err := ui.ParseColorMode(opts.color)
	if err != nil {
		return err
	}

	var popts []emitter.PrinterOption
	if ui.UseColor(mode, stdout) {
		popts = append(popts, emitter.WithStyles(ui.NewLevelStyles(stdout, mode)))
	}
	printer := emitter.NewPrinter(stdout, popts...)

	gate := pause.New(paths.DataDir, printer)
	defer gate.Close()

	self := config.SelfPath()
	system.Logger.Debug("starting", "dataDir", paths.DataDir, "pauseFlag", paths.PauseFlag, "self", self, "speed", opts.speed)
	em := emitter.New(printer, gate,
		emitter.WithSpeed(opts.speed),
		emitter.WithScript(emitter.Script(self)),
	)
	return em.Run(ctx)
}

// run executes the command tree and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

// Execute runs the CLI and exits the process.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
