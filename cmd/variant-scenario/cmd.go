package main

import (
	"fmt"
	"io"
	"log/slog"
	"tagged-variant/internal/scenario"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type runFlags struct {
	trace bool
	quiet bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "variant-scenario",
		Short:         "Replay scripted operations on tagged variants",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newRunCmd(), newOpsCmd())

	return root
}

func newRunCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run scenario.yaml...",
		Short: "Run scenario files and print the variant states after each step",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var logger *slog.Logger
			if flags.trace {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			reports, err := runAll(args, logger)
			if err != nil {
				return err
			}

			for _, r := range reports {
				printReport(cmd.OutOrStdout(), r, flags.quiet)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.trace, "trace", false, "log engine decisions to stderr")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "print failing steps only")

	return cmd
}

// runAll loads and replays the files concurrently. Each run owns its variants.
func runAll(paths []string, logger *slog.Logger) ([]*scenario.Report, error) {
	reports := make([]*scenario.Report, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			sc, err := scenario.LoadFile(path)
			if err != nil {
				return err
			}

			l := logger
			if l != nil {
				l = l.With(slog.String("scenario", sc.Name))
			}

			reports[i] = scenario.Run(sc, l)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func printReport(w io.Writer, r *scenario.Report, quiet bool) {
	fmt.Fprintf(w, "scenario %q: %d steps, %d failed\n", r.Name, len(r.Results), r.Failed())

	for _, res := range r.Results {
		if quiet && res.Err == nil {
			continue
		}

		status := "ok"
		if res.Err != nil {
			status = res.Err.Error()
		}

		fmt.Fprintf(w, "  %d %s %s: %s\n      a=%s b=%s\n", res.Step, res.Op, res.Target, status, res.A, res.B)
	}
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations a scenario step may use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for op := range scenario.OpEnum(scenario.OpTotal) {
				if op != scenario.OpUnknown {
					fmt.Fprintln(cmd.OutOrStdout(), op)
				}
			}
		},
	}
}
