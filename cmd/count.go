package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/abhisek/limbcalc/internal/calc"
	"github.com/abhisek/limbcalc/internal/limbs"
	"github.com/abhisek/limbcalc/internal/runner"
	"github.com/abhisek/limbcalc/internal/store"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count <a+b>",
	Short: "Count a sum on fingers and toes without the TUI",
	Example: `  limbcalc count 6+5
  limbcalc count "12 + 8" --interval 100ms --quiet`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := countOptions{Hz: runner.DefaultHz}
		opts.Interval, _ = cmd.Flags().GetDuration("interval")
		opts.Quiet, _ = cmd.Flags().GetBool("quiet")
		noHistory, _ := cmd.Flags().GetBool("no-history")
		if opts.Interval <= 0 {
			opts.Interval = settings.StepInterval
		}

		var repo store.AttemptRepo
		if !noHistory {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			repo = st.AttemptRepo()
		}

		player := openPlayer()
		defer player.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		err := runCount(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts, player, repo)
		if errors.Is(err, errNotCounted) {
			// Already reported in the calculator's own words.
			cmd.SilenceErrors = true
		}
		return err
	},
}

func init() {
	countCmd.Flags().Duration("interval", 0, "Time per limb (default from config, 600ms)")
	countCmd.Flags().BoolP("quiet", "q", false, "Print only the result")
	countCmd.Flags().Bool("no-history", false, "Do not record the attempt")
}

// errNotCounted marks a count that ended without a result.
var errNotCounted = errors.New("not counted")

type countOptions struct {
	Interval time.Duration
	Hz       int
	Quiet    bool
}

// runCount drives a Machine headlessly, printing one line per limb and
// then the result. Rejected input and interruptions are written to errOut
// and reported as errNotCounted.
func runCount(ctx context.Context, out, errOut io.Writer, expr string, opts countOptions, cues calc.CueSink, repo store.AttemptRepo) error {
	printer := calc.CueFunc(func(c calc.Cue) {
		if opts.Quiet {
			return
		}
		p, err := limbs.Resolve(c)
		if err != nil {
			fmt.Fprintf(out, "%2d\n", c)
			return
		}
		fmt.Fprintf(out, "%2d  %s\n", c, p.Label())
	})

	var last calc.Outcome
	m := calc.New(
		calc.WithInterval(opts.Interval),
		calc.WithCueSink(calc.Tee(printer, cues)),
		calc.WithOutcomeHook(func(o calc.Outcome) {
			last = o
			slog.Info("attempt", "input", o.Input, "status", o.Status, "total", o.Total, "count", o.Count)
			if repo == nil {
				return
			}
			// The store must see a cancelled attempt even after ctx is done.
			if _, err := repo.Append(context.WithoutCancel(ctx), store.AttemptFromOutcome(o)); err != nil {
				slog.Warn("store attempt", "input", o.Input, "err", err)
			}
		}),
	)

	if err := m.Submit(expr, time.Now()); err != nil {
		return err
	}
	if m.Kind() == calc.KindResult {
		fmt.Fprintln(errOut, m.ResultText())
		return fmt.Errorf("%w: %w", errNotCounted, m.Err())
	}

	if sess, ok := m.Session(); ok && !opts.Quiet && sess.ShowsFeet() {
		fmt.Fprintln(out, "(using toes too)")
	}

	if err := runner.Run(ctx, m, runner.Config{Hz: opts.Hz}); err != nil {
		if last.Status == calc.StatusCancelled {
			fmt.Fprintf(errOut, "Stopped at %d of %d.\n", last.Count, last.Total)
			return fmt.Errorf("%w: %w", errNotCounted, err)
		}
		return err
	}

	fmt.Fprintln(out, m.ResultText())
	return nil
}
