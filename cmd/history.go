package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/limbcalc/internal/calc"
	"github.com/abhisek/limbcalc/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded attempts",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent attempts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		status, _ := cmd.Flags().GetString("status")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return listAttempts(cmd.Context(), cmd.OutOrStdout(), st.AttemptRepo(), limit, status)
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize recorded attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return printStats(cmd.Context(), cmd.OutOrStdout(), st.AttemptRepo())
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete all recorded attempts?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.AttemptRepo().Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d attempts.\n", n)
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Maximum number of attempts to show (0 = all)")
	historyListCmd.Flags().String("status", "", "Only show attempts with this status (completed, rejected, cancelled)")
	historyClearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func parseStatus(s string) (calc.Status, error) {
	switch st := calc.Status(strings.ToLower(strings.TrimSpace(s))); st {
	case "", calc.StatusCompleted, calc.StatusRejected, calc.StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("unknown status %q (want completed, rejected or cancelled)", s)
	}
}

func listAttempts(ctx context.Context, out io.Writer, repo store.AttemptRepo, limit int, status string) error {
	st, err := parseStatus(status)
	if err != nil {
		return err
	}
	attempts, err := repo.Query(ctx, store.QueryOpts{Limit: limit, Status: st})
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		fmt.Fprintln(out, "No attempts recorded.")
		return nil
	}

	fmt.Fprintf(out, "%6s  %-16s  %-12s  %-9s  %s\n", "#", "When", "Input", "Status", "Result")
	fmt.Fprintln(out, strings.Repeat("─", 72))
	for _, a := range attempts {
		input := a.Input
		if len(input) > 12 {
			input = input[:9] + "..."
		}
		fmt.Fprintf(out, "%6d  %-16s  %-12s  %-9s  %s\n",
			a.Sequence, a.Timestamp.Local().Format("2006-01-02 15:04"), input, a.Status, resultColumn(a))
	}
	fmt.Fprintf(out, "\n%d attempts\n", len(attempts))
	return nil
}

func resultColumn(a store.Attempt) string {
	switch a.Status {
	case calc.StatusCancelled:
		return fmt.Sprintf("stopped at %d/%d", a.Count, a.Total)
	default:
		return a.Message
	}
}

func printStats(ctx context.Context, out io.Writer, repo store.AttemptRepo) error {
	s, err := repo.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Attempts:     %d\n", s.Total)
	fmt.Fprintf(out, "  completed:  %d\n", s.ByStatus[calc.StatusCompleted])
	fmt.Fprintf(out, "  rejected:   %d\n", s.ByStatus[calc.StatusRejected])
	fmt.Fprintf(out, "  cancelled:  %d\n", s.ByStatus[calc.StatusCancelled])
	fmt.Fprintf(out, "Largest sum:  %d of %d limbs\n", s.LargestSum, calc.MaxLimbs)
	return nil
}

// confirm asks a yes/no question on out and reads the answer from in.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
