package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/limbcalc/internal/selfupdate"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = selfupdate.DevVersion

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "limbcalc", version)

		if check, _ := cmd.Flags().GetBool("check"); !check {
			return nil
		}

		result, err := selfupdate.NewChecker(selfupdate.WithTimeout(10*time.Second)).
			Check(cmd.Context(), &selfupdate.CheckInput{Version: version})
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Fprintln(out, "Development build; no release to compare against.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if result.UpdateAvailable {
			fmt.Fprintf(out, "New version %s available: %s\n", result.LatestVersion, result.ReleaseURL)
		} else {
			fmt.Fprintln(out, "Up to date.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
