package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/abhisek/limbcalc/internal/app"
	"github.com/abhisek/limbcalc/internal/audio"
	"github.com/abhisek/limbcalc/internal/screens/calculator"
	"github.com/abhisek/limbcalc/internal/screens/home"
	"github.com/abhisek/limbcalc/internal/selfupdate"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	player := openPlayer()
	defer player.Close()

	opts := app.Options{
		Home: home.Options{
			Calculator: calculator.Options{
				StepInterval:  settings.StepInterval,
				FrameInterval: settings.FrameInterval(),
				Cues:          player,
				Attempts:      st.AttemptRepo(),
			},
			Attempts:      st.AttemptRepo(),
			LatestVersion: latestVersion(cmd.Context()),
		},
	}
	return app.Run(opts)
}

// openPlayer returns the cue tone player, or a silent one when sound is
// off or no audio device is available.
func openPlayer() audio.Player {
	cfg := audio.DefaultConfig()
	cfg.Enabled = settings.Sound
	cfg.Volume = settings.Volume

	player, err := audio.New(cfg)
	if err != nil {
		slog.Warn("audio unavailable, counting silently", "err", err)
	}
	return player
}

// latestVersion returns a newer release tag, or "" when up to date or
// the check fails.
func latestVersion(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	result, err := selfupdate.NewChecker(selfupdate.WithTimeout(2*time.Second)).
		Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil {
		if !errors.Is(err, selfupdate.ErrDevBuild) {
			slog.Debug("update check failed", "err", err)
		}
		return ""
	}
	if !result.UpdateAvailable {
		return ""
	}
	return result.LatestVersion
}
