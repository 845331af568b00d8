package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/limbcalc/internal/config"
)

// executeRoot runs the CLI with args and captures both output streams.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		settings = config.DefaultConfig()
		// Flag values outlive Execute on the package-level commands.
		for _, name := range []string{"db", "config", "log-level"} {
			rootCmd.PersistentFlags().Set(name, "")
		}
		countCmd.Flags().Set("interval", "0s")
		countCmd.Flags().Set("quiet", "false")
		countCmd.Flags().Set("no-history", "false")
	})

	err := Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCountCommandUsesConfigFile(t *testing.T) {
	cfg := writeConfig(t, `{"step_interval": "1ms", "sound": false, "log_level": "error"}`)

	out, errOut, err := executeRoot(t,
		"count", "1+1", "--interval", "0s", "--quiet=false", "--no-history", "--config", cfg)
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Equal(t, " 1  left hand, finger 1\n 2  left hand, finger 2\n1 + 1 = 2\n", out)
	assert.False(t, settings.Sound)
}

func TestCountCommandRejectsQuietly(t *testing.T) {
	cfg := writeConfig(t, `{"sound": false}`)

	out, errOut, err := executeRoot(t,
		"count", "15+10", "--interval", "1ms", "--quiet=false", "--no-history", "--config", cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotCounted))
	assert.Empty(t, out)
	// Only the calculator's message; cobra does not repeat the error.
	assert.Equal(t, "Error: Sum (25) is greater than 20. I've run out of limbs!\n", errOut)
}

func TestExplicitConfigMustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	_, _, err := executeRoot(t,
		"count", "1+1", "--interval", "1ms", "--no-history", "--config", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestLogLevelFlagIsValidated(t *testing.T) {
	cfg := writeConfig(t, `{"sound": false}`)

	_, _, err := executeRoot(t,
		"count", "1+1", "--interval", "1ms", "--no-history", "--config", cfg, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

type closeRecorder struct{ closed bool }

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestExecuteClosesLogSinkOnError(t *testing.T) {
	sink := &closeRecorder{}
	logSink = sink

	_, _, err := executeRoot(t, "count")
	require.Error(t, err)
	assert.True(t, sink.closed)
	assert.Nil(t, logSink)
}

func TestHistoryCommandsUseDBFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	db := filepath.Join(t.TempDir(), "nested", "history.db")

	out, _, err := executeRoot(t, "history", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Attempts:     0")
	assert.FileExists(t, db)

	out, _, err = executeRoot(t, "history", "clear", "-y", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Deleted 0 attempts.\n", out)
}
