package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 600*time.Millisecond, cfg.StepInterval)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, `{
		"step_interval": "750ms",
		"frame_rate": 60,
		"sound": false,
		"volume": 0.25,
		"db_path": "/tmp/x.db",
		"log_level": "debug",
		"log_file": "/tmp/limbcalc.log"
	}`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.StepInterval)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.False(t, cfg.Sound)
	assert.InDelta(t, 0.25, cfg.Volume, 1e-9)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/limbcalc.log", cfg.LogFile)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	p := writeConfig(t, `{"sound": false}`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.False(t, cfg.Sound)
	assert.Equal(t, DefaultConfig().StepInterval, cfg.StepInterval)
	assert.Equal(t, DefaultConfig().FrameRate, cfg.FrameRate)
}

func TestLoadFileDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "limbcalc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "limbcalc", "config.json"), []byte(`{"frame_rate": 12}`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.FrameRate)
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"unknown key", `{"colour": "red"}`},
		{"bad interval", `{"step_interval": "soon"}`},
		{"frame rate too high", `{"frame_rate": 1000}`},
		{"frame rate fractional", `{"frame_rate": 2.5}`},
		{"volume above one", `{"volume": 1.5}`},
		{"unknown level", `{"log_level": "loud"}`},
		{"sound not bool", `{"sound": "yes"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestEnvOverridesFile(t *testing.T) {
	p := writeConfig(t, `{"step_interval": "750ms", "sound": true, "db_path": "/from/file.db"}`)
	t.Setenv("LIMBCALC_STEP_INTERVAL", "1s")
	t.Setenv("LIMBCALC_SOUND", "false")
	t.Setenv("LIMBCALC_DB", "/from/env.db")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.StepInterval)
	assert.False(t, cfg.Sound)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
}

func TestEnvInvalidValue(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LIMBCALC_FRAME_RATE", "fast")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	good := DefaultConfig()
	require.NoError(t, good.Validate())

	zero := good
	zero.StepInterval = 0
	assert.Error(t, zero.Validate())

	slow := good
	slow.FrameRate = 0
	assert.Error(t, slow.Validate())

	loud := good
	loud.Volume = -0.1
	assert.Error(t, loud.Validate())
}

func TestFrameInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameRate = 50
	assert.Equal(t, 20*time.Millisecond, cfg.FrameInterval())

	cfg.FrameRate = 0
	assert.Equal(t, time.Second/30, cfg.FrameInterval())
}
