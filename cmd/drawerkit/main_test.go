package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/drawerkit/core/drawer"
	"github.com/jask/drawerkit/internal/database"
	"github.com/jask/drawerkit/internal/service"
)

const scenarioConfig = `
[drawer]
upper_mark_gap = 40
lower_mark_gap = 40
flick_speed_threshold = 0.5
maximum_corner_radius = 2
partial_height = 300
`

func setupConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "config.toml")
	if body != "" {
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	t.Setenv("DRAWERKIT_CONFIG", path)
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDecideCommand(t *testing.T) {
	setupConfig(t, scenarioConfig)

	cases := []struct {
		name string
		y    string
		v    string
		want string
	}{
		{"flick up", "480", "-0.8", "target 0 (expanded)"},
		{"flick down", "480", "0.8", "target 800 (hidden)"},
		{"slow down between marks", "480", "0.2", "target 800 (hidden)"},
		{"still between marks", "480", "0", "target 500 (partial)"},
		{"slow up above upper mark", "400", "-0.1", "target 0 (expanded)"},
		{"below lower mark", "600", "-0.1", "target 800 (hidden)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, "decide", "--height", "800", "--y", tc.y, "--velocity", tc.v)
			require.NoError(t, err)
			require.Contains(t, out, tc.want)
			require.Contains(t, out, "marks 460 / 540, partial at 500")
		})
	}
}

func TestDecideRejectsBadConfig(t *testing.T) {
	setupConfig(t, "[drawer]\ntiming_curve = \"eseIn\"\n")
	_, err := execute(t, "decide", "--height", "800", "--y", "100", "--velocity", "0")
	require.ErrorIs(t, err, drawer.ErrInvalidConfiguration)
	require.Contains(t, err.Error(), `did you mean "easeIn"`)
}

func TestProfileCommand(t *testing.T) {
	setupConfig(t, "")
	out, err := execute(t, "profile", "--height", "40", "--partial", "10", "--steps", "4")
	require.NoError(t, err)
	require.Contains(t, out, "radius")
	require.Contains(t, out, "30.0")
	require.Contains(t, out, "2.00")
	require.Contains(t, out, "0.67")

	_, err = execute(t, "profile", "--steps", "0")
	require.Error(t, err)
	_, _ = execute(t, "profile", "--steps", "10")
}

func TestConfigCommands(t *testing.T) {
	path := setupConfig(t, "")

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	require.Contains(t, out, path)

	out, err = execute(t, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, "wrote")
	require.FileExists(t, path)

	_, err = execute(t, "config", "init")
	require.ErrorContains(t, err, "already exists")

	out, err = execute(t, "config")
	require.NoError(t, err)
	require.Contains(t, out, "[drawer]")
	require.Contains(t, out, "partial_height")
	require.Contains(t, out, "[journal]")
}

func TestJournalCommand(t *testing.T) {
	setupConfig(t, "")
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.db")

	out, err := execute(t, "journal", "--path", path)
	require.NoError(t, err)
	require.Contains(t, out, "No presentations recorded.")

	db, err := database.OpenJournal(path)
	require.NoError(t, err)
	rec := service.NewRecorder(db, zerolog.Nop())
	id, err := rec.Begin(ctx, drawer.DefaultConfiguration(), 40, 10)
	require.NoError(t, err)
	rec.Observe(drawer.Event{Kind: drawer.EventRelease, Position: 36, Velocity: 4, Target: 40, ContainerHeight: 40, Rest: drawer.RestHidden})
	rec.Observe(drawer.Event{Kind: drawer.EventRelease, Position: 12, Velocity: -4, Target: 0, ContainerHeight: 40, Rest: drawer.RestExpanded})
	require.NoError(t, rec.Flush(ctx))
	require.NoError(t, db.Close())

	out, err = execute(t, "journal", "--path", path)
	require.NoError(t, err)
	require.Contains(t, out, id)
	require.Contains(t, out, "Releases")
	require.Contains(t, out, "1 (50%)")

	out, err = execute(t, "journal", "--path", path, "--session", id)
	require.NoError(t, err)
	require.Contains(t, out, "release")
	require.Contains(t, out, "expanded")

	_, err = execute(t, "journal", "--path", path, "--session", "missing")
	require.ErrorContains(t, err, "no session")
}
