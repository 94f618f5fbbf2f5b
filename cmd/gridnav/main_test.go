package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseCell(t *testing.T) {
	c, err := parseCell(" 3, 4 ")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{Row: 3, Col: 4}, c)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := parseCell(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseLevel(t *testing.T) {
	l, err := parseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestRun_MapFile(t *testing.T) {
	mapFile := writeFile(t, "map.txt", "S..\n.#.\n..G\n")
	var stdout, stderr bytes.Buffer

	err := run([]string{"-map", mapFile, "-interval", "0", "-wrap", "stay"}, &stdout, &stderr)
	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "tick 1 navigating")
	assert.Contains(t, out, "goal-reached after 5 ticks at (2,2)")
}

func TestRun_Sweep(t *testing.T) {
	mapFile := writeFile(t, "map.txt", "S.T\n.#.\nT.G\n")
	var stdout, stderr bytes.Buffer

	err := run([]string{"-map", mapFile, "-mode", "sweep", "-interval", "0", "-quiet"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "goal-reached after 9 ticks at (2,2), plans=0, visited=2")
	assert.NotContains(t, stdout.String(), "tick 1")
}

func TestRun_Sampled(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-size", "6", "-targets", "3", "-obstacles", "4", "-seed", "9",
		"-interval", "0", "-max-ticks", "200", "-quiet", "-log-level", "debug"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "run ")
	assert.Contains(t, stderr.String(), "run reset")
}

func TestRun_Feed(t *testing.T) {
	mapFile := writeFile(t, "map.txt", "S...\n....\n....\n...G\n")
	feedFile := writeFile(t, "feed.txt", "# live positions\n3,2\n")
	var stdout, stderr bytes.Buffer

	err := run([]string{"-map", mapFile, "-feed", feedFile, "-interval", "0", "-wrap", "stay", "-quiet"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "at (3,3)")
}

func TestRun_BadInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Error(t, run([]string{"-log-level", "loud"}, &stdout, &stderr))
	assert.Error(t, run([]string{"-mode", "greedy", "-seed", "1"}, &stdout, &stderr))
	assert.Error(t, run([]string{"-wrap", "bounce", "-seed", "1"}, &stdout, &stderr))
	assert.Error(t, run([]string{"-max-ticks", "-1"}, &stdout, &stderr))
	assert.Error(t, run([]string{"-map", filepath.Join(t.TempDir(), "missing.txt")}, &stdout, &stderr))

	bad := writeFile(t, "feed.txt", "nonsense\n")
	mapFile := writeFile(t, "map.txt", "S.\n.G\n")
	assert.Error(t, run([]string{"-map", mapFile, "-feed", bad, "-interval", "10ms", "-wrap", "stay"}, &stdout, &stderr))
}
