package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/urfave/cli.v1"

	"github.com/chazu/intcode/pkg/intcode"
)

func TestParsePatch(t *testing.T) {
	p, err := parsePatch("1=12")
	require.NoError(t, err)
	assert.Equal(t, Patch{Addr: 1, Value: 12}, p)

	p, err = parsePatch(" 2 = -7 ")
	require.NoError(t, err)
	assert.Equal(t, Patch{Addr: 2, Value: -7}, p)

	for _, bad := range []string{"12", "a=1", "1=b", "="} {
		_, err := parsePatch(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseValues(t *testing.T) {
	values, err := parseValues("")
	require.NoError(t, err)
	assert.Nil(t, values)

	values, err = parseValues("5,6,7")
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6, 7}, values)

	_, err = parseValues("5,x")
	assert.Error(t, err)
}

func TestRenderGrid(t *testing.T) {
	grid := [][]int64{{1, 0}, {0, 1}}
	assert.Equal(t, "#.\n.#\n", renderGrid(grid))
}

func TestPrintOutput(t *testing.T) {
	var buf bytes.Buffer
	printOutput(&buf, []int64{1, -2, 3}, false)
	assert.Equal(t, "1,-2,3\n", buf.String())

	buf.Reset()
	printOutput(&buf, nil, false)
	assert.Empty(t, buf.String())

	buf.Reset()
	printOutput(&buf, []int64{'h', 'i', '\n', 1000}, true)
	assert.Contains(t, buf.String(), "hi\n")
	assert.Contains(t, buf.String(), "1000")
}

func TestPrintSummary(t *testing.T) {
	m := intcode.New([]int64{104, 7, 99})
	require.NoError(t, m.Run())

	var buf bytes.Buffer
	printSummary(&buf, m)
	out := buf.String()
	assert.Contains(t, out, "Halted")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "Steps")
}

func TestReadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("# setup\nNOT A J\n\nWALK\r\n"), 0644))

	lines, err := readScript(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"NOT A J", "WALK"}, lines)

	_, err = readScript(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestRunSavesSnapshot(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, "prog.txt")
	snap := filepath.Join(dir, "prog.snap")
	require.NoError(t, os.WriteFile(prog, []byte("1,9,10,3,2,3,11,0,99,30,40,50\n"), 0644))

	err := newApp().Run([]string{"intcode", "run", "--save", snap, prog})
	require.NoError(t, err)

	s, err := intcode.LoadSnapshot(snap)
	require.NoError(t, err)
	assert.True(t, s.Halted)
	assert.Equal(t, int64(3500), s.Memory[0])
	assert.Equal(t, 9, s.IP)
}

func TestRunPatch(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, "prog.txt")
	snap := filepath.Join(dir, "prog.snap")
	require.NoError(t, os.WriteFile(prog, []byte("1,0,0,0,99"), 0644))

	err := newApp().Run([]string{"intcode", "run", "--patch", "1=4", "--patch", "2=4", "--save", snap, prog})
	require.NoError(t, err)

	s, err := intcode.LoadSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, int64(198), s.Memory[0])
}

func TestAppFlagsDoNotCollide(t *testing.T) {
	for _, args := range [][]string{
		{"intcode", "--help"},
		{"intcode", "--version"},
		{"intcode", "run", "--help"},
	} {
		app := newApp()
		app.Writer = io.Discard
		assert.NotPanics(t, func() {
			assert.NoError(t, app.Run(args))
		}, "%v", args)
	}
}

func TestRunVerbose(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, "prog.txt")
	snap := filepath.Join(dir, "prog.snap")
	require.NoError(t, os.WriteFile(prog, []byte("1,0,0,0,99"), 0644))

	err := newApp().Run([]string{"intcode", "--verbose", "run", "--save", snap, prog})
	require.NoError(t, err)
	assert.FileExists(t, snap)
}

func TestRunMissingProgram(t *testing.T) {
	code := -1
	defer func(exiter func(int)) { cli.OsExiter = exiter }(cli.OsExiter)
	cli.OsExiter = func(c int) { code = c }

	err := newApp().Run([]string{"intcode", "run"})
	assert.Error(t, err)
	assert.Equal(t, 2, code)
}
