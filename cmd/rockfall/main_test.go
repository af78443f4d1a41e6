package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rockfall/internal/sims/rockfall"
)

const sampleJets = ">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>"

func TestRunAllModes(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"-jets", sampleJets}, &out, &errOut))
	assert.Contains(t, out.String(), "direct: 2022 rocks -> height 3068")
	assert.Contains(t, out.String(), "extrapolated: 2022 rocks -> height 3068")
	assert.Contains(t, out.String(), "cycle: start ")
}

func TestRunExtrapolateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleJets+"\n"), 0o644))

	var out, errOut bytes.Buffer
	args := []string{"-input", path, "-mode", "extrapolate", "-rocks", "1000000000000", "-group"}
	require.NoError(t, run(args, &out, &errOut))
	assert.Equal(t, "extrapolated: 1,000,000,000,000 rocks -> height 1,514,285,714,288\n", out.String())
}

func TestRunPrint(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"-jets", sampleJets, "-mode", "direct", "-rocks", "1", "-print", "2"}, &out, &errOut))
	assert.Equal(t, "direct: 1 rocks -> height 1\n|.......|\n|..####.|\n+-------+\n", out.String())
}

func TestRunErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(nil, &out, &errOut)
	assert.ErrorContains(t, err, "-input or -jets")

	err = run([]string{"-jets", "<>x"}, &out, &errOut)
	assert.ErrorIs(t, err, rockfall.ErrInvalidJet)

	err = run([]string{"-jets", "<>", "-mode", "sideways"}, &out, &errOut)
	assert.ErrorContains(t, err, "unknown mode")

	err = run([]string{"-jets", "<>", "-log-level", "loud"}, &out, &errOut)
	assert.Error(t, err)

	err = run([]string{"-h"}, &out, &errOut)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.True(t, strings.Contains(errOut.String(), "-rocks"))
}

func TestRunCycleModeFailsWithoutCycle(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"-jets", sampleJets, "-mode", "cycle", "-search-bound", "3"}, &out, &errOut)
	assert.ErrorIs(t, err, rockfall.ErrNoCycle)
}
