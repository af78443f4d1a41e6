package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-scale", "4", "-tps", "90", "-jets", "<>", "-rows", "20", "-seed", "3"}))

	assert.Equal(t, "rockfall", cfg.Sim)
	assert.Equal(t, 4, cfg.Scale)
	assert.Equal(t, 90, cfg.TPS)
	assert.Equal(t, map[string]string{"seed": "3", "rows": "20", "jets": "<>"}, cfg.SimOptions())
}

func TestSimOptionsDefaults(t *testing.T) {
	opts := NewConfig().SimOptions()
	assert.Equal(t, "1337", opts["seed"])
	assert.Equal(t, "48", opts["rows"])
	assert.NotContains(t, opts, "input")
	assert.NotContains(t, opts, "jets")
}
