package rockfall

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"jets":         "<>",
		"input":        "jets.txt",
		"random_jets":  "90",
		"seed":         "-4",
		"search_bound": "500",
		"direct_limit": "77",
		"rows":         "12",
	})
	assert.Equal(t, Config{
		Jets:        "<>",
		Input:       "jets.txt",
		RandomJets:  90,
		Seed:        -4,
		SearchBound: 500,
		DirectLimit: 77,
		Rows:        12,
	}, c)
}

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	c := FromMap(map[string]string{
		"random_jets":  "0",
		"seed":         "x",
		"search_bound": "-1",
		"direct_limit": "many",
		"rows":         "-3",
	})
	assert.Equal(t, DefaultConfig(), c)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestConfigLoadJetsPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jets.txt")
	require.NoError(t, os.WriteFile(path, []byte("<<<\n"), 0o644))

	c := DefaultConfig()
	c.Jets = ">>"
	c.Input = path
	jets, err := c.LoadJets()
	require.NoError(t, err)
	assert.Equal(t, ">>", jets.String())

	c.Jets = ""
	jets, err = c.LoadJets()
	require.NoError(t, err)
	assert.Equal(t, "<<<", jets.String())

	c.Input = ""
	c.RandomJets = 25
	jets, err = c.LoadJets()
	require.NoError(t, err)
	assert.Len(t, jets, 25)

	c.Jets = "<-"
	_, err = c.LoadJets()
	assert.ErrorIs(t, err, ErrInvalidJet)
}

func TestConfigSearchBound(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, DefaultSearchBound(40), c.searchBound(40))
	c.SearchBound = 9
	assert.Equal(t, 9, c.searchBound(40))
}
