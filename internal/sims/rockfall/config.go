package rockfall

import (
	"strconv"

	"rockfall/internal/core"
)

// Config controls jet input, cycle search and the viewer window.
type Config struct {
	// Jets is a literal jet pattern. It takes precedence over Input.
	Jets string
	// Input is a path to a file holding the jet pattern.
	Input string
	// RandomJets is the length of the seeded pattern used when neither Jets
	// nor Input is set.
	RandomJets int
	Seed       int64

	// SearchBound caps cycle detection in rocks; zero picks DefaultSearchBound.
	SearchBound int
	// DirectLimit is the largest rock count simulated directly when no cycle
	// is found.
	DirectLimit int64

	// Rows is the height of the viewer window.
	Rows int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		RandomJets:  40,
		Seed:        1337,
		DirectLimit: 10_000_000,
		Rows:        48,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["jets"]; ok {
		c.Jets = v
	}
	if v, ok := cfg["input"]; ok {
		c.Input = v
	}
	if v, ok := cfg["random_jets"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.RandomJets = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["search_bound"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SearchBound = parsed
		}
	}
	if v, ok := cfg["direct_limit"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed >= 0 {
			c.DirectLimit = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	return c
}

// LoadJets resolves the configured jet source: literal pattern, then file,
// then a seeded random pattern.
func (c Config) LoadJets() (Jets, error) {
	switch {
	case c.Jets != "":
		return ParseJets(c.Jets)
	case c.Input != "":
		return LoadJets(c.Input)
	default:
		return RandomJets(core.NewRNG(c.Seed), c.RandomJets), nil
	}
}

// searchBound resolves the effective cycle search budget for n jets.
func (c Config) searchBound(n int) int {
	if c.SearchBound > 0 {
		return c.SearchBound
	}
	return DefaultSearchBound(n)
}
