package rockfall

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"rockfall/internal/core"
)

var (
	// ErrEmptyJets is returned when a jet pattern has no tokens.
	ErrEmptyJets = errors.New("rockfall: empty jet pattern")
	// ErrInvalidJet is returned when a jet pattern contains anything besides '<' and '>'.
	ErrInvalidJet = errors.New("rockfall: invalid jet token")
)

// Jet is a single horizontal push: -1 moves a rock left, +1 right.
type Jet int8

const (
	Left  Jet = -1
	Right Jet = 1
)

// Jets is a jet pattern replayed cyclically for the whole run.
type Jets []Jet

// ParseJets validates and converts a jet pattern. Only '<' and '>' are
// accepted; callers reading files should strip the line terminator first.
func ParseJets(s string) (Jets, error) {
	if len(s) == 0 {
		return nil, ErrEmptyJets
	}
	jets := make(Jets, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			jets[i] = Left
		case '>':
			jets[i] = Right
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidJet, s[i], i)
		}
	}
	return jets, nil
}

// ReadJets reads a single-line jet pattern. One trailing newline is tolerated.
func ReadJets(r io.Reader) (Jets, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	return ParseJets(string(data))
}

// LoadJets reads a jet pattern from the file at path.
func LoadJets(path string) (Jets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	jets, err := ReadJets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return jets, nil
}

// RandomJets builds a deterministic pattern of n jets from rng.
func RandomJets(rng *core.RNG, n int) Jets {
	if n <= 0 {
		n = 1
	}
	jets := make(Jets, n)
	for i := range jets {
		if rng.Bool() {
			jets[i] = Right
		} else {
			jets[i] = Left
		}
	}
	return jets
}

// String renders the pattern back into its '<' / '>' form.
func (j Jets) String() string {
	var b strings.Builder
	b.Grow(len(j))
	for _, jet := range j {
		if jet == Left {
			b.WriteByte('<')
		} else {
			b.WriteByte('>')
		}
	}
	return b.String()
}
