package rockfall

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrNegativeCount is returned for negative rock counts.
var ErrNegativeCount = errors.New("rockfall: negative rock count")

// Simulator answers height queries for one jet pattern. It is not safe for
// concurrent use; run independent simulators per goroutine instead.
type Simulator struct {
	jets   Jets
	cfg    Config
	logger *log.Logger

	cycle    Cycle
	cycleErr error
	detected bool
}

// NewSimulator returns a simulator for jets. A nil logger discards output.
func NewSimulator(jets Jets, cfg Config, logger *log.Logger) (*Simulator, error) {
	if len(jets) == 0 {
		return nil, ErrEmptyJets
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{jets: jets, cfg: cfg, logger: logger}, nil
}

// Jets returns the pattern the simulator replays.
func (s *Simulator) Jets() Jets { return s.jets }

// Simulate drops n rocks and returns the resulting tower height.
func (s *Simulator) Simulate(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	e := s.engine(RowsHint(int(min(n, maxPrealloc))))
	e.Run(int(n))
	return int64(e.Height()), nil
}

// DetectCycle searches for the first repeated fingerprint. The result, or the
// failure, is remembered for later calls.
func (s *Simulator) DetectCycle() (Cycle, error) {
	if s.detected {
		return s.cycle, s.cycleErr
	}
	bound := s.cfg.searchBound(len(s.jets))
	e := s.engine(RowsHint(bound))
	s.cycle, s.cycleErr = findCycle(e, bound)
	s.detected = true

	if s.cycleErr != nil {
		s.logger.Warn("no cycle found", "bound", bound, "jets", len(s.jets))
		s.cycleErr = fmt.Errorf("%w (%d rocks)", s.cycleErr, bound)
		return s.cycle, s.cycleErr
	}
	s.logger.Info("cycle detected",
		"start", s.cycle.Start,
		"length", s.cycle.Length,
		"height_delta", s.cycle.HeightDelta,
		"height", e.Height())
	return s.cycle, nil
}

// SimulateExtrapolated returns the height after n rocks using cycle
// detection. Without a cycle it falls back to direct simulation as long as n
// does not exceed the configured direct limit.
func (s *Simulator) SimulateExtrapolated(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	c, err := s.DetectCycle()
	if err != nil {
		if !errors.Is(err, ErrNoCycle) || n > s.cfg.DirectLimit {
			return 0, err
		}
		s.logger.Warn("falling back to direct simulation", "rocks", n)
		return s.Simulate(n)
	}
	return Extrapolate(n, c, s.Simulate)
}

func (s *Simulator) engine(rowsHint int) *Engine {
	e := NewEngine(s.jets, rowsHint)
	e.SetLogger(s.logger)
	return e
}
