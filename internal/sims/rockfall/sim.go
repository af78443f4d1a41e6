package rockfall

import (
	"fmt"

	"rockfall/internal/core"
)

// View cell values produced by Project.
const (
	CellEmpty   uint8 = 0
	CellRock    uint8 = 1
	CellFalling uint8 = 2
)

// Project draws the top of the well into g, row 0 being the highest row
// shown. The window ends at the highest occupied row, counting the falling
// rock when withPiece is set; shorter towers are shown resting on the floor.
func (e *Engine) Project(g *core.ByteGrid, withPiece bool) {
	g.Clear()
	top := max(e.well.Highest(), g.H-1)
	if withPiece {
		top = max(top, e.piece.Top())
	}
	for r := 0; r < g.H; r++ {
		y := top - r
		if y < 0 {
			break
		}
		row := e.well.Row(y)
		for x := 0; x < Width; x++ {
			if row&(1<<x) != 0 {
				g.Set(x, r, CellRock)
			}
		}
	}
	if withPiece {
		e.piece.Each(func(x, y int) { g.Set(x, top-y, CellFalling) })
	}
}

// Sim exposes the engine as a tick-stepped core.Sim.
type Sim struct {
	cfg    Config
	jets   Jets
	engine *Engine
	view   *core.ByteGrid
}

// NewSim builds a viewer simulation from cfg.
func NewSim(cfg Config) (*Sim, error) {
	jets, err := cfg.LoadJets()
	if err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg, jets: jets, view: core.NewByteGrid(Width, cfg.Rows)}
	s.engine = NewEngine(jets, 0)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "rockfall" }

// Size reports the view dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.view.W, H: s.view.H} }

// Reset restarts from an empty well. Random patterns are regenerated from
// seed; zero keeps the configured seed.
func (s *Sim) Reset(seed int64) {
	if s.cfg.Jets == "" && s.cfg.Input == "" {
		if seed == 0 {
			seed = s.cfg.Seed
		}
		s.jets = RandomJets(core.NewRNG(seed), s.cfg.RandomJets)
	}
	s.engine = NewEngine(s.jets, 0)
}

// Step advances by one tick.
func (s *Sim) Step() { s.engine.Tick() }

// Cells returns the current view of the top of the well.
func (s *Sim) Cells() []uint8 {
	s.engine.Project(s.view, true)
	return s.view.Cells()
}

// Status describes progress for the viewer panel.
func (s *Sim) Status() []string {
	e := s.engine
	return []string{
		fmt.Sprintf("rocks  %d", e.Rocks()),
		fmt.Sprintf("height %d", e.Height()),
		fmt.Sprintf("jet    %d/%d", e.JetIndex(), len(s.jets)),
		fmt.Sprintf("ticks  %d", e.Ticks()),
		fmt.Sprintf("next   %s", e.Piece().Shape().Name),
	}
}

// Engine exposes the underlying engine for status displays.
func (s *Sim) Engine() *Engine { return s.engine }

func init() {
	core.Register("rockfall", func(cfg map[string]string) (core.Sim, error) {
		return NewSim(FromMap(cfg))
	})
}
