package rockfall

import (
	"io"

	"github.com/charmbracelet/log"
)

// Settle describes a rock coming to rest.
type Settle struct {
	// Rocks is the number of rocks settled so far, including this one.
	Rocks int
	// Height is the tower height after the lock.
	Height int
	// Jet is the index of the next jet to be consumed.
	Jet int
	// Piece is the rock as it was locked.
	Piece Piece
}

// Engine advances rocks through the well one tick at a time. Every tick
// applies the next jet, then tries to move the rock down one row; a rock that
// cannot fall is locked in place and the next one spawns.
type Engine struct {
	jets   Jets
	well   *Well
	piece  Piece
	locked Piece
	rocks  int
	jet    int
	ticks  int64

	logger *log.Logger
	debug  bool
}

// NewEngine returns an engine over an empty well. jets must not be empty.
func NewEngine(jets Jets, rowsHint int) *Engine {
	if len(jets) == 0 {
		panic("rockfall: engine needs at least one jet")
	}
	e := &Engine{jets: jets, well: NewWell(rowsHint)}
	e.SetLogger(nil)
	e.piece = Spawn(0, e.well.Highest())
	return e
}

// SetLogger routes per-rock debug output to logger; nil silences it.
func (e *Engine) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e.logger = logger
	e.debug = logger.GetLevel() <= log.DebugLevel
}

// Tick performs one jet push and one gravity step. It reports whether the
// falling rock settled during this tick.
func (e *Engine) Tick() bool {
	jet := e.jets[e.jet]
	e.jet++
	if e.jet == len(e.jets) {
		e.jet = 0
	}
	e.ticks++

	if pushed := e.piece.Moved(int(jet), 0); e.well.Fits(pushed) {
		e.piece = pushed
	}
	if fallen := e.piece.Moved(0, -1); e.well.Fits(fallen) {
		e.piece = fallen
		return false
	}

	e.well.Lock(e.piece)
	e.locked = e.piece
	e.rocks++
	e.piece = Spawn(e.rocks, e.well.Highest())
	return true
}

// Drop ticks until the current rock settles.
func (e *Engine) Drop() Settle {
	for !e.Tick() {
	}
	s := Settle{Rocks: e.rocks, Height: e.well.Height(), Jet: e.jet, Piece: e.locked}
	if e.debug {
		e.logger.Debug("rock settled",
			"rock", s.Rocks, "shape", s.Piece.Shape().Name,
			"x", s.Piece.X, "y", s.Piece.Y, "height", s.Height, "jet", s.Jet)
	}
	return s
}

// Run drops rocks until n have settled in total.
func (e *Engine) Run(n int) {
	for e.rocks < n {
		e.Drop()
	}
}

// Rocks returns the number of settled rocks.
func (e *Engine) Rocks() int { return e.rocks }

// JetIndex returns the index of the next jet, already wrapped.
func (e *Engine) JetIndex() int { return e.jet }

// Ticks returns the number of ticks performed.
func (e *Engine) Ticks() int64 { return e.ticks }

// Piece returns the rock currently falling.
func (e *Engine) Piece() Piece { return e.piece }

// Well exposes the settled rock.
func (e *Engine) Well() *Well { return e.well }

// Height returns the current tower height.
func (e *Engine) Height() int { return e.well.Height() }
