//go:build ebiten

package ui

import (
	"fmt"
	"strings"

	"rockfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Overlay prints simulation status and key help beside the well.
type Overlay struct {
	sim    core.Sim
	x      int
	tps    int
	paused bool
}

// NewOverlay constructs an overlay drawing its text column at x.
func NewOverlay(sim core.Sim, x int) *Overlay {
	return &Overlay{sim: sim, x: x}
}

// Update records the pacing state shown in the panel.
func (o *Overlay) Update(tps int, paused bool) {
	o.tps = tps
	o.paused = paused
}

// Draw renders the status panel.
func (o *Overlay) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, o.text(), o.x, 4)
}

func (o *Overlay) text() string {
	var b strings.Builder
	b.WriteString(o.sim.Name())
	b.WriteString("\n\n")
	for _, line := range StatusLines(o.sim) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	state := "running"
	if o.paused {
		state = "paused"
	}
	fmt.Fprintf(&b, "\n%s @ %d tps\n\n", state, o.tps)
	b.WriteString(helpText)
	return b.String()
}
