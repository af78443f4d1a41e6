package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rockfall/internal/core"
)

type plainSim struct{}

func (plainSim) Name() string    { return "plain" }
func (plainSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (plainSim) Reset(int64)     {}
func (plainSim) Step()           {}
func (plainSim) Cells() []uint8  { return []uint8{0} }

type statusSim struct{ plainSim }

func (statusSim) Status() []string { return []string{"rocks: 3"} }

func TestStatusLines(t *testing.T) {
	assert.Nil(t, StatusLines(plainSim{}))
	assert.Equal(t, []string{"rocks: 3"}, StatusLines(statusSim{}))
	assert.Contains(t, helpText, "pause")
}
