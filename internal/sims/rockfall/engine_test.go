package rockfall

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJets(t testing.TB, s string) Jets {
	t.Helper()
	jets, err := ParseJets(s)
	require.NoError(t, err)
	return jets
}

func TestFirstRockLanding(t *testing.T) {
	e := NewEngine(mustJets(t, sampleJets), 0)

	s := e.Drop()
	assert.Equal(t, 1, s.Rocks)
	assert.Equal(t, 1, s.Height)
	assert.Equal(t, Piece{Kind: 0, X: 2, Y: 0}, s.Piece)
	assert.Equal(t, 4, s.Jet, "one jet per tick, four ticks to land")
	assert.Equal(t, int64(4), e.Ticks())
	assert.Equal(t, uint8(0b0111100), e.Well().Row(0))

	assert.Equal(t, Spawn(1, 0), e.Piece(), "next rock spawns immediately")
}

func TestSampleHeightsAfterFewRocks(t *testing.T) {
	e := NewEngine(mustJets(t, sampleJets), 0)
	assert.Equal(t, 1, e.Drop().Height)
	assert.Equal(t, 4, e.Drop().Height)
	e.Run(10)
	assert.Equal(t, 10, e.Rocks())
	assert.Equal(t, 17, e.Height())
}

func TestTickConsumesOneJetEvenAfterSpawn(t *testing.T) {
	jets := mustJets(t, sampleJets)
	e := NewEngine(jets, 0)
	for i := 0; i < 500; i++ {
		e.Tick()
		assert.Equal(t, int((e.Ticks())%int64(len(jets))), e.JetIndex())
	}
}

func TestJetIndexPersistsAcrossRocks(t *testing.T) {
	e := NewEngine(mustJets(t, "<"), 0)
	e.Run(3)
	assert.Equal(t, 0, e.JetIndex())

	e = NewEngine(mustJets(t, "<<>"), 0)
	first := e.Drop()
	assert.Equal(t, 1, first.Jet)
	e.Drop()
	assert.Equal(t, int(e.Ticks()%3), e.JetIndex())
}

func TestPushIntoWallIsIgnored(t *testing.T) {
	e := NewEngine(mustJets(t, "<"), 0)
	s := e.Drop()
	assert.Equal(t, Piece{Kind: 0, X: 0, Y: 0}, s.Piece)
	assert.Equal(t, int64(4), e.Ticks())
}

func TestEngineDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	e := NewEngine(mustJets(t, sampleJets), 0)
	e.SetLogger(logger)
	e.Drop()
	assert.Contains(t, buf.String(), "rock settled")

	buf.Reset()
	logger.SetLevel(log.InfoLevel)
	e.SetLogger(logger)
	e.Drop()
	assert.Empty(t, buf.String())
}

func TestNewEnginePanicsWithoutJets(t *testing.T) {
	assert.Panics(t, func() { NewEngine(nil, 0) })
}
