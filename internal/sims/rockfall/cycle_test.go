package rockfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleRecordWriteOnce(t *testing.T) {
	r := NewCycleRecord(0)
	a := Fingerprint{Profile: Profile{0, 1, 2, 3, 4, 5, 6}, Rock: 2, Jet: 9}
	b := a
	b.Jet = 10

	_, ok := r.Lookup(a)
	assert.False(t, ok)

	assert.True(t, r.Insert(a, Mark{Rocks: 3, Height: 5}))
	assert.False(t, r.Insert(a, Mark{Rocks: 99, Height: 99}), "first occurrence wins")
	assert.True(t, r.Insert(b, Mark{Rocks: 4, Height: 6}))
	assert.Equal(t, 2, r.Len())

	m, ok := r.Lookup(a)
	require.True(t, ok)
	assert.Equal(t, Mark{Rocks: 3, Height: 5}, m)
	m, ok = r.Lookup(b)
	require.True(t, ok)
	assert.Equal(t, Mark{Rocks: 4, Height: 6}, m)
}

func TestFindCycleSample(t *testing.T) {
	jets := mustJets(t, sampleJets)
	c, err := findCycle(NewEngine(jets, 0), DefaultSearchBound(len(jets)))
	require.NoError(t, err)

	assert.Positive(t, c.Length)
	assert.Zero(t, c.Length%ShapeCount, "same rock phase means whole rounds of shapes")
	assert.Positive(t, c.HeightDelta)
	assert.LessOrEqual(t, c.Start, int64(2022))

	// The periodicity claim: from Start on, every Length rocks add HeightDelta.
	e := NewEngine(jets, 0)
	e.Run(int(c.Start))
	base := e.Height()
	for k := 1; k <= 5; k++ {
		e.Run(int(c.Start + int64(k)*c.Length))
		assert.Equal(t, base+k*int(c.HeightDelta), e.Height(), "period %d", k)
	}
}

func TestFindCycleBoundExhausted(t *testing.T) {
	_, err := findCycle(NewEngine(mustJets(t, sampleJets), 0), 3)
	assert.ErrorIs(t, err, ErrNoCycle)
}

func TestDefaultSearchBound(t *testing.T) {
	assert.Equal(t, minSearchBound, DefaultSearchBound(40))
	assert.Equal(t, 2*ShapeCount*10091, DefaultSearchBound(10091))
}
