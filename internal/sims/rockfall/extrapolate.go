package rockfall

import "fmt"

// HeightFunc computes the tower height after exactly n rocks.
type HeightFunc func(n int64) (int64, error)

// Remainder returns the smallest rock count at or after c.Start that is
// congruent to n modulo the cycle length. n must be at least c.Start.
func (c Cycle) Remainder(n int64) int64 {
	return c.Start + (n-c.Start)%c.Length
}

// Extrapolate computes the height after n rocks from a detected cycle and a
// direct simulation of the leftover rocks. Counts below the cycle start are
// simulated directly.
func Extrapolate(n int64, c Cycle, direct HeightFunc) (int64, error) {
	if c.Length <= 0 || c.Start < 0 {
		return 0, fmt.Errorf("%w: start %d length %d", ErrInvalidCycle, c.Start, c.Length)
	}
	if n < c.Start {
		return direct(n)
	}
	base, err := direct(c.Remainder(n))
	if err != nil {
		return 0, err
	}
	return (n-c.Start)/c.Length*c.HeightDelta + base, nil
}
