package rockfall

import (
	"errors"
	"hash/maphash"

	"github.com/kamstrup/intmap"
)

var (
	// ErrNoCycle is returned when no fingerprint repeats within the search bound.
	ErrNoCycle = errors.New("rockfall: no cycle within search bound")
	// ErrInvalidCycle is returned when extrapolating with a malformed cycle.
	ErrInvalidCycle = errors.New("rockfall: invalid cycle")
)

// minSearchBound matches the rock budget that comfortably finds the cycle of
// real-world jet patterns of ~10k jets.
const minSearchBound = 20000

// DefaultSearchBound returns the rock budget for cycle detection over a jet
// pattern of length n.
func DefaultSearchBound(n int) int {
	return max(minSearchBound, 2*ShapeCount*n)
}

// Cycle is a detected period: from Start rocks on, every Length rocks add
// exactly HeightDelta rows.
type Cycle struct {
	Start       int64
	Length      int64
	HeightDelta int64
}

// Mark is the progress recorded the first time a fingerprint was seen.
type Mark struct {
	Rocks  int
	Height int
}

type recordEntry struct {
	fp   Fingerprint
	mark Mark
}

// CycleRecord remembers the first occurrence of every fingerprint. Entries
// are bucketed by a 64-bit hash and compared in full, so hash collisions
// never report a false repeat.
type CycleRecord struct {
	seed    maphash.Seed
	buckets *intmap.Map[uint64, []recordEntry]
	n       int
}

// NewCycleRecord returns an empty record sized for capacity fingerprints.
func NewCycleRecord(capacity int) *CycleRecord {
	return &CycleRecord{
		seed:    maphash.MakeSeed(),
		buckets: intmap.New[uint64, []recordEntry](max(capacity, 16)),
	}
}

// Lookup returns the mark stored for fp.
func (r *CycleRecord) Lookup(fp Fingerprint) (Mark, bool) {
	bucket, _ := r.buckets.Get(maphash.Comparable(r.seed, fp))
	for _, e := range bucket {
		if e.fp == fp {
			return e.mark, true
		}
	}
	return Mark{}, false
}

// Insert stores m for fp unless fp is already present. It reports whether the
// entry was added.
func (r *CycleRecord) Insert(fp Fingerprint, m Mark) bool {
	h := maphash.Comparable(r.seed, fp)
	bucket, _ := r.buckets.Get(h)
	for _, e := range bucket {
		if e.fp == fp {
			return false
		}
	}
	r.buckets.Put(h, append(bucket, recordEntry{fp: fp, mark: m}))
	r.n++
	return true
}

// Len returns the number of distinct fingerprints recorded.
func (r *CycleRecord) Len() int { return r.n }

// findCycle drops rocks from e until a fingerprint repeats or bound rocks
// have settled.
func findCycle(e *Engine, bound int) (Cycle, error) {
	record := NewCycleRecord(bound)
	for e.Rocks() < bound {
		s := e.Drop()
		fp := e.Fingerprint()
		if seen, ok := record.Lookup(fp); ok {
			return Cycle{
				Start:       int64(seen.Rocks),
				Length:      int64(s.Rocks - seen.Rocks),
				HeightDelta: int64(s.Height - seen.Height),
			}, nil
		}
		record.Insert(fp, Mark{Rocks: s.Rocks, Height: s.Height})
	}
	return Cycle{}, ErrNoCycle
}
