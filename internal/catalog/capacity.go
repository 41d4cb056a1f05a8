package catalog

import (
	"math"
	"sort"
	"sync"
)

const exactSpanTolerance = 0.001

type memoKey struct {
	designation string
	tenthSpan   int
	capped      bool
}

type memoCache struct {
	mu      sync.RWMutex
	entries map[memoKey]float64
}

func (c *memoCache) get(k memoKey) (float64, bool) {
	c.mu.RLock()
	v, ok := c.entries[k]
	c.mu.RUnlock()
	return v, ok
}

func (c *memoCache) put(k memoKey, v float64) {
	c.mu.Lock()
	c.entries[k] = v
	c.mu.Unlock()
}

// Capacity returns the allowable load (lb) for a beam at an arbitrary span
// (ft). Tabulated spans are returned exactly; spans between two tabulated
// values are linearly interpolated. Outside the tabulated range, for an
// unknown designation or for span <= 0 the second return is false — the
// tables are never extrapolated.
//
// The memo key rounds the span to 0.1 ft, coarser than the exact-match
// tolerance, so a near-boundary span can share a key with an out-of-range
// one. The exact-snap and range decisions therefore come first; only
// spans already known to be servable touch the cache.
func (s *Set) Capacity(designation string, span float64, capped bool) (float64, bool) {
	if span <= 0 {
		return 0, false
	}
	spans := s.spanIndex(designation, capped)
	if len(spans) == 0 {
		return 0, false
	}
	table := s.capacityTable(capped)[designation]
	nearest := int(math.Round(span))
	if math.Abs(span-float64(nearest)) <= exactSpanTolerance {
		if v, ok := table[nearest]; ok {
			return float64(v), true
		}
	}
	if span < float64(spans[0]) || span > float64(spans[len(spans)-1]) {
		return 0, false
	}
	key := memoKey{designation, int(math.Round(span * 10)), capped}
	if v, ok := s.memo.get(key); ok {
		return v, true
	}
	v := interpolate(table, spans, span)
	s.memo.put(key, v)
	return v, true
}

// interpolate assumes span already lies inside the tabulated range and is
// not an exact-snap hit.
func interpolate(table map[int]int, spans []int, span float64) float64 {
	// First tabulated span >= span; spans[i-1] is then the lower bracket.
	i := sort.SearchInts(spans, int(math.Ceil(span)))
	hi := spans[i]
	lo := hi
	if float64(hi) > span && i > 0 {
		lo = spans[i-1]
	}
	if lo == hi {
		return float64(table[lo])
	}
	capLo := float64(table[lo])
	capHi := float64(table[hi])
	t := (span - float64(lo)) / float64(hi-lo)
	return capLo + t*(capHi-capLo)
}
