package delay

import "fmt"

// Arena partitions one externally owned flat float region into a set of
// independent fixed-capacity circular lines. The arena performs no
// allocation of sample memory; it only keeps per-line cursor metadata.
// This suits real-time processors that receive persistent memory from a
// host at initialization and may not allocate afterwards.
type Arena struct {
	region []float64
	lines  []Line
}

// NewArena builds an arena of numLines lines, each with the given
// capacity, over region. The region must hold exactly
// numLines*capacity samples.
func NewArena(region []float64, numLines, capacity int) (*Arena, error) {
	if numLines <= 0 {
		return nil, fmt.Errorf("arena line count must be > 0: %d", numLines)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("arena line capacity must be > 0: %d", capacity)
	}
	if len(region) != numLines*capacity {
		return nil, fmt.Errorf("arena region size mismatch: got %d samples, want %d", len(region), numLines*capacity)
	}

	a := &Arena{
		region: region,
		lines:  make([]Line, numLines),
	}
	for i := range a.lines {
		a.lines[i].buffer = region[i*capacity : (i+1)*capacity : (i+1)*capacity]
	}
	return a, nil
}

// Lines returns the number of lines in the arena.
func (a *Arena) Lines() int {
	return len(a.lines)
}

// Line returns the i-th line. The returned pointer stays valid for the
// lifetime of the arena.
func (a *Arena) Line(i int) *Line {
	return &a.lines[i]
}

// Reset clears all lines and rewinds their cursors.
func (a *Arena) Reset() {
	for i := range a.lines {
		a.lines[i].Reset()
	}
}
