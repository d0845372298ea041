// Package histogram counts escape iterations and equalizes their distribution.
package histogram

import "fmt"

// A Histogram counts, per iteration, the pixels which escaped after exactly
// that many iterations. It has one bucket per iteration in [0, MaxIterations].
// Points which never escape are not counted, so the last bucket is always zero.
type Histogram struct {
	counts []int
}

// New returns an empty Histogram for renders capped at maxIterations.
func New(maxIterations int) *Histogram {
	return &Histogram{counts: make([]int, max(maxIterations, 0)+1)}
}

func (h *Histogram) MaxIterations() int {
	return len(h.counts) - 1
}

// Add counts one pixel escaping at iter.
// Iterations at or beyond MaxIterations did not escape and are not counted.
func (h *Histogram) Add(iter int) {
	if iter >= h.MaxIterations() {
		return
	}
	h.counts[iter]++
}

func (h *Histogram) Count(iter int) int {
	return h.counts[iter]
}

// Merge adds all counts of other into h.
func (h *Histogram) Merge(other *Histogram) error {
	if len(other.counts) != len(h.counts) {
		return fmt.Errorf("merging histogram of %d iterations into histogram of %d iterations",
			other.MaxIterations(), h.MaxIterations())
	}

	for i, c := range other.counts {
		h.counts[i] += c
	}
	return nil
}

// CDF returns the running total of counts, one entry per bucket.
func (h *Histogram) CDF() []int {
	cdf := make([]int, len(h.counts))

	total := 0
	for i, c := range h.counts {
		total += c
		cdf[i] = total
	}

	return cdf
}

func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.counts {
		total += c
	}
	return total
}
