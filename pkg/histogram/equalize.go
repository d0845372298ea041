package histogram

// A Table maps raw iterations to equalized iterations in [0, MaxIterations].
// It has the same number of entries as the Histogram it was built from.
type Table struct {
	values []float64
}

// Equalize builds the Table which spreads the escape counts in h evenly over
// [0, MaxIterations], so each band of color covers roughly the same number of
// pixels regardless of how the counts cluster.
//
// If fewer than two distinct iterations have escapes every entry is zero.
func Equalize(h *Histogram) Table {
	cdf := h.CDF()
	values := make([]float64, len(cdf))

	cdfMin := 0
	for _, c := range cdf {
		if c > 0 {
			cdfMin = c
			break
		}
	}

	total := cdf[len(cdf)-1]
	if total == cdfMin {
		return Table{values: values}
	}

	f := float64(h.MaxIterations()) / float64(total-cdfMin)

	for i, c := range cdf {
		if c > 0 {
			values[i] = f * float64(c-cdfMin)
		}
	}

	return Table{values: values}
}

func (t Table) MaxIterations() int {
	return len(t.values) - 1
}

func (t Table) At(iter int) float64 {
	return t.values[iter]
}

func (t Table) Len() int {
	return len(t.values)
}
