package coherence

import "math"

// DefaultStabilityThreshold is the standard deviation accepted by
// [IsStableDefault].
const DefaultStabilityThreshold = 0.05

// IsStable reports whether a series of coherence measurements is
// stable: its population standard deviation does not exceed
// threshold. Series with fewer than two samples are trivially
// stable.
func IsStable(values []float64, threshold float64) bool {
	if len(values) < 2 {
		return true
	}

	var t Tracker
	t.AddAll(values)

	return t.Stable(threshold)
}

// IsStableDefault reports whether the series is stable within
// [DefaultStabilityThreshold].
func IsStableDefault(values []float64) bool {
	return IsStable(values, DefaultStabilityThreshold)
}

// Tracker accumulates coherence measurements incrementally and
// exposes running statistics over everything seen so far. It uses
// Welford's online algorithm, so long series stay numerically
// stable without storing the samples.
//
// The zero value is ready to use. A Tracker must not be mutated
// from multiple goroutines; everything else in this package is
// immutable and freely shareable.
type Tracker struct {
	n    int
	mean float64
	m2   float64
	last float64
	prev float64
}

// Add records a single coherence measurement.
func (t *Tracker) Add(value float64) {
	t.n++
	ni := float64(t.n)

	// Welford update.
	delta := value - t.mean
	t.mean += delta / ni
	t.m2 += delta * (value - t.mean)

	t.prev = t.last
	t.last = value
}

// AddAll records a block of measurements in order.
func (t *Tracker) AddAll(values []float64) {
	for _, v := range values {
		t.Add(v)
	}
}

// Len returns the number of measurements recorded.
func (t *Tracker) Len() int {
	return t.n
}

// Mean returns the mean of all recorded measurements, or 0 when
// empty.
func (t *Tracker) Mean() float64 {
	if t.n == 0 {
		return 0
	}

	return t.mean
}

// StdDev returns the population standard deviation of all recorded
// measurements, or 0 with fewer than two samples.
func (t *Tracker) StdDev() float64 {
	if t.n < 2 {
		return 0
	}

	return math.Sqrt(t.m2 / float64(t.n))
}

// Last returns the most recent measurement, or 0 when empty.
func (t *Tracker) Last() float64 {
	return t.last
}

// Delta returns the change between the two most recent
// measurements, or 0 with fewer than two samples.
func (t *Tracker) Delta() float64 {
	if t.n < 2 {
		return 0
	}

	return Delta(t.last, t.prev)
}

// Stable reports whether the recorded series is stable within
// threshold, consistent with [IsStable] over the same samples.
func (t *Tracker) Stable(threshold float64) bool {
	return t.StdDev() <= threshold
}

// Reset clears all recorded measurements, allowing the Tracker to
// be reused.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
