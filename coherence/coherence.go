// Package coherence provides threshold bands for classifying
// normalized coherence values and helpers for coherence statistics.
//
// Coherence is a generic [0, 1] scalar describing measurement
// stability or quality. The range is partitioned into five
// contiguous bands, from [Peak] down to [Minimal]; band boundaries
// are the exported threshold constants.
package coherence

import (
	"errors"
	"math"
)

// Errors returned by coherence functions.
var (
	ErrRange  = errors.New("coherence: value must be between 0 and 1")
	ErrBounds = errors.New("coherence: max must be greater than min")
)

// Coherence thresholds, the lower bounds of the classification bands.
const (
	// HighCoherence is the lower bound of the peak band.
	HighCoherence = 0.85
	// MediumCoherence is the lower bound of the high band.
	MediumCoherence = 0.6
	// LowCoherence is the lower bound of the medium band.
	LowCoherence = 0.3
	// MinimumCoherence is the smallest coherence considered detectable.
	MinimumCoherence = 0.1
)

// peakUpper closes the topmost band just above 1.0 so that a
// coherence of exactly 1.0 classifies as Peak under the shared
// half-open band convention.
const peakUpper = 1.01

// Band is a half-open interval [Lower, Upper) holding one
// coherence level.
type Band struct {
	Lower float64
	Upper float64
	Name  string
}

// Contains reports whether value falls within the band.
func (b Band) Contains(value float64) bool {
	return b.Lower <= value && value < b.Upper
}

// Level classifies a coherence value, ordered from most coherent
// (Peak) to least (Minimal).
type Level int

const (
	Peak Level = iota
	High
	Medium
	Low
	Minimal
)

// Levels lists every level in descending coherence order. The
// associated bands partition [0, 1] with no gaps or overlaps.
var Levels = []Level{Peak, High, Medium, Low, Minimal}

// Band returns the static band definition for the level.
func (l Level) Band() Band {
	switch l {
	case Peak:
		return Band{Lower: HighCoherence, Upper: peakUpper, Name: "peak"}
	case High:
		return Band{Lower: MediumCoherence, Upper: HighCoherence, Name: "high"}
	case Medium:
		return Band{Lower: LowCoherence, Upper: MediumCoherence, Name: "medium"}
	case Low:
		return Band{Lower: MinimumCoherence, Upper: LowCoherence, Name: "low"}
	case Minimal:
		return Band{Lower: 0.0, Upper: MinimumCoherence, Name: "minimal"}
	}

	return Band{}
}

// Lower returns the inclusive lower bound of the level's band.
func (l Level) Lower() float64 {
	return l.Band().Lower
}

// Upper returns the exclusive upper bound of the level's band.
func (l Level) Upper() float64 {
	return l.Band().Upper
}

// Contains reports whether value falls within the level's band.
func (l Level) Contains(value float64) bool {
	return l.Band().Contains(value)
}

// String returns the band name of the level.
func (l Level) String() string {
	return l.Band().Name
}

// Classify maps a coherence value in [0, 1] to its level. A value of
// exactly 1.0 classifies as Peak.
//
// Returns [ErrRange] if value is NaN or outside [0, 1].
func Classify(value float64) (Level, error) {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return Minimal, ErrRange
	}

	for _, l := range Levels {
		if l.Contains(value) {
			return l, nil
		}
	}

	// Unreachable: the bands cover [0, 1] without gaps.
	return Peak, nil
}

// Normalize maps value from [minVal, maxVal] onto the [0, 1]
// coherence range, clamping values outside the input range.
//
// Returns [ErrBounds] if maxVal <= minVal.
func Normalize(value, minVal, maxVal float64) (float64, error) {
	if maxVal <= minVal {
		return 0, ErrBounds
	}

	return clamp((value-minVal)/(maxVal-minVal), 0, 1), nil
}

// Delta returns the change from previous to current coherence.
// Positive means coherence is increasing.
func Delta(current, previous float64) float64 {
	return current - previous
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}
