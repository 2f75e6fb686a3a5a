package freq

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrHarmonicIndex is returned when a harmonic number is below 1.
var ErrHarmonicIndex = errors.New("freq: harmonic must be >= 1")

// Schumann resonance harmonics of the Earth-ionosphere cavity, in Hz.
const (
	// SchumannFundamental is the Schumann resonance fundamental.
	SchumannFundamental = 7.83
	// Schumann2nd is the second Schumann harmonic.
	Schumann2nd = 14.3
	// Schumann3rd is the third Schumann harmonic.
	Schumann3rd = 20.8
	// Schumann4th is the fourth Schumann harmonic.
	Schumann4th = 27.3
	// Schumann5th is the fifth Schumann harmonic.
	Schumann5th = 33.8
)

// Concert pitch standards, in Hz.
const (
	// A432 is concert pitch A at 432 Hz (natural/Verdi tuning).
	A432 = 432.0
	// A440 is concert pitch A at 440 Hz (ISO 16 standard).
	A440 = 440.0
)

// Solfeggio scale frequencies, in Hz.
const (
	// SolfeggioUt (Do) - liberation from fear and guilt.
	SolfeggioUt = 396.0
	// SolfeggioRe - facilitating change, undoing situations.
	SolfeggioRe = 417.0
	// SolfeggioMi - transformation, miracles, DNA repair.
	SolfeggioMi = 528.0
	// SolfeggioFa - connecting relationships, harmony.
	SolfeggioFa = 639.0
	// SolfeggioSol - awakening intuition, expression.
	SolfeggioSol = 741.0
	// SolfeggioLa - returning to spiritual order.
	SolfeggioLa = 852.0
)

// SchumannHarmonics lists all Schumann harmonics in ascending order.
var SchumannHarmonics = []float64{
	SchumannFundamental,
	Schumann2nd,
	Schumann3rd,
	Schumann4th,
	Schumann5th,
}

// SolfeggioFrequencies lists the Solfeggio scale in ascending order.
var SolfeggioFrequencies = []float64{
	SolfeggioUt,
	SolfeggioRe,
	SolfeggioMi,
	SolfeggioFa,
	SolfeggioSol,
	SolfeggioLa,
}

// Octave returns frequency shifted by the given number of octaves.
// Positive shifts up, negative shifts down, zero is the identity.
func Octave(frequency float64, octaves int) float64 {
	return frequency * math.Pow(2, float64(octaves))
}

// Harmonic returns the nth harmonic of frequency, where harmonic 1 is
// the fundamental and 2 the first overtone.
//
// Returns [ErrHarmonicIndex] if harmonic < 1.
func Harmonic(frequency float64, harmonic int) (float64, error) {
	if harmonic < 1 {
		return 0, ErrHarmonicIndex
	}

	return frequency * float64(harmonic), nil
}

// HarmonicSeries returns the first count harmonics of frequency,
// starting at the fundamental.
//
// Returns [ErrHarmonicIndex] if count < 1.
func HarmonicSeries(frequency float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, ErrHarmonicIndex
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = frequency * float64(i+1)
	}

	return out, nil
}

// Cents returns the interval from freq1 to freq2 in cents
// (100 cents per equal-tempered semitone, 1200 per octave).
//
// Non-positive frequencies follow IEEE-754 division and logarithm
// semantics and yield Inf or NaN rather than an error.
func Cents(freq1, freq2 float64) float64 {
	return 1200 * math.Log2(freq2/freq1)
}

// Transpose returns a copy of frequencies shifted by the given number
// of octaves. The input slice is not modified.
func Transpose(frequencies []float64, octaves int) []float64 {
	out := make([]float64, len(frequencies))
	if len(out) == 0 {
		return out
	}

	vecmath.ScaleBlock(out, frequencies, math.Pow(2, float64(octaves)))

	return out
}
