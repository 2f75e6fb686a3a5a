package freq

import (
	"errors"
	"math"
	"testing"

	"github.com/anywave/resonance/internal/testutil"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSchumannHarmonics(t *testing.T) {
	if len(SchumannHarmonics) != 5 {
		t.Fatalf("len(SchumannHarmonics) = %d, want 5", len(SchumannHarmonics))
	}

	if SchumannHarmonics[0] != SchumannFundamental {
		t.Errorf("SchumannHarmonics[0] = %v, want %v", SchumannHarmonics[0], SchumannFundamental)
	}

	for i := 1; i < len(SchumannHarmonics); i++ {
		if SchumannHarmonics[i] <= SchumannHarmonics[i-1] {
			t.Errorf("SchumannHarmonics not ascending at index %d", i)
		}
	}
}

func TestSolfeggioFrequencies(t *testing.T) {
	want := []float64{396, 417, 528, 639, 741, 852}

	if len(SolfeggioFrequencies) != len(want) {
		t.Fatalf("len(SolfeggioFrequencies) = %d, want %d", len(SolfeggioFrequencies), len(want))
	}

	for i, f := range SolfeggioFrequencies {
		if f != want[i] {
			t.Errorf("SolfeggioFrequencies[%d] = %v, want %v", i, f, want[i])
		}
	}
}

func TestOctave(t *testing.T) {
	tests := []struct {
		frequency float64
		octaves   int
		want      float64
	}{
		{440, 1, 880},
		{440, -1, 220},
		{440, 0, 440},
		{7.83, 2, 31.32},
		{100, -2, 25},
	}

	for _, tt := range tests {
		got := Octave(tt.frequency, tt.octaves)
		if !almostEqual(got, tt.want, tolerance) {
			t.Errorf("Octave(%v, %d) = %v, want %v", tt.frequency, tt.octaves, got, tt.want)
		}
	}
}

func TestHarmonic(t *testing.T) {
	tests := []struct {
		frequency float64
		harmonic  int
		want      float64
	}{
		{100, 1, 100},
		{100, 2, 200},
		{100, 3, 300},
		{7.83, 4, 31.32},
	}

	for _, tt := range tests {
		got, err := Harmonic(tt.frequency, tt.harmonic)
		if err != nil {
			t.Fatalf("Harmonic(%v, %d) returned error: %v", tt.frequency, tt.harmonic, err)
		}

		if !almostEqual(got, tt.want, tolerance) {
			t.Errorf("Harmonic(%v, %d) = %v, want %v", tt.frequency, tt.harmonic, got, tt.want)
		}
	}
}

func TestHarmonicInvalidIndex(t *testing.T) {
	for _, h := range []int{0, -1} {
		if _, err := Harmonic(100, h); !errors.Is(err, ErrHarmonicIndex) {
			t.Errorf("Harmonic(100, %d) error = %v, want ErrHarmonicIndex", h, err)
		}
	}
}

func TestHarmonicSeries(t *testing.T) {
	got, err := HarmonicSeries(110, 4)
	if err != nil {
		t.Fatalf("HarmonicSeries returned error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{110, 220, 330, 440}, tolerance)
}

func TestHarmonicSeriesInvalidCount(t *testing.T) {
	if _, err := HarmonicSeries(110, 0); !errors.Is(err, ErrHarmonicIndex) {
		t.Errorf("HarmonicSeries(110, 0) error = %v, want ErrHarmonicIndex", err)
	}
}

func TestCents(t *testing.T) {
	tests := []struct {
		freq1, freq2 float64
		want         float64
	}{
		{440, 880, 1200},  // octave up
		{880, 440, -1200}, // octave down
		{440, 440, 0},
	}

	for _, tt := range tests {
		got := Cents(tt.freq1, tt.freq2)
		if !almostEqual(got, tt.want, tolerance) {
			t.Errorf("Cents(%v, %v) = %v, want %v", tt.freq1, tt.freq2, got, tt.want)
		}
	}

	// A432 vs A440 is about 31.77 cents.
	if got := Cents(A432, A440); math.Abs(got-31.766654) > 1e-4 {
		t.Errorf("Cents(A432, A440) = %v, want about 31.77", got)
	}
}

func TestCentsDegenerateInputs(t *testing.T) {
	// Non-positive frequencies propagate IEEE-754 results, no error.
	if got := Cents(0, 440); !math.IsInf(got, 0) && !math.IsNaN(got) {
		t.Errorf("Cents(0, 440) = %v, want non-finite", got)
	}

	if got := Cents(440, 0); !math.IsInf(got, -1) {
		t.Errorf("Cents(440, 0) = %v, want -Inf", got)
	}

	if got := Cents(440, -1); !math.IsNaN(got) {
		t.Errorf("Cents(440, -1) = %v, want NaN", got)
	}
}

func TestTranspose(t *testing.T) {
	got := Transpose(SchumannHarmonics, 1)

	want := make([]float64, len(SchumannHarmonics))
	for i, f := range SchumannHarmonics {
		want[i] = 2 * f
	}

	testutil.RequireSliceNearlyEqual(t, got, want, tolerance)

	// Input must be untouched.
	if SchumannHarmonics[0] != SchumannFundamental {
		t.Errorf("Transpose mutated its input: %v", SchumannHarmonics[0])
	}
}

func TestTransposeDown(t *testing.T) {
	in := []float64{880, 440}

	got := Transpose(in, -1)
	if !almostEqual(got[0], 440, tolerance) || !almostEqual(got[1], 220, tolerance) {
		t.Errorf("Transpose(%v, -1) = %v", in, got)
	}
}

func TestTransposeEmpty(t *testing.T) {
	got := Transpose(nil, 3)
	if len(got) != 0 {
		t.Errorf("Transpose(nil, 3) = %v, want empty", got)
	}
}

func TestTransposeMatchesOctave(t *testing.T) {
	in := []float64{SchumannFundamental, A432, SolfeggioMi}

	for _, octaves := range []int{-3, -1, 0, 1, 4} {
		got := Transpose(in, octaves)
		for i, f := range in {
			want := Octave(f, octaves)
			if !almostEqual(got[i], want, tolerance) {
				t.Errorf("Transpose(%v, %d)[%d] = %v, want %v", in, octaves, i, got[i], want)
			}
		}
	}
}
