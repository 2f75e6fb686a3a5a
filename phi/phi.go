// Package phi provides the golden ratio and related transcendental
// constants, plus helpers for golden-ratio arithmetic.
package phi

import (
	"errors"
	"math"
)

// ErrFibonacciIndex is returned when a Fibonacci index is below 1.
var ErrFibonacciIndex = errors.New("phi: fibonacci index must be >= 1")

// DefaultTolerance is the deviation from phi accepted by
// [IsPhiRatioDefault].
const DefaultTolerance = 0.01

// Golden ratio and related constants.
const (
	// Phi is the golden ratio, (1 + √5) / 2.
	Phi = 1.618033988749895
	// PhiInverse is 1/φ = φ - 1.
	PhiInverse = 0.6180339887498949
	// PhiSquared is φ² = φ + 1.
	PhiSquared = 2.618033988749895
)

// Square roots and transcendentals.
const (
	Sqrt2 = math.Sqrt2
	Sqrt3 = 1.7320508075688772
	Sqrt5 = 2.23606797749979
	Pi    = math.Pi
	Tau   = 2 * math.Pi
	E     = math.E
)

// PhiPower returns φ raised to the integer power n.
//
// The powers 0, 1, and -1 are returned as exact constants so the
// identities φ⁰ = 1, φ¹ = φ, and φ⁻¹ = 1/φ hold without
// floating-point drift.
func PhiPower(n int) float64 {
	switch {
	case n == 0:
		return 1.0
	case n == 1:
		return Phi
	case n == -1:
		return PhiInverse
	case n > 0:
		return math.Pow(Phi, float64(n))
	default:
		return math.Pow(PhiInverse, float64(-n))
	}
}

// FibonacciRatio returns F(n+1)/F(n) for the Fibonacci sequence with
// F(1) = F(2) = 1. The ratio converges to φ as n grows and matches it
// to 1e-6 by n = 20.
//
// Returns [ErrFibonacciIndex] if n < 1.
func FibonacciRatio(n int) (float64, error) {
	if n < 1 {
		return 0, ErrFibonacciIndex
	}

	prev, curr := 1.0, 1.0
	for i := 1; i < n; i++ {
		prev, curr = curr, prev+curr
	}

	return curr / prev, nil
}

// IsPhiRatio reports whether a and b are in golden ratio, i.e. the
// quotient of the larger by the smaller is within tolerance of φ.
// Returns false if either value is non-positive.
func IsPhiRatio(a, b, tolerance float64) bool {
	if a <= 0 || b <= 0 {
		return false
	}

	ratio := math.Max(a, b) / math.Min(a, b)

	return math.Abs(ratio-Phi) < tolerance
}

// IsPhiRatioDefault reports whether a and b are in golden ratio
// within [DefaultTolerance].
func IsPhiRatioDefault(a, b float64) bool {
	return IsPhiRatio(a, b, DefaultTolerance)
}
