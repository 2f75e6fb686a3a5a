// Package resonance provides fixed mathematical, frequency, and
// coherence constants for harmonic resonance systems, together with
// small pure helpers built on them.
//
// The library is split into three groups, one subpackage each:
//
//   - [github.com/anywave/resonance/phi]: the golden ratio and
//     related transcendentals, with ratio and Fibonacci helpers.
//   - [github.com/anywave/resonance/freq]: Schumann resonances,
//     tuning standards, Solfeggio pitches, and material resonance
//     properties, with octave/harmonic/cents arithmetic.
//   - [github.com/anywave/resonance/coherence]: coherence threshold
//     bands, classification, and stability statistics.
//
// Every value is fixed at compile time and every function is a pure
// computation over its arguments, so all of the library is safe for
// concurrent use without synchronization (the one exception,
// coherence.Tracker, documents its own rule).
//
// The constant values are shared verbatim with the Python and Rust
// editions of this library so cross-language consumers agree to the
// last representable bit.
package resonance
