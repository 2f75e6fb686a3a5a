// Package freq provides fixed frequency constants and frequency
// arithmetic for harmonic resonance work.
//
// Three constant families are exposed:
//
//   - The first five Schumann resonance harmonics of the
//     Earth-ionosphere cavity.
//   - Concert pitch standards A432 (Verdi tuning) and A440 (ISO 16).
//   - The six-tone Solfeggio scale.
//
// A closed set of resonant [Material] variants maps each material to
// its resonance frequency, coherence affinity, and conductivity.
//
// Frequency arithmetic covers octave shifts, integer harmonics, and
// pitch intervals in cents:
//
//	up := freq.Octave(freq.A440, 1)          // 880 Hz
//	h3, _ := freq.Harmonic(freq.A432, 3)     // 1296 Hz
//	off := freq.Cents(freq.A432, freq.A440)  // ≈ 31.8 cents
package freq
