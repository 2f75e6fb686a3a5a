package resonance

// Version is the library version, kept in lockstep across the
// language editions of this constant set.
const Version = "0.1.0"
