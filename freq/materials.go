package freq

import (
	"errors"
	"strings"
)

// ErrUnknownMaterial is returned when a material name matches no
// variant.
var ErrUnknownMaterial = errors.New("freq: unknown material name")

// Properties holds the resonance properties of a material.
type Properties struct {
	// Frequency is the base resonance frequency in Hz.
	Frequency float64
	// AlphaAffinity is the coherence affinity, in [0, 1].
	AlphaAffinity float64
	// Conductivity is the electrical/energetic conductivity, in [0, 1].
	Conductivity float64
}

// Material identifies a resonant material from the closed set below.
type Material int

const (
	Quartz Material = iota
	Gold
	Silver
	Copper
	Iron
	Obsidian
	Granite
	Limestone
)

// Materials lists every material variant in descending resonance
// frequency order. It is the single source of truth for iteration
// and validation; any new variant must be added here.
var Materials = []Material{
	Quartz,
	Gold,
	Silver,
	Copper,
	Iron,
	Obsidian,
	Granite,
	Limestone,
}

// Properties returns the static resonance properties of the material.
func (m Material) Properties() Properties {
	switch m {
	case Quartz:
		return Properties{Frequency: 32768.0, AlphaAffinity: 0.9, Conductivity: 0.3}
	case Gold:
		return Properties{Frequency: 24576.0, AlphaAffinity: 0.95, Conductivity: 0.95}
	case Silver:
		return Properties{Frequency: 20480.0, AlphaAffinity: 0.85, Conductivity: 0.9}
	case Copper:
		return Properties{Frequency: 16384.0, AlphaAffinity: 0.8, Conductivity: 0.85}
	case Iron:
		return Properties{Frequency: 12288.0, AlphaAffinity: 0.6, Conductivity: 0.5}
	case Obsidian:
		return Properties{Frequency: 8192.0, AlphaAffinity: 0.7, Conductivity: 0.1}
	case Granite:
		return Properties{Frequency: 4096.0, AlphaAffinity: 0.5, Conductivity: 0.05}
	case Limestone:
		return Properties{Frequency: 2048.0, AlphaAffinity: 0.4, Conductivity: 0.02}
	}

	return Properties{}
}

// Frequency returns the material's base resonance frequency in Hz.
func (m Material) Frequency() float64 {
	return m.Properties().Frequency
}

// AlphaAffinity returns the material's coherence affinity in [0, 1].
func (m Material) AlphaAffinity() float64 {
	return m.Properties().AlphaAffinity
}

// Conductivity returns the material's conductivity factor in [0, 1].
func (m Material) Conductivity() float64 {
	return m.Properties().Conductivity
}

// ParseMaterial returns the material with the given name, matched
// case-insensitively against the canonical variant names.
//
// Returns [ErrUnknownMaterial] if the name matches no variant.
func ParseMaterial(name string) (Material, error) {
	for _, m := range Materials {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}

	return 0, ErrUnknownMaterial
}

// String returns the lowercase material name.
func (m Material) String() string {
	switch m {
	case Quartz:
		return "quartz"
	case Gold:
		return "gold"
	case Silver:
		return "silver"
	case Copper:
		return "copper"
	case Iron:
		return "iron"
	case Obsidian:
		return "obsidian"
	case Granite:
		return "granite"
	case Limestone:
		return "limestone"
	}

	return "unknown"
}
