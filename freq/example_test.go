package freq_test

import (
	"fmt"

	"github.com/anywave/resonance/freq"
)

func ExampleOctave() {
	fmt.Println(freq.Octave(freq.A440, 1))
	fmt.Println(freq.Octave(freq.A440, -1))

	// Output:
	// 880
	// 220
}

func ExampleHarmonic() {
	h, _ := freq.Harmonic(100, 3)
	fmt.Println(h)

	// Output:
	// 300
}

func ExampleCents() {
	fmt.Printf("%.2f\n", freq.Cents(freq.A432, freq.A440))

	// Output:
	// 31.77
}

func ExampleMaterial_Properties() {
	p := freq.Quartz.Properties()
	fmt.Printf("%s: %.0f Hz, affinity %.2f\n", freq.Quartz, p.Frequency, p.AlphaAffinity)

	// Output:
	// quartz: 32768 Hz, affinity 0.90
}

func ExampleParseMaterial() {
	m, _ := freq.ParseMaterial("GOLD")
	fmt.Println(m, m.Frequency())

	// Output:
	// gold 24576
}

func ExampleTranspose() {
	up := freq.Transpose([]float64{freq.SchumannFundamental, freq.Schumann2nd}, 1)
	fmt.Println(up)

	// Output:
	// [15.66 28.6]
}
