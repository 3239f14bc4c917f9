package world

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// noiseCoords converts axial hex coordinates to continuous cartesian space
// for noise sampling: x = q + r/2, y = r * sqrt(3)/2.
func noiseCoords(coord HexCoord) (x, y float64) {
	x = float64(coord.Q) + float64(coord.R)*0.5
	y = float64(coord.R) * math.Sqrt(3.0) / 2.0
	return x, y
}

// octaveNoise generates fractal noise in [-1, 1] by layering multiple
// frequencies of a simplex source.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// ridgedNoise generates ridged fractal noise in [-1, 1]: absolute-value
// folding turns smooth gradients into sharp crests, which reads as plate
// boundaries and mountain ridgelines.
func ridgedNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		ridge := 1.0 - math.Abs(noise.Eval2(x*frequency, y*frequency))
		total += ridge * amplitude
		maxVal += amplitude
		amplitude *= 0.5
		frequency *= 2
	}

	// Fold [0, 1] back out to [-1, 1].
	return total/maxVal*2.0 - 1.0
}
