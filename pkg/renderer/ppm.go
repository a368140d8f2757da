package renderer

import (
	"fmt"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const displayGamma = 2.2

// intensity maps gamma-corrected values into [0, 0.999] so 256*x never reaches 256
var intensity = core.NewInterval(0.000, 0.999)

// WriteHeader writes the plain-text PPM (P3) header
func WriteHeader(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", width, height)
	return err
}

// LinearToGamma converts a linear channel value for display.
// Non-positive and NaN inputs give 0.
func LinearToGamma(linear float64) float64 {
	if !(linear > 0) {
		return 0
	}
	return math.Pow(linear, 1/displayGamma)
}

// ToByte converts one linear channel into its 0-255 output value
func ToByte(linear float64) int {
	return int(256 * intensity.Clamp(LinearToGamma(linear)))
}

// WriteColor writes one pixel as an "r g b" line
func WriteColor(w io.Writer, pixel core.Vec3) error {
	_, err := fmt.Fprintf(w, "%d %d %d\n", ToByte(pixel.X), ToByte(pixel.Y), ToByte(pixel.Z))
	return err
}
