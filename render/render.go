// Package render turns intensity grids into images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	mandel "github.com/marben/pixel_mandel"
)

// magma samples matplotlib's magma colour map from dark to bright.
var magma = []color.RGBA{
	{0, 0, 4, 255},
	{28, 16, 68, 255},
	{79, 18, 123, 255},
	{129, 37, 129, 255},
	{181, 54, 122, 255},
	{229, 80, 100, 255},
	{251, 135, 97, 255},
	{254, 194, 135, 255},
	{252, 253, 191, 255},
}

// Inside is the colour of cells that never escaped, the bright end of the ramp.
var Inside = magma[len(magma)-1]

// Color maps an iteration count in [0, maxIterations] onto the magma ramp.
// Fast escapes are dark and the brightness grows with the count.
func Color(n, maxIterations int) color.RGBA {
	if n >= maxIterations {
		return Inside
	}
	return ramp(magma, float64(max(n, 0))/float64(maxIterations))
}

// ramp interpolates linearly between neighbouring stops, t in [0, 1].
func ramp(stops []color.RGBA, t float64) color.RGBA {
	pos := t * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	f := pos - float64(i)
	a, b := stops[i], stops[i+1]
	return color.RGBA{
		R: lerp(a.R, b.R, f),
		G: lerp(a.G, b.G, f),
		B: lerp(a.B, b.B, f),
		A: 255,
	}
}

func lerp(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}

// Band draws rows of a grid with height rows, starting at grid row start.
// The returned image uses whole-image coordinates with grid row 0 at the bottom.
func Band(height, start int, rows mandel.Grid, maxIterations int) *image.RGBA {
	top := height - start - len(rows)
	img := image.NewRGBA(image.Rect(0, top, rows.Width(), height-start))

	for i, row := range rows {
		y := height - 1 - (start + i)
		for x, n := range row {
			img.SetRGBA(x, y, Color(n, maxIterations))
		}
	}

	return img
}

// ToImage draws the whole grid with row 0 at the bottom of the image.
func ToImage(grid mandel.Grid, maxIterations int) *image.RGBA {
	return Band(grid.Height(), 0, grid, maxIterations)
}

func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	return nil
}

// SavePNG writes the frame as a PNG file.
func SavePNG(filename string, f mandel.Frame) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %q: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %q: %w", filename, cerr)
		}
	}()

	return EncodePNG(file, ToImage(f.Grid, f.Config.MaxIterations))
}

// Histogram counts the cells of every intensity in [0, maxIterations].
func Histogram(grid mandel.Grid, maxIterations int) []float64 {
	hist := make([]float64, maxIterations+1)
	for _, row := range grid {
		for _, n := range row {
			if n >= 0 && n <= maxIterations {
				hist[n]++
			}
		}
	}
	return hist
}
