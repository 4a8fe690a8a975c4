package mandel

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidConfig is wrapped by every error returned from ViewportConfig.Validate.
var ErrInvalidConfig = errors.New("invalid viewport config")

// Center of the view. Zooming always shrinks the window around this point.
var Center = mgl64.Vec2{-0.5, 0.0}

// BaseWindow is the window shown at zoom 1.
var BaseWindow = Window{
	ReMin: -2.0,
	ReMax: 1.0,
	ImMin: -1.5,
	ImMax: 1.5,
}

// Window within the complex plane that is mapped onto the pixel grid
type Window struct {
	ReMin, ReMax float64
	ImMin, ImMax float64
}

func (w Window) Min() mgl64.Vec2 { return mgl64.Vec2{w.ReMin, w.ImMin} }
func (w Window) Max() mgl64.Vec2 { return mgl64.Vec2{w.ReMax, w.ImMax} }

// Size returns the extent of the window along the real and imaginary axis.
func (w Window) Size() mgl64.Vec2 {
	return w.Max().Sub(w.Min())
}

func (w Window) Center() mgl64.Vec2 {
	return w.Min().Add(w.Max()).Mul(0.5)
}

func (w Window) Area() float64 {
	s := w.Size()
	return s.X() * s.Y()
}

func (w Window) String() string {
	return fmt.Sprintf("re [%g, %g] im [%g, %g]", w.ReMin, w.ReMax, w.ImMin, w.ImMax)
}

// ViewportConfig holds everything a single render needs.
type ViewportConfig struct {
	Width, Height int // grid size in pixels
	Zoom          int // 1 shows BaseWindow, larger values zoom in
	MaxIterations int
}

// Validate reports every field that would produce a degenerate render.
func (c ViewportConfig) Validate() error {
	var errs []error
	if c.Width < 2 {
		errs = append(errs, fmt.Errorf("%w: width %d, need at least 2", ErrInvalidConfig, c.Width))
	}
	if c.Height < 2 {
		errs = append(errs, fmt.Errorf("%w: height %d, need at least 2", ErrInvalidConfig, c.Height))
	}
	if c.Zoom < 1 {
		errs = append(errs, fmt.Errorf("%w: zoom %d, need at least 1", ErrInvalidConfig, c.Zoom))
	}
	if c.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("%w: max iterations %d, need at least 1", ErrInvalidConfig, c.MaxIterations))
	}
	return errors.Join(errs...)
}

// CheckSize reports an error wrapping ErrInvalidConfig when the grid of c
// would hold more than maxPixels cells. maxPixels <= 0 disables the check.
func (c ViewportConfig) CheckSize(maxPixels int) error {
	if maxPixels <= 0 || c.Width <= 0 || c.Height <= 0 {
		return nil
	}
	if c.Width > maxPixels/c.Height {
		return fmt.Errorf("%w: %dx%d grid exceeds %d pixels", ErrInvalidConfig, c.Width, c.Height, maxPixels)
	}
	return nil
}

func (c ViewportConfig) String() string {
	return fmt.Sprintf("%dx%d zoom=%d iter=%d", c.Width, c.Height, c.Zoom, c.MaxIterations)
}

// ComputeWindow shrinks BaseWindow around Center by a factor of zoom along each axis.
// zoom is expected to be validated by the caller.
func ComputeWindow(zoom int) Window {
	scale := 1 / float64(zoom)
	half := BaseWindow.Size().Mul(scale).Mul(0.5)
	lo, hi := Center.Sub(half), Center.Add(half)

	return Window{
		ReMin: lo.X(),
		ReMax: hi.X(),
		ImMin: lo.Y(),
		ImMax: hi.Y(),
	}
}

// BuildAxis returns count evenly spaced values from min to max, both included.
func BuildAxis(min, max float64, count int) []float64 {
	if count < 2 {
		panic("axis needs at least 2 points")
	}
	if !(min < max) {
		panic("axis min must be less than max")
	}

	step := (max - min) / float64(count-1)
	axis := make([]float64, count)
	for i := range axis {
		axis[i] = min + float64(i)*step
	}
	axis[count-1] = max

	return axis
}

// Axes builds the real (column) and imaginary (row) axes of w for a width×height grid.
func (w Window) Axes(width, height int) (re, im []float64) {
	return BuildAxis(w.ReMin, w.ReMax, width), BuildAxis(w.ImMin, w.ImMax, height)
}
