package mandel

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-12

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Abs(b))
}

func TestComputeWindowBase(t *testing.T) {
	if got := ComputeWindow(1); got != BaseWindow {
		t.Errorf("zoom 1: got %v, want %v", got, BaseWindow)
	}
}

func TestComputeWindowCenterAndArea(t *testing.T) {
	prevArea := math.Inf(1)
	for zoom := 1; zoom <= 1000; zoom++ {
		w := ComputeWindow(zoom)

		if !(w.ReMin < w.ReMax && w.ImMin < w.ImMax) {
			t.Fatalf("zoom %d: degenerate window %v", zoom, w)
		}
		c := w.Center()
		if !near(c.X(), -0.5) || math.Abs(c.Y()) > eps {
			t.Errorf("zoom %d: center %v, want (-0.5, 0)", zoom, c)
		}
		wantArea := 9.0 / float64(zoom*zoom)
		if !near(w.Area(), wantArea) {
			t.Errorf("zoom %d: area %g, want %g", zoom, w.Area(), wantArea)
		}
		if w.Area() >= prevArea {
			t.Errorf("zoom %d: area %g did not shrink from %g", zoom, w.Area(), prevArea)
		}
		prevArea = w.Area()
	}
}

func TestZoomFourIsQuarterArea(t *testing.T) {
	w1, w4 := ComputeWindow(1), ComputeWindow(4)
	if !near(w4.Area(), w1.Area()/16) {
		t.Errorf("zoom 4 area %g, want %g", w4.Area(), w1.Area()/16)
	}
	// each side shrinks to a quarter
	s1, s4 := w1.Size(), w4.Size()
	if !near(s4.X(), s1.X()/4) || !near(s4.Y(), s1.Y()/4) {
		t.Errorf("zoom 4 size %v, want a quarter of %v", s4, s1)
	}
	want := Window{ReMin: -0.875, ReMax: -0.125, ImMin: -0.375, ImMax: 0.375}
	if w4 != want {
		t.Errorf("zoom 4: got %v, want %v", w4, want)
	}
	if w4.Center() != w1.Center() {
		t.Errorf("zoom 4 center %v, want %v", w4.Center(), w1.Center())
	}
}

func TestBuildAxis(t *testing.T) {
	tests := []struct {
		min, max float64
		count    int
	}{
		{-2, 1, 2},
		{-2, 1, 3},
		{-1.5, 1.5, 50},
		{-0.875, -0.125, 400},
		{0.1, 0.3, 7},
	}

	for _, tt := range tests {
		axis := BuildAxis(tt.min, tt.max, tt.count)
		if len(axis) != tt.count {
			t.Fatalf("BuildAxis(%g, %g, %d): got %d values", tt.min, tt.max, tt.count, len(axis))
		}
		if axis[0] != tt.min || axis[len(axis)-1] != tt.max {
			t.Errorf("BuildAxis(%g, %g, %d): endpoints %g, %g", tt.min, tt.max, tt.count, axis[0], axis[len(axis)-1])
		}
		step := (tt.max - tt.min) / float64(tt.count-1)
		for i := 1; i < len(axis); i++ {
			if axis[i] <= axis[i-1] {
				t.Errorf("BuildAxis(%g, %g, %d): not increasing at %d", tt.min, tt.max, tt.count, i)
			}
			if d := axis[i] - axis[i-1]; math.Abs(d-step) > 1e-9 {
				t.Errorf("BuildAxis(%g, %g, %d): spacing %g at %d, want %g", tt.min, tt.max, tt.count, d, i, step)
			}
		}
	}
}

func TestBuildAxisMiddle(t *testing.T) {
	axis := BuildAxis(-2, 1, 3)
	if axis[1] != -0.5 {
		t.Errorf("middle value %g, want -0.5", axis[1])
	}
}

func TestBuildAxisPanics(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		count    int
	}{
		{"single point", 0, 1, 1},
		{"no points", 0, 1, 0},
		{"empty range", 1, 1, 5},
		{"reversed range", 1, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("BuildAxis(%g, %g, %d) did not panic", tt.min, tt.max, tt.count)
				}
			}()
			BuildAxis(tt.min, tt.max, tt.count)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		cfg   ViewportConfig
		valid bool
	}{
		{ViewportConfig{Width: 200, Height: 200, Zoom: 1, MaxIterations: 30}, true},
		{ViewportConfig{Width: 2, Height: 2, Zoom: 1000000, MaxIterations: 1}, true},
		{ViewportConfig{Width: 1, Height: 200, Zoom: 1, MaxIterations: 30}, false},
		{ViewportConfig{Width: 200, Height: 0, Zoom: 1, MaxIterations: 30}, false},
		{ViewportConfig{Width: 200, Height: 200, Zoom: 0, MaxIterations: 30}, false},
		{ViewportConfig{Width: 200, Height: 200, Zoom: -3, MaxIterations: 30}, false},
		{ViewportConfig{Width: 200, Height: 200, Zoom: 1, MaxIterations: 0}, false},
		{ViewportConfig{}, false},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if tt.valid && err != nil {
			t.Errorf("%v: unexpected error %v", tt.cfg, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%v: got %v, want ErrInvalidConfig", tt.cfg, err)
		}
	}
}

func TestCheckSize(t *testing.T) {
	tests := []struct {
		cfg       ViewportConfig
		maxPixels int
		ok        bool
	}{
		{ViewportConfig{Width: 100, Height: 100}, 100 * 100, true},
		{ViewportConfig{Width: 101, Height: 100}, 100 * 100, false},
		{ViewportConfig{Width: 1 << 31, Height: 1 << 31}, 4096 * 4096, false},
		// width*height would wrap around
		{ViewportConfig{Width: math.MaxInt, Height: 2}, math.MaxInt, false},
		{ViewportConfig{Width: math.MaxInt / 2, Height: 2}, math.MaxInt, true},
		{ViewportConfig{Width: 1 << 31, Height: 1 << 31}, 0, true},
	}

	for _, tt := range tests {
		err := tt.cfg.CheckSize(tt.maxPixels)
		if (err == nil) != tt.ok {
			t.Errorf("%dx%d with limit %d: got err %v", tt.cfg.Width, tt.cfg.Height, tt.maxPixels, err)
		}
		if err != nil && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%v does not wrap ErrInvalidConfig", err)
		}
	}
}
