package mandel

import (
	"context"
	"fmt"
	"math/cmplx"
	"runtime"
)

// EvaluatePoint iterates z = z*z + c starting at z = 0.
// It returns the zero-based index of the first iteration after which |z| > 2,
// or maxIterations if no iteration escaped.
func EvaluatePoint(c complex128, maxIterations int) int {
	z := complex(0, 0)

	for n := range maxIterations {
		z = z*z + c
		if cmplx.Abs(z) > 2 {
			return n
		}
	}

	return maxIterations
}

// Grid of iteration counts indexed as Grid[row][col].
// Row 0 corresponds to the lowest imaginary value.
type Grid [][]int

func NewGrid(w, h int) Grid {
	cells := make([]int, w*h)
	g := make(Grid, h)
	for row := range g {
		g[row] = cells[row*w : (row+1)*w : (row+1)*w]
	}
	return g
}

func (g Grid) Height() int { return len(g) }

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Evaluator computes grids on a pool of goroutines.
// The zero value is ready to use.
type Evaluator struct {
	// Workers is the number of goroutines. Defaults to runtime.GOMAXPROCS(0).
	Workers int

	// BandRows is the number of rows handed to a worker at once. Defaults to 16.
	BandRows int

	// OnBand is called with every finished band of rows.
	// It may be called from several goroutines at once.
	OnBand func(start int, rows Grid)
}

func (e *Evaluator) workers() int {
	if e == nil || e.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return e.Workers
}

func (e *Evaluator) bandRows() int {
	if e == nil || e.BandRows <= 0 {
		return 16
	}
	return e.BandRows
}

// Evaluate fills a len(imAxis)×len(reAxis) grid with EvaluatePoint(complex(re[col], im[row])).
// When ctx is cancelled the unfinished grid is abandoned and ctx's error returned.
func (e *Evaluator) Evaluate(ctx context.Context, reAxis, imAxis []float64, maxIterations int) (Grid, error) {
	grid := NewGrid(len(reAxis), len(imAxis))

	s := newBandScheduler(len(imAxis), e.bandRows())
	var onBand func(int, Grid)
	if e != nil {
		onBand = e.OnBand
	}

	s.run(ctx, e.workers(), func(b band) {
		rows := grid[b.start:b.end]
		for i, row := range rows {
			im := imAxis[b.start+i]
			for col, re := range reAxis {
				row[col] = EvaluatePoint(complex(re, im), maxIterations)
			}
		}
		if onBand != nil {
			onBand(b.start, rows)
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

// EvaluateGrid evaluates every cell of the reAxis × imAxis product.
func EvaluateGrid(reAxis, imAxis []float64, maxIterations int) Grid {
	grid, _ := (&Evaluator{}).Evaluate(context.Background(), reAxis, imAxis, maxIterations)
	return grid
}

// Frame is the result of one render pass.
type Frame struct {
	Config ViewportConfig
	Window Window
	Grid   Grid
}

// Answers reports an error unless f is a complete render of exactly cfg.
func (f Frame) Answers(cfg ViewportConfig) error {
	if f.Config != cfg {
		return fmt.Errorf("got frame for %s, requested %s", f.Config, cfg)
	}
	if f.Grid.Height() != cfg.Height {
		return fmt.Errorf("got %d rows, requested %d", f.Grid.Height(), cfg.Height)
	}
	for i, row := range f.Grid {
		if len(row) != cfg.Width {
			return fmt.Errorf("row %d has %d columns, requested %d", i, len(row), cfg.Width)
		}
	}
	return nil
}

// GetFrame implements FrameProvider by rendering locally.
func (e *Evaluator) GetFrame(ctx context.Context, cfg ViewportConfig) (Frame, error) {
	return Render(ctx, cfg, e)
}

// Render validates cfg and computes its window and intensity grid.
// ev may be nil.
func Render(ctx context.Context, cfg ViewportConfig, ev *Evaluator) (Frame, error) {
	if err := cfg.Validate(); err != nil {
		return Frame{}, err
	}

	win := ComputeWindow(cfg.Zoom)
	re, im := win.Axes(cfg.Width, cfg.Height)

	grid, err := ev.Evaluate(ctx, re, im, cfg.MaxIterations)
	if err != nil {
		return Frame{}, err
	}

	return Frame{Config: cfg, Window: win, Grid: grid}, nil
}
