package mandel

import (
	"context"
	"sync"
)

// band is a half-open range of grid rows [start, end).
type band struct {
	start, end int
}

// bandScheduler hands out the bands of one grid to a pool of workers.
type bandScheduler struct {
	unstarted []band
	finished  int
	total     int
	m         sync.Mutex
}

func newBandScheduler(rows, bandRows int) *bandScheduler {
	bands := splitRows(rows, bandRows)
	return &bandScheduler{
		unstarted: bands,
		total:     len(bands),
	}
}

func (s *bandScheduler) popBand() (b band, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	if len(s.unstarted) == 0 {
		return band{}, false
	}
	b = s.unstarted[0]
	s.unstarted = s.unstarted[1:]
	return b, true
}

func (s *bandScheduler) bandFinished() {
	s.m.Lock()
	s.finished++
	s.m.Unlock()
}

// progress returns the share of finished bands in [0, 1].
func (s *bandScheduler) progress() float32 {
	s.m.Lock()
	defer s.m.Unlock()
	if s.total == 0 {
		return 1
	}
	return float32(s.finished) / float32(s.total)
}

// run starts workers goroutines that call render on bands until none are left
// or ctx is done, and waits for all of them.
func (s *bandScheduler) run(ctx context.Context, workers int, render func(band)) {
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				b, found := s.popBand()
				if !found {
					return
				}
				render(b)
				s.bandFinished()
			}
		}()
	}
	wg.Wait()
}

// splitRows splits rows into bands of bandRows rows.
// The last band is smaller if rows is not divisible.
func splitRows(rows, bandRows int) []band {
	if bandRows <= 0 {
		panic("band size must be positive")
	}

	var bands []band
	for start := 0; start < rows; start += bandRows {
		end := min(start+bandRows, rows)
		bands = append(bands, band{start: start, end: end})
	}
	return bands
}
