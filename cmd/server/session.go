package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/marben/irpc"
	mandel "github.com/marben/pixel_mandel"
)

// renderServer answers render requests of all connected clients.
type renderServer struct {
	workers   int
	bandRows  int
	maxPixels int // largest accepted grid, <= 0 means unlimited

	conns int
	m     sync.Mutex
}

func newRenderServer(workers, bandRows, maxPixels int) *renderServer {
	return &renderServer{
		workers:   workers,
		bandRows:  bandRows,
		maxPixels: maxPixels,
	}
}

var _ mandel.FrameProvider = (*renderServer)(nil)

// GetFrame implements mandel.FrameProvider.
func (s *renderServer) GetFrame(ctx context.Context, cfg mandel.ViewportConfig) (mandel.Frame, error) {
	if err := s.check(cfg); err != nil {
		log.Printf("rejected %s: %v", cfg, err)
		return mandel.Frame{}, err
	}
	return mandel.Render(ctx, cfg, s.evaluator(nil))
}

// check rejects configs that are invalid or too large to be rendered by this server.
func (s *renderServer) check(cfg mandel.ViewportConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return cfg.CheckSize(s.maxPixels)
}

func (s *renderServer) evaluator(onBand func(int, mandel.Grid)) *mandel.Evaluator {
	return &mandel.Evaluator{
		Workers:  s.workers,
		BandRows: s.bandRows,
		OnBand:   onBand,
	}
}

func (s *renderServer) incConns() {
	s.m.Lock()
	s.conns++
	c := s.conns
	s.m.Unlock()

	log.Printf("connections: %d", c)
}

func (s *renderServer) decConns() {
	s.m.Lock()
	s.conns--
	c := s.conns
	s.m.Unlock()

	log.Printf("connections: %d", c)
}

// newIrpcServer serves srv as mandel.FrameProvider and drives the mandel.Viewer of every connected client.
func newIrpcServer(srv *renderServer) *irpc.Server {
	irpcServer := irpc.NewServer(irpc.WithOnConnect(func(ep *irpc.Endpoint) {
		go func() {
			log.Printf("got connection from: %s", ep.RemoteAddr())
			srv.incConns()
			defer srv.decConns()

			// Each client provides us with mandel.Viewer, which tells us what to render and receives the rows
			viewer, err := mandel.NewViewerIrpcClient(ep)
			if err != nil {
				log.Printf("err: new Viewer client: %v", err)
				return
			}

			if err := srv.serveViewer(ep.Context(), viewer); err != nil {
				log.Printf("err: viewer %q: %v", ep.RemoteAddr(), err)
			}
		}()
	}))

	// FrameProvider is shared by all clients, the same as the render goroutines behind it
	irpcServer.AddService(mandel.NewFrameProviderIrpcService(srv))

	return irpcServer
}

// serveViewer renders every config v asks for until the connection ends.
func (s *renderServer) serveViewer(ctx context.Context, v mandel.Viewer) error {
	for {
		cfg, err := v.NextConfig(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, irpc.ErrEndpointClosed) || errors.Is(err, irpc.ErrEndpointClosedByCounterpart) {
				return nil
			}
			return fmt.Errorf("next config: %w", err)
		}

		if err := s.stream(ctx, v, cfg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			// the viewer refused our rows or failed, the connection is still usable
			log.Printf("err: render %s: %v", cfg, err)
		}
	}
}

// stream renders cfg and pushes the rows to v as soon as a band is finished.
// Rejected configs are reported to v and do not end the connection.
func (s *renderServer) stream(ctx context.Context, v mandel.Viewer, cfg mandel.ViewportConfig) error {
	if err := s.check(cfg); err != nil {
		log.Printf("rejected %s: %v", cfg, err)
		return v.Reject(err.Error(), errors.Is(err, mandel.ErrInvalidConfig))
	}

	win := mandel.ComputeWindow(cfg.Zoom)
	if err := v.Begin(cfg, win); err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var sendMu sync.Mutex
	onBand := func(start int, rows mandel.Grid) {
		sendMu.Lock()
		defer sendMu.Unlock()
		if ctx.Err() != nil {
			return
		}
		if err := v.Rows(start, rows); err != nil {
			cancel(fmt.Errorf("send rows: %w", err))
		}
	}

	if _, err := mandel.Render(ctx, cfg, s.evaluator(onBand)); err != nil {
		if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
			return cause
		}
		_ = v.Reject(err.Error(), false)
		return err
	}

	log.Printf("rendered %s, %s", cfg, win)
	return v.Done(cfg.Height)
}
