package mandel

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Session implements Viewer on the client side of a connection.
// RequestFrame queues a config; the server picks it up through NextConfig and streams the answer back.
type Session struct {
	requests chan *pendingFrame

	cur *pendingFrame // answer being received
	m   sync.Mutex
}

var _ Viewer = (*Session)(nil)

func NewSession() *Session {
	return &Session{
		requests: make(chan *pendingFrame),
	}
}

// pendingFrame collects the answer to one request.
type pendingFrame struct {
	cfg      ViewportConfig
	onRows   func(Window, int, Grid)
	win      Window
	grid     Grid
	received int
	done     chan error
}

func (p *pendingFrame) finish(err error) {
	select {
	case p.done <- err:
	default:
	}
}

// RequestFrame asks the server to render cfg and waits for all of its rows.
// onRows, if not nil, sees every band as it arrives.
// A config rejected by the server yields an error wrapping ErrInvalidConfig,
// after which the session accepts new requests.
func (s *Session) RequestFrame(ctx context.Context, cfg ViewportConfig, onRows func(win Window, start int, rows Grid)) (Frame, error) {
	p := &pendingFrame{
		cfg:    cfg,
		onRows: onRows,
		done:   make(chan error, 1),
	}

	select {
	case s.requests <- p:
	case <-ctx.Done():
		return Frame{}, context.Cause(ctx)
	}

	select {
	case err := <-p.done:
		if err != nil {
			return Frame{}, err
		}
	case <-ctx.Done():
		s.abandon(p)
		return Frame{}, context.Cause(ctx)
	}

	return Frame{Config: p.cfg, Window: p.win, Grid: p.grid}, nil
}

// abandon drops p if it is still being received. Its remaining rows are refused.
func (s *Session) abandon(p *pendingFrame) {
	s.m.Lock()
	defer s.m.Unlock()
	if s.cur == p {
		s.cur = nil
	}
}

// NextConfig implements Viewer.
func (s *Session) NextConfig(ctx context.Context) (ViewportConfig, error) {
	select {
	case p := <-s.requests:
		s.m.Lock()
		s.cur = p
		s.m.Unlock()
		return p.cfg, nil
	case <-ctx.Done():
		return ViewportConfig{}, ctx.Err()
	}
}

// current returns the answer in progress or an error if there is none.
// Must be called with s.m held.
func (s *Session) current() (*pendingFrame, error) {
	if s.cur == nil {
		return nil, errors.New("no frame requested")
	}
	return s.cur, nil
}

// fail ends the answer in progress with err and returns err to the server.
// Must be called with s.m held.
func (s *Session) fail(p *pendingFrame, err error) error {
	p.finish(err)
	s.cur = nil
	return err
}

// Begin implements Viewer.
// The grid is only allocated once the server confirmed exactly the requested config.
func (s *Session) Begin(cfg ViewportConfig, win Window) error {
	s.m.Lock()
	defer s.m.Unlock()

	p, err := s.current()
	if err != nil {
		return err
	}
	if cfg != p.cfg {
		return s.fail(p, fmt.Errorf("server answered %s to request %s", cfg, p.cfg))
	}
	if p.grid != nil {
		return s.fail(p, errors.New("frame begun twice"))
	}

	p.win = win
	p.grid = NewGrid(cfg.Width, cfg.Height)
	return nil
}

// Rows implements Viewer.
func (s *Session) Rows(start int, rows Grid) error {
	s.m.Lock()
	defer s.m.Unlock()

	p, err := s.current()
	if err != nil {
		return err
	}
	if p.grid == nil {
		return s.fail(p, errors.New("rows received before frame begun"))
	}
	if start < 0 || start+len(rows) > p.grid.Height() {
		return s.fail(p, fmt.Errorf("rows [%d, %d) outside of grid with %d rows", start, start+len(rows), p.grid.Height()))
	}
	for i, row := range rows {
		if len(row) != p.grid.Width() {
			return s.fail(p, fmt.Errorf("row %d has %d columns, want %d", start+i, len(row), p.grid.Width()))
		}
		copy(p.grid[start+i], row)
	}
	p.received += len(rows)

	if p.onRows != nil {
		p.onRows(p.win, start, p.grid[start:start+len(rows)])
	}
	return nil
}

// Done implements Viewer.
func (s *Session) Done(rows int) error {
	s.m.Lock()
	defer s.m.Unlock()

	p, err := s.current()
	if err != nil {
		return err
	}
	if p.grid == nil || p.received != p.grid.Height() || rows != p.received {
		return s.fail(p, fmt.Errorf("frame done after %d rows, server sent %d", p.received, rows))
	}

	p.finish(nil)
	s.cur = nil
	return nil
}

// Reject implements Viewer.
func (s *Session) Reject(msg string, invalid bool) error {
	s.m.Lock()
	defer s.m.Unlock()

	p, err := s.current()
	if err != nil {
		return err
	}

	if invalid {
		p.finish(fmt.Errorf("server: %w", invalidConfigError(msg)))
	} else {
		p.finish(fmt.Errorf("server: %s", msg))
	}
	s.cur = nil
	return nil
}

// invalidConfigError is a validation error reported by the remote side.
type invalidConfigError string

func (e invalidConfigError) Error() string { return string(e) }

func (e invalidConfigError) Is(target error) bool { return target == ErrInvalidConfig }
