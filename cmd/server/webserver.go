package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	mandel "github.com/marben/pixel_mandel"
	"github.com/marben/pixel_mandel/render"
)

// webServer creates server serving files in staticDir and rendered PNGs at /render.png,
// initializes websocket endpoint and returns net.Listener accepting websocket connections
func webServer(ctx context.Context, port int, srv *renderServer, staticDir string) (*WebsocketListener, *http.Server) {
	l := NewWSListener(ctx, fmt.Sprintf(":%d/ws", port))

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           newMux(srv, l, staticDir),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return l, httpSrv
}

func newMux(srv *renderServer, l *WebsocketListener, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l))
	mux.HandleFunc("/render.png", pngHandler(srv))
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	return mux
}

// websocketHandler handles the http ws endpoint
// if websocket is succesfully initialized it is passed to WebsocketListener so it can be accepted
func websocketHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: restrict to the deployment's host once it has one
		})
		if err != nil {
			log.Println(err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// pngHandler renders the config given by query parameters width, height, iter and zoom.
func pngHandler(srv *renderServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := configFromQuery(r, defaultConfig)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		frame, err := srv.GetFrame(r.Context(), cfg)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, mandel.ErrInvalidConfig) {
				status = http.StatusBadRequest
			}
			http.Error(w, err.Error(), status)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("X-Complex-Window", frame.Window.String())
		if err := render.EncodePNG(w, render.ToImage(frame.Grid, cfg.MaxIterations)); err != nil {
			log.Printf("err: write png: %v", err)
		}
	}
}

func configFromQuery(r *http.Request, def mandel.ViewportConfig) (mandel.ViewportConfig, error) {
	cfg := def
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
		{"iter", &cfg.MaxIterations},
		{"zoom", &cfg.Zoom},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parameter %s: %w", p.name, err)
		}
		*p.dst = n
	}
	return cfg, nil
}

// WebsocketListener implements net.Listener
// it hands out websocket connections accepted by websocketHandler
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
