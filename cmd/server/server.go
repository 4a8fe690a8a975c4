package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/marben/irpc"
	mandel "github.com/marben/pixel_mandel"
)

// main is the entry point for the Mandelbrot render server.
// Clients send a viewport config and receive the intensity grid band by band.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		httpPort  = flag.Int("http", 8080, "http and websocket port")
		tcpAddr   = flag.String("tcp", ":8081", "tcp listen address")
		staticDir = flag.String("static", "./static", "directory served at /")
		workers   = flag.Int("workers", 0, "render goroutines per request, 0 uses GOMAXPROCS")
		bandRows  = flag.Int("band", 16, "rows per streamed band")
		maxPixels = flag.Int("maxpixels", 4096*4096, "largest accepted width*height, 0 disables the limit")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := newRenderServer(*workers, *bandRows, *maxPixels)

	// irpc server with onConnect hook that renders whatever each client's viewer asks for
	irpcServer := newIrpcServer(srv)

	// TCP
	log.Printf("tcp listening on %s", *tcpAddr)
	tcpListener, err := net.Listen("tcp", *tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(ctx, *httpPort, srv, *staticDir)

	errCh := make(chan error, 3)

	// httpServer provides static files, /render.png and the websocket endpoint
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("httpServer: %w", err)
		}
	}()

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := irpcServer.Serve(tcpListener); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
			errCh <- fmt.Errorf("irpcServer.Serve(tcp): %w", err)
		}
	}()
	go func() {
		if err := irpcServer.Serve(websocketListener); err != nil && !errors.Is(err, irpc.ErrServerClosed) {
			errCh <- fmt.Errorf("irpcServer.Serve(ws): %w", err)
		}
	}()

	log.Printf("mb server waiting for tcp and websocket connections")

	select {
	case err = <-errCh:
	case <-ctx.Done():
		log.Printf("shutting down")
	}

	// closes both listeners and all client endpoints
	if cerr := irpcServer.Close(); cerr != nil {
		log.Printf("err: irpcServer.Close: %v", cerr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := httpServer.Shutdown(shutdownCtx); serr != nil && err == nil {
		err = fmt.Errorf("httpServer.Shutdown: %w", serr)
	}

	return err
}

// defaultConfig is used for the query parameters missing from /render.png requests.
var defaultConfig = mandel.ViewportConfig{
	Width:         200,
	Height:        200,
	Zoom:          1,
	MaxIterations: 30,
}
