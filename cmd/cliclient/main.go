// main.go is a CLI client for the Mandelbrot render server.
// It requests one viewport config and saves the intensity grid as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"

	"github.com/marben/irpc"
	mandel "github.com/marben/pixel_mandel"
	"github.com/marben/pixel_mandel/render"
)

// main is the entry point for the CLI client.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the server, requests a frame and saves it as a PNG file.
func run() error {
	var cfg mandel.ViewportConfig
	flag.IntVar(&cfg.Width, "width", 200, "width in pixels")
	flag.IntVar(&cfg.Height, "height", 200, "height in pixels")
	flag.IntVar(&cfg.MaxIterations, "iter", 30, "maximum iterations per pixel")
	flag.IntVar(&cfg.Zoom, "zoom", 1, "zoom factor, 1 shows the whole set")
	addr := flag.String("addr", ":8081", "server tcp address")
	filename := flag.String("o", "mandel.png", "output file")
	progress := flag.Bool("progress", false, "receive the frame band by band and log progress")
	flag.Parse()

	// Fail before dialing, the server would reject the request anyway
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Step 1: Connect to Mandelbrot server
	log.Printf("Connecting to Mandelbrot server on %s...", *addr)
	tcpConn, err := net.Dial("tcp", *addr)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}

	// Step 2: Every client provides the server with a mandel.Viewer. Ours only asks for something with -progress
	session := mandel.NewSession()
	viewerService := mandel.NewViewerIrpcService(session)
	ep := irpc.NewEndpoint(tcpConn, irpc.WithEndpointServices(viewerService))
	defer ep.Close()

	// Step 3: Request the frame
	log.Printf("Requesting %s...", cfg)
	var frame mandel.Frame
	if *progress {
		frame, err = requestBands(ctx, session, cfg)
	} else {
		frame, err = requestFrame(ctx, ep, cfg)
	}
	if err != nil {
		return err
	}
	log.Printf("Complex window: %s", frame.Window)

	// Step 4: Save the rendered image to a PNG file
	log.Printf("Saving rendered image to %q...", *filename)
	if err := render.SavePNG(*filename, frame); err != nil {
		return err
	}

	log.Printf("Fully rendered image saved to %q", *filename)
	return nil
}

// requestFrame fetches the whole frame at once through mandel.FrameProvider.
func requestFrame(ctx context.Context, ep *irpc.Endpoint, cfg mandel.ViewportConfig) (mandel.Frame, error) {
	client, err := mandel.NewFrameProviderIrpcClient(ep)
	if err != nil {
		return mandel.Frame{}, fmt.Errorf("failed to create FrameProvider client: %w", err)
	}

	frame, err := client.GetFrame(ctx, cfg)
	if err != nil {
		return mandel.Frame{}, fmt.Errorf("client.GetFrame: %w", err)
	}
	// never trust the size of the answer more than the size we asked for
	if err := frame.Answers(cfg); err != nil {
		return mandel.Frame{}, fmt.Errorf("server: %w", err)
	}
	return frame, nil
}

// requestBands lets the server stream the frame into our session.
func requestBands(ctx context.Context, session *mandel.Session, cfg mandel.ViewportConfig) (mandel.Frame, error) {
	rows := 0
	frame, err := session.RequestFrame(ctx, cfg, func(_ mandel.Window, start int, b mandel.Grid) {
		rows += len(b)
		log.Printf("received rows %d-%d (%d/%d)", start, start+len(b)-1, rows, cfg.Height)
	})
	if err != nil {
		return mandel.Frame{}, fmt.Errorf("session.RequestFrame: %w", err)
	}
	return frame, nil
}
