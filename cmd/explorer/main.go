// explorer is an interactive terminal view of the Mandelbrot set.
// The keys play the role of sliders for the grid size, the iteration cap and the zoom.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marben/irpc"
	mandel "github.com/marben/pixel_mandel"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	var cfg mandel.ViewportConfig
	flag.IntVar(&cfg.Width, "width", 200, "width in pixels")
	flag.IntVar(&cfg.Height, "height", 200, "height in pixels")
	flag.IntVar(&cfg.MaxIterations, "iter", 30, "maximum iterations per pixel")
	flag.IntVar(&cfg.Zoom, "zoom", 1, "zoom factor, 1 shows the whole set")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	addr := flag.String("addr", "", "render on the server at this tcp address instead of locally")
	flag.Parse()

	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "explorer")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		// the terminal belongs to the UI
		log.SetOutput(io.Discard)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	var provider mandel.FrameProvider = &mandel.Evaluator{}
	if *addr != "" {
		tcpConn, err := net.Dial("tcp", *addr)
		if err != nil {
			return fmt.Errorf("failed to connect to server: %w", err)
		}
		// the server expects a viewer on every connection, ours never asks for anything
		ep := irpc.NewEndpoint(tcpConn, irpc.WithEndpointServices(mandel.NewViewerIrpcService(mandel.NewSession())))
		defer ep.Close()

		client, err := mandel.NewFrameProviderIrpcClient(ep)
		if err != nil {
			return fmt.Errorf("failed to create FrameProvider client: %w", err)
		}
		log.Printf("rendering on %s", *addr)
		provider = client
	}

	p := tea.NewProgram(newModel(cfg, provider), tea.WithAltScreen(), tea.WithOutput(os.Stdout))
	_, err := p.Run()
	return err
}
