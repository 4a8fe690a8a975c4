//go:build js && wasm

// webclient.go is a WASM web client for the Mandelbrot render server.
// It sends the viewport chosen with the page's sliders and draws the bands as they arrive.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"syscall/js"
	"time"

	"github.com/marben/irpc"
	mandel "github.com/marben/pixel_mandel"
	"github.com/marben/pixel_mandel/render"
)

// main is the entry point for the WASM web client.
func main() {
	logScreenf("Starting WASM web client...")

	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"

	logScreenf("Connecting to Mandelbrot server at %s...", websocketUrl)
	websocket := js.Global().Get("WebSocket").New(websocketUrl)
	wsRWC := NewWebsocketReadWriteCloser(websocket)

	// The server drives our mandel.Viewer: it asks for the next config and pushes the rendered bands into it
	session := mandel.NewSession()
	viewerService := mandel.NewViewerIrpcService(session)
	ep := irpc.NewEndpoint(wsRWC, irpc.WithEndpointServices(viewerService))

	// requests are queued so that only one frame is drawn at a time
	requests := make(chan mandel.ViewportConfig, 1)
	js.Global().Set("renderMandel", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) != 4 {
			logScreenf("renderMandel(width, height, iter, zoom) needs 4 arguments, got %d", len(args))
			return nil
		}
		cfg := mandel.ViewportConfig{
			Width:         args[0].Int(),
			Height:        args[1].Int(),
			MaxIterations: args[2].Int(),
			Zoom:          args[3].Int(),
		}
		// drop a pending request, the newest one wins
		select {
		case <-requests:
		default:
		}
		requests <- cfg
		return nil
	}))

	requests <- mandel.ViewportConfig{Width: 200, Height: 200, MaxIterations: 30, Zoom: 1}
	for cfg := range requests {
		err := renderFrame(ep.Context(), session, cfg)
		switch {
		case err == nil:
		case ep.Context().Err() != nil:
			logFatalf("connection lost: %v", context.Cause(ep.Context()))
		case errors.Is(err, mandel.ErrInvalidConfig):
			logScreenf("Rejected %s: %v", cfg, err)
		default:
			logScreenf("err: render %s: %v", cfg, err)
		}
	}
}

// renderFrame requests one frame and draws its bands as they arrive.
func renderFrame(ctx context.Context, session *mandel.Session, cfg mandel.ViewportConfig) error {
	start := time.Now()
	logScreenf("Requesting %s...", cfg)
	initCanvas(cfg.Width, cfg.Height, "#3a3a6e")
	hudSetRows(0, cfg.Height)

	rows := 0
	frame, err := session.RequestFrame(ctx, cfg, func(_ mandel.Window, start int, b mandel.Grid) {
		drawBandToCanvas(render.Band(cfg.Height, start, b, cfg.MaxIterations))
		rows += len(b)
		hudSetRows(rows, cfg.Height)
	})
	if err != nil {
		return err
	}

	hudSetWindow(frame.Window)
	logScreenf("Rendered %s in %s", cfg, time.Since(start))
	return nil
}

// logScreenf appends a formatted message to the log element in the DOM,
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

func hudSetRows(done, total int) {
	doc := js.Global().Get("document")
	doc.Call("getElementById", "rowsDone").Set("textContent", done)
	doc.Call("getElementById", "rowsTotal").Set("textContent", total)
}

// hudSetWindow shows the axis extents next to the canvas.
func hudSetWindow(w mandel.Window) {
	js.Global().Get("document").Call("getElementById", "window").Set("textContent", w.String())
}
