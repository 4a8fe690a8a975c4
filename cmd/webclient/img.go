//go:build js && wasm

package main

import (
	"image"
	"syscall/js"
)

func initCanvas(width, height int, color string) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "myCanvas")

	canvas.Set("width", width)
	canvas.Set("height", height)

	ctx := canvas.Call("getContext", "2d")

	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", 0, 0, width, height)
}

// drawBandToCanvas puts img on the canvas at its own bounds.
func drawBandToCanvas(img *image.RGBA) {
	ctx := js.Global().Get("document").Call("getElementById", "myCanvas").Call("getContext", "2d")

	jsData := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(jsData, img.Pix)

	// ImageData expects the size of the buffer, not of the canvas
	imageData := js.Global().Get("ImageData").New(jsData, img.Rect.Dx(), img.Rect.Dy())
	ctx.Call("putImageData", imageData, img.Rect.Min.X, img.Rect.Min.Y)
}
