//go:build js && wasm

package main

import (
	"io"
	"sync"
	"syscall/js"
)

// WebsocketReadWriteCloser adapts a browser WebSocket to io.ReadWriteCloser.
type WebsocketReadWriteCloser struct {
	ws js.Value

	mu     sync.Mutex // js callbacks can run between the steps of Write
	closed bool
	err    error

	messages chan []byte
	opened   chan struct{} // closed once the socket is open or failed to open
	openOnce sync.Once

	pending []byte // unread rest of the last message
}

func NewWebsocketReadWriteCloser(ws js.Value) *WebsocketReadWriteCloser {
	c := &WebsocketReadWriteCloser{
		ws:       ws,
		messages: make(chan []byte, 64),
		opened:   make(chan struct{}),
	}

	ws.Set("binaryType", "arraybuffer")

	ws.Set("onopen", js.FuncOf(func(js.Value, []js.Value) any {
		logScreenf("WebSocket connected.")
		c.markOpened()
		return nil
	}))

	ws.Set("onerror", js.FuncOf(func(js.Value, []js.Value) any {
		c.mu.Lock()
		c.err = io.ErrUnexpectedEOF
		c.mu.Unlock()
		c.markOpened()
		return nil
	}))

	ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) any {
		data := args[0].Get("data")
		if !data.InstanceOf(js.Global().Get("ArrayBuffer")) {
			logScreenf("ignoring non binary websocket message")
			return nil
		}
		u8 := js.Global().Get("Uint8Array").New(data)
		b := make([]byte, u8.Get("byteLength").Int())
		js.CopyBytesToGo(b, u8)

		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.closed {
			c.messages <- b
		}
		return nil
	}))

	ws.Set("onclose", js.FuncOf(func(js.Value, []js.Value) any {
		logScreenf("WebSocket closed.")
		c.shutdown()
		return nil
	}))

	return c
}

func (c *WebsocketReadWriteCloser) markOpened() {
	c.openOnce.Do(func() { close(c.opened) })
}

// shutdown marks the connection closed and reports it to Read.
// It returns false if it was already closed.
func (c *WebsocketReadWriteCloser) shutdown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.closed = true
	close(c.messages)
	c.markOpened()
	return true
}

func (c *WebsocketReadWriteCloser) Read(p []byte) (int, error) {
	if len(c.pending) == 0 {
		msg, ok := <-c.messages
		if !ok {
			return 0, io.EOF
		}
		c.pending = msg
	}

	n := copy(p, c.pending)
	c.pending = c.pending[n:]
	return n, nil
}

func (c *WebsocketReadWriteCloser) Write(p []byte) (int, error) {
	<-c.opened

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	if c.closed {
		return 0, io.ErrClosedPipe
	}

	u8 := js.Global().Get("Uint8Array").New(len(p))
	js.CopyBytesToJS(u8, p)
	c.ws.Call("send", u8)

	return len(p), nil
}

func (c *WebsocketReadWriteCloser) Close() error {
	if c.shutdown() {
		c.ws.Call("close")
	}
	return nil
}
