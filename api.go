package mandel

import (
	"context"
)

//go:generate go run github.com/marben/irpc/cmd/irpc api.go

// FrameProvider renders whole frames. The render server provides it to every client.
type FrameProvider interface {
	GetFrame(ctx context.Context, cfg ViewportConfig) (Frame, error)
}

// Viewer is provided by every client connected to the render server.
// The server asks it which viewport to render next and pushes the rows back band by band.
type Viewer interface {
	// NextConfig blocks until the client wants another frame.
	NextConfig(ctx context.Context) (ViewportConfig, error)

	// Begin starts the answer to an accepted config.
	Begin(cfg ViewportConfig, win Window) error

	// Rows delivers finished rows starting at grid row start.
	// Bands arrive in completion order, not row order.
	Rows(start int, rows Grid) error

	// Done ends the answer once all rows were delivered.
	Done(rows int) error

	// Reject ends the answer to a config that could not be rendered.
	// invalid is set when the config was refused by validation.
	Reject(msg string, invalid bool) error
}
