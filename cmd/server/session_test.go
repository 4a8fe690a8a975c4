package main

import (
	"context"
	"errors"
	"net"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/marben/irpc"
	mandel "github.com/marben/pixel_mandel"
)

// dialServer serves srv on a local tcp port and connects a client endpoint providing a viewer session.
func dialServer(t *testing.T, srv *renderServer) (*mandel.Session, *irpc.Endpoint) {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	irpcServer := newIrpcServer(srv)
	go irpcServer.Serve(l)
	t.Cleanup(func() { irpcServer.Close() })

	conn, err := net.Dial("tcp", l.Addr().String())
	if err != nil {
		t.Fatalf("net.Dial: %v", err)
	}
	session := mandel.NewSession()
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(mandel.NewViewerIrpcService(session)))
	t.Cleanup(func() { ep.Close() })

	return session, ep
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestStreamedFrameMatchesLocalRender(t *testing.T) {
	srv := newRenderServer(3, 7, 0)
	session, _ := dialServer(t, srv)

	cfg := mandel.ViewportConfig{Width: 40, Height: 30, Zoom: 2, MaxIterations: 25}

	bands := 0
	got, err := session.RequestFrame(testContext(t), cfg, func(win mandel.Window, start int, rows mandel.Grid) {
		bands++
		if win != mandel.ComputeWindow(cfg.Zoom) {
			t.Errorf("band window %v", win)
		}
	})
	if err != nil {
		t.Fatalf("RequestFrame: %v", err)
	}

	want, err := mandel.Render(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got.Window != want.Window {
		t.Errorf("window %v, want %v", got.Window, want.Window)
	}
	if !reflect.DeepEqual(got.Grid, want.Grid) {
		t.Errorf("streamed grid differs from local render")
	}
	// 30 rows in bands of 7
	if bands != 5 {
		t.Errorf("got %d bands, want 5", bands)
	}
}

func TestRejectedRequestsKeepConnection(t *testing.T) {
	srv := newRenderServer(0, 0, 100*100)
	session, ep := dialServer(t, srv)
	ctx := testContext(t)

	for _, cfg := range []mandel.ViewportConfig{
		{Width: 1, Height: 10, Zoom: 0, MaxIterations: 10},
		{Width: 1 << 31, Height: 1 << 31, Zoom: 1, MaxIterations: 30},
		{Width: 101, Height: 100, Zoom: 1, MaxIterations: 30},
	} {
		_, err := session.RequestFrame(ctx, cfg, nil)
		if !errors.Is(err, mandel.ErrInvalidConfig) {
			t.Fatalf("%s: got err %v, want ErrInvalidConfig", cfg, err)
		}
	}

	cfg := mandel.ViewportConfig{Width: 100, Height: 100, Zoom: 1, MaxIterations: 10}
	f, err := session.RequestFrame(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("request after rejections: %v", err)
	}
	if err := f.Answers(cfg); err != nil {
		t.Error(err)
	}
	if ep.Context().Err() != nil {
		t.Errorf("endpoint closed: %v", context.Cause(ep.Context()))
	}
}

func TestFrameProviderOverIrpc(t *testing.T) {
	srv := newRenderServer(2, 5, 64*64)
	_, ep := dialServer(t, srv)
	ctx := testContext(t)

	client, err := mandel.NewFrameProviderIrpcClient(ep)
	if err != nil {
		t.Fatalf("NewFrameProviderIrpcClient: %v", err)
	}

	_, err = client.GetFrame(ctx, mandel.ViewportConfig{Width: 1 << 31, Height: 1 << 31, Zoom: 1, MaxIterations: 30})
	if err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Fatalf("oversized frame: got err %v", err)
	}

	cfg := mandel.ViewportConfig{Width: 64, Height: 48, Zoom: 3, MaxIterations: 40}
	got, err := client.GetFrame(ctx, cfg)
	if err != nil {
		t.Fatalf("GetFrame: %v", err)
	}
	if err := got.Answers(cfg); err != nil {
		t.Fatal(err)
	}

	want, err := mandel.Render(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("frame received over irpc differs from local render")
	}
}

func TestGetFrame(t *testing.T) {
	srv := newRenderServer(2, 4, 300*300)

	if _, err := srv.GetFrame(context.Background(), mandel.ViewportConfig{}); !errors.Is(err, mandel.ErrInvalidConfig) {
		t.Errorf("zero config: got err %v, want ErrInvalidConfig", err)
	}

	huge := mandel.ViewportConfig{Width: 1 << 31, Height: 1 << 31, Zoom: 1, MaxIterations: 30}
	if _, err := srv.GetFrame(context.Background(), huge); !errors.Is(err, mandel.ErrInvalidConfig) {
		t.Errorf("oversized config: got err %v, want ErrInvalidConfig", err)
	}

	f, err := srv.GetFrame(context.Background(), defaultConfig)
	if err != nil {
		t.Fatalf("GetFrame: %v", err)
	}
	if err := f.Answers(defaultConfig); err != nil {
		t.Error(err)
	}
}
