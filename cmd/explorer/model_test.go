package main

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	mandel "github.com/marben/pixel_mandel"
)

var startConfig = mandel.ViewportConfig{Width: 200, Height: 200, Zoom: 1, MaxIterations: 30}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysMoveSliders(t *testing.T) {
	tests := []struct {
		keys []string
		want mandel.ViewportConfig
	}{
		{[]string{"right"}, mandel.ViewportConfig{Width: 250, Height: 200, Zoom: 1, MaxIterations: 30}},
		{[]string{"down", "down"}, mandel.ViewportConfig{Width: 200, Height: 100, Zoom: 1, MaxIterations: 30}},
		{[]string{"]", "]", "["}, mandel.ViewportConfig{Width: 200, Height: 200, Zoom: 1, MaxIterations: 35}},
		{[]string{"+", "=", "-"}, mandel.ViewportConfig{Width: 200, Height: 200, Zoom: 2, MaxIterations: 30}},
		// clamped to the slider ranges
		{[]string{"-"}, startConfig},
		{[]string{"left", "left", "left", "left"}, mandel.ViewportConfig{Width: 50, Height: 200, Zoom: 1, MaxIterations: 30}},
		{strings.Split(strings.Repeat("+", 20), ""), mandel.ViewportConfig{Width: 200, Height: 200, Zoom: 10, MaxIterations: 30}},
	}

	for _, tt := range tests {
		var m tea.Model = newModel(startConfig, &mandel.Evaluator{})
		for _, k := range tt.keys {
			m, _ = m.Update(key(k))
		}
		if got := m.(model).cfg; got != tt.want {
			t.Errorf("keys %v: got %v, want %v", tt.keys, got, tt.want)
		}
	}
}

func TestStaleFramesAreDropped(t *testing.T) {
	var m tea.Model = newModel(startConfig, &mandel.Evaluator{})

	m, cmd := m.Update(key("+"))
	if cmd == nil {
		t.Fatal("zoom change did not start a render")
	}
	if !m.(model).rendering {
		t.Error("model not marked as rendering")
	}

	// result of the initial render arrives after the zoom change
	m, _ = m.Update(frameMsg{seq: 0, frame: mandel.Frame{Window: mandel.ComputeWindow(1)}})
	if m.(model).frame.Window == mandel.ComputeWindow(1) {
		t.Error("stale frame was accepted")
	}

	msg := cmd()
	fm, ok := msg.(frameMsg)
	if !ok {
		t.Fatalf("render command returned %T", msg)
	}
	m, _ = m.Update(fm)
	got := m.(model)
	if got.rendering {
		t.Error("model still rendering after its frame arrived")
	}
	if got.frame.Window != mandel.ComputeWindow(2) {
		t.Errorf("window %v, want %v", got.frame.Window, mandel.ComputeWindow(2))
	}
	if got.frame.Grid.Width() != 200 || got.frame.Grid.Height() != 200 {
		t.Errorf("grid %dx%d, want 200x200", got.frame.Grid.Width(), got.frame.Grid.Height())
	}
}

// lyingProvider answers every request with a frame for another config.
type lyingProvider struct{}

func (lyingProvider) GetFrame(ctx context.Context, cfg mandel.ViewportConfig) (mandel.Frame, error) {
	cfg.Width *= 2
	return mandel.Frame{Config: cfg}, nil
}

func TestMismatchedFrameIsRejected(t *testing.T) {
	var m tea.Model = newModel(startConfig, lyingProvider{})
	m, _ = m.Update(m.Init()())

	got := m.(model)
	if got.err == nil || !strings.Contains(got.err.Error(), "requested") {
		t.Errorf("got err %v, want mismatch error", got.err)
	}
	if got.frame.Grid != nil {
		t.Error("mismatched frame was kept")
	}
}

func TestQuit(t *testing.T) {
	_, cmd := newModel(startConfig, &mandel.Evaluator{}).Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestView(t *testing.T) {
	cfg := mandel.ViewportConfig{Width: 50, Height: 50, Zoom: 1, MaxIterations: 10}
	var m tea.Model = newModel(cfg, &mandel.Evaluator{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 30})
	m, _ = m.Update(m.Init()())

	v := m.View()
	for _, want := range []string{"50x50", mandel.ComputeWindow(1).String(), "cells per iteration count"} {
		if !strings.Contains(v, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}

func TestPictureSize(t *testing.T) {
	cfg := mandel.ViewportConfig{Width: 30, Height: 20, Zoom: 1, MaxIterations: 10}
	re, im := mandel.ComputeWindow(1).Axes(cfg.Width, cfg.Height)
	f := mandel.Frame{Config: cfg, Window: mandel.ComputeWindow(1), Grid: mandel.EvaluateGrid(re, im, 10)}

	tests := []struct {
		cols, lines         int
		wantCols, wantLines int
	}{
		{80, 40, 30, 10},
		{10, 4, 10, 4},
		{0, -3, 1, 1},
	}
	for _, tt := range tests {
		lines := strings.Split(strings.TrimSuffix(picture(f, tt.cols, tt.lines), "\n"), "\n")
		if len(lines) != tt.wantLines {
			t.Errorf("%dx%d: got %d lines, want %d", tt.cols, tt.lines, len(lines), tt.wantLines)
			continue
		}
		if n := strings.Count(lines[0], "▀"); n != tt.wantCols {
			t.Errorf("%dx%d: got %d cells per line, want %d", tt.cols, tt.lines, n, tt.wantCols)
		}
	}
}
