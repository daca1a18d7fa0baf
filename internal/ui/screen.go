// Package ui draws mazes to a terminal with tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the slice of tcell.Screen the renderer and game loop use.
type Screen struct {
	tcell tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen initializes s with a black background. Tests pass a
// simulation screen here.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{tcell: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.tcell.Fini() }

// PollEvent blocks until the next key or resize event.
func (s *Screen) PollEvent() tcell.Event { return s.tcell.PollEvent() }

func (s *Screen) Clear() { s.tcell.Clear() }

func (s *Screen) Show() { s.tcell.Show() }

// Sync redraws every cell, used after a resize.
func (s *Screen) Sync() { s.tcell.Sync() }

// SetContent puts a single rune at column x, row y.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.tcell.SetContent(x, y, r, nil, style)
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (width, height int) { return s.tcell.Size() }

// Fits reports whether a width x height block of cells is visible.
func (s *Screen) Fits(width, height int) bool {
	w, h := s.tcell.Size()
	return width <= w && height <= h
}
