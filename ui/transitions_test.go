package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgnsk/conveniences/fader"
)

func frame(d float64) fader.Frame {
	return fader.Frame{Delta: d, UnscaledDelta: d}
}

func run(s fader.Step, d float64) int {
	s.Start()
	n := 0
	for !s.Done() {
		s.Tick(frame(d))
		n++
	}
	return n
}

func TestGraphicFadeKeepsRGB(t *testing.T) {
	g := NewGraphic(Color{R: 0.1, G: 0.2, B: 0.3, A: 1})

	s := LerpFadeOut(g, 1, 1, Options{})
	s.Start()
	s.Tick(frame(0.5))

	require.Equal(t, Color{R: 0.1, G: 0.2, B: 0.3, A: 0.5}, g.Color)

	s.Tick(frame(0.5))
	require.Equal(t, 0.0, g.Color.A)
	require.Equal(t, 0.1, g.Color.R)
}

func TestGraphicFadeIn(t *testing.T) {
	g := NewGraphic(ColorWhite)

	require.Equal(t, 4, run(LerpFadeIn(g, 2, 0.6, Options{}), 0.5))
	require.Equal(t, 0.6, g.Color.A)
}

func TestGraphicEaseShiftFadeInOut(t *testing.T) {
	g := NewGraphic(ColorWhite)

	s := EaseShiftFadeInOut(g, 0.5, 1, 1, 1, 1, Options{})
	require.Equal(t, 6, run(s, 0.5))
	require.Equal(t, 0.0, g.Color.A)
}

func TestCanvasGroupFadeInGate(t *testing.T) {
	c := NewCanvasGroup()

	s := LerpFadeGroupIn(c, 1, 1, Options{SetInteractable: true})
	s.Start()
	require.Equal(t, 0.0, c.Alpha)
	require.False(t, c.Interactable)
	require.False(t, c.BlocksInput)

	s.Tick(frame(1))
	require.Equal(t, 1.0, c.Alpha)
	require.True(t, c.Interactable)
	require.True(t, c.BlocksInput)
}

func TestCanvasGroupFadeOutGate(t *testing.T) {
	c := NewCanvasGroup()

	run(EaseShiftFadeGroupOut(c, 1, 0.3, 1, Options{SetInteractable: true}), 0.1)
	require.Equal(t, 0.0, c.Alpha)
	require.False(t, c.Interactable)
	require.False(t, c.BlocksInput)
}

func TestCanvasGroupWithoutGate(t *testing.T) {
	c := NewCanvasGroup()

	run(LerpFadeGroupOut(c, 1, 1, Options{}), 0.5)
	require.Equal(t, 0.0, c.Alpha)
	require.True(t, c.Interactable)
}

func TestCanvasGroupFadeInOutUnscaled(t *testing.T) {
	c := NewCanvasGroup()
	clock := fader.Clock{Scale: 0}

	s := LerpFadeGroupInOut(c, 0.5, 0.5, 0.5, 1, Options{Source: fader.Unscaled, SetInteractable: true})
	s.Start()
	for !s.Done() {
		s.Tick(clock.Frame(0.25))
	}

	require.Equal(t, 6, s.Ticks())
	require.Equal(t, 0.0, c.Alpha)
	require.False(t, c.Interactable)
}

func TestEaseShiftGroupInOut(t *testing.T) {
	c := NewCanvasGroup()

	s := EaseShiftFadeGroupInOut(c, 0.5, 0, 0.5, 0.5, 0.5, Options{SetInteractable: true})
	s.Start()
	s.Tick(frame(0.5))
	require.Equal(t, 0.5, c.Alpha)
	require.False(t, c.Interactable, "half opacity is not visible")

	s.Tick(frame(0.5))
	require.True(t, s.Done())
	require.Equal(t, 0.0, c.Alpha)
}

func TestEaseShiftFadeIn(t *testing.T) {
	g := NewGraphic(ColorWhite)
	s := EaseShiftFadeIn(g, 1, 0.5, 1, Options{})
	s.Start()
	s.Tick(frame(0.5))
	require.InDelta(t, 0.5, g.Color.A, 1e-12)

	c := NewCanvasGroup()
	run(EaseShiftFadeGroupIn(c, 1, 0.5, 1, Options{SetInteractable: true}), 0.25)
	require.True(t, c.Interactable)

	run(EaseShiftFadeOut(g, 1, 0.5, 1, Options{}), 0.25)
	require.Equal(t, 0.0, g.Color.A)
}
